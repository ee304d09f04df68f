package service

import (
	"fmt"
	"testing"

	"conesites/cmd/internal/domain/entity"
	"conesites/cmd/internal/domain/events"
	"conesites/cmd/internal/domain/store"
	"conesites/cmd/internal/utils/apierror"
	"conesites/cmd/internal/utils/validators"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validCNPJ = "11222333000181"

type seqIDs struct {
	n int
}

func (g *seqIDs) Next(prefix string) string {
	g.n++
	return fmt.Sprintf("%s-%d", prefix, g.n)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(evt events.SocketEvent) {
	m.Called(evt)
}

func newValidator() *validator.Validate {
	validate := validator.New()
	validators.Register(validate)
	return validate
}

func acceptingPublisher() *mockPublisher {
	pub := &mockPublisher{}
	pub.On("Publish", mock.Anything).Return()
	return pub
}

func ptr[T any](v T) *T {
	return &v
}

func requireFieldError(t *testing.T, apierr apierror.ErrorResponse, field string) {
	t.Helper()
	require.NotNil(t, apierr)
	serr, ok := apierr.(*apierror.StructuredError)
	require.True(t, ok, "expected a structured validation error, got %T", apierr)
	require.Contains(t, serr.Errors, field)
}

// trackerStore seeds one project with a site, two collaborators and two candidates.
func trackerStore() *store.Store {
	return store.New(store.Seed{
		Clients: []entity.Client{{ID: "CLI-01", BusinessName: "Telco SA", Status: entity.ClientActive}},
		Projects: []entity.Project{{
			ID:          "PROJ-01",
			Name:        "Expansão 5G",
			Assumptions: "Rooftop preferencial",
		}},
		Collaborators: []entity.Collaborator{
			{ID: "COL-01", Name: "ANA", Type: entity.CollaboratorClientSide, ClientID: "CLI-01", Role: "GERENTE"},
			{ID: "COL-02", Name: "CARLOS", Type: entity.CollaboratorSupplierSide, Role: "SA"},
		},
		Sites: []entity.Site{{
			SharingID:             "SP-001",
			OperatorID:            "OP-77",
			SharingName:           "Jardins Expansão",
			OperatorName:          "Jardins",
			ProjectID:             "PROJ-01",
			City:                  "São Paulo",
			State:                 "SP",
			Regional:              "SP Capital",
			RequestedHeight:       30,
			ClientCoordinatorID:   "COL-01",
			SupplierCoordinatorID: "COL-02",
			Status:                entity.SiteStatusNegotiation,
			Progress:              40,
		}},
		Candidates: []entity.Candidate{
			{ID: "CAND-01", SiteID: "SP-001", SharingID: "SP-001", Name: "Edifício A", SiteType: entity.SiteTypeRooftop, IsSelected: true, LeaseAmount: 4500},
			{ID: "CAND-02", SiteID: "SP-001", SharingID: "SP-001", Name: "Terreno B", SiteType: entity.SiteTypeGreenfield},
		},
	})
}
