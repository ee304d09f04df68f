package service

import (
	"strings"

	"conesites/cmd/internal/contract"
	"conesites/cmd/internal/domain/entity"
	"conesites/cmd/internal/domain/events"
	"conesites/cmd/internal/utils"
	"conesites/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
)

type CollaboratorStore interface {
	AddCollaborator(col entity.Collaborator)
	Collaborators() []entity.Collaborator
	CollaboratorByID(id string) (entity.Collaborator, bool)
	CollaboratorsByType(t entity.CollaboratorType) []entity.Collaborator
}

type CollaboratorService struct {
	Store    CollaboratorStore
	IDs      IDGenerator
	Events   EventPublisher
	Validate *validator.Validate
}

func NewCollaboratorService(st CollaboratorStore, ids IDGenerator, publisher EventPublisher, validate *validator.Validate) *CollaboratorService {
	return &CollaboratorService{
		Store:    st,
		IDs:      ids,
		Events:   publisher,
		Validate: validate,
	}
}

// GetCollaborators lists every collaborator, or only one side when colType is
// CLIENT_SIDE or SUPPLIER_SIDE.
func (s *CollaboratorService) GetCollaborators(colType string) ([]*contract.CollaboratorResponse, apierror.ErrorResponse) {
	var cols []entity.Collaborator
	switch entity.CollaboratorType(colType) {
	case "":
		cols = s.Store.Collaborators()
	case entity.CollaboratorClientSide, entity.CollaboratorSupplierSide:
		cols = s.Store.CollaboratorsByType(entity.CollaboratorType(colType))
	default:
		return nil, apierror.NewInvalidParamError("type", "CLIENT_SIDE, SUPPLIER_SIDE")
	}

	resp := make([]*contract.CollaboratorResponse, len(cols))
	for i := range cols {
		resp[i] = toCollaboratorResponse(&cols[i])
	}
	return resp, nil
}

func (s *CollaboratorService) GetCollaborator(id string) (*contract.CollaboratorResponse, apierror.ErrorResponse) {
	col, ok := s.Store.CollaboratorByID(id)
	if !ok {
		return nil, apierror.NotFoundError
	}
	return toCollaboratorResponse(&col), nil
}

func (s *CollaboratorService) CreateCollaborator(req *contract.CreateCollaboratorRequest) (*contract.CollaboratorResponse, apierror.ErrorResponse) {
	if apierr := validateRequest(s.Validate, req); apierr != nil {
		return nil, apierr
	}

	col := entity.Collaborator{
		ID:       s.IDs.Next(collaboratorPrefix),
		Name:     strings.ToUpper(req.Name),
		ClientID: req.ClientID,
		Type:     entity.CollaboratorType(utils.Deref(req.Type, string(entity.CollaboratorClientSide))),
		Role:     strings.ToUpper(req.Role),
		Mobile:   req.Mobile,
		Email:    req.Email,
	}

	s.Store.AddCollaborator(col)
	s.Events.Publish(events.NewEntityCreated(contract.EntityCollaborator, col.ID))
	return toCollaboratorResponse(&col), nil
}

func toCollaboratorResponse(c *entity.Collaborator) *contract.CollaboratorResponse {
	return &contract.CollaboratorResponse{
		ID:       c.ID,
		Name:     c.Name,
		ClientID: c.ClientID,
		Type:     string(c.Type),
		Role:     c.Role,
		Mobile:   c.Mobile,
		Email:    c.Email,
	}
}
