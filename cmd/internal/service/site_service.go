package service

import (
	"net/http"
	"sync"

	"conesites/cmd/internal/contract"
	"conesites/cmd/internal/domain/entity"
	"conesites/cmd/internal/domain/events"
	"conesites/cmd/internal/domain/store"
	"conesites/cmd/internal/utils"
	"conesites/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
)

type SiteStore interface {
	AddSite(site entity.Site)
	Sites() []entity.Site
	SiteByID(sharingID string) (entity.Site, bool)
	SearchSites(f store.SiteFilter) []entity.Site
	ProjectForSite(site entity.Site) (entity.Project, bool)
	CoordinatorsForSite(site entity.Site) []entity.Collaborator
	CollaboratorByID(id string) (entity.Collaborator, bool)
	CandidatesForSite(siteID string) []entity.Candidate
}

type SiteService struct {
	Store    SiteStore
	Events   EventPublisher
	Validate *validator.Validate

	// Serializes the sharing id check with the append.
	createMu sync.Mutex
}

func NewSiteService(st SiteStore, publisher EventPublisher, validate *validator.Validate) *SiteService {
	return &SiteService{
		Store:    st,
		Events:   publisher,
		Validate: validate,
	}
}

// SearchSites matches term against sharing name, sharing id and city, ignoring
// case. An empty status or "all" disables the status filter.
func (s *SiteService) SearchSites(term, status string) []*contract.SiteResponse {
	sites := s.Store.SearchSites(store.SiteFilter{
		Term:   term,
		Status: status,
	})

	resp := make([]*contract.SiteResponse, len(sites))
	for i := range sites {
		resp[i] = toSiteResponse(&sites[i])
	}
	return resp
}

// GetSiteDetails resolves the site joins. Dangling references never fail the
// request, they fall back to the raw ids.
func (s *SiteService) GetSiteDetails(sharingID string) (*contract.SiteDetailsResponse, apierror.ErrorResponse) {
	site, ok := s.Store.SiteByID(sharingID)
	if !ok {
		return nil, apierror.NotFoundError
	}

	details := &contract.SiteDetailsResponse{
		Site:        toSiteResponse(&site),
		ProjectName: site.ProjectID,
	}

	if project, ok := s.Store.ProjectForSite(site); ok {
		details.Project = toProjectResponse(&project)
		details.ProjectName = project.Name
	}

	details.ClientCoordinator = s.coordinatorRef(site.ClientCoordinatorID)
	details.SupplierCoordinator = s.coordinatorRef(site.SupplierCoordinatorID)

	coordinators := s.Store.CoordinatorsForSite(site)
	details.Coordinators = make([]*contract.CollaboratorResponse, len(coordinators))
	for i := range coordinators {
		details.Coordinators[i] = toCollaboratorResponse(&coordinators[i])
	}

	candidates := s.Store.CandidatesForSite(site.SharingID)
	details.Candidates = make([]*contract.CandidateResponse, len(candidates))
	for i := range candidates {
		details.Candidates[i] = toCandidateResponse(&candidates[i])
	}
	details.CandidateCount = len(candidates)
	return details, nil
}

func (s *SiteService) CreateSite(req *contract.CreateSiteRequest) (*contract.SiteResponse, apierror.ErrorResponse) {
	if apierr := validateRequest(s.Validate, req); apierr != nil {
		return nil, apierr
	}

	if req.Status != nil && !entity.SiteStatus(*req.Status).IsValid() {
		serr := apierror.NewStructured(http.StatusBadRequest)
		serr.Add("status", "Value must be one of the known site statuses")
		return nil, serr
	}

	site := entity.Site{
		SharingID:             req.SharingID,
		OperatorID:            req.OperatorID,
		SharingName:           req.SharingName,
		OperatorName:          req.OperatorName,
		ProjectID:             req.ProjectID,
		City:                  req.City,
		State:                 req.State,
		Regional:              req.Regional,
		NominalLatitude:       utils.Deref(req.NominalLatitude, 0),
		NominalLongitude:      utils.Deref(req.NominalLongitude, 0),
		RequestedHeight:       utils.Deref(req.RequestedHeight, 0),
		TargetDate:            req.TargetDate,
		ActivationDate:        req.ActivationDate,
		ActivationOrder:       req.ActivationOrder,
		SearchRadius:          req.SearchRadius,
		Size:                  req.Size,
		ProjectAssumptions:    req.ProjectAssumptions,
		ClientCoordinatorID:   req.ClientCoordinatorID,
		SupplierCoordinatorID: req.SupplierCoordinatorID,
		ClientSLA:             req.ClientSLA,
		Status:                entity.SiteStatus(utils.Deref(req.Status, string(entity.SiteStatusSearch))),
		Progress:              utils.Deref(req.Progress, 0),
	}

	s.createMu.Lock()
	if _, exists := s.Store.SiteByID(site.SharingID); exists {
		s.createMu.Unlock()
		return nil, apierror.DuplicateSharingIDError
	}
	s.Store.AddSite(site)
	s.createMu.Unlock()

	s.Events.Publish(events.NewEntityCreated(contract.EntitySite, site.SharingID))
	return toSiteResponse(&site), nil
}

func (s *SiteService) coordinatorRef(id string) *contract.CoordinatorRef {
	if id == "" {
		return nil
	}

	col, ok := s.Store.CollaboratorByID(id)
	if !ok {
		return &contract.CoordinatorRef{ID: id, Name: id}
	}
	return &contract.CoordinatorRef{
		ID:       col.ID,
		Name:     col.Name,
		Role:     col.Role,
		Email:    col.Email,
		Mobile:   col.Mobile,
		Resolved: true,
	}
}

func toSiteResponse(s *entity.Site) *contract.SiteResponse {
	return &contract.SiteResponse{
		SharingID:             s.SharingID,
		OperatorID:            s.OperatorID,
		SharingName:           s.SharingName,
		OperatorName:          s.OperatorName,
		ProjectID:             s.ProjectID,
		City:                  s.City,
		State:                 s.State,
		Regional:              s.Regional,
		NominalLatitude:       s.NominalLatitude,
		NominalLongitude:      s.NominalLongitude,
		RequestedHeight:       s.RequestedHeight,
		TargetDate:            s.TargetDate,
		ActivationDate:        s.ActivationDate,
		ActivationOrder:       s.ActivationOrder,
		SearchRadius:          s.SearchRadius,
		Size:                  s.Size,
		ProjectAssumptions:    s.ProjectAssumptions,
		ClientCoordinatorID:   s.ClientCoordinatorID,
		SupplierCoordinatorID: s.SupplierCoordinatorID,
		ClientSLA:             s.ClientSLA,
		Status:                string(s.Status),
		StatusLabel:           s.Status.Label(),
		Progress:              s.Progress,
	}
}
