package service

import (
	"conesites/cmd/internal/contract"
	"conesites/cmd/internal/domain/entity"
	"conesites/cmd/internal/domain/events"
	"conesites/cmd/internal/utils"
	"conesites/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
)

type CandidateStore interface {
	AddCandidate(cand entity.Candidate)
	Candidates() []entity.Candidate
	CandidateByID(id string) (entity.Candidate, bool)
	CandidatesForSite(siteID string) []entity.Candidate
	SiteByID(sharingID string) (entity.Site, bool)
}

type CandidateService struct {
	Store    CandidateStore
	IDs      IDGenerator
	Events   EventPublisher
	Validate *validator.Validate
}

func NewCandidateService(st CandidateStore, ids IDGenerator, publisher EventPublisher, validate *validator.Validate) *CandidateService {
	return &CandidateService{
		Store:    st,
		IDs:      ids,
		Events:   publisher,
		Validate: validate,
	}
}

// GetCandidates lists every candidate, or only those of siteID when set.
func (s *CandidateService) GetCandidates(siteID string) []*contract.CandidateResponse {
	var cands []entity.Candidate
	if siteID == "" {
		cands = s.Store.Candidates()
	} else {
		cands = s.Store.CandidatesForSite(siteID)
	}

	resp := make([]*contract.CandidateResponse, len(cands))
	for i := range cands {
		resp[i] = toCandidateResponse(&cands[i])
	}
	return resp
}

func (s *CandidateService) GetCandidate(id string) (*contract.CandidateResponse, apierror.ErrorResponse) {
	cand, ok := s.Store.CandidateByID(id)
	if !ok {
		return nil, apierror.NotFoundError
	}
	return toCandidateResponse(&cand), nil
}

// CreateCandidate copies the parent site's identity, project and status into
// the candidate. The copy is a snapshot and never follows later site changes.
func (s *CandidateService) CreateCandidate(req *contract.CreateCandidateRequest) (*contract.CandidateResponse, apierror.ErrorResponse) {
	if apierr := validateRequest(s.Validate, req); apierr != nil {
		return nil, apierr
	}

	site, ok := s.Store.SiteByID(req.SiteID)
	if !ok {
		return nil, apierror.UnknownSiteError
	}

	cand := entity.Candidate{
		ID:           s.IDs.Next(candidatePrefix),
		SiteID:       site.SharingID,
		SharingID:    site.SharingID,
		OperatorID:   site.OperatorID,
		SharingName:  site.SharingName,
		OperatorName: site.OperatorName,
		ProjectID:    site.ProjectID,
		SiteStatus:   site.Status,

		Name:       req.Name,
		SiteType:   entity.SiteType(req.SiteType),
		IsSelected: utils.Deref(req.IsSelected, false),
		Status:     entity.CandidateStatus(utils.Deref(req.Status, string(entity.CandidateUnderReview))),

		Locality:  req.Locality,
		State:     req.State,
		Latitude:  utils.Deref(req.Latitude, 0),
		Longitude: utils.Deref(req.Longitude, 0),

		ZipCode:      req.ZipCode,
		Street:       req.Street,
		Number:       req.Number,
		Neighborhood: req.Neighborhood,
		Complement:   req.Complement,

		ActivationDate: req.ActivationDate,
		SearchOrder:    req.SearchOrder,

		ClientCoordinatorID:   req.ClientCoordinatorID,
		SupplierCoordinatorID: req.SupplierCoordinatorID,

		LandlordName: req.LandlordName,
		LeaseAmount:  req.LeaseAmount,
	}

	s.Store.AddCandidate(cand)
	s.Events.Publish(events.NewEntityCreated(contract.EntityCandidate, cand.ID))
	return toCandidateResponse(&cand), nil
}

func toCandidateResponse(c *entity.Candidate) *contract.CandidateResponse {
	return &contract.CandidateResponse{
		ID:              c.ID,
		SiteID:          c.SiteID,
		SharingID:       c.SharingID,
		OperatorID:      c.OperatorID,
		SharingName:     c.SharingName,
		OperatorName:    c.OperatorName,
		ProjectID:       c.ProjectID,
		SiteStatus:      string(c.SiteStatus),
		Name:            c.Name,
		SiteType:        string(c.SiteType),
		SiteTypeLabel:   c.SiteType.Label(),
		IsSelected:      c.IsSelected,
		Status:          string(c.Status),
		StatusLabel:     c.Status.Label(),
		Locality:        c.Locality,
		State:           c.State,
		Latitude:        c.Latitude,
		Longitude:       c.Longitude,
		ZipCode:         c.ZipCode,
		Street:          c.Street,
		Number:          c.Number,
		Neighborhood:    c.Neighborhood,
		Complement:      c.Complement,
		ActivationDate:  c.ActivationDate,
		SearchOrder:     c.SearchOrder,
		ClientCoordID:   c.ClientCoordinatorID,
		SupplierCoordID: c.SupplierCoordinatorID,
		LandlordName:    c.LandlordName,
		LeaseAmount:     c.LeaseAmount,
	}
}
