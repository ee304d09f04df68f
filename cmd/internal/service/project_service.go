package service

import (
	"conesites/cmd/internal/contract"
	"conesites/cmd/internal/domain/entity"
	"conesites/cmd/internal/domain/events"
	"conesites/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
)

type ProjectStore interface {
	AddProject(p entity.Project)
	Projects() []entity.Project
	ProjectByID(id string) (entity.Project, bool)
}

type ProjectService struct {
	Store    ProjectStore
	IDs      IDGenerator
	Events   EventPublisher
	Validate *validator.Validate
}

func NewProjectService(st ProjectStore, ids IDGenerator, publisher EventPublisher, validate *validator.Validate) *ProjectService {
	return &ProjectService{
		Store:    st,
		IDs:      ids,
		Events:   publisher,
		Validate: validate,
	}
}

func (s *ProjectService) GetProjects() []*contract.ProjectResponse {
	projects := s.Store.Projects()
	resp := make([]*contract.ProjectResponse, len(projects))
	for i := range projects {
		resp[i] = toProjectResponse(&projects[i])
	}
	return resp
}

func (s *ProjectService) GetProject(id string) (*contract.ProjectResponse, apierror.ErrorResponse) {
	project, ok := s.Store.ProjectByID(id)
	if !ok {
		return nil, apierror.NotFoundError
	}
	return toProjectResponse(&project), nil
}

func (s *ProjectService) CreateProject(req *contract.CreateProjectRequest) (*contract.ProjectResponse, apierror.ErrorResponse) {
	if apierr := validateRequest(s.Validate, req); apierr != nil {
		return nil, apierr
	}

	project := entity.Project{
		ID:          s.IDs.Next(projectPrefix),
		Name:        req.Name,
		Assumptions: req.Assumptions,
		Notes:       req.Notes,
	}

	s.Store.AddProject(project)
	s.Events.Publish(events.NewEntityCreated(contract.EntityProject, project.ID))
	return toProjectResponse(&project), nil
}

func toProjectResponse(p *entity.Project) *contract.ProjectResponse {
	return &contract.ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Assumptions: p.Assumptions,
		Notes:       p.Notes,
	}
}
