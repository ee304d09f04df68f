package handler

import (
	"net/http"

	"conesites/cmd/internal/contract"
	"conesites/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type ProjectService interface {
	GetProjects() []*contract.ProjectResponse
	GetProject(id string) (*contract.ProjectResponse, apierror.ErrorResponse)
	CreateProject(req *contract.CreateProjectRequest) (*contract.ProjectResponse, apierror.ErrorResponse)
}

type DefaultProjectRoute struct {
	ProjectService ProjectService
}

func NewProjectDefault(projectService ProjectService) *DefaultProjectRoute {
	return &DefaultProjectRoute{ProjectService: projectService}
}

func (h *DefaultProjectRoute) GetProjects(c echo.Context) error {
	resp := echo.Map{"projects": h.ProjectService.GetProjects()}
	return c.JSON(http.StatusOK, &resp)
}

func (h *DefaultProjectRoute) GetProject(c echo.Context) error {
	project, apierr := h.ProjectService.GetProject(c.Param("id"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, project)
}

func (h *DefaultProjectRoute) CreateProject(c echo.Context) error {
	var req contract.CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	project, apierr := h.ProjectService.CreateProject(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, project)
}
