package handler

import (
	"net/http"

	"conesites/cmd/internal/contract"
	"conesites/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type CollaboratorService interface {
	GetCollaborators(colType string) ([]*contract.CollaboratorResponse, apierror.ErrorResponse)
	GetCollaborator(id string) (*contract.CollaboratorResponse, apierror.ErrorResponse)
	CreateCollaborator(req *contract.CreateCollaboratorRequest) (*contract.CollaboratorResponse, apierror.ErrorResponse)
}

type DefaultCollaboratorRoute struct {
	CollaboratorService CollaboratorService
}

func NewCollaboratorDefault(collaboratorService CollaboratorService) *DefaultCollaboratorRoute {
	return &DefaultCollaboratorRoute{CollaboratorService: collaboratorService}
}

func (h *DefaultCollaboratorRoute) GetCollaborators(c echo.Context) error {
	cols, apierr := h.CollaboratorService.GetCollaborators(c.QueryParam("type"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"collaborators": cols}
	return c.JSON(http.StatusOK, &resp)
}

func (h *DefaultCollaboratorRoute) GetCollaborator(c echo.Context) error {
	col, apierr := h.CollaboratorService.GetCollaborator(c.Param("id"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, col)
}

func (h *DefaultCollaboratorRoute) CreateCollaborator(c echo.Context) error {
	var req contract.CreateCollaboratorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	col, apierr := h.CollaboratorService.CreateCollaborator(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, col)
}
