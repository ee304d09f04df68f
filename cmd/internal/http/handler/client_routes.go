package handler

import (
	"net/http"

	"conesites/cmd/internal/contract"
	"conesites/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type ClientService interface {
	GetClients() []*contract.ClientResponse
	GetClient(id string) (*contract.ClientResponse, apierror.ErrorResponse)
	CreateClient(req *contract.CreateClientRequest) (*contract.ClientResponse, apierror.ErrorResponse)
}

type DefaultClientRoute struct {
	ClientService ClientService
}

func NewClientDefault(clientService ClientService) *DefaultClientRoute {
	return &DefaultClientRoute{ClientService: clientService}
}

func (h *DefaultClientRoute) GetClients(c echo.Context) error {
	resp := echo.Map{"clients": h.ClientService.GetClients()}
	return c.JSON(http.StatusOK, &resp)
}

func (h *DefaultClientRoute) GetClient(c echo.Context) error {
	client, apierr := h.ClientService.GetClient(c.Param("id"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, client)
}

func (h *DefaultClientRoute) CreateClient(c echo.Context) error {
	var req contract.CreateClientRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	client, apierr := h.ClientService.CreateClient(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, client)
}
