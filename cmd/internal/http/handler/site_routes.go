package handler

import (
	"net/http"

	"conesites/cmd/internal/contract"
	"conesites/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type SiteService interface {
	SearchSites(term, status string) []*contract.SiteResponse
	GetSiteDetails(sharingID string) (*contract.SiteDetailsResponse, apierror.ErrorResponse)
	CreateSite(req *contract.CreateSiteRequest) (*contract.SiteResponse, apierror.ErrorResponse)
}

type DefaultSiteRoute struct {
	SiteService SiteService
}

func NewSiteDefault(siteService SiteService) *DefaultSiteRoute {
	return &DefaultSiteRoute{SiteService: siteService}
}

// GetSites accepts ?q= (name, id or city) and ?status= (a site status or "all").
func (h *DefaultSiteRoute) GetSites(c echo.Context) error {
	sites := h.SiteService.SearchSites(c.QueryParam("q"), c.QueryParam("status"))

	resp := echo.Map{"sites": sites}
	return c.JSON(http.StatusOK, &resp)
}

func (h *DefaultSiteRoute) GetSite(c echo.Context) error {
	details, apierr := h.SiteService.GetSiteDetails(c.Param("id"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, details)
}

func (h *DefaultSiteRoute) CreateSite(c echo.Context) error {
	var req contract.CreateSiteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	site, apierr := h.SiteService.CreateSite(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, site)
}
