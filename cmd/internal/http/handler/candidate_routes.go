package handler

import (
	"net/http"

	"conesites/cmd/internal/contract"
	"conesites/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type CandidateService interface {
	GetCandidates(siteID string) []*contract.CandidateResponse
	GetCandidate(id string) (*contract.CandidateResponse, apierror.ErrorResponse)
	CreateCandidate(req *contract.CreateCandidateRequest) (*contract.CandidateResponse, apierror.ErrorResponse)
}

type DefaultCandidateRoute struct {
	CandidateService CandidateService
}

func NewCandidateDefault(candidateService CandidateService) *DefaultCandidateRoute {
	return &DefaultCandidateRoute{CandidateService: candidateService}
}

func (h *DefaultCandidateRoute) GetCandidates(c echo.Context) error {
	resp := echo.Map{"candidates": h.CandidateService.GetCandidates(c.QueryParam("site_id"))}
	return c.JSON(http.StatusOK, &resp)
}

func (h *DefaultCandidateRoute) GetCandidate(c echo.Context) error {
	cand, apierr := h.CandidateService.GetCandidate(c.Param("id"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, cand)
}

func (h *DefaultCandidateRoute) CreateCandidate(c echo.Context) error {
	var req contract.CreateCandidateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	cand, apierr := h.CandidateService.CreateCandidate(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, cand)
}
