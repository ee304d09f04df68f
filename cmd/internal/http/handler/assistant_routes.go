package handler

import (
	"context"
	"net/http"

	"conesites/cmd/internal/contract"
	"conesites/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type AssistantService interface {
	GenerateClause(ctx context.Context, siteID string, req *contract.ClauseRequest) (*contract.AIResponse, apierror.ErrorResponse)
	AnalyzeRisks(ctx context.Context, siteID string) (*contract.AIResponse, apierror.ErrorResponse)
	Chat(ctx context.Context, req *contract.ChatRequest) (*contract.AIResponse, apierror.ErrorResponse)
}

// DefaultAssistantRoute always answers 200 once the request is accepted.
// Generation failures are reported through the "status" field of the body.
type DefaultAssistantRoute struct {
	AssistantService AssistantService
}

func NewAssistantDefault(assistantService AssistantService) *DefaultAssistantRoute {
	return &DefaultAssistantRoute{AssistantService: assistantService}
}

func (h *DefaultAssistantRoute) GenerateClause(c echo.Context) error {
	var req contract.ClauseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := h.AssistantService.GenerateClause(c.Request().Context(), c.Param("id"), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *DefaultAssistantRoute) AnalyzeRisks(c echo.Context) error {
	resp, apierr := h.AssistantService.AnalyzeRisks(c.Request().Context(), c.Param("id"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *DefaultAssistantRoute) Chat(c echo.Context) error {
	var req contract.ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := h.AssistantService.Chat(c.Request().Context(), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}
