package handler

import (
	"net/http"

	"conesites/cmd/internal/contract"
	"conesites/cmd/internal/infrastructure/aws/websocket"
	"conesites/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type WebSocketService interface {
	RegisterConnection(connectionID string) apierror.ErrorResponse
	Heartbeat(connectionID string) (*contract.HeartbeatResponse, apierror.ErrorResponse)
	RemoveConnection(connectionID string)
}

// DefaultWSRoute serves the API Gateway WebSocket integration routes.
// The gateway forwards the connection id in the X-Connection-Id header.
type DefaultWSRoute struct {
	WSService WebSocketService
}

func NewWSDefault(wsService WebSocketService) *DefaultWSRoute {
	return &DefaultWSRoute{WSService: wsService}
}

func (h *DefaultWSRoute) HandleConnect(c echo.Context) error {
	connID := c.Request().Header.Get(websocket.HeaderConnectionID)
	if connID == "" {
		return c.JSON(http.StatusBadRequest, apierror.MissingConnectionIDError)
	}

	if apierr := h.WSService.RegisterConnection(connID); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}

func (h *DefaultWSRoute) HandleHeartbeat(c echo.Context) error {
	connID := c.Request().Header.Get(websocket.HeaderConnectionID)
	if connID == "" {
		return c.JSON(http.StatusBadRequest, apierror.MissingConnectionIDError)
	}

	resp, apierr := h.WSService.Heartbeat(connID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *DefaultWSRoute) HandleDisconnect(c echo.Context) error {
	connID := c.Request().Header.Get(websocket.HeaderConnectionID)
	if connID != "" {
		h.WSService.RemoveConnection(connID)
	}
	return c.NoContent(http.StatusOK)
}
