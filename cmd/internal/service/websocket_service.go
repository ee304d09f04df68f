package service

import (
	"context"
	"errors"

	"conesites/cmd/internal/contract"
	"conesites/cmd/internal/domain/entity"
	"conesites/cmd/internal/domain/events"
	"conesites/cmd/internal/infrastructure/aws/websocket"
	"conesites/cmd/internal/utils"
	"conesites/cmd/internal/utils/apierror"

	"github.com/labstack/gommon/log"
)

type ConnectionRepository interface {
	Save(conn *entity.Connection) error
	Delete(connID string) error
	FindAll() ([]string, error)
	FindStale(now int64, hbLimit int64) ([]*entity.Connection, error)
	UpdateHeartbeat(connID string, now int64) (bool, error)
}

type WebSocketService struct {
	ConnRepo ConnectionRepository

	// Gateway is nil when no websocket endpoint is configured; events are
	// then dropped.
	Gateway websocket.GatewayClient
}

func NewWebSocketService(repo ConnectionRepository, gateway websocket.GatewayClient) *WebSocketService {
	return &WebSocketService{
		ConnRepo: repo,
		Gateway:  gateway,
	}
}

func (s *WebSocketService) RegisterConnection(connectionID string) apierror.ErrorResponse {
	now := utils.NowUTC()
	conn := &entity.Connection{
		ConnectionID:    connectionID,
		LastHeartbeatAt: now, // Avoid the cleaner dropping it right away
		CreatedAt:       now,
	}

	if err := s.ConnRepo.Save(conn); err != nil {
		log.Errorf("failed to save connection: %v", err)
		return apierror.InternalServerError
	}
	return nil
}

func (s *WebSocketService) Heartbeat(connectionID string) (*contract.HeartbeatResponse, apierror.ErrorResponse) {
	now := utils.NowUTC()
	ok, err := s.ConnRepo.UpdateHeartbeat(connectionID, now)
	if err != nil {
		log.Errorf("failed to update heartbeat: %v", err)
		return nil, apierror.InternalServerError
	}

	if !ok {
		return nil, apierror.NotFoundError
	}

	if s.Gateway != nil {
		go func(conn string) {
			err := s.Gateway.PostToConnection(context.Background(), conn, events.NewAck())
			if err != nil {
				log.Errorf("failed to post ack to conn %s: %v", conn, err)
			}
		}(connectionID)
	}

	return &contract.HeartbeatResponse{
		ConnectionID:  connectionID,
		NextHeartbeat: entity.HeartbeatPeriodMillis,
		LastHeartbeat: utils.FormatEpoch(now),
	}, nil
}

func (s *WebSocketService) RemoveConnection(connectionID string) {
	// Not the client's fault if this fails
	if err := s.ConnRepo.Delete(connectionID); err != nil {
		log.Errorf("failed to remove connection %s: %v", connectionID, err)
	}
}

// Publish broadcasts evt in the background.
func (s *WebSocketService) Publish(evt events.SocketEvent) {
	if s.Gateway == nil {
		return
	}
	go s.Broadcast(context.Background(), evt)
}

// Broadcast sends an event to every registered connection. Connections the
// gateway reports as gone are unregistered.
func (s *WebSocketService) Broadcast(ctx context.Context, evt events.SocketEvent) {
	if s.Gateway == nil {
		return
	}

	conns, err := s.ConnRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch all connections for broadcast: %v", err)
		return
	}

	for _, connID := range conns {
		// One stale connection must not block the others
		err := s.Gateway.PostToConnection(ctx, connID, evt)
		if errors.Is(err, websocket.ErrGone) {
			s.RemoveConnection(connID)
			continue
		}
		if err != nil {
			log.Warnf("failed to push %s to connection %s: %v", evt.GetType(), connID, err)
		}
	}
}

// ExpireStale drops every connection that missed its heartbeat window and
// returns how many were dropped.
func (s *WebSocketService) ExpireStale(ctx context.Context, now int64) (int, error) {
	limit := entity.HeartbeatPeriodMillis + entity.HeartbeatToleranceMillis
	conns, err := s.ConnRepo.FindStale(now, limit)
	if err != nil {
		return 0, err
	}

	for _, conn := range conns {
		if s.Gateway != nil {
			// Tell the client not to reconnect, then close it on the AWS side
			_ = s.Gateway.PostToConnection(ctx, conn.ConnectionID, events.NewSessionExpired())
			_ = s.Gateway.DeleteConnection(ctx, conn.ConnectionID)
		}
		s.RemoveConnection(conn.ConnectionID)
	}
	return len(conns), nil
}
