package events

import "conesites/cmd/internal/contract"

// SocketEvent is anything pushed to dashboard connections. Events carry
// their own type field so they serialize flat.
type SocketEvent interface {
	GetType() contract.EventType
}

type Ack struct {
	Type contract.EventType `json:"type"`
}

func NewAck() *Ack {
	return &Ack{Type: contract.EventAck}
}

func (e *Ack) GetType() contract.EventType {
	return contract.EventAck
}

// SessionExpired is sent right before a stale connection is dropped.
type SessionExpired struct {
	Type contract.EventType `json:"type"`
}

func NewSessionExpired() *SessionExpired {
	return &SessionExpired{Type: contract.EventSessionExpired}
}

func (e *SessionExpired) GetType() contract.EventType {
	return contract.EventSessionExpired
}

// EntityCreated tells dashboards that the store gained an entity.
type EntityCreated struct {
	Type   contract.EventType  `json:"type"`
	Entity contract.EntityKind `json:"entity"`
	ID     string              `json:"id"`
}

func NewEntityCreated(entity contract.EntityKind, id string) *EntityCreated {
	return &EntityCreated{
		Type:   contract.EventEntityCreated,
		Entity: entity,
		ID:     id,
	}
}

func (e *EntityCreated) GetType() contract.EventType {
	return contract.EventEntityCreated
}
