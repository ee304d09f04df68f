package contract

type EventType string

const (
	EventAck            EventType = "ACK"
	EventSessionExpired EventType = "SESSION_EXPIRED"
	EventEntityCreated  EventType = "ENTITY_CREATED"
)

type EntityKind string

const (
	EntityClient       EntityKind = "client"
	EntityProject      EntityKind = "project"
	EntityCollaborator EntityKind = "collaborator"
	EntitySite         EntityKind = "site"
	EntityCandidate    EntityKind = "candidate"
)

type HeartbeatResponse struct {
	ConnectionID  string `json:"connection_id"`
	NextHeartbeat int64  `json:"next_heartbeat_ms"`
	LastHeartbeat string `json:"last_heartbeat_at"`
}
