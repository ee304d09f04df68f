package entity

// Clients are told to beat every HeartbeatPeriodMillis. A connection is
// stale once it misses that window by more than the tolerance.
const (
	HeartbeatPeriodMillis    = int64(60 * 1000)
	HeartbeatToleranceMillis = int64(10 * 1000)
)

// Connection is a dashboard websocket registered through the API Gateway.
// It receives a push every time the store gains an entity.
type Connection struct {
	ConnectionID    string `gorm:"primaryKey;autoIncrement:false"`
	LastHeartbeatAt int64  `gorm:"not null;index"`
	CreatedAt       int64  `gorm:"not null"`
}
