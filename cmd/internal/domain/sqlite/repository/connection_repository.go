package repository

import (
	"conesites/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultConnectionRepository struct {
	db *gorm.DB
}

func NewConnectionRepository(db *gorm.DB) *DefaultConnectionRepository {
	return &DefaultConnectionRepository{db: db}
}

func (c *DefaultConnectionRepository) Save(conn *entity.Connection) error {
	return c.db.Save(conn).Error
}

func (c *DefaultConnectionRepository) Delete(connID string) error {
	return c.db.Delete(&entity.Connection{}, "connection_id = ?", connID).Error
}

func (c *DefaultConnectionRepository) FindAll() ([]string, error) {
	var ids []string
	result := c.db.Model(&entity.Connection{}).
		Order("created_at").
		Pluck("connection_id", &ids)
	return ids, result.Error
}

// UpdateHeartbeat reports whether the connection is registered.
func (c *DefaultConnectionRepository) UpdateHeartbeat(connID string, now int64) (bool, error) {
	result := c.db.Model(&entity.Connection{}).
		Where("connection_id = ?", connID).
		Update("last_heartbeat_at", now)
	return result.RowsAffected > 0, result.Error
}

// FindStale returns the connections whose last heartbeat is older than
// now - hbLimit.
func (c *DefaultConnectionRepository) FindStale(now int64, hbLimit int64) ([]*entity.Connection, error) {
	var conns []*entity.Connection
	err := c.db.
		Where("last_heartbeat_at < ?", now-hbLimit).
		Find(&conns).Error
	return conns, err
}
