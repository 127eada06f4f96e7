package streaming

import (
	"context"
	"time"

	"gorm.io/gorm"
)

const defaultPingTimeout = 2 * time.Second

// DBAvailability answers IsAvailable by pinging the backing database with a
// short timeout.
type DBAvailability struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewDBAvailability(db *gorm.DB, timeout time.Duration) *DBAvailability {
	if timeout <= 0 {
		timeout = defaultPingTimeout
	}
	return &DBAvailability{db: db, timeout: timeout}
}

func (a *DBAvailability) IsAvailable() bool {
	sqlDB, err := a.db.DB()
	if err != nil {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
	defer cancel()
	return sqlDB.PingContext(ctx) == nil
}
