package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/pawhub/pet-care-backend/internal/changefeed"
)

// notifyChannel is the Postgres NOTIFY channel the notify_table_change
// trigger (see migrations) publishes to.
const notifyChannel = "table_changes"

// Listener bridges Postgres LISTEN/NOTIFY into the in-process change-feed
// hub. All row changes flow through the database triggers, so changes made
// by other instances or directly in the store propagate the same way as
// local writes.
type Listener struct {
	pool *pgxpool.Pool
	hub  *changefeed.Hub
	log  *zap.Logger
}

// NewListener creates a Listener publishing into the given hub.
func NewListener(pool *pgxpool.Pool, hub *changefeed.Hub, log *zap.Logger) *Listener {
	return &Listener{
		pool: pool,
		hub:  hub,
		log:  log,
	}
}

// Run blocks on a dedicated connection waiting for notifications until the
// context is cancelled. Intended to be started in its own goroutine.
func (l *Listener) Run(ctx context.Context) error {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire listen connection: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+notifyChannel); err != nil {
		return fmt.Errorf("failed to listen on %s: %w", notifyChannel, err)
	}

	l.log.Info("change-feed listener started", zap.String("channel", notifyChannel))

	for {
		notification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("wait for notification failed: %w", err)
		}

		var ev changefeed.Event
		if err := json.Unmarshal([]byte(notification.Payload), &ev); err != nil {
			l.log.Warn("dropping malformed change notification",
				zap.String("payload", notification.Payload), zap.Error(err))
			continue
		}

		l.hub.Publish(ev)
	}
}
