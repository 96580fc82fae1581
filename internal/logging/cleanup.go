package logging

import (
	"context"
	"log/slog"
	"time"

	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/models"
	"gorm.io/gorm"
)

// Purger deletes rows that are stale at now and reports how many went.
type Purger func(ctx context.Context, now time.Time) (int64, error)

// PurgeLogs returns a Purger for system_logs older than retentionDays.
func PurgeLogs(db *gorm.DB, retentionDays int) Purger {
	if retentionDays <= 0 {
		retentionDays = 30
	}
	return func(ctx context.Context, now time.Time) (int64, error) {
		cutoff := now.AddDate(0, 0, -retentionDays)
		result := db.WithContext(ctx).Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
		return result.RowsAffected, result.Error
	}
}

// StartCleanup runs every purger once a day until done is closed.
func StartCleanup(done <-chan struct{}, purgers map[string]Purger) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				RunCleanup(context.Background(), time.Now().UTC(), purgers)
			case <-done:
				return
			}
		}
	}()
}

func RunCleanup(ctx context.Context, now time.Time, purgers map[string]Purger) {
	for name, purge := range purgers {
		n, err := purge(ctx, now)
		if err != nil {
			slog.Error("cleanup failed", "action", "cleanup."+name, "error", err)
			continue
		}
		if n > 0 {
			slog.Info("cleanup completed", "target", name, "deleted", n)
		}
	}
}
