package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const backupPrefix = "orbit-"

// BackupOrbit writes a consistent snapshot of the back-office store into dir
// and returns the file it created.
func BackupOrbit(ctx context.Context, db *gorm.DB, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	dest := filepath.Join(dir, backupPrefix+time.Now().Format("2006-01-02_15-04-05")+".sqlite")
	if err := db.WithContext(ctx).Exec("VACUUM INTO ?", dest).Error; err != nil {
		return "", fmt.Errorf("failed to back up orbit database: %w", err)
	}
	return dest, nil
}

// CleanupOldBackups removes snapshots older than retention and returns how
// many were deleted.
func CleanupOldBackups(dir string, retention time.Duration) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read backup directory: %w", err)
	}

	cutoff := time.Now().Add(-retention)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), backupPrefix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
				return removed, fmt.Errorf("failed to remove old backup %s: %w", entry.Name(), err)
			}
			removed++
		}
	}
	return removed, nil
}

// nextRun returns the next time of day at hour:00 after now.
func nextRun(now time.Time, hour int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.Add(24 * time.Hour)
	}
	return next
}

// StartDailyBackup snapshots the store every day at hour and prunes snapshots
// older than retention. It returns when ctx is cancelled.
func StartDailyBackup(ctx context.Context, db *gorm.DB, dir string, retention time.Duration, hour int, log *zap.Logger) {
	runBackups(ctx, db, dir, retention, func(now time.Time) time.Time {
		return nextRun(now, hour)
	}, log)
}

// runBackups backs up and prunes at every time next returns until ctx is
// cancelled.
func runBackups(ctx context.Context, db *gorm.DB, dir string, retention time.Duration, next func(time.Time) time.Time, log *zap.Logger) {
	for {
		at := next(time.Now())
		log.Info("next database backup scheduled", zap.Time("at", at))

		timer := time.NewTimer(time.Until(at))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}

		dest, err := BackupOrbit(ctx, db, dir)
		if err != nil {
			log.Error("database backup failed", zap.Error(err))
		} else {
			log.Info("database backed up", zap.String("path", dest))
		}

		if removed, err := CleanupOldBackups(dir, retention); err != nil {
			log.Warn("backup cleanup failed", zap.Error(err))
		} else if removed > 0 {
			log.Info("old backups removed", zap.Int("count", removed))
		}
	}
}
