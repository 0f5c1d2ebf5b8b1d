package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// StartCleanup runs a daily goroutine that deletes error log files older than
// 30 days.
func StartCleanup(dir string, done chan struct{}) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				cutoff := time.Now().AddDate(0, 0, -30)
				removed := 0
				entries, err := os.ReadDir(dir)
				if err != nil {
					continue
				}
				for _, e := range entries {
					if e.IsDir() || filepath.Ext(e.Name()) != ".log" {
						continue
					}
					info, err := e.Info()
					if err != nil || !info.ModTime().Before(cutoff) {
						continue
					}
					if err := os.Remove(filepath.Join(dir, e.Name())); err != nil {
						slog.Error("log cleanup failed", "file", e.Name(), "error", err)
						continue
					}
					removed++
				}
				if removed > 0 {
					slog.Info("log cleanup completed", "deleted", removed)
				}
			case <-done:
				return
			}
		}
	}()
}
