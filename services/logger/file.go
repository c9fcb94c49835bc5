package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// OpenDailyFile opens dir/app-YYYY-MM-DD.log for appending, creating dir if needed
func OpenDailyFile(dir string, day time.Time) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	name := filepath.Join(dir, fmt.Sprintf("app-%s.log", day.Format("2006-01-02")))
	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
