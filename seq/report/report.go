// Package report is the swappable sink through which seqkit routes error
// conditions and growth events before returning them to the caller.
//
// The sink discards everything by default. Swap it with Set, or call Init to
// write JSON lines to a dated file.
package report

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joshuapare/seqkit/pkg/types"
)

// L receives every report. It discards until Set or Init replaces it.
var L = discard()

const (
	logPrefix        = "seqkit-"
	logSuffix        = ".log"
	dayLayout        = "2006-01-02"
	defaultRetention = 30 * 24 * time.Hour
)

// Options configures file logging.
type Options struct {
	Enabled   bool          // false discards everything
	LogDir    string        // Default: ~/.seqkit/logs
	Level     slog.Level    // Default: LevelInfo
	Retention time.Duration // Older dated files are deleted on Init. Default: 30 days
}

// Set replaces the sink. A nil logger restores the discard sink.
// It returns the previous logger so tests can restore it.
func Set(l *slog.Logger) *slog.Logger {
	prev := L
	if l == nil {
		l = discard()
	}
	L = l
	return prev
}

// Init points L at a JSON file named after today's date inside opts.LogDir
// and prunes files past the retention window. A nil or disabled opts resets
// L to discard. The returned closer is never nil.
func Init(opts *Options) (io.Closer, error) {
	if opts == nil || !opts.Enabled {
		L = discard()
		return nopCloser{}, nil
	}

	dir, err := logDir(opts.LogDir)
	if err != nil {
		return nopCloser{}, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nopCloser{}, err
	}

	retention := opts.Retention
	if retention <= 0 {
		retention = defaultRetention
	}
	now := time.Now()
	prune(dir, now.Add(-retention))

	f, err := os.OpenFile(filepath.Join(dir, logName(now)), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nopCloser{}, err
	}

	level := opts.Level
	if level == 0 {
		level = slog.LevelInfo
	}
	L = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	return f, nil
}

// Failure reports err for operation op. The error kind is attached when err
// carries one. It returns err unchanged so call sites can write
//
//	return report.Failure("seq.Reserve", err, "n", n)
func Failure(op string, err error, args ...any) error {
	if err == nil {
		return nil
	}
	attrs := make([]any, 0, len(args)+6)
	attrs = append(attrs, "op", op)
	if k, ok := types.KindOf(err); ok {
		attrs = append(attrs, "kind", k.String())
	}
	attrs = append(attrs, "err", err.Error())
	attrs = append(attrs, args...)
	L.Error("operation failed", attrs...)
	return err
}

// Grow records a reallocation from oldCap to newCap slots.
func Grow(op string, oldCap, newCap, size int) {
	L.Debug("reallocate", "op", op, "old_cap", oldCap, "new_cap", newCap, "size", size)
}

func logDir(dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".seqkit", "logs"), nil
}

func logName(day time.Time) string {
	return logPrefix + day.Format(dayLayout) + logSuffix
}

// logDay extracts the date from a name produced by logName.
func logDay(name string) (time.Time, bool) {
	rest, ok := strings.CutPrefix(name, logPrefix)
	if !ok {
		return time.Time{}, false
	}
	rest, ok = strings.CutSuffix(rest, logSuffix)
	if !ok {
		return time.Time{}, false
	}
	day, err := time.Parse(dayLayout, rest)
	return day, err == nil
}

// prune deletes dated log files from before cutoff. Errors are ignored.
func prune(dir string, cutoff time.Time) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, e := range entries {
		if day, ok := logDay(e.Name()); ok && day.Before(cutoff) {
			_ = os.Remove(filepath.Join(dir, e.Name()))
		}
	}
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
