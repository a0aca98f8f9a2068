// Package clipboard writes plain-text summaries to the system clipboard and
// tracks the short-lived "copied" indicator shown after a copy.
package clipboard

import (
	"errors"
	"sync"
	"time"

	"psiquitools/internal/logging"

	atotto "github.com/atotto/clipboard"
	"go.uber.org/zap"
)

// DefaultResetAfter is how long the copied indicator stays on.
const DefaultResetAfter = 2 * time.Second

// ErrUnavailable is returned when no clipboard utility can be used.
var ErrUnavailable = errors.New("system clipboard unavailable")

// Writer accepts clipboard text.
type Writer interface {
	WriteAll(text string) error
}

// WriterFunc adapts a function to Writer.
type WriterFunc func(text string) error

func (f WriterFunc) WriteAll(text string) error { return f(text) }

type system struct{}

func (system) WriteAll(text string) error {
	if atotto.Unsupported {
		return ErrUnavailable
	}
	return atotto.WriteAll(text)
}

// System returns the host clipboard.
func System() Writer { return system{} }

// Discard accepts and drops every write.
var Discard Writer = WriterFunc(func(string) error { return nil })

// Recorder keeps every write in memory. Safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	writes []string
}

func (r *Recorder) WriteAll(text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes = append(r.writes, text)
	return nil
}

// Last returns the most recent write, or "".
func (r *Recorder) Last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.writes) == 0 {
		return ""
	}
	return r.writes[len(r.writes)-1]
}

// Len is the number of writes seen.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.writes)
}

// Write sends text to w. Failures are logged and otherwise ignored; the
// return value only reports whether the write went through.
func Write(w Writer, text string) bool {
	if w == nil {
		return false
	}
	if err := w.WriteAll(text); err != nil {
		logging.Get(logging.CategoryClipboard).Debug("clipboard write failed", zap.Error(err))
		return false
	}
	logging.Get(logging.CategoryClipboard).Debug("clipboard write", zap.Int("bytes", len(text)))
	return true
}
