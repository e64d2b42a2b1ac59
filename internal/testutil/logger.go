package testutil

import (
	"bytes"
	"log/slog"
	"sync"
)

// syncBuffer guards the log buffer; services log from poller and chat goroutines.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

// LogBuffer exposes the captured log output.
type LogBuffer struct {
	sb *syncBuffer
}

// String returns everything logged so far.
func (l *LogBuffer) String() string {
	l.sb.mu.Lock()
	defer l.sb.mu.Unlock()
	return l.sb.buf.String()
}

// Len reports the number of bytes logged so far.
func (l *LogBuffer) Len() int {
	l.sb.mu.Lock()
	defer l.sb.mu.Unlock()
	return l.sb.buf.Len()
}

// NewBufferLogger returns an info-level text logger and the buffer it writes to.
func NewBufferLogger() (*slog.Logger, *LogBuffer) {
	return NewLevelBufferLogger(slog.LevelInfo)
}

// NewLevelBufferLogger is NewBufferLogger with an explicit minimum level.
func NewLevelBufferLogger(level slog.Leveler) (*slog.Logger, *LogBuffer) {
	sb := &syncBuffer{}
	logger := slog.New(slog.NewTextHandler(sb, &slog.HandlerOptions{Level: level}))
	return logger, &LogBuffer{sb: sb}
}
