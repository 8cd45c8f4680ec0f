package goAuthClient

import (
	"context"
	"encoding/json"
	"io"
	"sync"
	"time"
)

// NoticeLevel classifies a user-facing notice.
type NoticeLevel uint8

const (
	// NoticeSuccess is an exported constant or variable used by the authentication client.
	NoticeSuccess NoticeLevel = iota
	// NoticeError is an exported constant or variable used by the authentication client.
	NoticeError
)

func (l NoticeLevel) String() string {
	if l == NoticeError {
		return "error"
	}
	return "success"
}

// MarshalText implements encoding.TextMarshaler.
func (l NoticeLevel) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// Notice is one transient user-facing notification (the toast collaborator).
// Display is the sink's job; the client only emits.
type Notice struct {
	ID        string      `json:"id"`
	Timestamp time.Time   `json:"timestamp"`
	Level     NoticeLevel `json:"level"`
	Message   string      `json:"message"`
}

type NoticeSink interface {
	Emit(ctx context.Context, notice Notice)
}

type NoOpSink struct{}

func (NoOpSink) Emit(context.Context, Notice) {}

type ChannelSink struct {
	notices chan Notice
}

func NewChannelSink(buffer int) *ChannelSink {
	if buffer <= 0 {
		buffer = 1
	}
	return &ChannelSink{
		notices: make(chan Notice, buffer),
	}
}

func (s *ChannelSink) Emit(ctx context.Context, notice Notice) {
	select {
	case s.notices <- notice:
	case <-ctx.Done():
	}
}

func (s *ChannelSink) Notices() <-chan Notice {
	return s.notices
}

type JSONWriterSink struct {
	writer io.Writer
	mu     sync.Mutex
}

func NewJSONWriterSink(w io.Writer) *JSONWriterSink {
	return &JSONWriterSink{
		writer: w,
	}
}

func (s *JSONWriterSink) Emit(ctx context.Context, notice Notice) {
	if s == nil || s.writer == nil {
		return
	}
	data, err := json.Marshal(notice)
	if err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = s.writer.Write(data)
	_, _ = s.writer.Write([]byte("\n"))
}
