// Package clipboard is the text channel loadouts are exported to and imported
// from
package clipboard

//go:generate mockgen -destination=mock/mock_client.go -package=clipboardmock github.com/KirkDiggler/prayer-loadouts/internal/clients/clipboard Client

import (
	"context"
	"log/slog"
	"sync"

	sysclipboard "github.com/atotto/clipboard"

	"github.com/KirkDiggler/prayer-loadouts/internal/errors"
)

// Client reads and writes a single text blob
type Client interface {
	// ReadText returns the current contents
	// Returns errors.NotFound when the clipboard is empty
	ReadText(ctx context.Context) (string, error)

	// WriteText replaces the contents
	WriteText(ctx context.Context, text string) error
}

// Config contains configuration options for the clipboard client
type Config struct {
	// Memory selects an in-process buffer instead of the system clipboard
	Memory bool
}

// New creates a clipboard client. The system clipboard needs xclip, xsel or
// wl-clipboard on Linux; Unavailable is returned when none is installed.
func New(cfg *Config) (Client, error) {
	if cfg != nil && cfg.Memory {
		return NewBuffer(""), nil
	}
	if sysclipboard.Unsupported {
		return nil, errors.Unavailable("system clipboard is not supported on this platform")
	}
	return &system{}, nil
}

type system struct{}

func (c *system) ReadText(ctx context.Context) (string, error) {
	text, err := sysclipboard.ReadAll()
	if err != nil {
		slog.DebugContext(ctx, "clipboard read failed", "error", err)
		return "", errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read clipboard")
	}
	if text == "" {
		return "", errors.NotFound("clipboard is empty")
	}
	return text, nil
}

func (c *system) WriteText(_ context.Context, text string) error {
	if err := sysclipboard.WriteAll(text); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to write clipboard")
	}
	return nil
}

// Buffer is an in-memory Client
type Buffer struct {
	mu   sync.Mutex
	text string
}

// Ensure Buffer implements Client
var _ Client = (*Buffer)(nil)

// NewBuffer creates a Buffer holding text
func NewBuffer(text string) *Buffer {
	return &Buffer{text: text}
}

func (b *Buffer) ReadText(_ context.Context) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.text == "" {
		return "", errors.NotFound("clipboard is empty")
	}
	return b.text, nil
}

func (b *Buffer) WriteText(_ context.Context, text string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.text = text
	return nil
}
