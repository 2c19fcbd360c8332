package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/bethropolis/tidepad/internal/logger"
)

// Provider stores the clipboard content.
type Provider interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// Register is an in-process clipboard.
type Register struct {
	content string
}

func (r *Register) ReadAll() (string, error) { return r.content, nil }

func (r *Register) WriteAll(text string) error {
	r.content = text
	return nil
}

// System uses the platform clipboard.
type System struct{}

func (System) ReadAll() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("read system clipboard: %w", err)
	}
	return text, nil
}

func (System) WriteAll(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write system clipboard: %w", err)
	}
	return nil
}

// NewProvider picks the system clipboard when requested and available,
// otherwise an internal register.
func NewProvider(useSystem bool) Provider {
	if useSystem && !clipboard.Unsupported {
		return System{}
	}
	if useSystem {
		logger.Warnf("Clipboard: system clipboard unsupported here, using internal register")
	}
	return &Register{}
}
