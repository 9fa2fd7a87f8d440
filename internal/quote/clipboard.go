package quote

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/atotto/clipboard"

	"github.com/christopherklint97/freelancecalc/internal/currency"
)

// Clipboard is the system clipboard, or a fake in tests.
type Clipboard interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// SystemClipboard writes through the OS clipboard utilities.
func SystemClipboard() Clipboard {
	return systemClipboard{}
}

// Copier puts the text form of a snapshot on the clipboard.
type Copier struct {
	clipboard Clipboard
	formatter *currency.Formatter
	logger    *slog.Logger
}

func NewCopier(cb Clipboard, f *currency.Formatter, logger *slog.Logger) *Copier {
	if cb == nil {
		cb = SystemClipboard()
	}
	if f == nil {
		f = currency.Default()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Copier{clipboard: cb, formatter: f, logger: logger}
}

// Copy writes the quote text and returns it. A failure is logged and
// returned; it never touches the snapshot.
func (c *Copier) Copy(s Snapshot) (string, error) {
	text := Text(s, c.formatter)
	if err := c.clipboard.WriteAll(text); err != nil {
		c.logger.Warn("failed to copy quote", "error", err)
		return text, fmt.Errorf("copying quote to clipboard: %w", err)
	}
	c.logger.Debug("copied quote", "bytes", len(text), "total", s.TotalPrice())
	return text, nil
}
