package terminal

import (
	"errors"
	"fmt"
	"os"

	"github.com/bnema/snowmap/internal/ports"
	"github.com/charmbracelet/x/term"
)

var ErrNotTerminal = errors.New("not a terminal")

// WidthProvider reports the column count of the terminal attached to a file.
type WidthProvider struct {
	file *os.File
}

var _ ports.WidthProvider = (*WidthProvider)(nil)

func NewWidthProvider(file *os.File) *WidthProvider {
	return &WidthProvider{file: file}
}

func (p *WidthProvider) Width() (int, error) {
	if p.file == nil {
		return 0, ErrNotTerminal
	}

	fd := p.file.Fd()
	if !term.IsTerminal(fd) {
		return 0, fmt.Errorf("%s: %w", p.file.Name(), ErrNotTerminal)
	}

	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0, fmt.Errorf("get terminal size: %w", err)
	}

	return width, nil
}
