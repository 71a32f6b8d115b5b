// Package clipboard puts text on the system clipboard.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"

	kerrors "github.com/PolarWolf314/kauri/internal/errors"
)

// Copier places text on a clipboard.
type Copier interface {
	Copy(text string) error
}

// System copies to the OS clipboard through xclip, xsel, wl-copy,
// pbcopy or the Windows API, whichever atotto/clipboard finds.
type System struct{}

func (System) Copy(text string) error {
	if clipboard.Unsupported {
		return kerrors.ErrClipboardUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %v", kerrors.ErrClipboardUnavailable, err)
	}
	return nil
}

// Memory records copied text. Used in tests and when no clipboard is wanted.
type Memory struct {
	Text   string
	Copies int
}

func (m *Memory) Copy(text string) error {
	m.Text = text
	m.Copies++
	return nil
}
