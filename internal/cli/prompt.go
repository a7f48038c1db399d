package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	hcerrors "github.com/chazuruo/histclean/internal/errors"
)

// confirmFunc asks a yes/no question.
type confirmFunc func(title string) (bool, error)

// terminalConfirm returns a confirmFunc that prompts with huh when in is a
// terminal. On any other input it refuses, so scripted runs must pass --yes.
func terminalConfirm(in io.Reader) confirmFunc {
	return func(title string) (bool, error) {
		f, ok := in.(*os.File)
		if !ok || !term.IsTerminal(int(f.Fd())) {
			return false, fmt.Errorf("confirmation needs a terminal, pass --yes to promote non-interactively: %w", hcerrors.ErrCanceled)
		}

		var confirmed bool
		if err := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(title).
					Description("The current history is kept as a .bak file.").
					Affirmative("Replace").
					Negative("Keep").
					Value(&confirmed),
			),
		).WithInput(f).Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return false, hcerrors.ErrCanceled
			}
			return false, fmt.Errorf("form error: %w", err)
		}
		return confirmed, nil
	}
}
