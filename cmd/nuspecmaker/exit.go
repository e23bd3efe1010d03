package nuspecmaker

import (
	"fmt"
	"io"

	"github.com/arthur-debert/nuspecmaker/pkg/errors"
	"github.com/arthur-debert/nuspecmaker/pkg/style"
	"github.com/arthur-debert/nuspecmaker/pkg/ui"
	"github.com/spf13/cobra"
)

// reportedError wraps an error that has already been shown to the user
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// reported renders err and marks it as shown
func reported(r ui.Renderer, err error) error {
	if rerr := r.RenderError(err); rerr != nil {
		return err
	}
	return &reportedError{err: err}
}

// GenCompletion writes the completion script for shell
func GenCompletion(rootCmd *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case "bash":
		return rootCmd.GenBashCompletionV2(w, true)
	case "zsh":
		return rootCmd.GenZshCompletion(w)
	case "fish":
		return rootCmd.GenFishCompletion(w, true)
	case "powershell":
		return rootCmd.GenPowerShellCompletionWithDesc(w)
	default:
		return errors.Newf(errors.ErrInvalidInput, "unknown shell %q, expected bash, zsh, fish or powershell", shell)
	}
}

// HandleError prints err unless a command already rendered it and returns
// the process exit status
func HandleError(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	var rerr *reportedError
	if errors.As(err, &rerr) {
		return 1
	}
	fmt.Fprintln(w, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
	fmt.Fprintln(w, style.MutedStyle.Render(MsgUsageHint))
	return 1
}
