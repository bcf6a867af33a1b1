package conn

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirmer gates destructive actions. A false answer means nothing may change.
type Confirmer interface {
	Confirm(action string) bool
}

type ConfirmFunc func(action string) bool

func (f ConfirmFunc) Confirm(action string) bool { return f(action) }

type AlwaysConfirm struct{}

func (AlwaysConfirm) Confirm(string) bool { return true }

// PromptConfirmer asks on Out and reads the answer from In. Only "y" confirms.
type PromptConfirmer struct {
	In  *bufio.Reader
	Out io.Writer
}

func (p *PromptConfirmer) Confirm(action string) bool {
	fmt.Fprintf(p.Out, "Are you sure you want to perform \"%s\"? [y/n]: ", action)
	answer, err := p.In.ReadString('\n')
	if err != nil && len(answer) == 0 {
		fmt.Fprintln(p.Out)
		return false
	}
	return strings.ToLower(strings.TrimSpace(answer)) == "y"
}
