package conn

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tobsdb/primdb/internal/parser"
)

const PROMPT = "primdb> "

// Exec parses and runs one line. exit is set when the line asked to leave.
func (s *Session) Exec(line string) (res Response, exit bool) {
	cmd, err := parser.ParseCommand(line)
	if err != nil {
		s.log.Debug("parse failed", "line", line, "err", err)
		return Response{
			Message: fmt.Sprintf("Unknown command %q. Type help for the list of commands.", strings.TrimSpace(line)),
			Status:  http.StatusBadRequest,
		}, false
	}
	return ActionHandler(s, cmd), cmd.Exit
}

// Run reads commands from in until exit, EOF or ctx is done.
// A prompt is written before each read when prompt is set.
func (s *Session) Run(ctx context.Context, in *bufio.Reader, out io.Writer, r Renderer, prompt bool) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if prompt {
			fmt.Fprint(out, PROMPT)
		}

		line, err := in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if len(strings.TrimSpace(line)) > 0 {
			res, exit := s.Exec(line)
			if rerr := r.Render(out, res); rerr != nil {
				return rerr
			}
			if exit {
				return nil
			}
		}
		if errors.Is(err, io.EOF) {
			if prompt {
				fmt.Fprintln(out)
			}
			return nil
		}
	}
}
