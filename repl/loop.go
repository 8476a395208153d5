// SPDX-License-Identifier: MIT

package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// Run reads commands from in until an empty line, EOF or ctx cancellation.
// Results go to out; failed commands are reported on errOut and the loop
// carries on.
func (s *Session) Run(ctx context.Context, in io.Reader, out, errOut io.Writer) error {
	sc := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(out, s.styles.render(s.styles.Prompt, s.cfg.Prompt))
		if !sc.Scan() {
			return sc.Err()
		}

		line := strings.TrimSpace(sc.Text())
		if line == "" {
			return nil
		}
		res, err := s.Eval(line)
		if err != nil {
			fmt.Fprintln(errOut, s.styles.render(s.styles.Error, "error: "+err.Error()))
			continue
		}
		if line == "help" {
			fmt.Fprintln(out, s.styles.render(s.styles.Info, res))
			continue
		}
		fmt.Fprintln(out, s.styles.render(s.styles.Result, res))
	}
}
