package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"nscript.dev/pkg/diag"
	"nscript.dev/pkg/eval"
	"nscript.dev/pkg/parse"
	"nscript.dev/pkg/sys"
)

// interact runs an interactive console session: read a line, evaluate it,
// print the resulting value or show the error, until end of input.
func interact(fds [3]*os.File, ev *eval.Evaler, cfg *Config) error {
	in := bufio.NewReader(fds[0])
	tty := sys.IsATTY(fds[0])

	cmdNum := 0
	for {
		if tty {
			fmt.Fprint(fds[1], cfg.Prompt)
		}

		line, err := in.ReadString('\n')
		if line == "" && err != nil {
			if err != io.EOF {
				fmt.Fprintln(fds[2], "cannot read input:", err)
			}
			if tty {
				fmt.Fprintln(fds[1])
			}
			return nil
		}
		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}

		cmdNum++
		src := parse.Source{Name: fmt.Sprintf("[tty %d]", cmdNum), Code: line}
		val, evalErr := ev.Eval(src)
		if evalErr != nil {
			diag.ShowError(fds[2], evalErr)
		} else if val.Kind != parse.None {
			fmt.Fprintln(fds[1], cfg.ValuePrefix+val.String())
		}

		// A read error with a partial last line is reported after that line
		// has been evaluated.
		if err != nil {
			return nil
		}
	}
}
