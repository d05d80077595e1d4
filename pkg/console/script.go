package console

import (
	"encoding/json"
	"fmt"
	"os"

	"nscript.dev/pkg/diag"
	"nscript.dev/pkg/eval"
	"nscript.dev/pkg/parse"
	"nscript.dev/pkg/prog"
)

// script evaluates a single piece of code in non-interactive mode.
func script(fds [3]*os.File, ev *eval.Evaler, cfg *Config, f *prog.Flags, name, code string) error {
	src := parse.Source{Name: name, Code: code}

	if f.ParseOnly {
		_, err := parse.Parse(src)
		if err != nil {
			if f.JSON {
				fmt.Fprintln(fds[1], errorToJSON(err))
			} else {
				diag.ShowError(fds[2], err)
			}
			return prog.Exit(2)
		}
		return nil
	}

	val, err := ev.Eval(src)
	if err != nil {
		if f.JSON {
			fmt.Fprintln(fds[1], errorToJSON(err))
		} else {
			diag.ShowError(fds[2], err)
		}
		return prog.Exit(2)
	}
	if val.Kind != parse.None {
		fmt.Fprintln(fds[1], cfg.ValuePrefix+val.String())
	}
	return nil
}

type errorInJSON struct {
	FileName string `json:"fileName"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Type     string `json:"type"`
	Message  string `json:"message"`
}

// errorToJSON renders the error in JSON for machine consumption.
func errorToJSON(err error) string {
	var e errorInJSON
	if diagErr, ok := err.(*diag.Error); ok {
		e = errorInJSON{
			FileName: diagErr.Context.Name,
			Start:    diagErr.Context.From,
			End:      diagErr.Context.To,
			Type:     diagErr.Type,
			Message:  diagErr.Message,
		}
	} else {
		e = errorInJSON{Message: err.Error()}
	}
	// Marshaling a struct of strings and ints cannot fail.
	bytes, _ := json.Marshal([]errorInJSON{e})
	return string(bytes)
}
