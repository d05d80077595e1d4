// Package console implements the NScript console host: script execution and
// the interactive read-evaluate-print loop.
package console

import (
	"fmt"
	"os"
	"unicode/utf8"

	"nscript.dev/pkg/eval"
	"nscript.dev/pkg/logutil"
	"nscript.dev/pkg/prog"
	"nscript.dev/pkg/store"
	"nscript.dev/pkg/sys"
)

var logger = logutil.GetLogger("[console] ")

// Program is the console subprogram. It handles all invocations that no
// other subprogram claims, so it should be the last member of the composite
// program.
type Program struct{}

// Run runs the console subprogram.
func (Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	cfg, err := rcConfig(f)
	if err != nil {
		fmt.Fprintln(fds[2], "warning:", err)
	}
	if f.DB != "" {
		cfg.DB = f.DB
	}

	ev := eval.NewEvaler()
	ev.SetOutput(fds[1])

	var st *store.Store
	if cfg.DB != "" {
		st, err = store.NewStore(cfg.DB)
		if err != nil {
			fmt.Fprintln(fds[2], "warning: cannot open variable database:", err)
		} else {
			defer func() {
				saveVars(st, ev)
				st.Close()
			}()
			if err := loadVars(st, ev); err != nil {
				fmt.Fprintln(fds[2], "warning: cannot load variables:", err)
			}
			go func() {
				sig := <-sys.NotifySignals()
				logger.Println("exiting on signal", sig)
				saveVars(st, ev)
				st.Close()
				os.Exit(0)
			}()
		}
	}

	switch {
	case f.CodeInArg:
		if len(args) != 1 {
			return prog.BadUsage("argument to -c must be a single string")
		}
		return script(fds, ev, &cfg, f, "code from -c", args[0])
	case len(args) == 1:
		code, err := readFileUTF8(args[0])
		if err != nil {
			fmt.Fprintln(fds[2], "cannot read script:", err)
			return prog.Exit(2)
		}
		return script(fds, ev, &cfg, f, args[0], code)
	case len(args) > 1:
		return prog.BadUsage("at most one script may be given")
	default:
		return interact(fds, ev, &cfg)
	}
}

// rcConfig loads the configuration from the rc file, honoring the -norc and
// -rc flags.
func rcConfig(f *prog.Flags) (Config, error) {
	if f.NoRc {
		return defaultConfig(), nil
	}
	path := f.RC
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return defaultConfig(), nil
		}
		path = dir + "/nscript/rc.yaml"
	}
	return loadConfig(path)
}

func readFileUTF8(fname string) (string, error) {
	bytes, err := os.ReadFile(fname)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(bytes) {
		return "", fmt.Errorf("%s: source is not valid UTF-8", fname)
	}
	return string(bytes), nil
}
