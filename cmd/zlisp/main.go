// Command zlisp is the Z-Lisp driver: REPL, file arguments, and prelude
// loading (§6 "External interfaces"). Grounded on the teacher's root
// main.go for the overall shape (build environment, load a startup file,
// hand off to the REPL) and on Consensys-go-corset's pkg/cmd/corset for the
// cobra command tree and golang.org/x/term TTY detection.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dc0d/onexit"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/azsharafi/zlisp/interp"
)

var (
	preludePath string
	noPrelude   bool
	debugLog    bool
)

func main() {
	root := &cobra.Command{
		Use:           "zlisp [script ...]",
		Short:         "Z-Lisp: a small dynamically-typed Lisp interpreter",
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.Flags().StringVar(&preludePath, "prelude", "std.zsp", "prelude file loaded before the REPL or any script")
	root.Flags().BoolVar(&noPrelude, "no-prelude", false, "skip loading the prelude")
	root.Flags().BoolVar(&debugLog, "debug", false, "enable debug-level host logging")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if debugLog {
		log.SetLevel(log.DebugLevel)
	}

	env := interp.NewGlobalEnvironment()

	onexit.Register(func() {
		log.Debug("zlisp exiting")
	})

	if !noPrelude {
		loadPrelude(env)
	}

	if len(args) > 0 {
		for _, path := range args {
			if err := runFile(env, path); err != nil {
				return err
			}
		}
		return nil
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		interp.Repl(env, ".zlisp_history")
		return nil
	}

	return runScript(env, os.Stdin)
}

// loadPrelude implements §6's startup step: load std.zsp before any user
// input and print (not abort on) a missing-prelude Error.
func loadPrelude(env *interp.Environment) {
	data, err := os.ReadFile(preludePath)
	if err != nil {
		log.WithError(err).Debug("prelude not loaded")
		fmt.Println(interp.Display(interp.NewError("Failed to load library: %s", err.Error())))
		return
	}
	evalSource(env, string(data))
}

func runFile(env *interp.Environment, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}
	evalSource(env, string(data))
	return nil
}

func runScript(env *interp.Environment, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "reading stdin")
	}
	evalSource(env, string(data))
	return nil
}

func evalSource(env *interp.Environment, source string) {
	top, err := interp.Parse(source)
	if err != nil {
		fmt.Println(interp.Display(interp.NewError("Parser Error: %s", err.Error())))
		return
	}
	for top.Len() > 0 {
		form := top.Pop(0)
		result := interp.Eval(env, form)
		if result.Kind == interp.KindError {
			fmt.Println(interp.Display(result))
		}
	}
}
