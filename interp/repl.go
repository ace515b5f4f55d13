package interp

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chzyer/readline"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Prompt constants, grounded on scm/prompt.go's ANSI-colored
// newprompt/contprompt/resultprompt.
const (
	newPrompt    = "\033[32mz-lisp>\033[0m "
	contPrompt   = "\033[32m...\033[0m "
	resultPrompt = "\033[31m=\033[0m "
)

// Repl runs the interactive read-eval-print loop of §6: prompt `z-lisp> `,
// history recorded, Ctrl-C exits. Grounded on scm/prompt.go's Repl:
// chzyer/readline session, a continuation prompt while the current form is
// unbalanced, and a recover() boundary around evaluation so a host-level
// panic doesn't take the REPL down with it.
func Repl(env *Environment, historyFile string) {
	sessionID := uuid.New().String()
	log.WithField("session", sessionID).Info("starting REPL")

	l, err := readline.NewEx(&readline.Config{
		Prompt:            newPrompt,
		HistoryFile:       historyFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to start line editor")
	}
	defer l.Close()
	l.CaptureExitSignal()

	pending := ""
	for {
		line, err := l.Readline()
		line = pending + line

		switch {
		case err == readline.ErrInterrupt:
			if len(line) == 0 {
				return
			}
			pending = ""
			l.SetPrompt(newPrompt)
			continue
		case err == io.EOF:
			return
		case err != nil:
			log.WithError(err).Error("readline error")
			return
		}

		if line == "" {
			continue
		}

		if !isBalanced(line) {
			pending = line + "\n"
			l.SetPrompt(contPrompt)
			continue
		}

		evalLine(env, line, sessionID)
		pending = ""
		l.SetPrompt(newPrompt)
	}
}

func evalLine(env *Environment, line, sessionID string) {
	defer func() {
		if r := recover(); r != nil {
			log.WithField("session", sessionID).WithField("panic", r).Error("recovered from evaluation panic")
		}
	}()

	top, err := Parse(line)
	if err != nil {
		fmt.Println(Display(NewError("Parser Error: %s", err.Error())))
		return
	}

	last := NewExpression()
	for top.Len() > 0 {
		form := top.Pop(0)
		last = Eval(env, form)
	}

	var b bytes.Buffer
	b.WriteString(Display(last))
	fmt.Print(resultPrompt)
	fmt.Println(b.String())
}

// isBalanced reports whether line contains no unterminated string and no
// unmatched `(`/`{`, i.e. whether the REPL should attempt to parse it now
// rather than prompt for a continuation line. Comments and string contents
// are not scanned for parens.
func isBalanced(line string) bool {
	depth := 0
	inString := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		if inString {
			if c == '\\' {
				i++
				continue
			}
			if c == '"' {
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case ';':
			for i < len(line) && line[i] != '\n' {
				i++
			}
		case '(', '{':
			depth++
		case ')', '}':
			depth--
		}
	}
	return depth <= 0 && !inString
}
