// Package cli is the terminal front end: it turns typed commands into calls on a
// session.State and prints the outcome.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/session"
)

const helpText = `commands:
  g                       generate a new password
  a                       analyze the current password
  len N                   set the length (8-64) and regenerate
  upper|lower|num|sym on|off
                          toggle a character class and regenerate
  show                    print the current settings, password and result
  q                       quit
`

var errUnknownCommand = errors.New("unknown command, type help")

// Console prints to out on behalf of one session.
type Console struct {
	state *session.State
	out   io.Writer
}

func NewConsole(state *session.State, out io.Writer) *Console {
	return &Console{state: state, out: out}
}

// Once generates a single password and optionally analyzes it.
func (c *Console) Once(ctx context.Context, analyze bool) error {
	password, err := c.state.Regenerate()
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, password)

	if !analyze {
		return nil
	}
	result, err := c.state.Analyze(ctx)
	if err != nil {
		return err
	}
	c.printResult(result)
	return nil
}

// Run reads commands from in until EOF or "q". Command errors are printed and the
// loop continues.
func (c *Console) Run(ctx context.Context, in io.Reader) error {
	if _, err := c.state.Regenerate(); err != nil {
		c.notice(err)
	}
	c.show()

	scanner := bufio.NewScanner(in)
	fmt.Fprint(c.out, "> ")
	for scanner.Scan() {
		quit, err := c.Execute(ctx, scanner.Text())
		if err != nil {
			c.notice(err)
		}
		if quit {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(c.out, "> ")
	}
	return scanner.Err()
}

// Execute runs one command line and reports whether the session should end.
func (c *Console) Execute(ctx context.Context, line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	switch cmd, args := strings.ToLower(fields[0]), fields[1:]; cmd {
	case "q", "quit", "exit":
		return true, nil
	case "h", "help", "?":
		fmt.Fprint(c.out, helpText)
	case "g", "gen", "generate":
		return false, c.regenerate()
	case "a", "analyze":
		fmt.Fprintln(c.out, "Analyzing password strength...")
		result, err := c.state.Analyze(ctx)
		if err != nil {
			return false, err
		}
		c.printResult(result)
	case "len", "length":
		if len(args) != 1 {
			return false, errors.New("usage: len N")
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return false, fmt.Errorf("invalid length %q", args[0])
		}
		if n < crypto.MinLength || n > crypto.MaxLength {
			return false, fmt.Errorf("length must be between %d and %d", crypto.MinLength, crypto.MaxLength)
		}
		c.state.SetLength(n)
		return false, c.regenerate()
	case "upper", "lower", "num", "sym":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: %s on|off", cmd)
		}
		on, err := parseSwitch(args[0])
		if err != nil {
			return false, err
		}
		c.setClass(cmd, on)
		return false, c.regenerate()
	case "show":
		c.show()
	default:
		return false, errUnknownCommand
	}
	return false, nil
}

func (c *Console) regenerate() error {
	password, err := c.state.Regenerate()
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, password)
	return nil
}

func (c *Console) setClass(name string, on bool) {
	switch name {
	case "upper":
		c.state.SetUppercase(on)
	case "lower":
		c.state.SetLowercase(on)
	case "num":
		c.state.SetNumbers(on)
	case "sym":
		c.state.SetSymbols(on)
	}
}

func (c *Console) show() {
	o := c.state.Options()
	fmt.Fprintf(c.out, "length %d  upper %s  lower %s  num %s  sym %s\n",
		o.Length, onOff(o.Uppercase), onOff(o.Lowercase), onOff(o.Numbers), onOff(o.Symbols))
	if p := c.state.Password(); p != "" {
		fmt.Fprintln(c.out, p)
	}
	if r, ok := c.state.Result(); ok {
		c.printResult(r)
	}
}

func (c *Console) printResult(r model.StrengthResult) {
	fmt.Fprintf(c.out, "Password Strength: %s (%d%%)\n", r.Label(), r.Percent())
	fmt.Fprintln(c.out, r.Analysis)
}

func (c *Console) notice(err error) {
	fmt.Fprintf(c.out, "error: %v\n", err)
}

func parseSwitch(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "yes", "true", "1":
		return true, nil
	case "off", "no", "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("expected on or off, got %q", s)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
