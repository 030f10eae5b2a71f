// ulox - tree-walking interpreter for a small Lox-like language
//
// Usage: ulox [-d] [-s] [-h] [-v] <command> [file]
//
// Commands read the named file, or standard input when it is omitted or "-".
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/kolkov/ulox"
)

// version is set at build time via -ldflags.
// For development builds, it will be "dev".
var version = "dev"

const (
	shortUsage = "usage: ulox [-d] [-s] [-h] [-v] <tokenize|parse|evaluate|run|repl> [file]"
	longUsage  = `Commands:
  tokenize          print one token per line
  parse             print the canonical form of a single expression
  evaluate          print the value of a single expression
  run               execute a program
  repl              read and execute lines interactively

Options:
  -d                print the parsed statements to stderr before running
  -s                strict conditions: if runs a branch only for true/false
  -h                show this help message
  -v                show ulox version and exit
`
)

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

// cli holds the streams and options of one invocation.
type cli struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	diag   *color.Color // Colours error messages on terminals

	debug  bool
	strict bool
}

// run executes the command line args and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	c := &cli{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		diag:   color.New(color.FgRed),
	}
	if isTerminal(stderr) {
		c.diag.EnableColor()
	} else {
		c.diag.DisableColor()
	}

	opts, optind, err := getopt.Getopts(args, "dshv")
	if err != nil {
		return c.usageError("%v", err)
	}
	for _, opt := range opts {
		switch opt.Option {
		case 'd':
			c.debug = true
		case 's':
			c.strict = true
		case 'h':
			fmt.Fprintf(stdout, "ulox %s\n\n%s\n\n%s", version, shortUsage, longUsage)
			return ulox.ExitOK
		case 'v':
			fmt.Fprintf(stdout, "ulox version %s\n", version)
			return ulox.ExitOK
		}
	}

	rest := args[optind:]
	if len(rest) == 0 {
		return c.usageError("missing command")
	}
	if len(rest) > 2 {
		return c.usageError("too many arguments")
	}
	command := rest[0]
	var file string
	if len(rest) == 2 {
		file = rest[1]
	}

	switch command {
	case "tokenize", "parse", "evaluate", "run":
	case "repl":
		if file != "" {
			return c.usageError("repl reads standard input only")
		}
		return c.repl()
	default:
		return c.usageError("unknown command: %s", command)
	}

	src, err := c.readSource(file)
	if err != nil {
		c.errorf("ulox: %v", err)
		return ulox.ExitNoInput
	}

	switch command {
	case "tokenize":
		return c.tokenize(src)
	case "parse":
		return c.parse(src)
	case "evaluate":
		return c.evaluate(src)
	default:
		return c.runProgram(src)
	}
}

// readSource reads the program text from file, or from stdin when file
// is empty or "-".
func (c *cli) readSource(file string) (string, error) {
	if file == "" || file == "-" {
		data, err := io.ReadAll(c.stdin)
		if err != nil {
			return "", fmt.Errorf("read standard input: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("cannot read file: %w", err)
	}
	return string(data), nil
}

// tokenize prints valid tokens to stdout and lexical errors to stderr,
// in source order.
func (c *cli) tokenize(src string) int {
	toks, err := ulox.Tokenize(src)
	out := bufio.NewWriter(c.stdout)
	for _, tok := range toks {
		if tokErr := tok.Err(); tokErr != nil {
			if err := out.Flush(); err != nil {
				return c.fail(err)
			}
			c.errorf("%v", tokErr)
			continue
		}
		fmt.Fprintln(out, tok)
	}
	if err := out.Flush(); err != nil {
		return c.fail(err)
	}
	return ulox.ExitCode(err)
}

func (c *cli) parse(src string) int {
	form, err := ulox.ParseExpr(src)
	if err != nil {
		return c.fail(err)
	}
	fmt.Fprintln(c.stdout, form)
	return ulox.ExitOK
}

func (c *cli) evaluate(src string) int {
	value, err := ulox.Evaluate(src, c.config(c.stdout))
	if err != nil {
		return c.fail(err)
	}
	fmt.Fprintln(c.stdout, value)
	return ulox.ExitOK
}

func (c *cli) runProgram(src string) int {
	prog, err := ulox.Compile(src)
	if err != nil {
		return c.fail(err)
	}

	out := bufio.NewWriter(c.stdout)
	_, err = prog.Run(c.config(out))
	if flushErr := out.Flush(); err == nil && flushErr != nil {
		err = fmt.Errorf("write output: %w", flushErr)
	}
	if err != nil {
		return c.fail(err)
	}
	return ulox.ExitOK
}

// repl executes standard input line by line in one session. Errors are
// reported and the session continues.
func (c *cli) repl() int {
	interactive := isTerminal(c.stdin)
	session := ulox.NewSession(c.config(c.stdout))

	scanner := bufio.NewScanner(c.stdin)
	for {
		if interactive {
			fmt.Fprint(c.stdout, "> ")
		}
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := session.Exec(line); err != nil {
			c.errorf("%v", err)
		}
	}
	if interactive {
		fmt.Fprintln(c.stdout)
	}
	if err := scanner.Err(); err != nil {
		return c.fail(fmt.Errorf("read standard input: %w", err))
	}
	return ulox.ExitOK
}

func (c *cli) config(out io.Writer) *ulox.Config {
	return &ulox.Config{
		Output:           out,
		Stderr:           c.stderr,
		Debug:            c.debug,
		StrictConditions: c.strict,
	}
}

// fail reports err and returns its exit code.
func (c *cli) fail(err error) int {
	c.errorf("%v", err)
	return ulox.ExitCode(err)
}

func (c *cli) usageError(format string, args ...any) int {
	c.errorf("ulox: "+format, args...)
	fmt.Fprintln(c.stderr, shortUsage)
	return ulox.ExitUsage
}

// errorf prints a diagnostic line to stderr.
func (c *cli) errorf(format string, args ...any) {
	c.diag.Fprintf(c.stderr, format+"\n", args...)
}

// isTerminal reports whether stream is a terminal device.
func isTerminal(stream any) bool {
	f, ok := stream.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
