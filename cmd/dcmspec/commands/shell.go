package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/dcmspec/dcmspec-go/pkg/report"
	"github.com/dcmspec/dcmspec-go/pkg/validate"
	"github.com/dcmspec/dcmspec-go/pkg/validate/rules"
)

// Shell is an interactive dictionary session.
type Shell struct {
	env *env
	v   *validate.Validator
	out io.Writer
}

func newShell(e *env, out io.Writer) *Shell {
	return &Shell{
		env: e,
		v:   validate.New(rules.NewDefaultRegistry(e.dict), validate.WithLogger(e.logger)),
		out: out,
	}
}

// RunShell runs the shell command.
func RunShell(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("shell", flag.ContinueOnError)
	fs.SetOutput(stderr)
	common := commonFlags(fs)
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return exitSuccess
		}
		return exitCommandError
	}

	e, err := loadEnv(stderr, common)
	if err != nil {
		return fail(stderr, err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "dcmspec> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdout:          stdout,
		Stderr:          stderr,
		AutoComplete: readline.NewPrefixCompleter(
			readline.PcItem("tag"),
			readline.PcItem("uid"),
			readline.PcItem("syntaxes"),
			readline.PcItem("validate"),
			readline.PcItem("help"),
			readline.PcItem("quit"),
		),
	})
	if err != nil {
		return fail(stderr, fmt.Errorf("failed to create readline: %w", err))
	}
	defer rl.Close()

	newShell(e, rl.Stdout()).Run(context.Background(), rl)
	return exitSuccess
}

// Run reads and executes lines until EOF, quit or ctx is done.
func (s *Shell) Run(ctx context.Context, rl *readline.Instance) {
	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.out, "Exiting...")
			return
		}

		if !s.Exec(line) {
			fmt.Fprintln(s.out, "Exiting...")
			return
		}
	}
}

// Exec executes one command line. It returns false when the session
// should end.
func (s *Shell) Exec(line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return true
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	var err error
	switch cmd {
	case "help", "?":
		s.printHelp()
	case "tag", "t":
		err = showTag(s.out, s.env.dict, args)
	case "uid", "u":
		err = showUID(s.out, s.env.dict, args)
	case "syntaxes", "ts":
		err = showSyntaxes(s.out, s.env.dict, args)
	case "validate", "v":
		err = s.cmdValidate(args)
	case "quit", "exit", "q":
		return false
	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}

	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
	return true
}

func (s *Shell) cmdValidate(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("dump path required")
	}
	run := report.NewRun()
	for _, path := range args {
		printFileOutput(s.out, validatePath(s.env, s.v, report.NoopWriter{}, run, path))
	}
	return nil
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `
dcmspec shell commands:
  tag <code|keyword>   - Show a data element definition
  uid <uid>            - Show a registered UID
  syntaxes [uid]       - List presentation contexts, or the transfer syntaxes of one
  validate <dumps...>  - Validate dataset dumps
  help                 - Show this help
  quit                 - Leave the shell`)
}
