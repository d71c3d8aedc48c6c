package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bstviz/internal/render"
	"github.com/katalvlaran/bstviz/internal/session"
)

func (cfg *config) replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "read tree commands from stdin",
		Long: `
Commands, one per line:

  insert N   search N   delete N
  reset      demo       show      tree      quit
`,
		Args: cobra.NoArgs,
		RunE: cfg.runRepl,
	}
}

func (cfg *config) runRepl(cmd *cobra.Command, args []string) error {
	e, err := cfg.newEnv()
	if err != nil {
		return err
	}
	if err := e.repl(cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
		return err
	}
	if e.reg != nil {
		return printMetrics(cmd.OutOrStdout(), e.reg)
	}

	return nil
}

// repl executes line commands until quit or EOF. Bad input is reported and
// skipped; only I/O failures end the loop with an error.
func (e *env) repl(in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		arg := ""
		if len(fields) > 1 {
			arg = fields[1]
		}

		var (
			r   session.Result
			err error
		)
		switch strings.ToLower(fields[0]) {
		case "insert", "i":
			r, err = e.sess.Insert(arg)
		case "search", "s":
			r, err = e.sess.Search(arg)
		case "delete", "d":
			r, err = e.sess.Delete(arg)
		case "reset":
			r = e.sess.Reset()
		case "demo":
			r = e.sess.LoadDemo()
		case "show":
			snap, err := e.sess.Snapshot()
			if err != nil {
				return err
			}
			printSnapshot(out, snap)
			continue
		case "tree":
			if err := render.ASCII(out, e.sess.Tree()); err != nil {
				return err
			}
			continue
		case "quit", "exit", "q":
			return nil
		default:
			fmt.Fprintf(out, "unknown command %q\n", fields[0])
			continue
		}
		if err != nil && !errors.Is(err, session.ErrNotANumber) {
			return err
		}
		fmt.Fprintln(out, r.Message)
	}

	return errors.Wrap(sc.Err(), "reading commands")
}
