package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bstviz/internal/render"
	"github.com/katalvlaran/bstviz/internal/session"
)

func (cfg *config) showCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "build a tree from --values, apply deletes and searches, and print it",
		Long: `
Keys from --values are inserted in order, then --delete and --search are
applied. The printed figures describe the final tree. The --svg drawing
marks the key touched by the last operation; when that was a delete, the
drawing is the tree just before the key was removed.
`,
		Args: cobra.NoArgs,
		RunE: cfg.runShow,
	}
	cmd.Flags().StringSliceVar(
		&cfg.values, "values", nil, "comma-separated keys to insert, in order")
	cmd.Flags().StringSliceVar(
		&cfg.deletes, "delete", nil, "keys to delete after inserting")
	cmd.Flags().StringSliceVar(
		&cfg.searches, "search", nil, "keys to search for after deleting")
	cfg.outputFlags(cmd)

	return cmd
}

func (cfg *config) demoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "print the demo tree",
		Long:  ``,
		Args:  cobra.NoArgs,
		RunE:  cfg.runDemo,
	}
	cfg.outputFlags(cmd)

	return cmd
}

func (cfg *config) outputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(
		&cfg.svgPath, "svg", "", "also write an SVG drawing to this file")
	cmd.Flags().BoolVar(
		&cfg.ascii, "ascii", false, "print the tree sideways")
}

func (cfg *config) runShow(cmd *cobra.Command, args []string) error {
	e, err := cfg.newEnv()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	var last session.Result
	steps := []struct {
		raws []string
		op   func(string) (session.Result, error)
	}{
		{cfg.values, e.sess.Insert},
		{cfg.deletes, e.sess.Delete},
		{cfg.searches, e.sess.Search},
	}
	for _, step := range steps {
		for _, raw := range step.raws {
			r, err := step.op(raw)
			if err != nil {
				return err
			}
			if r.Op != session.OpInsert {
				fmt.Fprintln(out, r.Message)
			}
			last = r
		}
	}

	return e.finish(cmd, last)
}

func (cfg *config) runDemo(cmd *cobra.Command, args []string) error {
	e, err := cfg.newEnv()
	if err != nil {
		return err
	}

	return e.finish(cmd, e.sess.LoadDemo())
}

// finish prints the current snapshot, writes the optional SVG of last and
// dumps metrics when requested.
func (e *env) finish(cmd *cobra.Command, last session.Result) error {
	out := cmd.OutOrStdout()
	snap, err := e.sess.Snapshot()
	if err != nil {
		return err
	}
	if e.cfg.ascii {
		if err := render.ASCII(out, snap.Tree); err != nil {
			return err
		}
	}
	printSnapshot(out, snap)

	if e.cfg.svgPath != "" {
		if err := e.writeSVG(e.cfg.svgPath, last); err != nil {
			return err
		}
	}
	if e.reg != nil {
		return printMetrics(out, e.reg)
	}

	return nil
}

func (e *env) writeSVG(path string, last session.Result) error {
	frame, err := e.sess.Frame(last)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %q", path)
	}
	if err := render.SVG(f, frame, render.WithResult(last)); err != nil {
		_ = f.Close()
		return err
	}

	return errors.Wrapf(f.Close(), "closing %q", path)
}
