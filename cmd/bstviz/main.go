// Command bstviz builds, inspects and draws binary search trees from the
// terminal.
package main

import (
	"log"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bstviz/internal/session"
	"github.com/katalvlaran/bstviz/layout"
)

// config holds the flag values of one command tree.
type config struct {
	canvasWidth     float64
	checkInvariants bool
	showMetrics     bool
	verbose         bool

	values   []string
	deletes  []string
	searches []string
	svgPath  string
	ascii    bool
}

// newRootCmd builds a fresh command tree with its own flag storage.
func newRootCmd() *cobra.Command {
	cfg := &config{}
	rootCmd := &cobra.Command{
		Use:          "bstviz [command] (flags)",
		Short:        "binary search tree visualizer",
		Long:         ``,
		SilenceUsage: true,
	}
	rootCmd.AddCommand(
		cfg.showCmd(),
		cfg.demoCmd(),
		cfg.replCmd(),
	)

	rootCmd.PersistentFlags().Float64Var(
		&cfg.canvasWidth, "canvas-width", layout.DefaultCanvasWidth, "width of the layout canvas")
	rootCmd.PersistentFlags().BoolVar(
		&cfg.checkInvariants, "check", false, "validate the tree after every mutation")
	rootCmd.PersistentFlags().BoolVar(
		&cfg.showMetrics, "metrics", false, "print operation metrics before exiting")
	rootCmd.PersistentFlags().BoolVarP(
		&cfg.verbose, "verbose", "v", false, "log every operation")

	return rootCmd
}

func main() {
	log.SetFlags(0)
	cobra.EnableCommandSorting = false

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// env is the per-invocation state shared by all commands.
type env struct {
	cfg  *config
	sess *session.Session
	reg  *prometheus.Registry
}

// newEnv builds a session from the persistent flags.
func (cfg *config) newEnv() (*env, error) {
	opts := []session.Option{
		session.WithLayoutOptions(layout.WithCanvasWidth(cfg.canvasWidth)),
		session.WithInvariantChecks(cfg.checkInvariants),
	}
	if cfg.verbose {
		opts = append(opts, session.WithLogger(session.DefaultLogger{}))
	}
	e := &env{cfg: cfg}
	if cfg.showMetrics {
		e.reg = prometheus.NewRegistry()
		opts = append(opts, session.WithMetrics(session.NewMetrics(e.reg)))
	}
	s, err := session.New(opts...)
	if err != nil {
		return nil, err
	}
	e.sess = s

	return e, nil
}
