// Command pgelog is the external collaborator around the buffered
// logger core: it builds one Logger from configuration, merges log
// files produced by external subprocesses into it, renames the log to
// its final path, and finalizes it. The process-exit guarantee comes
// from wiring the exit-hook registry into both a deferred call and a
// signal handler.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pgekit/pgelog"
	"github.com/pgekit/pgelog/config"
	"github.com/pgekit/pgelog/errorcode"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "pgelog",
		Short:         "Buffered PGE workflow log tooling",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (YAML)")
	root.AddCommand(newMergeCmd(&configPath))
	return root
}

func newMergeCmd(configPath *string) *cobra.Command {
	var (
		workflow string
		base     int
		logFile  string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "merge [log files...]",
		Short: "Merge external log files into one finalized PGE log",
		Long: "Builds a logger, appends each given file verbatim, resyncs the " +
			"per-severity counts from the merged text, optionally moves the log " +
			"to its final path, and closes it with a summary block.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if workflow != "" {
				cfg.Workflow = workflow
			}
			if cmd.Flags().Changed("base") {
				cfg.ErrorCodeBase = base
			}
			if logFile != "" {
				cfg.LogFile = logFile
			}
			if output != "" {
				cfg.OutputFile = output
			}

			return runMerge(cfg, args)
		},
	}

	cmd.Flags().StringVarP(&workflow, "workflow", "w", "", "workflow name stamped on records")
	cmd.Flags().IntVarP(&base, "base", "b", int(errorcode.LoggerCodeBase), "error code base")
	cmd.Flags().StringVarP(&logFile, "log-file", "l", "", "working log file path")
	cmd.Flags().StringVarP(&output, "output", "o", "", "final log file path")
	return cmd
}

func runMerge(cfg *config.Config, sources []string) error {
	// A termination signal must still finalize and persist the log.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-stop
		_ = pgelog.RunExitHooks()
		os.Exit(1)
	}()
	defer signal.Stop(stop)
	defer pgelog.RunExitHooks()

	log := pgelog.NewBuilder().
		WithWorkflow(cfg.Workflow).
		WithErrorCodeBase(errorcode.Code(cfg.ErrorCodeBase)).
		WithLogFilename(cfg.LogFile).
		Build()

	for _, src := range sources {
		if err := log.Info("merge", 1, fmt.Sprintf("Merging log file %s", src)); err != nil {
			return err
		}
		if err := log.AppendFile(src); err != nil {
			return err
		}
	}

	if err := log.Resync(); err != nil {
		return err
	}

	if cfg.OutputFile != "" {
		if err := log.Move(cfg.OutputFile); err != nil {
			return err
		}
	}

	if err := log.Close(); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "merged %d file(s) into %s (%d warnings, %d criticals)\n",
		len(sources), log.Filename(), log.WarningCount(), log.CriticalCount())
	return nil
}
