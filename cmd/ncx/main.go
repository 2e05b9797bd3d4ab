package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/noperator/ncx/pkg/config"
	"github.com/noperator/ncx/pkg/pipeline"
)

// exitCodeFatal is used when configuration cannot be loaded or the real
// netcat binary cannot be located or executed. Netcat's own exit code
// passes through otherwise.
const exitCodeFatal = 2

var exitCode int

var rootCmd = &cobra.Command{
	Use:   "ncx <nc-args...>",
	Short: "netcat wrapper that explains each run with an LLM",
	Long: `ncx: a thin wrapper around the real nc (netcat) binary.
Runs netcat with the arguments exactly as given, prints its output verbatim,
then asks an OpenAI-compatible API to explain what the output likely means.

ncx recognizes no flags of its own; every argument is relayed to netcat.`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args)
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// run relays args to netcat and records its exit code for main.
func run(args []string) error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		return err
	}

	code, err := p.Run(context.Background(), args)
	if err != nil {
		return err
	}

	exitCode = code
	return nil
}

// execute dispatches args to the root command. Cobra reserves the
// __complete and __completeNoDesc tokens for shell completion, so
// argument lists starting with either one skip cobra and go straight
// to netcat.
func execute(args []string) error {
	if len(args) > 0 && (args[0] == cobra.ShellCompRequestCmd || args[0] == cobra.ShellCompNoDescRequestCmd) {
		return run(args)
	}

	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func main() {
	if err := execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCodeFatal)
	}
	os.Exit(exitCode)
}
