// generator is the command line for the Generator contract: build tooling
// (compile, deploy, accounts), a getHash probe and the FAQ site server.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/chainsafe/generator-dapp/pkg/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the CLI with the given args and returns the exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout)
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "generator: %v\n", err) //nolint:errcheck // best-effort stderr
		return 1
	}
	return 0
}

type globalFlags struct {
	configPath string
	network    string
}

func (g *globalFlags) env() (*app.Env, error) {
	return app.LoadEnv(g.configPath, g.network)
}

// newRootCmd creates the root cobra command with all subcommands.
func newRootCmd(stdout io.Writer) *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "generator",
		Short:         "Compile, deploy and query the Generator contract",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "config.yaml", "Path to configuration file")
	root.PersistentFlags().StringVarP(&flags.network, "network", "n", "", "Network to use (defaults to default_network)")

	root.AddCommand(
		newAccountsCmd(flags, stdout),
		newCompileCmd(flags, stdout),
		newDeployCmd(flags, stdout),
		newGetHashCmd(flags),
		newServeCmd(flags),
	)
	return root
}
