package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/chainsafe/generator-dapp/pkg/solc"
)

func newCompileCmd(flags *globalFlags, stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "compile",
		Short: "Compiles the Solidity sources into artifacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := flags.env()
			if err != nil {
				return err
			}
			defer func() { _ = env.Logger.Sync() }()

			paths, err := solc.NewCompiler(env.Config.Solidity, nil, env.Logger).Compile(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(stdout, "Compiled %d contract(s)\n", len(paths)) //nolint:errcheck // best-effort stdout
			return nil
		},
	}
}
