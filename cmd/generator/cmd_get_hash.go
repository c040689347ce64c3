package main

import (
	"github.com/spf13/cobra"

	"github.com/chainsafe/generator-dapp/pkg/generator"
	"github.com/chainsafe/generator-dapp/pkg/probe"
	"github.com/chainsafe/generator-dapp/pkg/wallet"
)

// newGetHashCmd runs one probe. Lookup failures only show up in the log,
// the command itself succeeds once the probe has run.
func newGetHashCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "get-hash <instance-id>",
		Short: "Logs the solution recorded for an instance, if any",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := flags.env()
			if err != nil {
				return err
			}
			defer func() { _ = env.Logger.Sync() }()

			address, err := env.ContractAddress()
			if err != nil {
				return err
			}

			// Without a key the probe is a no-op, so there is nothing to dial.
			var provider wallet.Provider
			if env.HasAccount() {
				chain, err := env.Connect(cmd.Context())
				if err != nil {
					return err
				}
				defer chain.Close()
				provider = chain.Provider()
			}

			p := probe.New(generator.NewReader(address), provider, env.Logger,
				probe.WithCallTimeout(env.Config.Probe.CallTimeout))
			p.Probe(cmd.Context(), args[0])
			return nil
		},
	}
}
