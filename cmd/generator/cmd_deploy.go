package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/chainsafe/generator-dapp/pkg/deploy"
)

func newDeployCmd(flags *globalFlags, stdout io.Writer) *cobra.Command {
	var contract string

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploys the compiled contract to the selected network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := flags.env()
			if err != nil {
				return err
			}
			defer func() { _ = env.Logger.Sync() }()

			if contract == "" {
				contract = env.Config.Contract.Name
			}

			chain, err := env.Connect(cmd.Context())
			if err != nil {
				return err
			}
			defer chain.Close()

			d := deploy.NewDeployer(chain.Client, chain.Wallet, env.Config.Solidity.Artifacts, env.Network.Name, env.Logger)
			dep, err := d.Deploy(cmd.Context(), contract)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(dep)
		},
	}
	cmd.Flags().StringVar(&contract, "contract", "", "Artifact name to deploy (defaults to contract.name)")
	return cmd
}
