package main

import (
	"github.com/spf13/cobra"

	"github.com/chainsafe/generator-dapp/pkg/app/api"
)

func newServeCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serves the FAQ pages and the instance API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := flags.env()
			if err != nil {
				return err
			}
			defer func() { _ = env.Logger.Sync() }()

			return api.NewServer(env).Run(cmd.Context())
		},
	}
}
