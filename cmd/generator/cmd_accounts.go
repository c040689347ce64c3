package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/chainsafe/generator-dapp/pkg/ethereum"
	"github.com/chainsafe/generator-dapp/pkg/wallet"
)

func newAccountsCmd(flags *globalFlags, stdout io.Writer) *cobra.Command {
	var balances bool

	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Prints the list of accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := flags.env()
			if err != nil {
				return err
			}
			defer func() { _ = env.Logger.Sync() }()

			if !balances {
				w, err := wallet.NewKeyedWallet(nil, env.Network.AccountKeys, env.Logger)
				if err != nil {
					return err
				}
				for _, addr := range w.Addresses() {
					fmt.Fprintln(stdout, addr.Hex()) //nolint:errcheck // best-effort stdout
				}
				return nil
			}

			chain, err := env.Connect(cmd.Context())
			if err != nil {
				return err
			}
			defer chain.Close()

			for _, addr := range chain.Wallet.Addresses() {
				bal, err := chain.Client.Balance(cmd.Context(), addr)
				if err != nil {
					env.Logger.Warn("Failed to fetch balance", zap.String("address", addr.Hex()), zap.Error(err))
					fmt.Fprintf(stdout, "%s\t?\n", addr.Hex()) //nolint:errcheck // best-effort stdout
					continue
				}
				fmt.Fprintf(stdout, "%s\t%s ETH\n", addr.Hex(), ethereum.WeiToEther(bal).String()) //nolint:errcheck // best-effort stdout
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&balances, "balances", false, "Also print each account's balance")
	return cmd
}
