package main

import (
	"github.com/spf13/cobra"

	bCtx "github.com/x-xyz/nftwizard/base/ctx"
	"github.com/x-xyz/nftwizard/domain"
)

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "nftwizard",
		Short:        "Mint, transfer, list and trade NFTs against the marketplace contracts",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd.Flags())
		},
	}

	fs := root.PersistentFlags()
	fs.String("config", defaultConfigFile, "config file")
	fs.Bool("debug", false, "verbose logging")
	fs.String("network", "", "network to use instead of activeNetwork")
	fs.Bool("wait", true, "wait for each transaction to confirm")

	root.AddCommand(
		newAccountCmd(a),
		newMintCmd(a),
		newTransferCmd(a),
		newApproveCmd(a),
		newListCmd(a),
		newBrowseCmd(a),
		newBuyCmd(a),
		newDelistCmd(a),
		newSwapCmd(a),
		newWizardCmd(a),
	)
	return root
}

func contextOf(cmd *cobra.Command) bCtx.Ctx {
	return bCtx.From(cmd.Context())
}

// setup resolves the command context and the dependencies every command needs
func setup(cmd *cobra.Command, a *app) (bCtx.Ctx, *deps, error) {
	c := contextOf(cmd)
	d, err := a.deps(c)
	if err != nil {
		return c, nil, err
	}
	return c, d, nil
}

// track prints the accepted operation and, unless --wait=false, follows it to its final
// phase. A failed operation fails the command.
func track(cmd *cobra.Command, c bCtx.Ctx, d *deps, sub domain.TxSubmitter, p *domain.PendingTransaction) error {
	out := cmd.OutOrStdout()
	printTx(out, d.explorerTxUrl, *p)

	if wait, _ := cmd.Flags().GetBool("wait"); !wait {
		return nil
	}

	final, err := sub.Wait(c)
	if err != nil {
		return err
	}
	printTx(out, d.explorerTxUrl, final)
	if final.Phase == domain.TxPhaseFailed {
		return errFailed(final)
	}
	return nil
}
