package main

import (
	"errors"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"golang.org/x/xerrors"

	"github.com/x-xyz/nftwizard/domain"
	"github.com/x-xyz/nftwizard/domain/wizard"
)

var errNotApproved = errors.New("marketplace is not approved to move your tokens, run `nftwizard approve` first")

func errFailed(p domain.PendingTransaction) error {
	return xerrors.Errorf("%s failed: %s", p.Tag, p.Err)
}

func newAccountCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "account",
		Short: "Show owned tokens, claim and approval status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, d, err := setup(cmd, a)
			if err != nil {
				return err
			}
			snapshot, err := d.account.Snapshot(c)
			if err != nil {
				return err
			}
			printSnapshot(cmd.OutOrStdout(), snapshot)
			return nil
		},
	}
}

func newMintCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "mint <free|paid>",
		Short:     "Claim the free token or mint a paid one",
		ValidArgs: []string{"free", "paid"},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, d, err := setup(cmd, a)
			if err != nil {
				return err
			}
			d.mint.Reset()
			var p *domain.PendingTransaction
			if args[0] == "free" {
				p, err = d.mint.ClaimFree(c)
			} else {
				p, err = d.mint.MintPaid(c)
			}
			if err != nil {
				return err
			}
			return track(cmd, c, d, d.mint.Submitter(), p)
		},
	}
}

func newTransferCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "transfer <tokenId> <recipient>",
		Short: "Transfer a token to an address or ens name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, d, err := setup(cmd, a)
			if err != nil {
				return err
			}
			d.transfer.Reset()
			d.transfer.SelectToken(domain.TokenId(args[0]))
			if err := d.transfer.Next(); err != nil {
				return err
			}
			d.transfer.SetRecipient(args[1])
			p, err := d.transfer.Transfer(c)
			if err != nil {
				return err
			}
			return track(cmd, c, d, d.transfer.Submitter(), p)
		},
	}
}

func newApproveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "approve",
		Short: "Approve the marketplace to move your tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, d, err := setup(cmd, a)
			if err != nil {
				return err
			}
			st, err := d.approval.Sync(c)
			if err != nil {
				return err
			}
			if st == wizard.Approved {
				okColor.Fprintln(cmd.OutOrStdout(), "✔ marketplace already approved")
				return nil
			}
			p, err := d.approval.Approve(c)
			if err != nil {
				return err
			}
			if err := track(cmd, c, d, d.approval.Submitter(), p); err != nil {
				return err
			}
			if wait, _ := cmd.Flags().GetBool("wait"); wait {
				select {
				case <-d.approval.Done():
					okColor.Fprintln(cmd.OutOrStdout(), "✔ marketplace approved")
				case <-c.Done():
					return c.Err()
				}
			}
			return nil
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "list <tokenId> <price>",
		Short: "List a token for sale, price in ETH",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, d, err := setup(cmd, a)
			if err != nil {
				return err
			}
			st, err := d.approval.Sync(c)
			if err != nil {
				return err
			}
			if st != wizard.Approved {
				return errNotApproved
			}

			d.listing.Reset()
			d.listing.SelectToken(domain.TokenId(args[0]))
			if err := d.listing.Next(c); err != nil {
				return err
			}
			if err := d.listing.SetPrice(args[1]); err != nil {
				return err
			}
			if err := d.listing.Next(c); err != nil {
				return err
			}
			printPreview(cmd.OutOrStdout(), d.listing.Preview())

			if !yes {
				if _, err := (&promptui.Prompt{Label: "List it", IsConfirm: true}).Run(); err != nil {
					return handlePromptError(err)
				}
			}
			p, err := d.listing.List(c)
			if err != nil {
				return err
			}
			return track(cmd, c, d, d.listing.Submitter(), p)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func newBrowseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Show the active marketplace listings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, d, err := setup(cmd, a)
			if err != nil {
				return err
			}
			if err := d.mode.Enter(c, wizard.ModeBrowseAndBuy); err != nil {
				return err
			}
			if err := d.mode.Err(); err != nil {
				return err
			}
			printListings(cmd.OutOrStdout(), d.mode.Listings())
			return nil
		},
	}
}

func newBuyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "buy <listingId> <price>",
		Short: "Buy a listed token, paying price ETH",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, d, err := setup(cmd, a)
			if err != nil {
				return err
			}
			p, err := d.trade.Buy(c, args[0], args[1])
			if err != nil {
				return err
			}
			return track(cmd, c, d, d.trade.Submitter(), p)
		},
	}
}

func newDelistCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delist <listingId>",
		Short: "Withdraw one of your listings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, d, err := setup(cmd, a)
			if err != nil {
				return err
			}
			p, err := d.trade.Delist(c, args[0])
			if err != nil {
				return err
			}
			return track(cmd, c, d, d.trade.Submitter(), p)
		},
	}
}

func newWizardCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "wizard",
		Short: "Interactive mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, d, err := setup(cmd, a)
			if err != nil {
				return err
			}
			return runWizard(c, d, cmd.OutOrStdout())
		},
	}
}
