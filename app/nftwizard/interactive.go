package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/manifoldco/promptui"

	bCtx "github.com/x-xyz/nftwizard/base/ctx"
	"github.com/x-xyz/nftwizard/base/price"
	"github.com/x-xyz/nftwizard/domain"
	"github.com/x-xyz/nftwizard/domain/listing"
	"github.com/x-xyz/nftwizard/domain/wizard"
)

var errCancelled = errors.New("cancelled")

const (
	itemBack = "Back"
	itemQuit = "Quit"
)

func handlePromptError(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, promptui.ErrAbort) {
		return errCancelled
	}
	return err
}

func selectPrompt(label, selected string, items []string) *promptui.Select {
	return &promptui.Select{
		Label: label,
		Items: items,
		Size:  10,
		Templates: &promptui.SelectTemplates{
			Active:   "▸ {{ . | cyan }}",
			Inactive: "  {{ . }}",
			Selected: "✔ " + selected + ": {{ . | green }}",
		},
	}
}

func choose(label, selected string, items []string) (int, string, error) {
	idx, item, err := selectPrompt(label, selected, items).Run()
	if err != nil {
		return -1, "", handlePromptError(err)
	}
	return idx, item, nil
}

func input(label string, validate promptui.ValidateFunc) (string, error) {
	v, err := (&promptui.Prompt{Label: label, Validate: validate}).Run()
	if err != nil {
		return "", handlePromptError(err)
	}
	return strings.TrimSpace(v), nil
}

func confirm(label string) (bool, error) {
	_, err := (&promptui.Prompt{Label: label, IsConfirm: true}).Run()
	if errors.Is(err, promptui.ErrAbort) {
		return false, nil
	} else if err != nil {
		return false, handlePromptError(err)
	}
	return true, nil
}

func validateNonEmpty(s string) error {
	if len(strings.TrimSpace(s)) == 0 {
		return errors.New("required")
	}
	return nil
}

// runWizard is the interactive main menu, each entry drives one of the wizards
func runWizard(c bCtx.Ctx, d *deps, out io.Writer) error {
	fmt.Fprintln(out)
	labelColor.Fprintf(out, "NFT wizard on %s\n", d.network)
	if from := d.sender.From(); from.IsEmpty() {
		warnColor.Fprintln(out, "read-only: no private key configured")
	} else {
		dimColor.Fprintf(out, "account %s\n", from)
	}
	fmt.Fprintln(out)

	items := []string{"Mint", "Transfer", "Marketplace", "Account"}
	if d.swap != nil {
		items = append(items, "Swap")
	}
	items = append(items, itemQuit)

	for {
		_, item, err := choose("What do you want to do", "Action", items)
		if errors.Is(err, errCancelled) {
			return nil
		} else if err != nil {
			return err
		}

		switch item {
		case "Mint":
			err = mintFlow(c, d, out)
		case "Transfer":
			err = transferFlow(c, d, out)
		case "Marketplace":
			err = marketplaceFlow(c, d, out)
		case "Account":
			err = accountFlow(c, d, out)
		case "Swap":
			err = swapFlow(c, d, out)
		case itemQuit:
			return nil
		}
		if errors.Is(err, errCancelled) {
			continue
		} else if err != nil {
			printError(out, err)
		}
	}
}

// follow waits for the final phase of an accepted operation and prints it
func follow(c bCtx.Ctx, d *deps, out io.Writer, sub domain.TxSubmitter, p *domain.PendingTransaction) error {
	printTx(out, d.explorerTxUrl, *p)
	dimColor.Fprintln(out, "waiting for confirmation…")
	final, err := sub.Wait(c)
	if err != nil {
		return err
	}
	printTx(out, d.explorerTxUrl, final)
	return nil
}

func accountFlow(c bCtx.Ctx, d *deps, out io.Writer) error {
	snapshot, err := d.account.Snapshot(c)
	if err != nil {
		return err
	}
	printSnapshot(out, snapshot)
	return nil
}

func mintFlow(c bCtx.Ctx, d *deps, out io.Writer) error {
	d.mint.Reset()

	claimed, err := d.account.HasClaimed(c)
	if err != nil {
		return err
	}
	items := []string{}
	if !claimed {
		items = append(items, "Claim free NFT")
	}
	items = append(items, "Mint paid NFT", itemBack)

	_, item, err := choose("How do you want to mint", "Method", items)
	if err != nil || item == itemBack {
		return err
	}

	var p *domain.PendingTransaction
	if item == "Mint paid NFT" {
		p, err = d.mint.MintPaid(c)
	} else {
		p, err = d.mint.ClaimFree(c)
	}
	if err != nil {
		return err
	}
	return follow(c, d, out, d.mint.Submitter(), p)
}

// selectOwnedToken lists the account's tokens, or asks for an id when it owns none
func selectOwnedToken(c bCtx.Ctx, d *deps, label string) (domain.TokenId, error) {
	owned, err := d.account.OwnedTokens(c)
	if err != nil {
		return "", err
	}
	if len(owned) == 0 {
		id, err := input(label+" (token id)", validateNonEmpty)
		return domain.TokenId(id), err
	}
	items := make([]string, 0, len(owned)+1)
	for _, id := range owned {
		items = append(items, "#"+id.String())
	}
	items = append(items, itemBack)
	idx, item, err := choose(label, "Token", items)
	if err != nil {
		return "", err
	}
	if item == itemBack {
		return "", errCancelled
	}
	return owned[idx], nil
}

func transferFlow(c bCtx.Ctx, d *deps, out io.Writer) error {
	uc := d.transfer
	uc.Reset()

	for {
		switch uc.Step() {
		case wizard.TransferSelectToken:
			id, err := selectOwnedToken(c, d, "Which token do you want to transfer")
			if err != nil {
				return err
			}
			uc.SelectToken(id)
			if err := uc.Next(); err != nil {
				printError(out, err)
			}

		case wizard.TransferEnterRecipient:
			recipient, err := input("Recipient address or ens name", validateNonEmpty)
			if err != nil {
				uc.Back()
				if errors.Is(err, errCancelled) {
					continue
				}
				return err
			}
			uc.SetRecipient(recipient)
			p, err := uc.Transfer(c)
			if err != nil {
				printError(out, err)
				continue
			}
			return follow(c, d, out, uc.Submitter(), p)

		default:
			return nil
		}
	}
}

func marketplaceFlow(c bCtx.Ctx, d *deps, out io.Writer) error {
	defer d.mode.Back()

	_, item, err := choose("Marketplace", "Mode", []string{
		wizard.ModeListAsset.String(),
		wizard.ModeBrowseAndBuy.String(),
		itemBack,
	})
	if err != nil || item == itemBack {
		return err
	}

	if item == wizard.ModeListAsset.String() {
		if err := d.mode.Enter(c, wizard.ModeListAsset); err != nil {
			return err
		}
		return listFlow(c, d, out)
	}
	if err := d.mode.Enter(c, wizard.ModeBrowseAndBuy); err != nil {
		return err
	}
	return browseFlow(c, d, out)
}

// ensureApproved walks the approval flow until the marketplace may move the user's tokens
func ensureApproved(c bCtx.Ctx, d *deps, out io.Writer) error {
	st, err := d.approval.Sync(c)
	if err != nil {
		return err
	}
	if st == wizard.Approved {
		return nil
	}

	warnColor.Fprintln(out, "the marketplace needs approval to move your tokens")
	ok, err := confirm("Approve now")
	if err != nil {
		return err
	}
	if !ok {
		return errCancelled
	}
	p, err := d.approval.Approve(c)
	if err != nil {
		return err
	}
	if err := follow(c, d, out, d.approval.Submitter(), p); err != nil {
		return err
	}
	if d.approval.Submitter().Current().Phase == domain.TxPhaseFailed {
		return errFailed(d.approval.Submitter().Current())
	}
	select {
	case <-d.approval.Done():
		okColor.Fprintln(out, "✔ marketplace approved")
		return nil
	case <-c.Done():
		return c.Err()
	}
}

func listFlow(c bCtx.Ctx, d *deps, out io.Writer) error {
	if err := ensureApproved(c, d, out); err != nil {
		return err
	}

	uc := d.listing
	uc.Reset()
	for {
		switch uc.Step() {
		case wizard.ListingSelectToken:
			id, err := selectOwnedToken(c, d, "Which token do you want to list")
			if err != nil {
				return err
			}
			uc.SelectToken(id)
			if err := uc.Next(c); err != nil {
				printError(out, err)
			}

		case wizard.ListingSetPrice:
			v, err := input("Price in ETH", func(s string) error {
				if _, err := price.ParseEther(s); err != nil {
					return err
				}
				return nil
			})
			if err != nil {
				uc.Back()
				if errors.Is(err, errCancelled) {
					continue
				}
				return err
			}
			if err := uc.SetPrice(v); err != nil {
				printError(out, err)
				continue
			}
			if err := uc.Next(c); err != nil {
				printError(out, err)
			}

		case wizard.ListingConfirm:
			printPreview(out, uc.Preview())
			ok, err := confirm("List it")
			if err != nil {
				return err
			}
			if !ok {
				uc.Back()
				continue
			}
			p, err := uc.List(c)
			if err != nil {
				printError(out, err)
				uc.Back()
				continue
			}
			return follow(c, d, out, uc.Submitter(), p)

		default:
			return nil
		}
	}
}

func browseFlow(c bCtx.Ctx, d *deps, out io.Writer) error {
	me := d.sender.From()
	for {
		if err := d.mode.Err(); err != nil {
			printError(out, err)
		}
		ls := d.mode.Listings()
		if len(ls) == 0 {
			dimColor.Fprintln(out, "no active listings")
		}

		items := make([]string, 0, len(ls)+2)
		for _, l := range ls {
			items = append(items, formatListing(l))
		}
		items = append(items, "Refresh", itemBack)

		idx, item, err := choose("Active listings", "Listing", items)
		if err != nil || item == itemBack {
			return err
		}
		if item == "Refresh" {
			_ = d.mode.Refresh(c)
			continue
		}

		if err := tradeFlow(c, d, out, me, ls[idx]); err != nil {
			if errors.Is(err, errCancelled) {
				continue
			}
			return err
		}
		_ = d.mode.Refresh(c)
	}
}

func tradeFlow(c bCtx.Ctx, d *deps, out io.Writer, me domain.Address, l *listing.Listing) error {
	printListings(out, []*listing.Listing{l})

	var p *domain.PendingTransaction
	if !me.IsEmpty() && me.Equals(l.Seller) {
		ok, err := confirm("Delist it")
		if err != nil {
			return err
		}
		if !ok {
			return errCancelled
		}
		p, err = d.trade.Delist(c, l.Id)
		if err != nil {
			return err
		}
	} else {
		ok, err := confirm(fmt.Sprintf("Buy for %s ETH", l.Price.String()))
		if err != nil {
			return err
		}
		if !ok {
			return errCancelled
		}
		p, err = d.trade.Buy(c, l.Id, l.Price.String())
		if err != nil {
			return err
		}
	}
	return follow(c, d, out, d.trade.Submitter(), p)
}

func swapFlow(c bCtx.Ctx, d *deps, out io.Writer) error {
	uc := d.swap
	tokens, err := uc.Tokens(c)
	if err != nil {
		return err
	}
	reserves, err := uc.Reserves(c)
	if err != nil {
		return err
	}
	printReserves(out, tokens, reserves)
	if info, err := uc.FeeInfo(c); err == nil {
		labelColor.Fprint(out, "fee       ")
		fmt.Fprintf(out, "%v%%\n", info.FeePercentage)
	}

	_, item, err := choose("Swap", "Action", []string{"A for B", "B for A", "Add liquidity", itemBack})
	if err != nil || item == itemBack {
		return err
	}

	var p *domain.PendingTransaction
	switch item {
	case "Add liquidity":
		amountA, err := input("Amount of token A", validateNonEmpty)
		if err != nil {
			return err
		}
		amountB, err := input("Amount of token B", validateNonEmpty)
		if err != nil {
			return err
		}
		if p, err = uc.AddLiquidity(c, amountA, amountB); err != nil {
			return err
		}
	default:
		reserveIn, reserveOut := reserves.ReserveA, reserves.ReserveB
		if item == "B for A" {
			reserveIn, reserveOut = reserveOut, reserveIn
		}
		amountIn, err := input("Amount in", validateNonEmpty)
		if err != nil {
			return err
		}
		minOut := ""
		if quoted, err := uc.AmountOut(c, amountIn, reserveIn, reserveOut); err == nil {
			labelColor.Fprint(out, "expected  ")
			fmt.Fprintln(out, price.FormatEther(quoted))
			minOut = price.FormatEther(quoted)
		} else {
			warnColor.Fprintf(out, "no quote: %s\n", err)
		}
		ok, err := confirm("Swap")
		if err != nil {
			return err
		}
		if !ok {
			return errCancelled
		}
		if item == "B for A" {
			p, err = uc.SwapBForA(c, amountIn, minOut)
		} else {
			p, err = uc.SwapAForB(c, amountIn, minOut)
		}
		if err != nil {
			return err
		}
	}
	return follow(c, d, out, uc.Submitter(), p)
}
