package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/x-xyz/nftwizard/base/price"
	"github.com/x-xyz/nftwizard/domain"
	"github.com/x-xyz/nftwizard/domain/account"
	"github.com/x-xyz/nftwizard/domain/listing"
	"github.com/x-xyz/nftwizard/domain/swap"
)

var (
	okColor    = color.New(color.FgGreen, color.Bold)
	warnColor  = color.New(color.FgYellow)
	errColor   = color.New(color.FgRed, color.Bold)
	labelColor = color.New(color.FgCyan)
	dimColor   = color.New(color.Faint)
)

func phaseColor(p domain.TxPhase) *color.Color {
	switch p {
	case domain.TxPhaseConfirmed:
		return okColor
	case domain.TxPhaseFailed:
		return errColor
	case domain.TxPhaseSubmitted, domain.TxPhaseConfirming:
		return warnColor
	}
	return dimColor
}

// explorerLink renders the explorer.txUrl template, empty when none is configured
func explorerLink(tpl string, hash domain.TxHash) string {
	if len(tpl) == 0 || hash.IsEmpty() {
		return ""
	}
	if !strings.Contains(tpl, "%s") {
		return strings.TrimRight(tpl, "/") + "/" + string(hash)
	}
	return fmt.Sprintf(tpl, hash)
}

func printTx(out io.Writer, explorerTpl string, p domain.PendingTransaction) {
	phaseColor(p.Phase).Fprintf(out, "%-10s", p.Phase)
	fmt.Fprintf(out, " %s", p.Tag)
	if !p.Hash.IsEmpty() {
		fmt.Fprintf(out, " %s", p.Hash)
	}
	fmt.Fprintln(out)
	if link := explorerLink(explorerTpl, p.Hash); len(link) > 0 {
		dimColor.Fprintf(out, "           %s\n", link)
	}
	if len(p.Err) > 0 {
		errColor.Fprintf(out, "           %s\n", p.Err)
	}
}

func printError(out io.Writer, err error) {
	errColor.Fprintf(out, "✗ %s\n", err)
}

func shortHex(s string) string {
	if len(s) <= 14 {
		return s
	}
	return s[:8] + "…" + s[len(s)-4:]
}

func formatListing(l *listing.Listing) string {
	return fmt.Sprintf("%s  token #%s  %s ETH  seller %s",
		shortHex(l.Id), l.TokenId, l.Price.String(), shortHex(string(l.Seller)))
}

func printListings(out io.Writer, ls []*listing.Listing) {
	if len(ls) == 0 {
		dimColor.Fprintln(out, "no active listings")
		return
	}
	for _, l := range ls {
		labelColor.Fprintf(out, "%s\n", l.Id)
		fmt.Fprintf(out, "  token #%s of %s\n", l.TokenId, l.NftContract)
		fmt.Fprintf(out, "  price  %s ETH\n", l.Price.String())
		fmt.Fprintf(out, "  seller %s\n", l.Seller)
	}
}

func printSnapshot(out io.Writer, s *account.Snapshot) {
	labelColor.Fprint(out, "address   ")
	fmt.Fprintln(out, s.Address)
	labelColor.Fprint(out, "tokens    ")
	if len(s.OwnedTokens) == 0 {
		dimColor.Fprintln(out, "none")
	} else {
		ids := make([]string, len(s.OwnedTokens))
		for i, id := range s.OwnedTokens {
			ids[i] = "#" + id.String()
		}
		fmt.Fprintln(out, strings.Join(ids, " "))
	}
	labelColor.Fprint(out, "claimed   ")
	fmt.Fprintln(out, s.HasClaimed)
	labelColor.Fprint(out, "approved  ")
	fmt.Fprintln(out, s.Approved)
}

func printPreview(out io.Writer, p *price.FeePreview) {
	labelColor.Fprint(out, "price     ")
	fmt.Fprintf(out, "%s ETH\n", p.Price.String())
	labelColor.Fprint(out, "fee       ")
	fmt.Fprintf(out, "%s%%\n", p.FeePercent())
	labelColor.Fprint(out, "you get   ")
	okColor.Fprintf(out, "%s ETH\n", p.NetDisplay())
}

func printReserves(out io.Writer, t *swap.Tokens, r *swap.Reserves) {
	labelColor.Fprint(out, "token A   ")
	fmt.Fprintf(out, "%s  reserve %s\n", t.TokenA, price.FormatEther(r.ReserveA))
	labelColor.Fprint(out, "token B   ")
	fmt.Fprintf(out, "%s  reserve %s\n", t.TokenB, price.FormatEther(r.ReserveB))
}
