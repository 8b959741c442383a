package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/x-xyz/nftwizard/base/price"
	"github.com/x-xyz/nftwizard/domain"
	"github.com/x-xyz/nftwizard/domain/swap"
)

var errNoPool = errors.New("no swap pool configured for this network")

func swapUseCase(cmd *cobra.Command, a *app) (*deps, swap.UseCase, error) {
	_, d, err := setup(cmd, a)
	if err != nil {
		return nil, nil, err
	}
	if d.swap == nil {
		return nil, nil, errNoPool
	}
	return d, d.swap, nil
}

func newSwapCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap",
		Short: "Token pair pool: reserves, quotes, swaps and liquidity",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "reserves",
		Short: "Show the pool tokens and reserves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, uc, err := swapUseCase(cmd, a)
			if err != nil {
				return err
			}
			c := contextOf(cmd)
			tokens, err := uc.Tokens(c)
			if err != nil {
				return err
			}
			reserves, err := uc.Reserves(c)
			if err != nil {
				return err
			}
			printReserves(cmd.OutOrStdout(), tokens, reserves)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "fee",
		Short: "Show the pool fee",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, uc, err := swapUseCase(cmd, a)
			if err != nil {
				return err
			}
			info, err := uc.FeeInfo(contextOf(cmd))
			if err != nil {
				return err
			}
			labelColor.Fprint(cmd.OutOrStdout(), "fee       ")
			cmd.Printf("%v%% (%s/%s)\n", info.FeePercentage, info.FeeRate, info.FeeDenominator)
			return nil
		},
	})

	var bForA bool
	quote := &cobra.Command{
		Use:   "quote <amountIn>",
		Short: "Quote the output of a swap",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, uc, err := swapUseCase(cmd, a)
			if err != nil {
				return err
			}
			c := contextOf(cmd)
			reserves, err := uc.Reserves(c)
			if err != nil {
				return err
			}
			in, out := reserves.ReserveA, reserves.ReserveB
			if bForA {
				in, out = out, in
			}
			amountOut, err := uc.AmountOut(c, args[0], in, out)
			if err != nil {
				return err
			}
			labelColor.Fprint(cmd.OutOrStdout(), "amount out ")
			cmd.Println(price.FormatEther(amountOut))
			return nil
		},
	}
	quote.Flags().BoolVar(&bForA, "b-for-a", false, "quote token B in for token A out")
	cmd.AddCommand(quote)

	swapCmd := func(use, short string, fn func(uc swap.UseCase, cmd *cobra.Command, args []string) (*domain.PendingTransaction, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.RangeArgs(1, 2),
			RunE: func(cmd *cobra.Command, args []string) error {
				d, uc, err := swapUseCase(cmd, a)
				if err != nil {
					return err
				}
				p, err := fn(uc, cmd, args)
				if err != nil {
					return err
				}
				return track(cmd, contextOf(cmd), d, uc.Submitter(), p)
			},
		}
	}
	optional := func(args []string, i int) string {
		if len(args) > i {
			return args[i]
		}
		return ""
	}

	cmd.AddCommand(
		swapCmd("a-for-b <amountIn> [minAmountOut]", "Swap token A for token B",
			func(uc swap.UseCase, cmd *cobra.Command, args []string) (*domain.PendingTransaction, error) {
				return uc.SwapAForB(contextOf(cmd), args[0], optional(args, 1))
			}),
		swapCmd("b-for-a <amountIn> [minAmountOut]", "Swap token B for token A",
			func(uc swap.UseCase, cmd *cobra.Command, args []string) (*domain.PendingTransaction, error) {
				return uc.SwapBForA(contextOf(cmd), args[0], optional(args, 1))
			}),
	)

	addLiquidity := swapCmd("add-liquidity <amountA> <amountB>", "Add liquidity to the pool",
		func(uc swap.UseCase, cmd *cobra.Command, args []string) (*domain.PendingTransaction, error) {
			return uc.AddLiquidity(contextOf(cmd), args[0], args[1])
		})
	addLiquidity.Args = cobra.ExactArgs(2)
	cmd.AddCommand(addLiquidity)

	return cmd
}
