package cli

import (
	"context"

	"github.com/spf13/cobra"

	"storefront/shop"
)

// NewCouponCommand creates the coupon command group.
func NewCouponCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coupon",
		Short: "List and try promotional codes",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List known coupons and whether they are still valid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(rootOpts, cmd, func(ctx context.Context, a *app) error {
				a.printer.PrintCatalog(a.shop.Catalog(), a.clock.Now())
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "apply <code>",
		Short: "Show the cart total with a coupon applied",
		Long: `Validate a coupon and show the discounted cart total.

Coupons are not remembered between commands; pass --coupon to checkout to
use one when paying.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(rootOpts, cmd, func(ctx context.Context, a *app) error {
				return a.report(a.shop.Handle(ctx, shop.ApplyCoupon{Code: args[0]}), true)
			})
		},
	})

	return cmd
}
