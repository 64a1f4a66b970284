package cli

import (
	"context"

	"github.com/spf13/cobra"

	"storefront/shop"
)

// CheckoutOptions holds flags for the checkout command.
type CheckoutOptions struct {
	*RootOptions
	Coupon string
}

// NewCheckoutCommand creates the checkout command.
func NewCheckoutCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckoutOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Pay for the cart and earn reward points",
		Long: `Complete the purchase: apply the optional coupon, credit one reward
point per $10 of the final total to the stored account, and empty the cart.

Example:
  storefront checkout --coupon SAVE10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(rootOpts, cmd, func(ctx context.Context, a *app) error {
				return runCheckout(ctx, a, opts)
			})
		},
	}

	cmd.Flags().StringVar(&opts.Coupon, "coupon", "", "coupon code to apply before paying")

	return cmd
}

func runCheckout(ctx context.Context, a *app, opts *CheckoutOptions) error {
	if opts.Coupon != "" {
		// A rejected code leaves no coupon active and checkout continues at full price.
		applied := a.shop.Handle(ctx, shop.ApplyCoupon{Code: opts.Coupon})
		if a.format != "json" {
			a.printer.PrintNotice(applied.Notice)
		}
	}
	return a.report(a.shop.Handle(ctx, shop.Checkout{}), false)
}
