package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"storefront/shop"
)

// NewCartCommand creates the cart command group.
func NewCartCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show and change the shopping cart",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the cart and its total",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(rootOpts, cmd, func(ctx context.Context, a *app) error {
				return a.report(a.shop.Handle(ctx, shop.Refresh{}), true)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <name> <price>",
		Short: "Add one unit of an item",
		Long: `Add one unit of an item. Adding a name already in the cart increases
its quantity instead of adding a second line.

Example:
  storefront cart add "Desk Lamp" 24.99`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			price, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return WrapExitError(ExitCommandError, fmt.Sprintf("invalid price %q", args[1]), err)
			}
			return withApp(rootOpts, cmd, func(ctx context.Context, a *app) error {
				return a.report(a.shop.Handle(ctx, shop.AddItem{Name: args[0], Price: price}), true)
			})
		},
	})

	cmd.AddCommand(newLineCommand(rootOpts, "inc <line>", "Increase a line's quantity by one", func(i int) shop.Command {
		return shop.ChangeQuantity{Index: i, Delta: 1}
	}))
	cmd.AddCommand(newLineCommand(rootOpts, "dec <line>", "Decrease a line's quantity by one, removing it at zero", func(i int) shop.Command {
		return shop.ChangeQuantity{Index: i, Delta: -1}
	}))
	cmd.AddCommand(newLineCommand(rootOpts, "remove <line>", "Remove a line", func(i int) shop.Command {
		return shop.RemoveItem{Index: i}
	}))

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(rootOpts, cmd, func(ctx context.Context, a *app) error {
				return a.report(a.shop.Handle(ctx, shop.ClearCart{}), true)
			})
		},
	})

	return cmd
}

// newLineCommand builds a command addressing a cart line by its 1-based
// number as printed by "cart show".
func newLineCommand(rootOpts *RootOptions, use, short string, build func(index int) shop.Command) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := strconv.Atoi(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, fmt.Sprintf("invalid line number %q", args[0]), err)
			}
			return withApp(rootOpts, cmd, func(ctx context.Context, a *app) error {
				return a.report(a.shop.Handle(ctx, build(line-1)), true)
			})
		},
	}
}
