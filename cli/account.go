package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	account "storefront/account/logic"
	"storefront/shop"
)

// AccountOptions holds the account form flags.
type AccountOptions struct {
	*RootOptions
	Form account.Form
}

// NewAccountCommand creates the account command group.
func NewAccountCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Create, edit and remove the local account",
	}

	cmd.AddCommand(newAccountSaveCommand(rootOpts))
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the account form as it currently appears",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(rootOpts, cmd, func(ctx context.Context, a *app) error {
				out := a.shop.Handle(ctx, shop.Refresh{})
				if a.format == "json" {
					return a.writeJSON(out)
				}
				a.printer.PrintAccount(out.Snapshot)
				return nil
			})
		},
	})
	cmd.AddCommand(newAccountDeleteCommand(rootOpts))
	cmd.AddCommand(&cobra.Command{
		Use:   "logout",
		Short: "End the login session and keep the account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(rootOpts, cmd, func(ctx context.Context, a *app) error {
				return a.report(a.shop.Handle(ctx, shop.Logout{}), false)
			})
		},
	})

	return cmd
}

func newAccountSaveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AccountOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Submit the account form",
		Long: `Submit the account form. When logged in this edits the stored account;
otherwise it creates a new account and logs in.

Example:
  storefront account save --name "Jane Doe" --email jane@example.com --password s3cret`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(rootOpts, cmd, func(ctx context.Context, a *app) error {
				return a.report(a.shop.Handle(ctx, shop.SubmitAccount{Form: opts.Form}), false)
			})
		},
	}

	cmd.Flags().StringVar(&opts.Form.FullName, "name", "", "full name (required)")
	cmd.Flags().StringVar(&opts.Form.Email, "email", "", "email address (required)")
	cmd.Flags().StringVar(&opts.Form.Password, "password", "", "password (required)")
	cmd.Flags().StringVar(&opts.Form.Address, "address", "", "shipping address")
	cmd.Flags().StringVar(&opts.Form.Billing, "billing", "", "billing details")

	return cmd
}

func newAccountDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete the account after confirmation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var confirm account.Confirmer = account.Always(true)
			if !yes {
				confirm = promptConfirmer{in: cmd.InOrStdin(), out: cmd.OutOrStdout()}
			}
			return withApp(rootOpts, cmd, func(ctx context.Context, a *app) error {
				return a.report(a.shop.Handle(ctx, shop.DeleteAccount{Confirm: confirm}), false)
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}

// promptConfirmer asks on out and reads a y/N answer from in.
type promptConfirmer struct {
	in  io.Reader
	out io.Writer
}

func (p promptConfirmer) Confirm(prompt string) bool {
	fmt.Fprintf(p.out, "%s [y/N]: ", prompt)
	line, _ := bufio.NewReader(p.in).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
