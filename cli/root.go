package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Database   string
	RedisURL   string
	Today      string
	Format     string // "json" | "text"
	NoColor    bool
	Verbose    bool
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// dateLayout is the layout accepted by --today and coupon expiry dates.
const dateLayout = "2006-01-02"

// NewRootCommand creates the root command for the storefront CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "storefront",
		Short: "Storefront cart, coupons and account from the terminal",
		Long: `Storefront keeps a shopping cart and an account record in a durable
SQLite file and the login flag in a session store (Redis when configured,
otherwise memory that ends with the process).

Each invocation is one visit: an applied coupon lasts only for that command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if opts.Today != "" {
				if _, err := time.Parse(dateLayout, opts.Today); err != nil {
					return fmt.Errorf("invalid --today %q: want YYYY-MM-DD", opts.Today)
				}
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "config file (default ./storefront.yaml)")
	cmd.PersistentFlags().StringVar(&opts.Database, "db", "", "path to SQLite database (overrides durable.path)")
	cmd.PersistentFlags().StringVar(&opts.RedisURL, "redis-url", "", "Redis URL for the session store (overrides session.redis_url)")
	cmd.PersistentFlags().StringVar(&opts.Today, "today", "", "evaluate coupon expiry as of this date (YYYY-MM-DD)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().BoolVar(&opts.NoColor, "no-color", false, "disable ANSI colors")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewCartCommand(opts))
	cmd.AddCommand(NewCouponCommand(opts))
	cmd.AddCommand(NewAccountCommand(opts))
	cmd.AddCommand(NewCheckoutCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
