package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	account "storefront/account/logic"
	cart "storefront/cart/logic"
	"storefront/common"
	"storefront/config"
	coupon "storefront/coupon/logic"
	"storefront/shop"
	"storefront/store"
)

// durableRegionName is the SQLite region holding the cart and account.
const durableRegionName = "durable"

// app is one visit: a wired Shop plus the resources behind it.
type app struct {
	shop    *shop.Shop
	printer *shop.Printer
	out     io.Writer
	format  string
	clock   common.Clock
	logger  *zap.Logger
	closers []func() error
}

func openApp(ctx context.Context, opts *RootOptions, cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load config", err)
	}
	if opts.Database != "" {
		cfg.Durable.Path = opts.Database
	}
	if opts.RedisURL != "" {
		cfg.Session.RedisURL = opts.RedisURL
	}
	level := cfg.Log.Level
	if opts.Verbose {
		level = "debug"
	}

	logger, err := common.NewLogger(level, cfg.Log.Development)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to create logger", err)
	}

	a := &app{
		out:     cmd.OutOrStdout(),
		format:  opts.Format,
		clock:   common.SystemClock{},
		logger:  logger,
		printer: shop.NewPrinter(cmd.OutOrStdout(), !opts.NoColor),
	}
	if opts.Today != "" {
		today, _ := time.ParseInLocation(dateLayout, opts.Today, time.Local)
		a.clock = common.FixedClock{At: today}
	}

	logger.Debug("opening durable store", zap.String("path", cfg.Durable.Path))
	durable, err := store.OpenSQLite(cfg.Durable.Path, durableRegionName)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open durable store", err)
	}
	a.closers = append(a.closers, durable.Close)

	var session store.Region
	if cfg.Session.RedisURL != "" {
		logger.Debug("connecting session store", zap.String("url", cfg.Session.RedisURL))
		redisRegion, err := store.DialRedis(ctx, cfg.Session.RedisURL, cfg.Session.Prefix, cfg.Session.TTL)
		if err != nil {
			a.Close()
			return nil, WrapExitError(ExitCommandError, "failed to connect session store", err)
		}
		a.closers = append(a.closers, redisRegion.Close)
		session = redisRegion
	} else {
		session = store.NewMemoryRegion()
	}

	catalog, err := cfg.Catalog()
	if err != nil {
		a.Close()
		return nil, WrapExitError(ExitCommandError, "invalid coupon catalog", err)
	}

	carts := cart.NewCartLogic(durable, cart.WithKey(cfg.Keys.Cart), cart.WithLogger(logger))
	engine := coupon.NewEngine(catalog, a.clock, logger)
	accounts := account.NewStore(durable, session,
		account.WithKeys(cfg.Keys.Account, cfg.Keys.Session),
		account.WithLogger(logger))
	a.shop = shop.New(carts, engine, accounts, shop.WithLogger(logger))
	return a, nil
}

// Close releases the stores in reverse order of opening.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Warn("close failed", zap.Error(err))
		}
	}
	a.closers = nil
	_ = a.logger.Sync()
}

// withApp opens a visit, runs fn and closes the visit.
func withApp(opts *RootOptions, cmd *cobra.Command, fn func(ctx context.Context, a *app) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	a, err := openApp(ctx, opts, cmd)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(ctx, a)
}

// report prints an outcome and turns a refused action into an ExitError.
func (a *app) report(out shop.Outcome, showSnapshot bool) error {
	if a.format == "json" {
		if err := a.writeJSON(out); err != nil {
			return err
		}
	} else {
		a.printer.PrintNotice(out.Notice)
		a.printer.PrintReceipt(out.Receipt)
		if showSnapshot {
			a.printer.PrintSnapshot(out.Snapshot)
		}
	}
	if !out.Notice.OK {
		return &ExitError{Code: ExitRejected, Message: out.Notice.Message, Reported: true}
	}
	return nil
}

type jsonOutcome struct {
	OK       bool            `json:"ok"`
	Message  string          `json:"message,omitempty"`
	Code     string          `json:"code,omitempty"`
	Items    []cart.CartItem `json:"items"`
	Count    int             `json:"count"`
	Subtotal float64         `json:"subtotal"`
	Total    float64         `json:"total"`
	Coupon   string          `json:"coupon,omitempty"`
	LoggedIn bool            `json:"loggedIn"`
	Email    string          `json:"email,omitempty"`
	Rewards  *int            `json:"rewards,omitempty"`
	Points   *int            `json:"pointsEarned,omitempty"`
}

func (a *app) writeJSON(out shop.Outcome) error {
	snap := out.Snapshot
	doc := jsonOutcome{
		OK:       out.Notice.OK,
		Message:  out.Notice.Message,
		Code:     out.Notice.Code,
		Items:    snap.Items,
		Count:    snap.Count,
		Subtotal: snap.Subtotal,
		Total:    snap.Total,
		LoggedIn: snap.View.Authenticated,
	}
	if doc.Items == nil {
		doc.Items = []cart.CartItem{}
	}
	if snap.Coupon != nil {
		doc.Coupon = snap.Coupon.Code
	}
	if snap.View.Authenticated {
		doc.Email = snap.Auth.Account.Email
		balance := snap.View.RewardsBalance
		doc.Rewards = &balance
	}
	if out.Receipt != nil {
		points := out.Receipt.Accrual.Points
		doc.Points = &points
	}

	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
