// Package shop is the application facade used by rendering layers. Every
// user action goes through Handle, mutates exactly one store and returns a
// Notice together with a Snapshot derived from scratch afterwards.
package shop

import (
	"context"
	"sync"

	"go.uber.org/zap"

	account "storefront/account/logic"
	"storefront/authui"
	cart "storefront/cart/logic"
	"storefront/common"
	coupon "storefront/coupon/logic"
)

// Shop wires the cart, the visit's coupon session and the account store.
type Shop struct {
	mu       sync.Mutex
	cart     cart.CartLogic
	engine   *coupon.Engine
	coupons  *coupon.Session
	accounts *account.Store
	logger   *zap.Logger

	nextSub     int
	subscribers map[int]func(Snapshot)
}

// Option configures a Shop.
type Option func(*Shop)

// WithLogger sets the facade logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Shop) {
		s.logger = common.LoggerOrNop(logger)
	}
}

// New creates a facade. Each Shop is one visit: it starts its own coupon
// session with no active coupon.
func New(carts cart.CartLogic, engine *coupon.Engine, accounts *account.Store, opts ...Option) *Shop {
	if engine == nil {
		engine = coupon.NewEngine(nil, nil, nil)
	}
	s := &Shop{
		cart:        carts,
		engine:      engine,
		coupons:     engine.NewSession(),
		accounts:    accounts,
		logger:      zap.NewNop(),
		subscribers: make(map[int]func(Snapshot)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Catalog lists the coupons the visit can apply.
func (s *Shop) Catalog() []coupon.Coupon {
	return s.engine.Catalog().All()
}

// OnChange registers fn to receive the snapshot produced by every Handle
// call. The returned function unregisters it.
func (s *Shop) OnChange(fn func(Snapshot)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subscribers[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

// Current derives a snapshot without changing anything.
func (s *Shop) Current(ctx context.Context) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.derive(ctx)
}

// Handle runs one command, re-derives the snapshot and publishes it.
// Confirmation for DeleteAccount is asked before the shop is locked, so a
// confirmer may block on the user or read Current.
func (s *Shop) Handle(ctx context.Context, cmd Command) Outcome {
	if del, ok := cmd.(DeleteAccount); ok {
		cmd = DeleteAccount{Confirm: account.Always(del.Confirm != nil && del.Confirm.Confirm(account.DeletePrompt))}
	}

	s.mu.Lock()
	notice, receipt := s.dispatch(ctx, cmd)
	snap := s.derive(ctx)
	subs := make([]func(Snapshot), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
	return Outcome{Notice: notice, Snapshot: snap, Receipt: receipt}
}

func (s *Shop) derive(ctx context.Context) Snapshot {
	state := s.cart.Load(ctx)
	subtotal := state.Subtotal()
	auth := s.accounts.Context(ctx)

	snap := Snapshot{
		Items:    state.Clone().Items,
		Count:    state.Count(),
		Subtotal: subtotal,
		Total:    s.coupons.DiscountedTotal(subtotal),
		Auth:     auth,
		View:     authui.Derive(auth),
	}
	if active, ok := s.coupons.Active(); ok {
		snap.Coupon = &active
	}
	return snap
}
