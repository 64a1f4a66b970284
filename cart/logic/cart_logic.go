package logic

import (
	"context"

	"go.uber.org/zap"

	"storefront/common"
	"storefront/store"
)

// DefaultCartKey is the durable key the cart is stored under.
const DefaultCartKey = "cart"

// CartLogic is the Cart Store. Every mutation is a read-modify-write of the
// whole cart; the returned state is what was written. A non-nil error with a
// non-nil state means the change was computed but could not be persisted.
type CartLogic interface {
	Load(ctx context.Context) *CartState
	Add(ctx context.Context, name string, unitPrice float64) (*CartState, error)
	ChangeQuantity(ctx context.Context, index, delta int) (*CartState, error)
	Remove(ctx context.Context, index int) (*CartState, error)
	Clear(ctx context.Context) (*CartState, error)
	Count(ctx context.Context) int
	Total(ctx context.Context) float64
	Items(ctx context.Context) []CartItem
}

// DefaultCartLogic keeps the cart in a durable region.
type DefaultCartLogic struct {
	durable store.Region
	key     string
	logger  *zap.Logger
}

// Option configures a DefaultCartLogic.
type Option func(*DefaultCartLogic)

// WithKey overrides the durable key.
func WithKey(key string) Option {
	return func(l *DefaultCartLogic) {
		if key != "" {
			l.key = key
		}
	}
}

// WithLogger sets the logger used for fail-soft reports.
func WithLogger(logger *zap.Logger) Option {
	return func(l *DefaultCartLogic) {
		l.logger = common.LoggerOrNop(logger)
	}
}

// NewCartLogic creates a Cart Store over the durable region.
func NewCartLogic(durable store.Region, opts ...Option) CartLogic {
	l := &DefaultCartLogic{
		durable: durable,
		key:     DefaultCartKey,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the cart. Missing, corrupt or unreadable data yields an empty cart.
func (l *DefaultCartLogic) Load(ctx context.Context) *CartState {
	res := store.ReadJSON(ctx, l.durable, l.key, []CartItem{})
	if res.Degraded() {
		l.logger.Warn("cart unreadable, treating as empty",
			zap.String("key", l.key),
			zap.Stringer("status", res.Status),
			zap.Error(res.Err))
	}
	return &CartState{Items: normalize(res.Value)}
}

func (l *DefaultCartLogic) save(ctx context.Context, state *CartState) (*CartState, error) {
	if err := store.WriteJSON(ctx, l.durable, l.key, state.Items); err != nil {
		l.logger.Warn("cart write failed", zap.String("key", l.key), zap.Error(err))
		return state, err
	}
	return state, nil
}

func (l *DefaultCartLogic) Count(ctx context.Context) int {
	return l.Load(ctx).Count()
}

func (l *DefaultCartLogic) Total(ctx context.Context) float64 {
	return l.Load(ctx).Subtotal()
}

// Items returns a fresh copy of the cart lines; editing it changes nothing
// until it is written back through a mutation.
func (l *DefaultCartLogic) Items(ctx context.Context) []CartItem {
	return l.Load(ctx).Clone().Items
}
