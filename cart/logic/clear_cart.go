package logic

import (
	"context"

	"go.uber.org/zap"

	"storefront/store"
)

// Clear empties the cart by removing its key.
func (l *DefaultCartLogic) Clear(ctx context.Context) (*CartState, error) {
	state := EmptyState()
	if err := store.Delete(ctx, l.durable, l.key); err != nil {
		l.logger.Warn("cart clear failed", zap.String("key", l.key), zap.Error(err))
		return state, err
	}
	return state, nil
}
