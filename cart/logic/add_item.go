package logic

import (
	"context"

	"go.uber.org/zap"

	"storefront/common"
)

// Add increments the line called name, or appends it with quantity 1.
func (l *DefaultCartLogic) Add(ctx context.Context, name string, unitPrice float64) (*CartState, error) {
	if err := common.FirstError(
		common.RequireNotBlank(name, ErrMsgNameRequired),
		common.RequirePositive(unitPrice, ErrMsgPricePositive),
	); err != nil {
		return nil, err
	}

	state := l.Load(ctx)
	if idx := state.IndexOf(name); idx >= 0 {
		state.Items[idx].Quantity++
	} else {
		state.Items = append(state.Items, CartItem{Name: name, Price: unitPrice, Quantity: 1})
	}

	l.logger.Debug("item added", zap.String("name", name), zap.Float64("price", unitPrice))
	return l.save(ctx, state)
}
