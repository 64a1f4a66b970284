package logic

import "context"

// ChangeQuantity adds delta to the line at index, dropping the line once its
// quantity reaches zero or below. An index outside the cart is a no-op.
func (l *DefaultCartLogic) ChangeQuantity(ctx context.Context, index, delta int) (*CartState, error) {
	state := l.Load(ctx)
	if index < 0 || index >= len(state.Items) {
		return state, nil
	}

	state.Items[index].Quantity += delta
	if state.Items[index].Quantity <= 0 {
		state.Items = append(state.Items[:index], state.Items[index+1:]...)
	}
	return l.save(ctx, state)
}
