package logic

import "context"

// Remove deletes the line at index. An index outside the cart is a no-op.
func (l *DefaultCartLogic) Remove(ctx context.Context, index int) (*CartState, error) {
	state := l.Load(ctx)
	if index < 0 || index >= len(state.Items) {
		return state, nil
	}

	state.Items = append(state.Items[:index], state.Items[index+1:]...)
	return l.save(ctx, state)
}
