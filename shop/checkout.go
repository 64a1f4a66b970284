package shop

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	account "storefront/account/logic"
	cart "storefront/cart/logic"
	coupon "storefront/coupon/logic"
)

const msgCheckoutTmpl = "Checkout complete! Final total: $%.2f"

// Receipt records a completed checkout.
type Receipt struct {
	Items      []cart.CartItem
	Subtotal   float64
	Coupon     *coupon.Coupon
	FinalTotal float64
	Accrual    account.Accrual
	Message    string
}

// checkout computes the discounted total, accrues rewards on it and only
// then clears the cart. It always completes: an empty or unreadable cart
// checks out at $0.00 for 0 points, and write failures after the total is
// fixed are logged and do not undo the checkout.
func (s *Shop) checkout(ctx context.Context) (Notice, *Receipt) {
	state := s.cart.Load(ctx)

	subtotal := state.Subtotal()
	final := s.coupons.DiscountedTotal(subtotal)

	accrual, err := s.accounts.AccrueRewards(ctx, final)
	if err != nil {
		s.logger.Warn("rewards not saved", zap.Int("points", accrual.Points), zap.Error(err))
	}

	if _, err := s.cart.Clear(ctx); err != nil {
		s.logger.Warn("cart not cleared after checkout", zap.Error(err))
	}

	receipt := &Receipt{
		Items:      state.Items,
		Subtotal:   subtotal,
		FinalTotal: final,
		Accrual:    accrual,
		Message:    fmt.Sprintf(msgCheckoutTmpl, final),
	}
	if active, ok := s.coupons.Active(); ok {
		receipt.Coupon = &active
	}

	s.logger.Info("checkout complete",
		zap.Float64("subtotal", subtotal),
		zap.Float64("final_total", final),
		zap.Int("points", accrual.Points),
		zap.Bool("credited", accrual.Credited))
	return okNotice(receipt.Message), receipt
}
