package logic

// Error message constants for coupon domain.
const (
	ErrMsgInvalidCode = "Invalid coupon code."
	ErrMsgExpired     = "This coupon has expired."
)

// Notices shown for successful coupon actions.
const (
	MsgRemoved     = "Coupon removed."
	msgAppliedTmpl = "Coupon %q applied successfully!"
)
