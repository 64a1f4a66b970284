package logic

// Error message constants for cart domain.
const (
	ErrMsgNameRequired  = "Item name is required"
	ErrMsgPricePositive = "Unit price must be positive"
)
