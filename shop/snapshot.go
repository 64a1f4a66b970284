package shop

import (
	"errors"

	account "storefront/account/logic"
	"storefront/authui"
	cart "storefront/cart/logic"
	"storefront/common"
	coupon "storefront/coupon/logic"
	"storefront/store"
)

// CodeWriteFailed marks a notice for a change that could not be persisted.
const CodeWriteFailed = "WRITE_FAILED"

// MsgNotSaved is shown when a store write fails.
const MsgNotSaved = "Your changes could not be saved."

// Notice is the user-facing result of one action.
type Notice struct {
	OK      bool
	Message string
	// Code is empty on success, otherwise the rejection category.
	Code string
}

func okNotice(message string) Notice {
	return Notice{OK: true, Message: message}
}

func noticeFromError(err error) Notice {
	if cmdErr, ok := common.AsCommandError(err); ok {
		return Notice{Message: cmdErr.Message, Code: cmdErr.Code.String()}
	}
	if errors.Is(err, store.ErrWrite) {
		return Notice{Message: MsgNotSaved, Code: CodeWriteFailed}
	}
	return Notice{Message: err.Error(), Code: "UNKNOWN"}
}

// Snapshot is everything a rendering layer needs, derived in one pass.
type Snapshot struct {
	Items    []cart.CartItem
	Count    int
	Subtotal float64
	Total    float64
	Coupon   *coupon.Coupon
	Auth     account.AuthContext
	View     authui.View
}

// Discount is the amount taken off by the active coupon.
func (s Snapshot) Discount() float64 {
	return s.Subtotal - s.Total
}

// Outcome is returned by Handle.
type Outcome struct {
	Notice   Notice
	Snapshot Snapshot
	// Receipt is set only for a completed checkout.
	Receipt *Receipt
}
