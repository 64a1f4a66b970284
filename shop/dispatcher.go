package shop

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	account "storefront/account/logic"
	"storefront/common"
)

// Notices for cart actions.
const (
	msgAddedTmpl      = "Added %s to cart."
	MsgCartUpdated    = "Cart updated."
	MsgItemRemoved    = "Item removed."
	MsgCartCleared    = "Cart cleared."
	errMsgUnknownTmpl = "Unknown command type: %T"
)

func (s *Shop) dispatch(ctx context.Context, cmd Command) (Notice, *Receipt) {
	switch c := cmd.(type) {
	case Refresh:
		return okNotice(""), nil

	case AddItem:
		s.logger.Info("adding item", zap.String("name", c.Name), zap.Float64("price", c.Price))
		if _, err := s.cart.Add(ctx, c.Name, c.Price); err != nil {
			return s.reject(cmd, err), nil
		}
		return okNotice(fmt.Sprintf(msgAddedTmpl, c.Name)), nil

	case ChangeQuantity:
		s.logger.Info("changing quantity", zap.Int("index", c.Index), zap.Int("delta", c.Delta))
		if _, err := s.cart.ChangeQuantity(ctx, c.Index, c.Delta); err != nil {
			return s.reject(cmd, err), nil
		}
		return okNotice(MsgCartUpdated), nil

	case RemoveItem:
		s.logger.Info("removing item", zap.Int("index", c.Index))
		if _, err := s.cart.Remove(ctx, c.Index); err != nil {
			return s.reject(cmd, err), nil
		}
		return okNotice(MsgItemRemoved), nil

	case ClearCart:
		s.logger.Info("clearing cart")
		if _, err := s.cart.Clear(ctx); err != nil {
			return s.reject(cmd, err), nil
		}
		return okNotice(MsgCartCleared), nil

	case ApplyCoupon:
		result, err := s.coupons.Apply(c.Code)
		if err != nil {
			return s.reject(cmd, err), nil
		}
		return okNotice(result.Message), nil

	case RemoveCoupon:
		return okNotice(s.coupons.Remove().Message), nil

	case SubmitAccount:
		result, err := s.accounts.Submit(ctx, c.Form)
		if err != nil {
			return s.reject(cmd, err), nil
		}
		return okNotice(result.Message), nil

	case DeleteAccount:
		if err := s.accounts.Delete(ctx, c.Confirm); err != nil {
			return s.reject(cmd, err), nil
		}
		return okNotice(account.MsgAccountDeleted), nil

	case Logout:
		s.accounts.Logout(ctx)
		return okNotice(account.MsgLoggedOut), nil

	case Checkout:
		return s.checkout(ctx)

	default:
		return Notice{
			Message: fmt.Sprintf(errMsgUnknownTmpl, cmd),
			Code:    common.StatusInvalidArgument.String(),
		}, nil
	}
}

func (s *Shop) reject(cmd Command, err error) Notice {
	notice := noticeFromError(err)
	s.logger.Info("action rejected",
		zap.String("command", cmd.commandName()),
		zap.String("code", notice.Code),
		zap.Error(err))
	return notice
}
