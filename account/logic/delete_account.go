package logic

import (
	"context"

	"go.uber.org/zap"

	"storefront/common"
)

// DeletePrompt is the question put to the user before deletion.
const DeletePrompt = "Delete your account? This cannot be undone."

// Confirmer answers a yes/no question.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// Always answers every question the same way.
type Always bool

func (a Always) Confirm(string) bool { return bool(a) }

// Delete removes the record and clears the session flag once confirm agrees.
// A declined confirmation changes nothing.
func (s *Store) Delete(ctx context.Context, confirm Confirmer) error {
	if confirm == nil || !confirm.Confirm(DeletePrompt) {
		return common.NewFailedPrecondition(ErrMsgDeleteCancelled)
	}
	if err := s.DeleteAccount(ctx); err != nil {
		return err
	}
	s.ClearAuthenticated(ctx)
	s.logger.Info("account deleted", zap.String("key", s.accountKey))
	return nil
}
