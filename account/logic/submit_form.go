package logic

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"storefront/common"
)

var validate = validator.New()

// Form is the account create/edit form.
type Form struct {
	FullName string `validate:"required"`
	Email    string `validate:"required"`
	Password string `validate:"required"`
	Address  string
	Billing  string
}

func (f Form) trimmed() Form {
	return Form{
		FullName: strings.TrimSpace(f.FullName),
		Email:    strings.TrimSpace(f.Email),
		Password: strings.TrimSpace(f.Password),
		Address:  strings.TrimSpace(f.Address),
		Billing:  strings.TrimSpace(f.Billing),
	}
}

// Validate checks the required fields after trimming.
func (f Form) Validate() error {
	if err := validate.Struct(f.trimmed()); err != nil {
		return common.NewInvalidArgument(ErrMsgRequiredFields)
	}
	return nil
}

// SubmitMode tells whether a submission created or edited the record.
type SubmitMode int

const (
	ModeCreate SubmitMode = iota
	ModeEdit
)

func (m SubmitMode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "create"
}

// SubmitResult describes an accepted form submission.
type SubmitResult struct {
	Mode    SubmitMode
	Account Account
	Message string
}

// Submit applies the account form. Invalid forms change nothing. An
// authenticated caller edits the existing record; anyone else creates a new
// record with a fresh identifier. Both paths mark the session authenticated.
func (s *Store) Submit(ctx context.Context, form Form) (SubmitResult, error) {
	if err := form.Validate(); err != nil {
		return SubmitResult{}, err
	}
	f := form.trimmed()

	if s.IsAuthenticated(ctx) {
		account, err := s.UpdateAccount(ctx, Patch{
			FullName: &f.FullName,
			Email:    &f.Email,
			Password: &f.Password,
			Address:  &f.Address,
			Billing:  &f.Billing,
		})
		if err != nil {
			return SubmitResult{}, err
		}
		s.MarkAuthenticated(ctx)
		s.logger.Info("account updated", zap.String("id", account.ID))
		return SubmitResult{Mode: ModeEdit, Account: account, Message: MsgAccountUpdated}, nil
	}

	account := Account{
		ID:       s.newID(),
		FullName: f.FullName,
		Email:    f.Email,
		Password: f.Password,
		Address:  f.Address,
		Billing:  f.Billing,
	}
	if err := s.SaveAccount(ctx, account); err != nil {
		return SubmitResult{}, err
	}
	s.MarkAuthenticated(ctx)
	s.logger.Info("account created", zap.String("id", account.ID))
	return SubmitResult{Mode: ModeCreate, Account: account, Message: MsgAccountCreated}, nil
}
