package shop

import account "storefront/account/logic"

// Command is a user action accepted by Handle.
type Command interface {
	commandName() string
}

// Refresh changes nothing and re-derives the snapshot, as on page load.
type Refresh struct{}

type AddItem struct {
	Name  string
	Price float64
}

// ChangeQuantity adds Delta to the line at Index.
type ChangeQuantity struct {
	Index int
	Delta int
}

type RemoveItem struct {
	Index int
}

type ClearCart struct{}

type ApplyCoupon struct {
	Code string
}

type RemoveCoupon struct{}

type SubmitAccount struct {
	Form account.Form
}

// DeleteAccount asks Confirm before removing the record. Confirm runs
// outside the shop lock.
type DeleteAccount struct {
	Confirm account.Confirmer
}

type Logout struct{}

type Checkout struct{}

func (Refresh) commandName() string        { return "Refresh" }
func (AddItem) commandName() string        { return "AddItem" }
func (ChangeQuantity) commandName() string { return "ChangeQuantity" }
func (RemoveItem) commandName() string     { return "RemoveItem" }
func (ClearCart) commandName() string      { return "ClearCart" }
func (ApplyCoupon) commandName() string    { return "ApplyCoupon" }
func (RemoveCoupon) commandName() string   { return "RemoveCoupon" }
func (SubmitAccount) commandName() string  { return "SubmitAccount" }
func (DeleteAccount) commandName() string  { return "DeleteAccount" }
func (Logout) commandName() string         { return "Logout" }
func (Checkout) commandName() string       { return "Checkout" }
