// Package authui derives what the account-facing parts of the storefront
// show from the current authentication state.
package authui

import (
	"fmt"

	account "storefront/account/logic"
)

// Region identifies a group of UI elements toggled together.
type Region string

const (
	RegionRequiresAuth Region = "requires-auth"
	RegionGuestOnly    Region = "guest-only"
)

// Field names a sensitive form field.
type Field string

const (
	FieldFullName Field = "fullName"
	FieldEmail    Field = "email"
	FieldPassword Field = "password"
	FieldAddress  Field = "address"
	FieldBilling  Field = "billing"
)

// SensitiveFields are cleared whenever the visitor is not authenticated.
var SensitiveFields = []Field{FieldFullName, FieldEmail, FieldPassword, FieldAddress, FieldBilling}

// UserTextRegions hold user-identifying text and are blanked when logged out.
var UserTextRegions = []string{"userStatus", "userName", "userEmail", "rewardsBalance"}

const (
	HeadingCreate = "Create Your Account"
	HeadingEdit   = "Edit Account"
	SubmitCreate  = "Create Account"
	SubmitEdit    = "Save Changes"
	StatusGuest   = "Not logged in"
)

// View is the full presentation decision for one authentication state.
type View struct {
	Authenticated bool
	Visible       map[Region]bool

	// Fields holds the values to display. When not authenticated every
	// sensitive field is present and empty.
	Fields map[Field]string
	// Cleared lists the fields and text regions forced blank.
	Cleared     []Field
	ClearedText []string

	Heading     string
	SubmitLabel string
	ShowDelete  bool
	ShowLogout  bool
	NavStatus   string

	ShowRewards    bool
	RewardsBalance int
}

// Shows reports whether region r is visible.
func (v View) Shows(r Region) bool {
	return v.Visible[r]
}

// Derive computes the view from scratch. It has no state of its own.
func Derive(auth account.AuthContext) View {
	if !auth.Authenticated() {
		return guestView()
	}

	acct := auth.Account
	return View{
		Authenticated: true,
		Visible: map[Region]bool{
			RegionRequiresAuth: true,
			RegionGuestOnly:    false,
		},
		Fields: map[Field]string{
			FieldFullName: acct.FullName,
			FieldEmail:    acct.Email,
			FieldPassword: acct.Password,
			FieldAddress:  acct.Address,
			FieldBilling:  acct.Billing,
		},
		Heading:        HeadingEdit,
		SubmitLabel:    SubmitEdit,
		ShowDelete:     true,
		ShowLogout:     true,
		NavStatus:      fmt.Sprintf("Logged in as %s", acct.Email),
		ShowRewards:    true,
		RewardsBalance: acct.Rewards,
	}
}

func guestView() View {
	fields := make(map[Field]string, len(SensitiveFields))
	for _, f := range SensitiveFields {
		fields[f] = ""
	}
	return View{
		Visible: map[Region]bool{
			RegionRequiresAuth: false,
			RegionGuestOnly:    true,
		},
		Fields:      fields,
		Cleared:     append([]Field(nil), SensitiveFields...),
		ClearedText: append([]string(nil), UserTextRegions...),
		Heading:     HeadingCreate,
		SubmitLabel: SubmitCreate,
		NavStatus:   StatusGuest,
	}
}
