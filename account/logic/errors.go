package logic

// Error message constants for account domain.
const (
	ErrMsgRequiredFields  = "Name, email, and password are required."
	ErrMsgDeleteCancelled = "Account deletion cancelled."
)

// Confirmation messages for successful account actions.
const (
	MsgAccountCreated = "Account created."
	MsgAccountUpdated = "Account updated."
	MsgAccountDeleted = "Account deleted."
	MsgLoggedOut      = "Logged out."
)
