package logic

// Account is the single local account record.
type Account struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Address  string `json:"address"`
	Billing  string `json:"billing"`
	Rewards  int    `json:"rewards"`
}

// Patch names the fields to overwrite; nil fields are left alone.
type Patch struct {
	FullName *string
	Email    *string
	Password *string
	Address  *string
	Billing  *string
	Rewards  *int
}

// Apply returns a copy of a with the patch fields merged in.
func (p Patch) Apply(a Account) Account {
	if p.FullName != nil {
		a.FullName = *p.FullName
	}
	if p.Email != nil {
		a.Email = *p.Email
	}
	if p.Password != nil {
		a.Password = *p.Password
	}
	if p.Address != nil {
		a.Address = *p.Address
	}
	if p.Billing != nil {
		a.Billing = *p.Billing
	}
	if p.Rewards != nil {
		a.Rewards = *p.Rewards
	}
	return a
}

// AuthContext is the combined authentication state read from both regions in
// one step. Consumers decide on it instead of consulting the stores ad hoc.
type AuthContext struct {
	Account       *Account
	SessionActive bool
}

// NewAuthContext builds an AuthContext from its two inputs.
func NewAuthContext(account *Account, sessionActive bool) AuthContext {
	return AuthContext{Account: account, SessionActive: sessionActive}
}

// HasAccount reports whether a record exists, regardless of the session flag.
func (a AuthContext) HasAccount() bool {
	return a.Account != nil
}

// Authenticated requires both an account record and the session flag.
func (a AuthContext) Authenticated() bool {
	return a.Account != nil && a.SessionActive
}
