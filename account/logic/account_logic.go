package logic

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"storefront/common"
	"storefront/store"
)

const (
	DefaultAccountKey = "bb_user"
	DefaultSessionKey = "bb_session"
)

// Store owns the account record in the durable region and the
// authentication flag in the session region.
type Store struct {
	durable    store.Region
	session    store.Region
	accountKey string
	sessionKey string
	newID      func() string
	logger     *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithKeys overrides the durable account key and the session flag key.
func WithKeys(accountKey, sessionKey string) Option {
	return func(s *Store) {
		if accountKey != "" {
			s.accountKey = accountKey
		}
		if sessionKey != "" {
			s.sessionKey = sessionKey
		}
	}
}

// WithIDGenerator replaces the account identifier generator.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// WithLogger sets the logger used for fail-soft reports.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		s.logger = common.LoggerOrNop(logger)
	}
}

// NewStore creates an account store over the two regions.
func NewStore(durable, session store.Region, opts ...Option) *Store {
	s := &Store{
		durable:    durable,
		session:    session,
		accountKey: DefaultAccountKey,
		sessionKey: DefaultSessionKey,
		newID:      NewAccountID,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewAccountID generates a stable identifier for a new record.
func NewAccountID() string {
	return "u-" + uuid.NewString()
}

// GetAccount reads the record. Corrupt or unreadable data counts as no account.
func (s *Store) GetAccount(ctx context.Context) (*Account, bool) {
	res := store.ReadJSON[*Account](ctx, s.durable, s.accountKey, nil)
	if res.Degraded() {
		s.logger.Warn("account unreadable, treating as absent",
			zap.String("key", s.accountKey),
			zap.Stringer("status", res.Status),
			zap.Error(res.Err))
	}
	if res.Value == nil {
		return nil, false
	}
	if res.Value.Rewards < 0 {
		res.Value.Rewards = 0
	}
	return res.Value, true
}

// SaveAccount replaces the record.
func (s *Store) SaveAccount(ctx context.Context, account Account) error {
	if err := store.WriteJSON(ctx, s.durable, s.accountKey, account); err != nil {
		s.logger.Warn("account write failed", zap.String("key", s.accountKey), zap.Error(err))
		return err
	}
	return nil
}

// DeleteAccount removes the record.
func (s *Store) DeleteAccount(ctx context.Context) error {
	if err := store.Delete(ctx, s.durable, s.accountKey); err != nil {
		s.logger.Warn("account delete failed", zap.String("key", s.accountKey), zap.Error(err))
		return err
	}
	return nil
}

// UpdateAccount merges patch onto the existing record, or onto an empty
// record when none exists, and persists the result.
func (s *Store) UpdateAccount(ctx context.Context, patch Patch) (Account, error) {
	base := Account{}
	if existing, ok := s.GetAccount(ctx); ok {
		base = *existing
	}
	next := patch.Apply(base)
	return next, s.SaveAccount(ctx, next)
}

// MarkAuthenticated sets the session flag. Failures are logged, never returned.
func (s *Store) MarkAuthenticated(ctx context.Context) {
	if err := s.session.Set(ctx, s.sessionKey, []byte("1")); err != nil {
		s.logger.Warn("session flag not set", zap.String("key", s.sessionKey), zap.Error(err))
	}
}

// ClearAuthenticated removes the session flag. Failures are logged, never returned.
func (s *Store) ClearAuthenticated(ctx context.Context) {
	if err := s.session.Remove(ctx, s.sessionKey); err != nil {
		s.logger.Warn("session flag not cleared", zap.String("key", s.sessionKey), zap.Error(err))
	}
}

// SessionActive reports whether the session flag is present. An unreadable
// session region reads as inactive.
func (s *Store) SessionActive(ctx context.Context) bool {
	value, ok, err := s.session.Get(ctx, s.sessionKey)
	if err != nil {
		s.logger.Warn("session flag unreadable", zap.String("key", s.sessionKey), zap.Error(err))
		return false
	}
	return ok && len(value) > 0
}

// Context reads both regions into one AuthContext.
func (s *Store) Context(ctx context.Context) AuthContext {
	account, _ := s.GetAccount(ctx)
	return NewAuthContext(account, s.SessionActive(ctx))
}

// IsAuthenticated is true iff an account exists and the session flag is set.
func (s *Store) IsAuthenticated(ctx context.Context) bool {
	return s.Context(ctx).Authenticated()
}

// Logout clears the session flag and keeps the record.
func (s *Store) Logout(ctx context.Context) AuthContext {
	s.ClearAuthenticated(ctx)
	s.logger.Info("logged out")
	return s.Context(ctx)
}
