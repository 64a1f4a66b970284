package logic

import (
	"fmt"

	"go.uber.org/zap"

	"storefront/common"
)

// Outcome classifies the result of a coupon action.
type Outcome int

const (
	OutcomeApplied Outcome = iota
	OutcomeInvalid
	OutcomeExpired
	OutcomeRemoved
)

func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeExpired:
		return "expired"
	case OutcomeRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Result reports a coupon action to the caller.
type Result struct {
	Outcome Outcome
	Message string
	Coupon  *Coupon
}

// OK reports whether the action succeeded.
func (r Result) OK() bool {
	return r.Outcome == OutcomeApplied || r.Outcome == OutcomeRemoved
}

// Engine validates codes against a catalog and the current date. It holds no
// per-visit state; the active coupon lives in a Session.
type Engine struct {
	catalog *Catalog
	clock   common.Clock
	logger  *zap.Logger
}

// NewEngine creates an engine. Nil arguments fall back to the default
// catalog, the system clock and a no-op logger.
func NewEngine(catalog *Catalog, clock common.Clock, logger *zap.Logger) *Engine {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	if clock == nil {
		clock = common.SystemClock{}
	}
	return &Engine{catalog: catalog, clock: clock, logger: common.LoggerOrNop(logger)}
}

// Catalog returns the engine's catalog.
func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

// Validate resolves code to a usable coupon or a CommandError.
func (e *Engine) Validate(code string) (Coupon, error) {
	canonical := Canonicalize(code)
	coupon, ok := e.catalog.Lookup(canonical)
	if !ok {
		return Coupon{}, common.NewInvalidArgument(ErrMsgInvalidCode)
	}
	if coupon.ExpiredAt(e.clock.Now()) {
		return Coupon{}, common.NewFailedPrecondition(ErrMsgExpired)
	}
	return coupon, nil
}

// NewSession starts a visit with no active coupon.
func (e *Engine) NewSession() *Session {
	return &Session{engine: e}
}

// Session holds at most one active coupon for the current visit. It is never
// persisted: a new visit starts without a discount.
type Session struct {
	engine *Engine
	active *Coupon
}

// Apply validates code. On success it becomes the active coupon; on any
// failure the previously active coupon is cleared.
func (s *Session) Apply(code string) (Result, error) {
	coupon, err := s.engine.Validate(code)
	if err != nil {
		s.active = nil
		outcome := OutcomeInvalid
		if cmdErr, ok := common.AsCommandError(err); ok && cmdErr.Code == common.StatusFailedPrecondition {
			outcome = OutcomeExpired
		}
		s.engine.logger.Info("coupon rejected",
			zap.String("code", Canonicalize(code)),
			zap.Stringer("outcome", outcome))
		return Result{Outcome: outcome, Message: err.Error()}, err
	}

	s.active = &coupon
	s.engine.logger.Info("coupon applied", zap.String("code", coupon.Code))
	return Result{
		Outcome: OutcomeApplied,
		Message: fmt.Sprintf(msgAppliedTmpl, coupon.Code),
		Coupon:  &coupon,
	}, nil
}

// Remove clears the active coupon unconditionally.
func (s *Session) Remove() Result {
	s.active = nil
	return Result{Outcome: OutcomeRemoved, Message: MsgRemoved}
}

// Active returns a copy of the active coupon, if any.
func (s *Session) Active() (Coupon, bool) {
	if s.active == nil {
		return Coupon{}, false
	}
	return *s.active, true
}

// DiscountedTotal applies the active coupon to subtotal.
func (s *Session) DiscountedTotal(subtotal float64) float64 {
	return DiscountedTotal(subtotal, s.active)
}

// DiscountedTotal returns subtotal × (1 − rate) for an active coupon, and
// subtotal unchanged otherwise.
func DiscountedTotal(subtotal float64, active *Coupon) float64 {
	if active == nil {
		return subtotal
	}
	return subtotal * (1 - active.DiscountRate)
}
