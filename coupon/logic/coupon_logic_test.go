package logic

import (
	"math"
	"sync"
	"testing"
	"time"

	"storefront/common"
)

func engineAt(year int, month time.Month, day int) *Engine {
	return NewEngine(DefaultCatalog(), common.FixedClock{At: common.Date(year, month, day).Add(12 * time.Hour)}, nil)
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestApply_ValidCoupon(t *testing.T) {
	session := engineAt(2025, time.June, 1).NewSession()

	result, err := session.Apply("SAVE10")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Outcome != OutcomeApplied || !result.OK() {
		t.Errorf("expected applied, got %v", result.Outcome)
	}
	if result.Message != `Coupon "SAVE10" applied successfully!` {
		t.Errorf("unexpected message %q", result.Message)
	}
	active, ok := session.Active()
	if !ok || active.Code != "SAVE10" {
		t.Errorf("expected SAVE10 active, got %+v", active)
	}
}

func TestApply_CanonicalizesCode(t *testing.T) {
	session := engineAt(2025, time.June, 1).NewSession()

	if _, err := session.Apply("  save10 "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if active, _ := session.Active(); active.Code != "SAVE10" {
		t.Errorf("expected SAVE10, got %q", active.Code)
	}
}

func TestApply_UnknownCode(t *testing.T) {
	session := engineAt(2025, time.June, 1).NewSession()
	_, _ = session.Apply("SAVE10")

	result, err := session.Apply("FREESTUFF")

	if err == nil {
		t.Fatal("expected error for unknown code")
	}
	cmdErr, ok := err.(*common.CommandError)
	if !ok {
		t.Fatalf("expected CommandError, got %T", err)
	}
	if cmdErr.Code != common.StatusInvalidArgument {
		t.Errorf("expected INVALID_ARGUMENT, got %v", cmdErr.Code)
	}
	if result.Outcome != OutcomeInvalid || result.Message != ErrMsgInvalidCode {
		t.Errorf("unexpected result %+v", result)
	}
	if _, ok := session.Active(); ok {
		t.Error("expected previously active coupon to be cleared")
	}
}

func TestApply_PartialCodeDoesNotMatch(t *testing.T) {
	session := engineAt(2025, time.June, 1).NewSession()

	if _, err := session.Apply("SAVE"); err == nil {
		t.Error("expected prefix of a code to be rejected")
	}
}

func TestApply_ExpiredCoupon(t *testing.T) {
	session := engineAt(2026, time.January, 1).NewSession()
	_, _ = session.Apply("WELCOME5")

	result, err := session.Apply("SAVE10")

	if err == nil {
		t.Fatal("expected error for expired coupon")
	}
	cmdErr, ok := err.(*common.CommandError)
	if !ok {
		t.Fatalf("expected CommandError, got %T", err)
	}
	if cmdErr.Code != common.StatusFailedPrecondition {
		t.Errorf("expected FAILED_PRECONDITION, got %v", cmdErr.Code)
	}
	if result.Outcome != OutcomeExpired || result.Message != ErrMsgExpired {
		t.Errorf("unexpected result %+v", result)
	}
	if result.Message == ErrMsgInvalidCode {
		t.Error("expired and invalid messages must differ")
	}
	if _, ok := session.Active(); ok {
		t.Error("expected active coupon to be cleared")
	}
}

func TestApply_ValidOnExpiryDate(t *testing.T) {
	clock := common.FixedClock{At: common.Date(2025, time.December, 31).Add(23*time.Hour + 59*time.Minute)}
	session := NewEngine(nil, clock, nil).NewSession()

	if _, err := session.Apply("SAVE10"); err != nil {
		t.Errorf("expected coupon valid on its expiry date, got %v", err)
	}
}

func TestRemove(t *testing.T) {
	session := engineAt(2025, time.June, 1).NewSession()
	_, _ = session.Apply("SAVE10")

	result := session.Remove()

	if result.Outcome != OutcomeRemoved || result.Message != MsgRemoved || !result.OK() {
		t.Errorf("unexpected result %+v", result)
	}
	if _, ok := session.Active(); ok {
		t.Error("expected no active coupon")
	}
	// Removing with nothing active still succeeds.
	if r := session.Remove(); r.Outcome != OutcomeRemoved {
		t.Errorf("unexpected result %+v", r)
	}
}

func TestDiscountedTotal(t *testing.T) {
	session := engineAt(2025, time.June, 1).NewSession()

	if got := session.DiscountedTotal(40); got != 40 {
		t.Errorf("expected 40 without coupon, got %v", got)
	}

	_, _ = session.Apply("SAVE10")
	if got := session.DiscountedTotal(40); !approxEqual(got, 36) {
		t.Errorf("expected 36, got %v", got)
	}
	if got := session.DiscountedTotal(105); !approxEqual(got, 94.5) {
		t.Errorf("expected 94.5, got %v", got)
	}

	session.Remove()
	if got := session.DiscountedTotal(40); got != 40 {
		t.Errorf("expected 40 after removal, got %v", got)
	}
}

func TestDiscountedTotal_ZeroSubtotal(t *testing.T) {
	coupon := Coupon{Code: "X", DiscountRate: 0.5}
	if got := DiscountedTotal(0, &coupon); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	engine := engineAt(2025, time.June, 1)
	var wg sync.WaitGroup
	sessions := make([]*Session, 8)
	for i := range sessions {
		sessions[i] = engine.NewSession()
	}

	for i, s := range sessions {
		wg.Add(1)
		go func(i int, s *Session) {
			defer wg.Done()
			if i%2 == 0 {
				_, _ = s.Apply("SAVE10")
			}
		}(i, s)
	}
	wg.Wait()

	for i, s := range sessions {
		_, ok := s.Active()
		if ok != (i%2 == 0) {
			t.Errorf("session %d: active=%v", i, ok)
		}
	}
}

func TestNewCatalog_Validation(t *testing.T) {
	expires := common.Date(2030, time.January, 1)
	cases := []struct {
		name    string
		coupons []Coupon
	}{
		{"blank code", []Coupon{{Code: " ", DiscountRate: 0.1, ExpiresOn: expires}}},
		{"zero rate", []Coupon{{Code: "A", DiscountRate: 0, ExpiresOn: expires}}},
		{"rate above one", []Coupon{{Code: "A", DiscountRate: 1.5, ExpiresOn: expires}}},
		{"nan rate", []Coupon{{Code: "A", DiscountRate: math.NaN(), ExpiresOn: expires}}},
		{"no expiry", []Coupon{{Code: "A", DiscountRate: 0.1}}},
		{"duplicate", []Coupon{
			{Code: "a", DiscountRate: 0.1, ExpiresOn: expires},
			{Code: "A", DiscountRate: 0.2, ExpiresOn: expires},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewCatalog(tc.coupons...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestNewCatalog_Canonicalizes(t *testing.T) {
	catalog, err := NewCatalog(Coupon{Code: " spring20 ", DiscountRate: 0.2, ExpiresOn: common.Date(2030, time.April, 1)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := catalog.Lookup("SPRING20"); !ok {
		t.Error("expected canonical code in catalog")
	}
	if len(catalog.All()) != 1 {
		t.Errorf("expected 1 coupon, got %d", len(catalog.All()))
	}
}

func TestCouponDescription(t *testing.T) {
	c := Coupon{Code: "SAVE10", DiscountRate: 0.10, ExpiresOn: common.Date(2025, time.December, 31)}
	want := "10% off your entire order (expires 12/31/2025)"
	if c.Description() != want {
		t.Errorf("expected %q, got %q", want, c.Description())
	}

	half := Coupon{DiscountRate: 0.125, ExpiresOn: common.Date(2026, time.January, 1)}
	if got := half.Description(); got != "12.5% off your entire order (expires 01/01/2026)" {
		t.Errorf("unexpected description %q", got)
	}
}

func TestOutcomeString(t *testing.T) {
	for outcome, want := range map[Outcome]string{
		OutcomeApplied: "applied",
		OutcomeInvalid: "invalid",
		OutcomeExpired: "expired",
		OutcomeRemoved: "removed",
		Outcome(9):     "unknown",
	} {
		if outcome.String() != want {
			t.Errorf("expected %q, got %q", want, outcome.String())
		}
	}
}
