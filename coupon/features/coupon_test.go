package features

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"storefront/common"
	"storefront/coupon/logic"

	"github.com/cucumber/godog"
)

type couponTestContext struct {
	today    time.Time
	engine   *logic.Engine
	session  *logic.Session
	subtotal float64
	result   logic.Result
	err      error
}

func (c *couponTestContext) reset() {
	c.today = common.Date(2025, time.June, 1)
	c.startVisit()
	c.subtotal = 0
	c.result = logic.Result{}
	c.err = nil
}

func (c *couponTestContext) startVisit() {
	c.engine = logic.NewEngine(logic.DefaultCatalog(), common.FixedClock{At: c.today}, nil)
	c.session = c.engine.NewSession()
}

func (c *couponTestContext) todayIs(date string) error {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return err
	}
	c.today = day
	c.startVisit()
	return nil
}

func (c *couponTestContext) aCartSubtotalOf(subtotal float64) error {
	c.subtotal = subtotal
	return nil
}

func (c *couponTestContext) iApplyCoupon(code string) error {
	c.result, c.err = c.session.Apply(code)
	return nil
}

func (c *couponTestContext) iRemoveTheCoupon() error {
	c.result = c.session.Remove()
	c.err = nil
	return nil
}

func (c *couponTestContext) aNewVisitStarts() error {
	c.session = c.engine.NewSession()
	return nil
}

func (c *couponTestContext) theCouponResultIs(outcome string) error {
	if c.result.Outcome.String() != outcome {
		return fmt.Errorf("expected outcome %s, got %s (err: %v)", outcome, c.result.Outcome, c.err)
	}
	return nil
}

func (c *couponTestContext) theMessageIs(message string) error {
	if c.result.Message != message {
		return fmt.Errorf("expected message %q, got %q", message, c.result.Message)
	}
	return nil
}

func (c *couponTestContext) theDiscountedTotalIs(total float64) error {
	if got := c.session.DiscountedTotal(c.subtotal); math.Abs(got-total) > 1e-9 {
		return fmt.Errorf("expected total %.2f, got %.2f", total, got)
	}
	return nil
}

func (c *couponTestContext) theActiveCouponIs(code string) error {
	active, ok := c.session.Active()
	if !ok {
		return errors.New("expected an active coupon")
	}
	if active.Code != code {
		return fmt.Errorf("expected active coupon %s, got %s", code, active.Code)
	}
	return nil
}

func (c *couponTestContext) thereIsNoActiveCoupon() error {
	if active, ok := c.session.Active(); ok {
		return fmt.Errorf("expected no active coupon, got %s", active.Code)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &couponTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^today is (\d{4}-\d{2}-\d{2})$`, tc.todayIs)
	ctx.Step(`^a cart subtotal of (\d+(?:\.\d+)?)$`, tc.aCartSubtotalOf)

	// When steps
	ctx.Step(`^I apply coupon "(.*)"$`, tc.iApplyCoupon)
	ctx.Step(`^I remove the coupon$`, tc.iRemoveTheCoupon)
	ctx.Step(`^a new visit starts$`, tc.aNewVisitStarts)

	// Then steps
	ctx.Step(`^the coupon result is "([^"]*)"$`, tc.theCouponResultIs)
	ctx.Step(`^the message is "(.*)"$`, tc.theMessageIs)
	ctx.Step(`^the discounted total is (\d+(?:\.\d+)?)$`, tc.theDiscountedTotalIs)
	ctx.Step(`^the active coupon is "([^"]*)"$`, tc.theActiveCouponIs)
	ctx.Step(`^there is no active coupon$`, tc.thereIsNoActiveCoupon)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../../features/coupon.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
