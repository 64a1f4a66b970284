package logic

import (
	"fmt"
	"strings"
	"time"

	"storefront/common"
)

// Coupon is one entry of the static catalog. DiscountRate is a fraction in (0,1].
type Coupon struct {
	Code         string
	DiscountRate float64
	ExpiresOn    time.Time
}

// ExpiredAt reports whether now falls on a calendar date after ExpiresOn.
// A coupon is still valid for the whole of its expiry date.
func (c Coupon) ExpiredAt(now time.Time) bool {
	return !common.SameOrBeforeDay(now, c.ExpiresOn)
}

// Description is a human summary such as "10% off your entire order (expires 12/31/2025)".
func (c Coupon) Description() string {
	return fmt.Sprintf("%s%% off your entire order (expires %s)",
		formatPercent(c.DiscountRate), c.ExpiresOn.Format("01/02/2006"))
}

func formatPercent(rate float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", rate*100), "0"), ".")
}

// Catalog is the fixed set of coupons the engine recognises.
type Catalog struct {
	coupons []Coupon
}

// NewCatalog validates and canonicalises coupons into a Catalog.
func NewCatalog(coupons ...Coupon) (*Catalog, error) {
	seen := make(map[string]bool, len(coupons))
	out := make([]Coupon, 0, len(coupons))
	for _, c := range coupons {
		c.Code = Canonicalize(c.Code)
		if c.Code == "" {
			return nil, fmt.Errorf("coupon code is required")
		}
		if !(c.DiscountRate > 0 && c.DiscountRate <= 1) {
			return nil, fmt.Errorf("coupon %s: discount rate %v outside (0,1]", c.Code, c.DiscountRate)
		}
		if c.ExpiresOn.IsZero() {
			return nil, fmt.Errorf("coupon %s: expiry date is required", c.Code)
		}
		if seen[c.Code] {
			return nil, fmt.Errorf("coupon %s: duplicate code", c.Code)
		}
		seen[c.Code] = true
		out = append(out, c)
	}
	return &Catalog{coupons: out}, nil
}

// DefaultCatalog holds the storefront's launch promotions.
func DefaultCatalog() *Catalog {
	return &Catalog{coupons: []Coupon{
		{Code: "SAVE10", DiscountRate: 0.10, ExpiresOn: common.Date(2025, time.December, 31)},
		{Code: "WELCOME5", DiscountRate: 0.05, ExpiresOn: common.Date(2026, time.January, 1)},
	}}
}

// Lookup finds a coupon by exact canonical code.
func (c *Catalog) Lookup(code string) (Coupon, bool) {
	for _, coupon := range c.coupons {
		if coupon.Code == code {
			return coupon, true
		}
	}
	return Coupon{}, false
}

// All returns the catalog in declaration order.
func (c *Catalog) All() []Coupon {
	out := make([]Coupon, len(c.coupons))
	copy(out, c.coupons)
	return out
}

// Canonicalize trims and upper-cases a user-entered code.
func Canonicalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
