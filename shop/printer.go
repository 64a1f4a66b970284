package shop

import (
	"fmt"
	"io"
	"strings"
	"time"

	"storefront/authui"
	coupon "storefront/coupon/logic"
)

// ANSI color codes
const (
	Blue    = "\033[94m"
	Green   = "\033[92m"
	Yellow  = "\033[93m"
	Cyan    = "\033[96m"
	Magenta = "\033[95m"
	Red     = "\033[91m"
	Bold    = "\033[1m"
	Dim     = "\033[2m"
	Reset   = "\033[0m"
)

// Printer renders notices, snapshots and receipts for a terminal.
type Printer struct {
	w     io.Writer
	color bool
}

// NewPrinter writes to w, with ANSI colors when color is set.
func NewPrinter(w io.Writer, color bool) *Printer {
	return &Printer{w: w, color: color}
}

func (p *Printer) c(code string) string {
	if !p.color {
		return ""
	}
	return code
}

// NoticeColor returns the color for a notice.
func NoticeColor(n Notice) string {
	switch {
	case n.OK:
		return Green
	case n.Code == CodeWriteFailed:
		return Magenta
	case strings.Contains(n.Message, "expired"):
		return Yellow
	default:
		return Red
	}
}

// PrintNotice prints a one-line notice. Empty messages print nothing.
func (p *Printer) PrintNotice(n Notice) {
	if n.Message == "" {
		return
	}
	fmt.Fprintf(p.w, "%s%s%s\n", p.c(NoticeColor(n)), n.Message, p.c(Reset))
}

// PrintSnapshot prints the cart table, totals and account status.
func (p *Printer) PrintSnapshot(s Snapshot) {
	fmt.Fprintf(p.w, "%s%s%s\n", p.c(Bold), strings.Repeat("─", 60), p.c(Reset))
	fmt.Fprintf(p.w, "%s%s[CART]%s %sitems:%d%s\n",
		p.c(Bold), p.c(Blue), p.c(Reset),
		p.c(Dim), s.Count, p.c(Reset))

	if len(s.Items) == 0 {
		fmt.Fprintf(p.w, "  %s(empty)%s\n", p.c(Dim), p.c(Reset))
	}
	for i, item := range s.Items {
		fmt.Fprintf(p.w, "  %d. %dx %s @ $%.2f = $%.2f\n",
			i+1, item.Quantity, item.Name, item.Price, item.LineTotal())
	}

	fmt.Fprintf(p.w, "  %ssubtotal:%s $%.2f\n", p.c(Dim), p.c(Reset), s.Subtotal)
	if s.Coupon != nil {
		fmt.Fprintf(p.w, "  %scoupon:%s   %s%s%s -$%.2f\n",
			p.c(Dim), p.c(Reset), p.c(Yellow), s.Coupon.Code, p.c(Reset), s.Discount())
	}
	fmt.Fprintf(p.w, "  %stotal:%s    %s$%.2f%s\n", p.c(Dim), p.c(Reset), p.c(Cyan), s.Total, p.c(Reset))

	fmt.Fprintf(p.w, "%s%s[ACCOUNT]%s %s\n", p.c(Bold), p.c(Magenta), p.c(Reset), s.View.NavStatus)
	if s.View.ShowRewards {
		fmt.Fprintf(p.w, "  %srewards:%s  %d pts\n", p.c(Dim), p.c(Reset), s.View.RewardsBalance)
	}
}

// PrintAccount prints the account form as the current view presents it.
func (p *Printer) PrintAccount(s Snapshot) {
	v := s.View
	fmt.Fprintf(p.w, "%s%s%s\n", p.c(Bold), v.Heading, p.c(Reset))
	for _, f := range []struct{ label, value string }{
		{"name", v.Fields[authui.FieldFullName]},
		{"email", v.Fields[authui.FieldEmail]},
		{"address", v.Fields[authui.FieldAddress]},
		{"billing", v.Fields[authui.FieldBilling]},
	} {
		fmt.Fprintf(p.w, "  %s%s:%s %s\n", p.c(Dim), f.label, p.c(Reset), f.value)
	}
	if v.ShowRewards {
		fmt.Fprintf(p.w, "  %srewards:%s %d pts\n", p.c(Dim), p.c(Reset), v.RewardsBalance)
	}
	fmt.Fprintf(p.w, "  %s[%s]%s\n", p.c(Dim), v.SubmitLabel, p.c(Reset))
}

// PrintReceipt prints a completed checkout.
func (p *Printer) PrintReceipt(r *Receipt) {
	if r == nil {
		return
	}
	fmt.Fprintf(p.w, "%s%s%s%s\n", p.c(Bold), p.c(Cyan), "CheckoutCompleted", p.c(Reset))
	for _, item := range r.Items {
		fmt.Fprintf(p.w, "    - %dx %s @ $%.2f = $%.2f\n",
			item.Quantity, item.Name, item.Price, item.LineTotal())
	}
	fmt.Fprintf(p.w, "  %ssubtotal:%s $%.2f\n", p.c(Dim), p.c(Reset), r.Subtotal)
	if r.Coupon != nil {
		fmt.Fprintf(p.w, "  %scoupon:%s   %s\n", p.c(Dim), p.c(Reset), r.Coupon.Code)
	}
	fmt.Fprintf(p.w, "  %stotal:%s    $%.2f\n", p.c(Dim), p.c(Reset), r.FinalTotal)
	if r.Accrual.Credited {
		fmt.Fprintf(p.w, "  %sloyalty:%s  +%d pts (balance %d)\n",
			p.c(Dim), p.c(Reset), r.Accrual.Points, r.Accrual.Balance)
	}
}

// PrintCatalog lists coupons, marking the ones expired at now.
func (p *Printer) PrintCatalog(coupons []coupon.Coupon, now time.Time) {
	for _, c := range coupons {
		state := p.c(Green) + "valid" + p.c(Reset)
		if c.ExpiredAt(now) {
			state = p.c(Red) + "expired" + p.c(Reset)
		}
		fmt.Fprintf(p.w, "  %s%-10s%s %s [%s]\n", p.c(Yellow), c.Code, p.c(Reset), c.Description(), state)
	}
}
