package dataset

import (
	"time"

	errs "github.com/Reminerva/Proyek-Data-Analysis/pkg/errors"
)

// DateFormat is the layout accepted from flags and prompts.
const DateFormat = "2006-01-02"

// DateRange is an inclusive [Start, End] filter window.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange validates and builds an inclusive range. Start after End is
// rejected at this boundary so the pipeline never sees an inverted window.
func NewDateRange(start, end time.Time) (DateRange, error) {
	if start.After(end) {
		return DateRange{}, errs.RangeError(start.Format(DateFormat), end.Format(DateFormat))
	}
	return DateRange{Start: start, End: end}, nil
}

// Contains reports whether t falls inside the range, bounds included.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// String renders the range for headers and chart titles.
func (r DateRange) String() string {
	return r.Start.Format(DateFormat) + " .. " + r.End.Format(DateFormat)
}

// FilterRange returns a new Dataset restricted to the window: orders by
// purchase timestamp, order items by shipping-limit date. The two
// predicates are applied independently, matching the dashboard's filter
// semantics. Master tables and payments are shared unchanged; payments are
// constrained downstream through the eligible order-id set.
func (d *Dataset) FilterRange(r DateRange) *Dataset {
	orders := make([]Order, 0, len(d.Orders))
	for _, o := range d.Orders {
		if r.Contains(o.PurchasedAt) {
			orders = append(orders, o)
		}
	}

	items := make([]OrderItem, 0, len(d.Items))
	for _, it := range d.Items {
		if r.Contains(it.ShippingLimitAt) {
			items = append(items, it)
		}
	}

	return &Dataset{
		Customers: d.Customers,
		Orders:    orders,
		Items:     items,
		Payments:  d.Payments,
		Products:  d.Products,
		Sellers:   d.Sellers,
	}
}

// FullRange returns the range spanning every order purchase timestamp,
// the default filter state. ok is false for an empty dataset.
func (d *Dataset) FullRange() (DateRange, bool) {
	min, max, ok := d.PurchaseSpan()
	if !ok {
		return DateRange{}, false
	}
	return DateRange{Start: min, End: max}, true
}
