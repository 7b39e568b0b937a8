package dataset

import "time"

// OrderStatus is the fulfillment status of an order.
type OrderStatus string

const (
	StatusDelivered   OrderStatus = "delivered"
	StatusInvoiced    OrderStatus = "invoiced"
	StatusShipped     OrderStatus = "shipped"
	StatusProcessing  OrderStatus = "processing"
	StatusCreated     OrderStatus = "created"
	StatusApproved    OrderStatus = "approved"
	StatusCanceled    OrderStatus = "canceled"
	StatusUnavailable OrderStatus = "unavailable"
)

// eligibleStatuses are the statuses counted toward seller revenue and
// customer spend. Canceled and unavailable orders are excluded from all
// revenue and spend computation.
var eligibleStatuses = map[OrderStatus]struct{}{
	StatusDelivered:  {},
	StatusInvoiced:   {},
	StatusShipped:    {},
	StatusProcessing: {},
	StatusCreated:    {},
	StatusApproved:   {},
}

// Eligible reports whether orders with this status count toward revenue
// and spend rollups.
func (s OrderStatus) Eligible() bool {
	_, ok := eligibleStatuses[s]
	return ok
}

// Order is one row of the orders table.
type Order struct {
	ID          string
	CustomerID  string
	Status      OrderStatus
	PurchasedAt time.Time
}

// OrderItem is one line item of an order. Orders can carry several items.
type OrderItem struct {
	OrderID         string
	ItemID          int
	ProductID       string
	SellerID        string
	Price           float64
	FreightValue    float64
	ShippingLimitAt time.Time
}

// Payment is one payment row; an order can have several.
type Payment struct {
	OrderID string
	Value   float64
}

// Product is one row of the product master table.
type Product struct {
	ID           string
	CategoryName string
}

// Seller is one row of the seller master table.
type Seller struct {
	ID    string
	City  string
	State string
}

// Customer is one row of the customer master table. The source dataset
// models each order as belonging to a distinct customer record; there is
// no repeat-customer identity across orders.
type Customer struct {
	ID    string
	City  string
	State string
}

// Dataset is an immutable snapshot of the six loaded tables. Pipeline
// stages never mutate it; filtering produces a new Dataset whose slices
// may alias the originals.
type Dataset struct {
	Customers []Customer
	Orders    []Order
	Items     []OrderItem
	Payments  []Payment
	Products  []Product
	Sellers   []Seller
}

// PurchaseSpan returns the min and max order purchase timestamps. ok is
// false when the dataset holds no orders.
func (d *Dataset) PurchaseSpan() (min, max time.Time, ok bool) {
	for _, o := range d.Orders {
		if !ok {
			min, max, ok = o.PurchasedAt, o.PurchasedAt, true
			continue
		}
		if o.PurchasedAt.Before(min) {
			min = o.PurchasedAt
		}
		if o.PurchasedAt.After(max) {
			max = o.PurchasedAt
		}
	}
	return min, max, ok
}

// EligibleOrderIDs returns the set of order ids whose status counts
// toward revenue and spend.
func (d *Dataset) EligibleOrderIDs() map[string]struct{} {
	ids := make(map[string]struct{}, len(d.Orders))
	for _, o := range d.Orders {
		if o.Status.Eligible() {
			ids[o.ID] = struct{}{}
		}
	}
	return ids
}
