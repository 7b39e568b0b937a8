package pipeline

import (
	"math"
	"sort"
	"time"

	"github.com/Reminerva/Proyek-Data-Analysis/internal/dataset"
)

// Stats holds the four aggregate statistics computed for every monetary
// column.
type Stats struct {
	Sum  float64
	Mean float64
	Max  float64
	Min  float64
}

type statsAcc struct {
	sum   float64
	count int
	max   float64
	min   float64
}

func (a *statsAcc) add(v float64) {
	if a.count == 0 {
		a.max, a.min = v, v
	} else {
		a.max = math.Max(a.max, v)
		a.min = math.Min(a.min, v)
	}
	a.sum += v
	a.count++
}

func (a *statsAcc) stats() Stats {
	if a.count == 0 {
		return Stats{}
	}
	return Stats{
		Sum:  a.sum,
		Mean: a.sum / float64(a.count),
		Max:  a.max,
		Min:  a.min,
	}
}

// Warning records a dropped row caused by a missing join key. Warnings
// are data-quality diagnostics, never fatal.
type Warning struct {
	Table  string // table whose row was dropped
	Column string // join column
	Value  string // the key with no matching master row
}

// SellerRollup is one row per seller with eligible-order statistics and
// the per-item collected lists. Lists keep item input order and are not
// deduplicated: their length equals the number of contributing item rows.
type SellerRollup struct {
	SellerID       string
	Price          Stats
	Freight        Stats
	ProductIDs     []string
	Categories     []string
	ShippingLimits []time.Time
}

// BuildSellerRollups joins order items to products, keeps items belonging
// to eligible orders, and aggregates per seller. Items whose product_id
// has no master row are dropped with a warning (inner-join policy).
// Output is sorted by summed price descending; ties keep first-seen
// seller order.
func BuildSellerRollups(items []dataset.OrderItem, products []dataset.Product, eligible map[string]struct{}) ([]SellerRollup, []Warning) {
	productIndex := make(map[string]dataset.Product, len(products))
	for _, p := range products {
		productIndex[p.ID] = p
	}

	var warnings []Warning
	order := make([]string, 0)
	bySeller := make(map[string]*sellerAcc)

	for _, it := range items {
		if _, ok := eligible[it.OrderID]; !ok {
			continue
		}
		product, ok := productIndex[it.ProductID]
		if !ok {
			warnings = append(warnings, Warning{Table: "order_items", Column: "product_id", Value: it.ProductID})
			continue
		}

		acc, ok := bySeller[it.SellerID]
		if !ok {
			acc = &sellerAcc{}
			bySeller[it.SellerID] = acc
			order = append(order, it.SellerID)
		}
		acc.price.add(it.Price)
		acc.freight.add(it.FreightValue)
		acc.productIDs = append(acc.productIDs, it.ProductID)
		acc.categories = append(acc.categories, product.CategoryName)
		acc.shippingLimits = append(acc.shippingLimits, it.ShippingLimitAt)
	}

	rollups := make([]SellerRollup, 0, len(order))
	for _, sellerID := range order {
		acc := bySeller[sellerID]
		rollups = append(rollups, SellerRollup{
			SellerID:       sellerID,
			Price:          acc.price.stats(),
			Freight:        acc.freight.stats(),
			ProductIDs:     acc.productIDs,
			Categories:     acc.categories,
			ShippingLimits: acc.shippingLimits,
		})
	}

	sort.SliceStable(rollups, func(i, j int) bool {
		return rollups[i].Price.Sum > rollups[j].Price.Sum
	})

	return rollups, warnings
}

type sellerAcc struct {
	price          statsAcc
	freight        statsAcc
	productIDs     []string
	categories     []string
	shippingLimits []time.Time
}

// OrderRollup is one row per order combining item-level price/freight
// statistics with payment statistics. Orders lacking either side are
// absent (inner join).
type OrderRollup struct {
	OrderID    string
	Price      Stats
	Freight    Stats
	ProductIDs []string
	Categories []string
	Payment    Stats
}

// BuildOrderRollups aggregates two independent tables and inner-joins
// them on order id: product-joined eligible items grouped by order, and
// eligible payments grouped by order. An order with eligible items but no
// payment rows (or the reverse) is dropped. Output is sorted by summed
// payment value descending; ties keep first-seen order.
func BuildOrderRollups(items []dataset.OrderItem, products []dataset.Product, payments []dataset.Payment, eligible map[string]struct{}) ([]OrderRollup, []Warning) {
	productIndex := make(map[string]dataset.Product, len(products))
	for _, p := range products {
		productIndex[p.ID] = p
	}

	var warnings []Warning
	itemSide := make(map[string]*orderItemAcc)

	for _, it := range items {
		if _, ok := eligible[it.OrderID]; !ok {
			continue
		}
		product, ok := productIndex[it.ProductID]
		if !ok {
			warnings = append(warnings, Warning{Table: "order_items", Column: "product_id", Value: it.ProductID})
			continue
		}

		acc, ok := itemSide[it.OrderID]
		if !ok {
			acc = &orderItemAcc{}
			itemSide[it.OrderID] = acc
		}
		acc.price.add(it.Price)
		acc.freight.add(it.FreightValue)
		acc.productIDs = append(acc.productIDs, it.ProductID)
		acc.categories = append(acc.categories, product.CategoryName)
	}

	paymentSide := make(map[string]*statsAcc)
	paymentOrder := make([]string, 0)
	for _, p := range payments {
		if _, ok := eligible[p.OrderID]; !ok {
			continue
		}
		acc, ok := paymentSide[p.OrderID]
		if !ok {
			acc = &statsAcc{}
			paymentSide[p.OrderID] = acc
			paymentOrder = append(paymentOrder, p.OrderID)
		}
		acc.add(p.Value)
	}

	rollups := make([]OrderRollup, 0, len(paymentOrder))
	for _, orderID := range paymentOrder {
		itemAcc, ok := itemSide[orderID]
		if !ok {
			// no eligible product-joined items for this order
			continue
		}
		rollups = append(rollups, OrderRollup{
			OrderID:    orderID,
			Price:      itemAcc.price.stats(),
			Freight:    itemAcc.freight.stats(),
			ProductIDs: itemAcc.productIDs,
			Categories: itemAcc.categories,
			Payment:    paymentSide[orderID].stats(),
		})
	}

	sort.SliceStable(rollups, func(i, j int) bool {
		return rollups[i].Payment.Sum > rollups[j].Payment.Sum
	})

	return rollups, warnings
}

type orderItemAcc struct {
	price      statsAcc
	freight    statsAcc
	productIDs []string
	categories []string
}
