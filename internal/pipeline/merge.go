package pipeline

import (
	"time"

	"github.com/Reminerva/Proyek-Data-Analysis/internal/dataset"
)

// SellerReport is a seller rollup enriched with the seller master's
// location columns.
type SellerReport struct {
	SellerRollup
	City  string
	State string
}

// CustomerReport is an order rollup enriched with the owning order's
// status and purchase timestamp and the customer's location columns.
type CustomerReport struct {
	OrderRollup
	CustomerID  string
	Status      dataset.OrderStatus
	PurchasedAt time.Time
	City        string
	State       string
}

// mergeSellers inner-joins seller rollups with the seller master table.
// Rollup order is preserved; rollups whose seller id has no master row
// are dropped with a warning.
func mergeSellers(rollups []SellerRollup, sellers []dataset.Seller) ([]SellerReport, []Warning) {
	index := make(map[string]dataset.Seller, len(sellers))
	for _, s := range sellers {
		index[s.ID] = s
	}

	var warnings []Warning
	reports := make([]SellerReport, 0, len(rollups))
	for _, r := range rollups {
		seller, ok := index[r.SellerID]
		if !ok {
			warnings = append(warnings, Warning{Table: "sellers", Column: "seller_id", Value: r.SellerID})
			continue
		}
		reports = append(reports, SellerReport{
			SellerRollup: r,
			City:         seller.City,
			State:        seller.State,
		})
	}
	return reports, warnings
}

// mergeCustomers inner-joins order rollups through the orders table to
// the customer master. Rollup order is preserved; a rollup is dropped
// with a warning when either hop is missing.
func mergeCustomers(rollups []OrderRollup, orders []dataset.Order, customers []dataset.Customer) ([]CustomerReport, []Warning) {
	orderIndex := make(map[string]dataset.Order, len(orders))
	for _, o := range orders {
		orderIndex[o.ID] = o
	}
	customerIndex := make(map[string]dataset.Customer, len(customers))
	for _, c := range customers {
		customerIndex[c.ID] = c
	}

	var warnings []Warning
	reports := make([]CustomerReport, 0, len(rollups))
	for _, r := range rollups {
		order, ok := orderIndex[r.OrderID]
		if !ok {
			warnings = append(warnings, Warning{Table: "orders", Column: "order_id", Value: r.OrderID})
			continue
		}
		customer, ok := customerIndex[order.CustomerID]
		if !ok {
			warnings = append(warnings, Warning{Table: "customers", Column: "customer_id", Value: order.CustomerID})
			continue
		}
		reports = append(reports, CustomerReport{
			OrderRollup: r,
			CustomerID:  order.CustomerID,
			Status:      order.Status,
			PurchasedAt: order.PurchasedAt,
			City:        customer.City,
			State:       customer.State,
		})
	}
	return reports, warnings
}
