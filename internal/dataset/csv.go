package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	errs "github.com/Reminerva/Proyek-Data-Analysis/pkg/errors"
)

// File names of the six tables inside the data directory.
const (
	FileCustomers = "customers.csv"
	FileOrders    = "orders.csv"
	FileItems     = "order_items.csv"
	FilePayments  = "payments.csv"
	FileProducts  = "products.csv"
	FileSellers   = "sellers.csv"
)

// Timestamp layouts accepted in the two datetime columns.
const (
	timestampLayout = "2006-01-02 15:04:05"
	dateLayout      = "2006-01-02"
)

// CSVLoader loads the dataset from six CSV files in a directory.
type CSVLoader struct {
	dataDir string
}

// NewCSVLoader creates a loader for the given data directory.
func NewCSVLoader(dataDir string) *CSVLoader {
	return &CSVLoader{dataDir: dataDir}
}

// Load reads all six tables.
func (l *CSVLoader) Load() (*Dataset, error) {
	customers, err := l.LoadCustomers()
	if err != nil {
		return nil, err
	}
	orders, err := l.LoadOrders()
	if err != nil {
		return nil, err
	}
	items, err := l.LoadItems()
	if err != nil {
		return nil, err
	}
	payments, err := l.LoadPayments()
	if err != nil {
		return nil, err
	}
	products, err := l.LoadProducts()
	if err != nil {
		return nil, err
	}
	sellers, err := l.LoadSellers()
	if err != nil {
		return nil, err
	}

	return &Dataset{
		Customers: customers,
		Orders:    orders,
		Items:     items,
		Payments:  payments,
		Products:  products,
		Sellers:   sellers,
	}, nil
}

// readTable opens a CSV file, resolves the named columns against the
// header row, and calls row for every data record with the resolved
// column indexes and the 1-based line number. Column order in the file
// does not matter.
func (l *CSVLoader) readTable(file string, columns []string, row func(record []string, cols []int, line int) error) error {
	path := filepath.Join(l.dataDir, file)
	f, err := os.Open(path) // #nosec G304 - data dir comes from validated config
	if err != nil {
		if os.IsNotExist(err) {
			return errs.Wrap(err, errs.ErrCodeDataNotFound, fmt.Sprintf("dataset file %s not found", file)).
				WithContext("path", path).
				WithSuggestions("Check the data directory in the configuration")
		}
		return errs.Wrap(err, errs.ErrCodeDataSource, fmt.Sprintf("failed to open %s", file))
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	head, err := reader.Read()
	if err != nil {
		return errs.Wrap(err, errs.ErrCodeDataFormat, fmt.Sprintf("%s: failed to read header", file))
	}
	index := make(map[string]int, len(head))
	for i, name := range head {
		index[name] = i
	}

	cols := make([]int, len(columns))
	for i, c := range columns {
		idx, ok := index[c]
		if !ok {
			return errs.New(errs.ErrCodeDataFormat, fmt.Sprintf("%s: missing required column %q", file, c))
		}
		cols[i] = idx
	}

	line := 1
	for {
		record, readErr := reader.Read()
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return errs.Wrap(readErr, errs.ErrCodeDataFormat, fmt.Sprintf("%s: read failed at line %d", file, line+1))
		}
		line++

		if len(record) < len(head) {
			return errs.New(errs.ErrCodeDataFormat,
				fmt.Sprintf("%s: line %d has %d columns, expected %d", file, line, len(record), len(head)))
		}

		if err := row(record, cols, line); err != nil {
			return err
		}
	}

	return nil
}

// LoadCustomers reads customers.csv.
// Expected columns: customer_id, customer_city, customer_state
func (l *CSVLoader) LoadCustomers() ([]Customer, error) {
	var customers []Customer
	columns := []string{"customer_id", "customer_city", "customer_state"}
	err := l.readTable(FileCustomers, columns, func(record []string, cols []int, line int) error {
		customers = append(customers, Customer{
			ID:    record[cols[0]],
			City:  record[cols[1]],
			State: record[cols[2]],
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return customers, nil
}

// LoadOrders reads orders.csv.
// Expected columns: order_id, customer_id, order_status, order_purchase_timestamp
func (l *CSVLoader) LoadOrders() ([]Order, error) {
	var orders []Order
	columns := []string{"order_id", "customer_id", "order_status", "order_purchase_timestamp"}
	err := l.readTable(FileOrders, columns, func(record []string, cols []int, line int) error {
		purchasedAt, err := parseTimestamp(record[cols[3]])
		if err != nil {
			return parseError(FileOrders, "order_purchase_timestamp", record[cols[3]], line, err)
		}
		orders = append(orders, Order{
			ID:          record[cols[0]],
			CustomerID:  record[cols[1]],
			Status:      OrderStatus(record[cols[2]]),
			PurchasedAt: purchasedAt,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// LoadItems reads order_items.csv.
// Expected columns: order_id, order_item_id, product_id, seller_id, price,
// freight_value, shipping_limit_date
func (l *CSVLoader) LoadItems() ([]OrderItem, error) {
	var items []OrderItem
	columns := []string{"order_id", "order_item_id", "product_id", "seller_id", "price", "freight_value", "shipping_limit_date"}
	err := l.readTable(FileItems, columns, func(record []string, cols []int, line int) error {
		itemID, err := strconv.Atoi(record[cols[1]])
		if err != nil {
			return parseError(FileItems, "order_item_id", record[cols[1]], line, err)
		}
		price, err := strconv.ParseFloat(record[cols[4]], 64)
		if err != nil {
			return parseError(FileItems, "price", record[cols[4]], line, err)
		}
		freight, err := strconv.ParseFloat(record[cols[5]], 64)
		if err != nil {
			return parseError(FileItems, "freight_value", record[cols[5]], line, err)
		}
		limit, err := parseTimestamp(record[cols[6]])
		if err != nil {
			return parseError(FileItems, "shipping_limit_date", record[cols[6]], line, err)
		}
		items = append(items, OrderItem{
			OrderID:         record[cols[0]],
			ItemID:          itemID,
			ProductID:       record[cols[2]],
			SellerID:        record[cols[3]],
			Price:           price,
			FreightValue:    freight,
			ShippingLimitAt: limit,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// LoadPayments reads payments.csv.
// Expected columns: order_id, payment_value
func (l *CSVLoader) LoadPayments() ([]Payment, error) {
	var payments []Payment
	columns := []string{"order_id", "payment_value"}
	err := l.readTable(FilePayments, columns, func(record []string, cols []int, line int) error {
		value, err := strconv.ParseFloat(record[cols[1]], 64)
		if err != nil {
			return parseError(FilePayments, "payment_value", record[cols[1]], line, err)
		}
		payments = append(payments, Payment{
			OrderID: record[cols[0]],
			Value:   value,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payments, nil
}

// LoadProducts reads products.csv.
// Expected columns: product_id, product_category_name
func (l *CSVLoader) LoadProducts() ([]Product, error) {
	var products []Product
	columns := []string{"product_id", "product_category_name"}
	err := l.readTable(FileProducts, columns, func(record []string, cols []int, line int) error {
		products = append(products, Product{
			ID:           record[cols[0]],
			CategoryName: record[cols[1]],
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return products, nil
}

// LoadSellers reads sellers.csv.
// Expected columns: seller_id, seller_city, seller_state
func (l *CSVLoader) LoadSellers() ([]Seller, error) {
	var sellers []Seller
	columns := []string{"seller_id", "seller_city", "seller_state"}
	err := l.readTable(FileSellers, columns, func(record []string, cols []int, line int) error {
		sellers = append(sellers, Seller{
			ID:    record[cols[0]],
			City:  record[cols[1]],
			State: record[cols[2]],
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sellers, nil
}

func parseError(file, column, value string, line int, cause error) error {
	return errs.Wrap(cause, errs.ErrCodeDataParse,
		fmt.Sprintf("%s: bad %s %q at line %d", file, column, value, line)).
		WithContext("line", line)
}

// parseTimestamp accepts the full timestamp layout with a date-only
// fallback.
func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(timestampLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(dateLayout, s)
}
