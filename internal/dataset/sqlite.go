package dataset

import (
	"database/sql"
	"fmt"
	"os"

	errs "github.com/Reminerva/Proyek-Data-Analysis/pkg/errors"
	_ "modernc.org/sqlite"
)

// SQLiteLoader loads the dataset from a single snapshot database holding
// the same six tables as the CSV layout (customers, orders, order_items,
// payments, products, sellers).
type SQLiteLoader struct {
	path string
}

// NewSQLiteLoader creates a loader for the given database file.
func NewSQLiteLoader(path string) *SQLiteLoader {
	return &SQLiteLoader{path: path}
}

// Load reads all six tables.
func (l *SQLiteLoader) Load() (*Dataset, error) {
	if _, err := os.Stat(l.path); os.IsNotExist(err) {
		return nil, errs.Wrap(err, errs.ErrCodeDataNotFound, fmt.Sprintf("snapshot database %s not found", l.path)).
			WithSuggestions("Check data.sqlite_path in the configuration")
	}

	db, err := sql.Open("sqlite", l.path)
	if err != nil {
		return nil, errs.Wrap(err, errs.ErrCodeDataSource, "failed to open snapshot database")
	}
	defer db.Close()

	ds := &Dataset{}

	err = queryRows(db, "customers",
		`SELECT customer_id, customer_city, customer_state FROM customers`,
		func(rows *sql.Rows) error {
			var c Customer
			if err := rows.Scan(&c.ID, &c.City, &c.State); err != nil {
				return err
			}
			ds.Customers = append(ds.Customers, c)
			return nil
		})
	if err != nil {
		return nil, err
	}

	err = queryRows(db, "orders",
		`SELECT order_id, customer_id, order_status, order_purchase_timestamp FROM orders`,
		func(rows *sql.Rows) error {
			var o Order
			var status, purchased string
			if err := rows.Scan(&o.ID, &o.CustomerID, &status, &purchased); err != nil {
				return err
			}
			t, err := parseTimestamp(purchased)
			if err != nil {
				return fmt.Errorf("bad order_purchase_timestamp %q: %w", purchased, err)
			}
			o.Status = OrderStatus(status)
			o.PurchasedAt = t
			ds.Orders = append(ds.Orders, o)
			return nil
		})
	if err != nil {
		return nil, err
	}

	err = queryRows(db, "order_items",
		`SELECT order_id, order_item_id, product_id, seller_id, price, freight_value, shipping_limit_date FROM order_items`,
		func(rows *sql.Rows) error {
			var it OrderItem
			var limit string
			if err := rows.Scan(&it.OrderID, &it.ItemID, &it.ProductID, &it.SellerID, &it.Price, &it.FreightValue, &limit); err != nil {
				return err
			}
			t, err := parseTimestamp(limit)
			if err != nil {
				return fmt.Errorf("bad shipping_limit_date %q: %w", limit, err)
			}
			it.ShippingLimitAt = t
			ds.Items = append(ds.Items, it)
			return nil
		})
	if err != nil {
		return nil, err
	}

	err = queryRows(db, "payments",
		`SELECT order_id, payment_value FROM payments`,
		func(rows *sql.Rows) error {
			var p Payment
			if err := rows.Scan(&p.OrderID, &p.Value); err != nil {
				return err
			}
			ds.Payments = append(ds.Payments, p)
			return nil
		})
	if err != nil {
		return nil, err
	}

	err = queryRows(db, "products",
		`SELECT product_id, product_category_name FROM products`,
		func(rows *sql.Rows) error {
			var p Product
			if err := rows.Scan(&p.ID, &p.CategoryName); err != nil {
				return err
			}
			ds.Products = append(ds.Products, p)
			return nil
		})
	if err != nil {
		return nil, err
	}

	err = queryRows(db, "sellers",
		`SELECT seller_id, seller_city, seller_state FROM sellers`,
		func(rows *sql.Rows) error {
			var s Seller
			if err := rows.Scan(&s.ID, &s.City, &s.State); err != nil {
				return err
			}
			ds.Sellers = append(ds.Sellers, s)
			return nil
		})
	if err != nil {
		return nil, err
	}

	return ds, nil
}

func queryRows(db *sql.DB, table, query string, scan func(*sql.Rows) error) error {
	rows, err := db.Query(query)
	if err != nil {
		return errs.Wrap(err, errs.ErrCodeDataFormat, fmt.Sprintf("failed to query %s table", table)).
			WithContext("table", table)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return errs.Wrap(err, errs.ErrCodeDataParse, fmt.Sprintf("failed to scan %s row", table)).
				WithContext("table", table)
		}
	}
	if err := rows.Err(); err != nil {
		return errs.Wrap(err, errs.ErrCodeDataSource, fmt.Sprintf("failed while reading %s table", table))
	}
	return nil
}
