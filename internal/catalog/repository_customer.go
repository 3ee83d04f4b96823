package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

func (r *repository) ListCustomers(ctx context.Context) ([]Customer, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, first_name, last_name, disambiguator, username, password, email,
		       shipping_method_id, payment_method_id
		FROM catalog_service.customers
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query customers: %w", err)
	}
	defer rows.Close()

	customers := make([]Customer, 0)
	for rows.Next() {
		var c Customer
		err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Disambiguator, &c.Username,
			&c.Password, &c.Email, &c.ShippingMethodID, &c.PaymentMethodID)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating customers: %w", err)
	}
	return customers, nil
}

func (r *repository) GetCustomerByID(ctx context.Context, id int64) (*Customer, error) {
	var c Customer
	err := r.db.QueryRow(ctx, `
		SELECT id, first_name, last_name, disambiguator, username, password, email,
		       shipping_method_id, payment_method_id
		FROM catalog_service.customers
		WHERE id = $1
	`, id).Scan(&c.ID, &c.FirstName, &c.LastName, &c.Disambiguator, &c.Username,
		&c.Password, &c.Email, &c.ShippingMethodID, &c.PaymentMethodID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("repository: failed to select customer by id %d: %w", id, err)
	}
	return &c, nil
}

func (r *repository) CreateCustomer(ctx context.Context, c *Customer) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO catalog_service.customers
			(first_name, last_name, disambiguator, username, password, email,
			 shipping_method_id, payment_method_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, c.FirstName, c.LastName, c.Disambiguator, c.Username, c.Password, c.Email,
		c.ShippingMethodID, c.PaymentMethodID).Scan(&id)
	if err != nil {
		return 0, mapWriteError("insert customer", err)
	}
	return id, nil
}

func (r *repository) UpdateCustomer(ctx context.Context, c *Customer) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE catalog_service.customers
		SET first_name = $1, last_name = $2, disambiguator = $3, username = $4,
		    password = $5, email = $6, shipping_method_id = $7, payment_method_id = $8
		WHERE id = $9
	`, c.FirstName, c.LastName, c.Disambiguator, c.Username, c.Password, c.Email,
		c.ShippingMethodID, c.PaymentMethodID, c.ID)
	if err != nil {
		return mapWriteError("update customer", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func customerBlockersQuery(ctx context.Context, q DB, id int64) ([]Blocker, error) {
	rows, err := q.Query(ctx, `
		SELECT 'order', id, 'order ' || id::text
		FROM catalog_service.orders
		WHERE customer_id = $1
		UNION ALL
		SELECT 'shopping_cart', id, 'cart ' || id::text
		FROM catalog_service.shopping_carts
		WHERE customer_id = $1
	`, id)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query customer blockers: %w", err)
	}
	return scanBlockers(rows)
}

func (r *repository) CustomerBlockers(ctx context.Context, id int64) ([]Blocker, error) {
	return customerBlockersQuery(ctx, r.db, id)
}

func (r *repository) DeleteCustomer(ctx context.Context, id int64) error {
	return r.guardedDelete(ctx, "customer", id, customerBlockersQuery,
		`DELETE FROM catalog_service.customers WHERE id = $1`)
}

func (r *repository) ListOrdersByCustomer(ctx context.Context, customerID int64) ([]Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, total_price, order_date, receiver, address,
		       shipping_method_id, payment_method_id, customer_id
		FROM catalog_service.orders
		WHERE customer_id = $1
		ORDER BY order_date, id
	`, customerID)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query orders for customer %d: %w", customerID, err)
	}
	return scanOrders(rows)
}

func (r *repository) ListCartsByCustomer(ctx context.Context, customerID int64) ([]ShoppingCart, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, total_price, customer_id, shipping_method_id, payment_method_id
		FROM catalog_service.shopping_carts
		WHERE customer_id = $1
		ORDER BY id
	`, customerID)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query carts for customer %d: %w", customerID, err)
	}
	return scanCarts(rows)
}
