package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

func scanOrders(rows pgx.Rows) ([]Order, error) {
	defer rows.Close()

	orders := make([]Order, 0)
	for rows.Next() {
		var o Order
		err := rows.Scan(&o.ID, &o.TotalPrice, &o.OrderDate, &o.Receiver, &o.Address,
			&o.ShippingMethodID, &o.PaymentMethodID, &o.CustomerID)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating orders: %w", err)
	}
	return orders, nil
}

func (r *repository) ListOrders(ctx context.Context) ([]Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, total_price, order_date, receiver, address,
		       shipping_method_id, payment_method_id, customer_id
		FROM catalog_service.orders
		ORDER BY order_date, id
	`)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query orders: %w", err)
	}
	return scanOrders(rows)
}

func (r *repository) GetOrderByID(ctx context.Context, id int64) (*Order, error) {
	var o Order
	err := r.db.QueryRow(ctx, `
		SELECT id, total_price, order_date, receiver, address,
		       shipping_method_id, payment_method_id, customer_id
		FROM catalog_service.orders
		WHERE id = $1
	`, id).Scan(&o.ID, &o.TotalPrice, &o.OrderDate, &o.Receiver, &o.Address,
		&o.ShippingMethodID, &o.PaymentMethodID, &o.CustomerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("repository: failed to select order by id %d: %w", id, err)
	}
	return &o, nil
}

func (r *repository) CreateOrder(ctx context.Context, o *Order) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO catalog_service.orders
			(total_price, order_date, receiver, address,
			 shipping_method_id, payment_method_id, customer_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, o.TotalPrice, o.OrderDate, o.Receiver, o.Address,
		o.ShippingMethodID, o.PaymentMethodID, o.CustomerID).Scan(&id)
	if err != nil {
		return 0, mapWriteError("insert order", err)
	}
	return id, nil
}

func (r *repository) UpdateOrder(ctx context.Context, o *Order) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE catalog_service.orders
		SET total_price = $1, order_date = $2, receiver = $3, address = $4,
		    shipping_method_id = $5, payment_method_id = $6, customer_id = $7
		WHERE id = $8
	`, o.TotalPrice, o.OrderDate, o.Receiver, o.Address,
		o.ShippingMethodID, o.PaymentMethodID, o.CustomerID, o.ID)
	if err != nil {
		return mapWriteError("update order", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func orderBlockersQuery(ctx context.Context, q DB, id int64) ([]Blocker, error) {
	rows, err := q.Query(ctx, `
		SELECT 'order_line_item', oli.id, p.name
		FROM catalog_service.order_line_items oli
		JOIN catalog_service.products p ON p.id = oli.product_id
		WHERE oli.order_id = $1
		ORDER BY oli.id
	`, id)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query order blockers: %w", err)
	}
	return scanBlockers(rows)
}

func (r *repository) OrderBlockers(ctx context.Context, id int64) ([]Blocker, error) {
	return orderBlockersQuery(ctx, r.db, id)
}

func (r *repository) DeleteOrder(ctx context.Context, id int64) error {
	return r.guardedDelete(ctx, "order", id, orderBlockersQuery,
		`DELETE FROM catalog_service.orders WHERE id = $1`)
}

func (r *repository) ListOrderLines(ctx context.Context, orderID int64) ([]Line, error) {
	rows, err := r.db.Query(ctx, `
		SELECT oli.id, oli.quantity, p.id, p.name, p.price
		FROM catalog_service.order_line_items oli
		JOIN catalog_service.products p ON p.id = oli.product_id
		WHERE oli.order_id = $1
		ORDER BY oli.id
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query order lines for order %d: %w", orderID, err)
	}
	return scanLines(rows)
}

func (r *repository) ListOrderLineItems(ctx context.Context) ([]OrderLineItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, price, quantity, order_id, product_id
		FROM catalog_service.order_line_items
		ORDER BY order_id
	`)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query order line items: %w", err)
	}
	defer rows.Close()

	items := make([]OrderLineItem, 0)
	for rows.Next() {
		var i OrderLineItem
		if err := rows.Scan(&i.ID, &i.Price, &i.Quantity, &i.OrderID, &i.ProductID); err != nil {
			return nil, fmt.Errorf("repository: failed to scan order line item: %w", err)
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating order line items: %w", err)
	}
	return items, nil
}

func (r *repository) GetOrderLineItemByID(ctx context.Context, id int64) (*OrderLineItem, error) {
	var i OrderLineItem
	err := r.db.QueryRow(ctx, `
		SELECT id, price, quantity, order_id, product_id
		FROM catalog_service.order_line_items
		WHERE id = $1
	`, id).Scan(&i.ID, &i.Price, &i.Quantity, &i.OrderID, &i.ProductID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("repository: failed to select order line item by id %d: %w", id, err)
	}
	return &i, nil
}

func (r *repository) CreateOrderLineItem(ctx context.Context, i *OrderLineItem) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO catalog_service.order_line_items (price, quantity, order_id, product_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, i.Price, i.Quantity, i.OrderID, i.ProductID).Scan(&id)
	if err != nil {
		return 0, mapWriteError("insert order line item", err)
	}
	return id, nil
}

func (r *repository) UpdateOrderLineItem(ctx context.Context, i *OrderLineItem) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE catalog_service.order_line_items
		SET price = $1, quantity = $2, order_id = $3, product_id = $4
		WHERE id = $5
	`, i.Price, i.Quantity, i.OrderID, i.ProductID, i.ID)
	if err != nil {
		return mapWriteError("update order line item", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) DeleteOrderLineItem(ctx context.Context, id int64) error {
	// Order line items have no dependents.
	return r.guardedDelete(ctx, "order_line_item", id, nil,
		`DELETE FROM catalog_service.order_line_items WHERE id = $1`)
}
