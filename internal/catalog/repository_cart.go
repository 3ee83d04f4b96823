package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

func scanCarts(rows pgx.Rows) ([]ShoppingCart, error) {
	defer rows.Close()

	carts := make([]ShoppingCart, 0)
	for rows.Next() {
		var c ShoppingCart
		err := rows.Scan(&c.ID, &c.TotalPrice, &c.CustomerID, &c.ShippingMethodID, &c.PaymentMethodID)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan shopping cart: %w", err)
		}
		carts = append(carts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating shopping carts: %w", err)
	}
	return carts, nil
}

func scanLines(rows pgx.Rows) ([]Line, error) {
	defer rows.Close()

	lines := make([]Line, 0)
	for rows.Next() {
		var l Line
		err := rows.Scan(&l.ID, &l.Quantity, &l.ProductID, &l.ProductName, &l.ProductPrice)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan line: %w", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating lines: %w", err)
	}
	return lines, nil
}

func (r *repository) ListCarts(ctx context.Context) ([]ShoppingCart, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, total_price, customer_id, shipping_method_id, payment_method_id
		FROM catalog_service.shopping_carts
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query shopping carts: %w", err)
	}
	return scanCarts(rows)
}

func (r *repository) GetCartByID(ctx context.Context, id int64) (*ShoppingCart, error) {
	var c ShoppingCart
	err := r.db.QueryRow(ctx, `
		SELECT id, total_price, customer_id, shipping_method_id, payment_method_id
		FROM catalog_service.shopping_carts
		WHERE id = $1
	`, id).Scan(&c.ID, &c.TotalPrice, &c.CustomerID, &c.ShippingMethodID, &c.PaymentMethodID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("repository: failed to select shopping cart by id %d: %w", id, err)
	}
	return &c, nil
}

func (r *repository) CreateCart(ctx context.Context, c *ShoppingCart) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO catalog_service.shopping_carts
			(total_price, customer_id, shipping_method_id, payment_method_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, c.TotalPrice, c.CustomerID, c.ShippingMethodID, c.PaymentMethodID).Scan(&id)
	if err != nil {
		return 0, mapWriteError("insert shopping cart", err)
	}
	return id, nil
}

func (r *repository) UpdateCart(ctx context.Context, c *ShoppingCart) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE catalog_service.shopping_carts
		SET total_price = $1, customer_id = $2, shipping_method_id = $3, payment_method_id = $4
		WHERE id = $5
	`, c.TotalPrice, c.CustomerID, c.ShippingMethodID, c.PaymentMethodID, c.ID)
	if err != nil {
		return mapWriteError("update shopping cart", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func cartBlockersQuery(ctx context.Context, q DB, id int64) ([]Blocker, error) {
	rows, err := q.Query(ctx, `
		SELECT 'cart_item', ci.id, p.name
		FROM catalog_service.cart_items ci
		JOIN catalog_service.products p ON p.id = ci.product_id
		WHERE ci.cart_id = $1
		ORDER BY ci.id
	`, id)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query cart blockers: %w", err)
	}
	return scanBlockers(rows)
}

func (r *repository) CartBlockers(ctx context.Context, id int64) ([]Blocker, error) {
	return cartBlockersQuery(ctx, r.db, id)
}

func (r *repository) DeleteCart(ctx context.Context, id int64) error {
	return r.guardedDelete(ctx, "shopping_cart", id, cartBlockersQuery,
		`DELETE FROM catalog_service.shopping_carts WHERE id = $1`)
}

func (r *repository) ListCartLines(ctx context.Context, cartID int64) ([]Line, error) {
	rows, err := r.db.Query(ctx, `
		SELECT ci.id, ci.quantity, p.id, p.name, p.price
		FROM catalog_service.cart_items ci
		JOIN catalog_service.products p ON p.id = ci.product_id
		WHERE ci.cart_id = $1
		ORDER BY ci.cart_id, ci.product_id
	`, cartID)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query cart lines for cart %d: %w", cartID, err)
	}
	return scanLines(rows)
}

func (r *repository) ListCartItems(ctx context.Context) ([]CartItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, quantity, cart_id, product_id
		FROM catalog_service.cart_items
		ORDER BY cart_id, product_id
	`)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query cart items: %w", err)
	}
	defer rows.Close()

	items := make([]CartItem, 0)
	for rows.Next() {
		var i CartItem
		if err := rows.Scan(&i.ID, &i.Quantity, &i.CartID, &i.ProductID); err != nil {
			return nil, fmt.Errorf("repository: failed to scan cart item: %w", err)
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating cart items: %w", err)
	}
	return items, nil
}

func (r *repository) GetCartItemByID(ctx context.Context, id int64) (*CartItem, error) {
	var i CartItem
	err := r.db.QueryRow(ctx, `
		SELECT id, quantity, cart_id, product_id
		FROM catalog_service.cart_items
		WHERE id = $1
	`, id).Scan(&i.ID, &i.Quantity, &i.CartID, &i.ProductID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("repository: failed to select cart item by id %d: %w", id, err)
	}
	return &i, nil
}

func (r *repository) CreateCartItem(ctx context.Context, i *CartItem) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO catalog_service.cart_items (quantity, cart_id, product_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`, i.Quantity, i.CartID, i.ProductID).Scan(&id)
	if err != nil {
		return 0, mapWriteError("insert cart item", err)
	}
	return id, nil
}

func (r *repository) UpdateCartItem(ctx context.Context, i *CartItem) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE catalog_service.cart_items
		SET quantity = $1, cart_id = $2, product_id = $3
		WHERE id = $4
	`, i.Quantity, i.CartID, i.ProductID, i.ID)
	if err != nil {
		return mapWriteError("update cart item", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) DeleteCartItem(ctx context.Context, id int64) error {
	// Cart items have no dependents; the delete still runs through the guard
	// path so not-found and constraint handling stay uniform.
	return r.guardedDelete(ctx, "cart_item", id, nil,
		`DELETE FROM catalog_service.cart_items WHERE id = $1`)
}
