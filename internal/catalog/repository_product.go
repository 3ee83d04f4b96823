package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

func (r *repository) ListProducts(ctx context.Context) ([]Product, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, price, stock_num, category_id
		FROM catalog_service.products
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query products: %w", err)
	}
	defer rows.Close()

	products := make([]Product, 0)
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.StockNum, &p.CategoryID); err != nil {
			return nil, fmt.Errorf("repository: failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating products: %w", err)
	}
	return products, nil
}

func (r *repository) GetProductByID(ctx context.Context, id int64) (*Product, error) {
	var p Product
	err := r.db.QueryRow(ctx, `
		SELECT id, name, price, stock_num, category_id
		FROM catalog_service.products
		WHERE id = $1
	`, id).Scan(&p.ID, &p.Name, &p.Price, &p.StockNum, &p.CategoryID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("repository: failed to select product by id %d: %w", id, err)
	}
	return &p, nil
}

func (r *repository) CreateProduct(ctx context.Context, p *Product) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO catalog_service.products (name, price, stock_num, category_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, p.Name, p.Price, p.StockNum, p.CategoryID).Scan(&id)
	if err != nil {
		return 0, mapWriteError("insert product", err)
	}
	return id, nil
}

func (r *repository) UpdateProduct(ctx context.Context, p *Product) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE catalog_service.products
		SET name = $1, price = $2, stock_num = $3, category_id = $4
		WHERE id = $5
	`, p.Name, p.Price, p.StockNum, p.CategoryID, p.ID)
	if err != nil {
		return mapWriteError("update product", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func productBlockersQuery(ctx context.Context, q DB, id int64) ([]Blocker, error) {
	rows, err := q.Query(ctx, `
		SELECT 'cart_item', id, 'cart ' || cart_id::text
		FROM catalog_service.cart_items
		WHERE product_id = $1
		UNION ALL
		SELECT 'order_line_item', id, 'order ' || order_id::text
		FROM catalog_service.order_line_items
		WHERE product_id = $1
	`, id)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query product blockers: %w", err)
	}
	return scanBlockers(rows)
}

func (r *repository) ProductBlockers(ctx context.Context, id int64) ([]Blocker, error) {
	return productBlockersQuery(ctx, r.db, id)
}

func (r *repository) DeleteProduct(ctx context.Context, id int64) error {
	return r.guardedDelete(ctx, "product", id, productBlockersQuery,
		`DELETE FROM catalog_service.products WHERE id = $1`)
}
