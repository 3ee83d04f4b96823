package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// The three reference tables (categories, shipping methods, payment methods)
// share a name+description shape, so their CRUD rides common helpers.

type namedRow struct {
	ID          int64
	Name        string
	Description string
}

func (r *repository) listNamed(ctx context.Context, table string) ([]namedRow, error) {
	query := fmt.Sprintf(`
		SELECT id, name, description
		FROM catalog_service.%s
		ORDER BY name
	`, table)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query %s: %w", table, err)
	}
	defer rows.Close()

	result := make([]namedRow, 0)
	for rows.Next() {
		var row namedRow
		if err := rows.Scan(&row.ID, &row.Name, &row.Description); err != nil {
			return nil, fmt.Errorf("repository: failed to scan %s row: %w", table, err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating %s: %w", table, err)
	}
	return result, nil
}

func (r *repository) getNamed(ctx context.Context, table string, id int64) (*namedRow, error) {
	query := fmt.Sprintf(`
		SELECT id, name, description
		FROM catalog_service.%s
		WHERE id = $1
	`, table)

	var row namedRow
	err := r.db.QueryRow(ctx, query, id).Scan(&row.ID, &row.Name, &row.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("repository: failed to select %s by id %d: %w", table, id, err)
	}
	return &row, nil
}

func (r *repository) createNamed(ctx context.Context, table, name, description string) (int64, error) {
	query := fmt.Sprintf(`
		INSERT INTO catalog_service.%s (name, description)
		VALUES ($1, $2)
		RETURNING id
	`, table)

	var id int64
	if err := r.db.QueryRow(ctx, query, name, description).Scan(&id); err != nil {
		return 0, mapWriteError("insert "+table, err)
	}
	return id, nil
}

func (r *repository) updateNamed(ctx context.Context, table string, row namedRow) error {
	query := fmt.Sprintf(`
		UPDATE catalog_service.%s
		SET name = $1, description = $2
		WHERE id = $3
	`, table)

	cmdTag, err := r.db.Exec(ctx, query, row.Name, row.Description, row.ID)
	if err != nil {
		return mapWriteError("update "+table, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := r.listNamed(ctx, "categories")
	if err != nil {
		return nil, err
	}
	categories := make([]Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, Category{ID: row.ID, Name: row.Name, Description: row.Description})
	}
	return categories, nil
}

func (r *repository) GetCategoryByID(ctx context.Context, id int64) (*Category, error) {
	row, err := r.getNamed(ctx, "categories", id)
	if err != nil {
		return nil, err
	}
	return &Category{ID: row.ID, Name: row.Name, Description: row.Description}, nil
}

func (r *repository) CreateCategory(ctx context.Context, c *Category) (int64, error) {
	return r.createNamed(ctx, "categories", c.Name, c.Description)
}

func (r *repository) UpdateCategory(ctx context.Context, c *Category) error {
	return r.updateNamed(ctx, "categories", namedRow{ID: c.ID, Name: c.Name, Description: c.Description})
}

func categoryBlockersQuery(ctx context.Context, q DB, id int64) ([]Blocker, error) {
	rows, err := q.Query(ctx, `
		SELECT 'product', id, name
		FROM catalog_service.products
		WHERE category_id = $1
		ORDER BY id
	`, id)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query category blockers: %w", err)
	}
	return scanBlockers(rows)
}

func (r *repository) CategoryBlockers(ctx context.Context, id int64) ([]Blocker, error) {
	return categoryBlockersQuery(ctx, r.db, id)
}

func (r *repository) DeleteCategory(ctx context.Context, id int64) error {
	return r.guardedDelete(ctx, "category", id, categoryBlockersQuery,
		`DELETE FROM catalog_service.categories WHERE id = $1`)
}

func (r *repository) ListShippingMethods(ctx context.Context) ([]ShippingMethod, error) {
	rows, err := r.listNamed(ctx, "shipping_methods")
	if err != nil {
		return nil, err
	}
	methods := make([]ShippingMethod, 0, len(rows))
	for _, row := range rows {
		methods = append(methods, ShippingMethod{ID: row.ID, Name: row.Name, Description: row.Description})
	}
	return methods, nil
}

func (r *repository) GetShippingMethodByID(ctx context.Context, id int64) (*ShippingMethod, error) {
	row, err := r.getNamed(ctx, "shipping_methods", id)
	if err != nil {
		return nil, err
	}
	return &ShippingMethod{ID: row.ID, Name: row.Name, Description: row.Description}, nil
}

func (r *repository) CreateShippingMethod(ctx context.Context, m *ShippingMethod) (int64, error) {
	return r.createNamed(ctx, "shipping_methods", m.Name, m.Description)
}

func (r *repository) UpdateShippingMethod(ctx context.Context, m *ShippingMethod) error {
	return r.updateNamed(ctx, "shipping_methods", namedRow{ID: m.ID, Name: m.Name, Description: m.Description})
}

func methodBlockersQuery(column string) func(ctx context.Context, q DB, id int64) ([]Blocker, error) {
	return func(ctx context.Context, q DB, id int64) ([]Blocker, error) {
		query := fmt.Sprintf(`
			SELECT 'customer', id, username || ' - ' || email
			FROM catalog_service.customers
			WHERE %[1]s = $1
			UNION ALL
			SELECT 'shopping_cart', id, 'cart ' || id::text
			FROM catalog_service.shopping_carts
			WHERE %[1]s = $1
			UNION ALL
			SELECT 'order', id, 'order ' || id::text
			FROM catalog_service.orders
			WHERE %[1]s = $1
		`, column)

		rows, err := q.Query(ctx, query, id)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to query %s blockers: %w", column, err)
		}
		return scanBlockers(rows)
	}
}

func (r *repository) ShippingMethodBlockers(ctx context.Context, id int64) ([]Blocker, error) {
	return methodBlockersQuery("shipping_method_id")(ctx, r.db, id)
}

func (r *repository) DeleteShippingMethod(ctx context.Context, id int64) error {
	return r.guardedDelete(ctx, "shipping_method", id, methodBlockersQuery("shipping_method_id"),
		`DELETE FROM catalog_service.shipping_methods WHERE id = $1`)
}

func (r *repository) ListPaymentMethods(ctx context.Context) ([]PaymentMethod, error) {
	rows, err := r.listNamed(ctx, "payment_methods")
	if err != nil {
		return nil, err
	}
	methods := make([]PaymentMethod, 0, len(rows))
	for _, row := range rows {
		methods = append(methods, PaymentMethod{ID: row.ID, Name: row.Name, Description: row.Description})
	}
	return methods, nil
}

func (r *repository) GetPaymentMethodByID(ctx context.Context, id int64) (*PaymentMethod, error) {
	row, err := r.getNamed(ctx, "payment_methods", id)
	if err != nil {
		return nil, err
	}
	return &PaymentMethod{ID: row.ID, Name: row.Name, Description: row.Description}, nil
}

func (r *repository) CreatePaymentMethod(ctx context.Context, m *PaymentMethod) (int64, error) {
	return r.createNamed(ctx, "payment_methods", m.Name, m.Description)
}

func (r *repository) UpdatePaymentMethod(ctx context.Context, m *PaymentMethod) error {
	return r.updateNamed(ctx, "payment_methods", namedRow{ID: m.ID, Name: m.Name, Description: m.Description})
}

func (r *repository) PaymentMethodBlockers(ctx context.Context, id int64) ([]Blocker, error) {
	return methodBlockersQuery("payment_method_id")(ctx, r.db, id)
}

func (r *repository) DeletePaymentMethod(ctx context.Context, id int64) error {
	return r.guardedDelete(ctx, "payment_method", id, methodBlockersQuery("payment_method_id"),
		`DELETE FROM catalog_service.payment_methods WHERE id = $1`)
}
