package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
)

// Repository is the persistence surface of the catalog. Every write runs in
// its own statement or transaction; the guarded deletes re-check dependents
// inside the transaction that performs the delete.
type Repository interface {
	ListCategories(ctx context.Context) ([]Category, error)
	GetCategoryByID(ctx context.Context, id int64) (*Category, error)
	CreateCategory(ctx context.Context, c *Category) (int64, error)
	UpdateCategory(ctx context.Context, c *Category) error
	DeleteCategory(ctx context.Context, id int64) error
	CategoryBlockers(ctx context.Context, id int64) ([]Blocker, error)

	ListShippingMethods(ctx context.Context) ([]ShippingMethod, error)
	GetShippingMethodByID(ctx context.Context, id int64) (*ShippingMethod, error)
	CreateShippingMethod(ctx context.Context, m *ShippingMethod) (int64, error)
	UpdateShippingMethod(ctx context.Context, m *ShippingMethod) error
	DeleteShippingMethod(ctx context.Context, id int64) error
	ShippingMethodBlockers(ctx context.Context, id int64) ([]Blocker, error)

	ListPaymentMethods(ctx context.Context) ([]PaymentMethod, error)
	GetPaymentMethodByID(ctx context.Context, id int64) (*PaymentMethod, error)
	CreatePaymentMethod(ctx context.Context, m *PaymentMethod) (int64, error)
	UpdatePaymentMethod(ctx context.Context, m *PaymentMethod) error
	DeletePaymentMethod(ctx context.Context, id int64) error
	PaymentMethodBlockers(ctx context.Context, id int64) ([]Blocker, error)

	ListCustomers(ctx context.Context) ([]Customer, error)
	GetCustomerByID(ctx context.Context, id int64) (*Customer, error)
	CreateCustomer(ctx context.Context, c *Customer) (int64, error)
	UpdateCustomer(ctx context.Context, c *Customer) error
	DeleteCustomer(ctx context.Context, id int64) error
	CustomerBlockers(ctx context.Context, id int64) ([]Blocker, error)
	ListOrdersByCustomer(ctx context.Context, customerID int64) ([]Order, error)
	ListCartsByCustomer(ctx context.Context, customerID int64) ([]ShoppingCart, error)

	ListProducts(ctx context.Context) ([]Product, error)
	GetProductByID(ctx context.Context, id int64) (*Product, error)
	CreateProduct(ctx context.Context, p *Product) (int64, error)
	UpdateProduct(ctx context.Context, p *Product) error
	DeleteProduct(ctx context.Context, id int64) error
	ProductBlockers(ctx context.Context, id int64) ([]Blocker, error)

	ListCarts(ctx context.Context) ([]ShoppingCart, error)
	GetCartByID(ctx context.Context, id int64) (*ShoppingCart, error)
	CreateCart(ctx context.Context, c *ShoppingCart) (int64, error)
	UpdateCart(ctx context.Context, c *ShoppingCart) error
	DeleteCart(ctx context.Context, id int64) error
	CartBlockers(ctx context.Context, id int64) ([]Blocker, error)
	ListCartLines(ctx context.Context, cartID int64) ([]Line, error)

	ListCartItems(ctx context.Context) ([]CartItem, error)
	GetCartItemByID(ctx context.Context, id int64) (*CartItem, error)
	CreateCartItem(ctx context.Context, i *CartItem) (int64, error)
	UpdateCartItem(ctx context.Context, i *CartItem) error
	DeleteCartItem(ctx context.Context, id int64) error

	ListOrders(ctx context.Context) ([]Order, error)
	GetOrderByID(ctx context.Context, id int64) (*Order, error)
	CreateOrder(ctx context.Context, o *Order) (int64, error)
	UpdateOrder(ctx context.Context, o *Order) error
	DeleteOrder(ctx context.Context, id int64) error
	OrderBlockers(ctx context.Context, id int64) ([]Blocker, error)
	ListOrderLines(ctx context.Context, orderID int64) ([]Line, error)

	ListOrderLineItems(ctx context.Context) ([]OrderLineItem, error)
	GetOrderLineItemByID(ctx context.Context, id int64) (*OrderLineItem, error)
	CreateOrderLineItem(ctx context.Context, i *OrderLineItem) (int64, error)
	UpdateOrderLineItem(ctx context.Context, i *OrderLineItem) error
	DeleteOrderLineItem(ctx context.Context, id int64) error
}

type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

type repository struct {
	db DB
}

func NewRepository(db DB) Repository {
	return &repository{db: db}
}

// uniqueConstraintFields maps the schema's named unique constraints to the
// form field that should carry the violation message.
var uniqueConstraintFields = map[string]struct{ field, message string }{
	"unique_category":        {"name", "a category with this name already exists"},
	"unique_shipping_method": {"name", "a shipping method with this name already exists"},
	"unique_payment_method":  {"name", "a payment method with this name already exists"},
	"unique_customer":        {"username", "a customer with this username, email and disambiguator already exists"},
	"unique_product":         {"name", "a product with this name already exists"},
	"unique_shopping_cart":   {"customer_id", "this customer already has a shopping cart"},
	"unique_cart_item":       {"product_id", "this product is already in the cart"},
	"unique_order_line_item": {"product_id", "this line item already exists on the order"},
}

// fkConstraintFields maps foreign key constraints to the referencing field,
// for create/update submissions that point at a missing parent.
var fkConstraintFields = map[string]struct{ field, message string }{
	"customers_shipping_method_id_fkey":   {"shipping_method_id", "unknown shipping method"},
	"customers_payment_method_id_fkey":    {"payment_method_id", "unknown payment method"},
	"products_category_id_fkey":           {"category_id", "unknown category"},
	"shopping_carts_customer_id_fkey":     {"customer_id", "unknown customer"},
	"shopping_carts_shipping_method_id_fkey": {"shipping_method_id", "unknown shipping method"},
	"shopping_carts_payment_method_id_fkey":  {"payment_method_id", "unknown payment method"},
	"cart_items_cart_id_fkey":             {"cart_id", "unknown shopping cart"},
	"cart_items_product_id_fkey":          {"product_id", "unknown product"},
	"orders_shipping_method_id_fkey":      {"shipping_method_id", "unknown shipping method"},
	"orders_payment_method_id_fkey":       {"payment_method_id", "unknown payment method"},
	"orders_customer_id_fkey":             {"customer_id", "unknown customer"},
	"order_line_items_order_id_fkey":      {"order_id", "unknown order"},
	"order_line_items_product_id_fkey":    {"product_id", "unknown product"},
}

// mapWriteError converts constraint violations raised by inserts and updates
// into field-level validation errors. Anything else is wrapped as-is.
func mapWriteError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			if m, ok := uniqueConstraintFields[pgErr.ConstraintName]; ok {
				return newValidationError(m.field, m.message)
			}
			return newValidationError("id", "duplicate value")
		case pgerrcode.ForeignKeyViolation:
			if m, ok := fkConstraintFields[pgErr.ConstraintName]; ok {
				return newValidationError(m.field, m.message)
			}
			return newValidationError("id", "referenced row does not exist")
		}
	}
	return fmt.Errorf("repository: %s: %w", op, err)
}

// guardedDelete deletes one row after re-checking its dependents inside the
// same transaction. A dependent inserted between the caller's guard check and
// this call surfaces as a DeleteBlockedError, never as an orphaned reference;
// the schema's ON DELETE RESTRICT backs the same rule at the database level.
func (r *repository) guardedDelete(
	ctx context.Context,
	entity string,
	id int64,
	blockersInTx func(ctx context.Context, q DB, id int64) ([]Blocker, error),
	deleteQuery string,
) (err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repository: failed to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				log.Error().Err(rbErr).Str("entity", entity).Int64("id", id).Msg("Failed to rollback transaction after panic")
			}
			panic(p)
		} else if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				log.Error().Err(rbErr).Str("entity", entity).Int64("id", id).Msg("Failed to rollback transaction")
			}
		} else {
			if commitErr := tx.Commit(ctx); commitErr != nil {
				err = fmt.Errorf("repository: failed to commit transaction: %w", commitErr)
			}
		}
	}()

	if blockersInTx != nil {
		blockers, checkErr := blockersInTx(ctx, tx, id)
		if checkErr != nil {
			err = checkErr
			return err
		}
		if len(blockers) > 0 {
			err = &DeleteBlockedError{Entity: entity, ID: id, Blockers: blockers}
			return err
		}
	}

	cmdTag, execErr := tx.Exec(ctx, deleteQuery, id)
	if execErr != nil {
		var pgErr *pgconn.PgError
		if errors.As(execErr, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			// Dependent row appeared after the in-transaction check. Refuse
			// instead of propagating the constraint fault; the caller may retry.
			err = &DeleteBlockedError{Entity: entity, ID: id}
			return err
		}
		err = fmt.Errorf("repository: failed to delete %s %d: %w", entity, id, execErr)
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		err = ErrNotFound
		return err
	}
	return nil
}

func scanBlockers(rows pgx.Rows) ([]Blocker, error) {
	defer rows.Close()

	blockers := make([]Blocker, 0)
	for rows.Next() {
		var b Blocker
		if err := rows.Scan(&b.Entity, &b.ID, &b.Label); err != nil {
			return nil, fmt.Errorf("repository: failed to scan blocker: %w", err)
		}
		blockers = append(blockers, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating blockers: %w", err)
	}
	return blockers, nil
}
