package catalog

import (
	"context"
	"strings"
)

// Service implements the catalog's business rules: field normalization,
// validation, derived totals, and the refuse-or-confirm deletion guard.
type Service interface {
	ListCategories(ctx context.Context) ([]Category, error)
	GetCategory(ctx context.Context, id int64) (*Category, error)
	CreateCategory(ctx context.Context, c *Category) (*Category, error)
	UpdateCategory(ctx context.Context, c *Category) error
	CheckDeleteCategory(ctx context.Context, id int64) (*DeleteCheck, error)
	DeleteCategory(ctx context.Context, id int64) error

	ListShippingMethods(ctx context.Context) ([]ShippingMethod, error)
	GetShippingMethod(ctx context.Context, id int64) (*ShippingMethod, error)
	CreateShippingMethod(ctx context.Context, m *ShippingMethod) (*ShippingMethod, error)
	UpdateShippingMethod(ctx context.Context, m *ShippingMethod) error
	CheckDeleteShippingMethod(ctx context.Context, id int64) (*DeleteCheck, error)
	DeleteShippingMethod(ctx context.Context, id int64) error

	ListPaymentMethods(ctx context.Context) ([]PaymentMethod, error)
	GetPaymentMethod(ctx context.Context, id int64) (*PaymentMethod, error)
	CreatePaymentMethod(ctx context.Context, m *PaymentMethod) (*PaymentMethod, error)
	UpdatePaymentMethod(ctx context.Context, m *PaymentMethod) error
	CheckDeletePaymentMethod(ctx context.Context, id int64) (*DeleteCheck, error)
	DeletePaymentMethod(ctx context.Context, id int64) error

	ListCustomers(ctx context.Context) ([]Customer, error)
	GetCustomerDetail(ctx context.Context, id int64) (*CustomerDetail, error)
	CreateCustomer(ctx context.Context, c *Customer) (*Customer, error)
	UpdateCustomer(ctx context.Context, c *Customer) error
	CheckDeleteCustomer(ctx context.Context, id int64) (*DeleteCheck, error)
	DeleteCustomer(ctx context.Context, id int64) error

	ListProducts(ctx context.Context) ([]Product, error)
	GetProductDetail(ctx context.Context, id int64) (*ProductDetail, error)
	CreateProduct(ctx context.Context, p *Product) (*Product, error)
	UpdateProduct(ctx context.Context, p *Product) error
	CheckDeleteProduct(ctx context.Context, id int64) (*DeleteCheck, error)
	DeleteProduct(ctx context.Context, id int64) error

	ListCarts(ctx context.Context) ([]ShoppingCart, error)
	GetCartDetail(ctx context.Context, id int64) (*CartDetail, error)
	CreateCart(ctx context.Context, c *ShoppingCart) (*ShoppingCart, error)
	UpdateCart(ctx context.Context, c *ShoppingCart) error
	CheckDeleteCart(ctx context.Context, id int64) (*DeleteCheck, error)
	DeleteCart(ctx context.Context, id int64) error

	ListCartItems(ctx context.Context) ([]CartItem, error)
	GetCartItemDetail(ctx context.Context, id int64) (*CartItemDetail, error)
	CreateCartItem(ctx context.Context, i *CartItem) (*CartItem, error)
	UpdateCartItem(ctx context.Context, i *CartItem) error
	CheckDeleteCartItem(ctx context.Context, id int64) (*DeleteCheck, error)
	DeleteCartItem(ctx context.Context, id int64) error

	ListOrders(ctx context.Context) ([]Order, error)
	GetOrderDetail(ctx context.Context, id int64) (*OrderDetail, error)
	CreateOrder(ctx context.Context, o *Order) (*Order, error)
	UpdateOrder(ctx context.Context, o *Order) error
	CheckDeleteOrder(ctx context.Context, id int64) (*DeleteCheck, error)
	DeleteOrder(ctx context.Context, id int64) error

	ListOrderLineItems(ctx context.Context) ([]OrderLineItem, error)
	GetOrderLineItemDetail(ctx context.Context, id int64) (*OrderLineItemDetail, error)
	CreateOrderLineItem(ctx context.Context, i *OrderLineItem) (*OrderLineItem, error)
	UpdateOrderLineItem(ctx context.Context, i *OrderLineItem) error
	CheckDeleteOrderLineItem(ctx context.Context, id int64) (*DeleteCheck, error)
	DeleteOrderLineItem(ctx context.Context, id int64) error
}

// DeleteCheck is the answer to a delete request before confirmation: either
// the delete is blocked by the listed dependents, or it awaits confirmation.
type DeleteCheck struct {
	Entity   string    `json:"entity"`
	ID       int64     `json:"id"`
	Blocked  bool      `json:"blocked"`
	Blockers []Blocker `json:"blockers"`
}

type CustomerDetail struct {
	Customer       Customer       `json:"customer"`
	ShippingMethod ShippingMethod `json:"shipping_method"`
	PaymentMethod  PaymentMethod  `json:"payment_method"`
	Orders         []Order        `json:"orders"`
	ShoppingCarts  []ShoppingCart `json:"shopping_carts"`
}

type ProductDetail struct {
	Product  Product  `json:"product"`
	Category Category `json:"category"`
}

type CartDetail struct {
	ShoppingCart   ShoppingCart   `json:"shopping_cart"`
	Customer       Customer       `json:"customer"`
	ShippingMethod ShippingMethod `json:"shipping_method"`
	PaymentMethod  PaymentMethod  `json:"payment_method"`
	Lines          []Line         `json:"cart_items"`
	Total          float64        `json:"total"`
}

type CartItemDetail struct {
	CartItem     CartItem `json:"cart_item"`
	ProductName  string   `json:"product_name"`
	ProductPrice float64  `json:"product_price"`
	SubTotal     float64  `json:"sub_total"`
}

type OrderDetail struct {
	Order          Order          `json:"order"`
	Customer       Customer       `json:"customer"`
	ShippingMethod ShippingMethod `json:"shipping_method"`
	PaymentMethod  PaymentMethod  `json:"payment_method"`
	Lines          []Line         `json:"line_items"`
	Total          float64        `json:"total"`
}

type OrderLineItemDetail struct {
	OrderLineItem OrderLineItem `json:"order_line_item"`
	ProductName   string        `json:"product_name"`
	ProductPrice  float64       `json:"product_price"`
	SubTotal      float64       `json:"sub_total"`
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// fieldErrors accumulates per-field validation messages during
// normalize-then-validate and turns into a single error at the end.
type fieldErrors map[string]string

func (f fieldErrors) requireTrimmed(field string, value *string) {
	*value = strings.TrimSpace(*value)
	if *value == "" {
		f[field] = "this field is required"
	}
}

func (f fieldErrors) requireRef(field string, id int64) {
	if id <= 0 {
		f[field] = "this field is required"
	}
}

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Fields: f}
}

func (s *service) deleteCheck(ctx context.Context, entity string, id int64,
	exists func(context.Context, int64) error,
	blockers func(context.Context, int64) ([]Blocker, error)) (*DeleteCheck, error) {

	if err := exists(ctx, id); err != nil {
		return nil, err
	}

	check := &DeleteCheck{Entity: entity, ID: id, Blockers: []Blocker{}}
	if blockers != nil {
		found, err := blockers(ctx, id)
		if err != nil {
			return nil, err
		}
		check.Blocked = len(found) > 0
		check.Blockers = found
	}
	return check, nil
}
