package catalog_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vasiliy-maslov/catalog-service/internal/catalog"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListCategories(ctx context.Context) ([]catalog.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Category), args.Error(1)
}

func (m *MockRepository) GetCategoryByID(ctx context.Context, id int64) (*catalog.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *MockRepository) CreateCategory(ctx context.Context, c *catalog.Category) (int64, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) UpdateCategory(ctx context.Context, c *catalog.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockRepository) DeleteCategory(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) CategoryBlockers(ctx context.Context, id int64) ([]catalog.Blocker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Blocker), args.Error(1)
}

func (m *MockRepository) ListShippingMethods(ctx context.Context) ([]catalog.ShippingMethod, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.ShippingMethod), args.Error(1)
}

func (m *MockRepository) GetShippingMethodByID(ctx context.Context, id int64) (*catalog.ShippingMethod, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ShippingMethod), args.Error(1)
}

func (m *MockRepository) CreateShippingMethod(ctx context.Context, sm *catalog.ShippingMethod) (int64, error) {
	args := m.Called(ctx, sm)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) UpdateShippingMethod(ctx context.Context, sm *catalog.ShippingMethod) error {
	args := m.Called(ctx, sm)
	return args.Error(0)
}

func (m *MockRepository) DeleteShippingMethod(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) ShippingMethodBlockers(ctx context.Context, id int64) ([]catalog.Blocker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Blocker), args.Error(1)
}

func (m *MockRepository) ListPaymentMethods(ctx context.Context) ([]catalog.PaymentMethod, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.PaymentMethod), args.Error(1)
}

func (m *MockRepository) GetPaymentMethodByID(ctx context.Context, id int64) (*catalog.PaymentMethod, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.PaymentMethod), args.Error(1)
}

func (m *MockRepository) CreatePaymentMethod(ctx context.Context, pm *catalog.PaymentMethod) (int64, error) {
	args := m.Called(ctx, pm)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) UpdatePaymentMethod(ctx context.Context, pm *catalog.PaymentMethod) error {
	args := m.Called(ctx, pm)
	return args.Error(0)
}

func (m *MockRepository) DeletePaymentMethod(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) PaymentMethodBlockers(ctx context.Context, id int64) ([]catalog.Blocker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Blocker), args.Error(1)
}

func (m *MockRepository) ListCustomers(ctx context.Context) ([]catalog.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Customer), args.Error(1)
}

func (m *MockRepository) GetCustomerByID(ctx context.Context, id int64) (*catalog.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Customer), args.Error(1)
}

func (m *MockRepository) CreateCustomer(ctx context.Context, c *catalog.Customer) (int64, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) UpdateCustomer(ctx context.Context, c *catalog.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockRepository) DeleteCustomer(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) CustomerBlockers(ctx context.Context, id int64) ([]catalog.Blocker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Blocker), args.Error(1)
}

func (m *MockRepository) ListOrdersByCustomer(ctx context.Context, customerID int64) ([]catalog.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Order), args.Error(1)
}

func (m *MockRepository) ListCartsByCustomer(ctx context.Context, customerID int64) ([]catalog.ShoppingCart, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.ShoppingCart), args.Error(1)
}

func (m *MockRepository) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockRepository) GetProductByID(ctx context.Context, id int64) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockRepository) CreateProduct(ctx context.Context, p *catalog.Product) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) UpdateProduct(ctx context.Context, p *catalog.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockRepository) DeleteProduct(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) ProductBlockers(ctx context.Context, id int64) ([]catalog.Blocker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Blocker), args.Error(1)
}

func (m *MockRepository) ListCarts(ctx context.Context) ([]catalog.ShoppingCart, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.ShoppingCart), args.Error(1)
}

func (m *MockRepository) GetCartByID(ctx context.Context, id int64) (*catalog.ShoppingCart, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ShoppingCart), args.Error(1)
}

func (m *MockRepository) CreateCart(ctx context.Context, c *catalog.ShoppingCart) (int64, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) UpdateCart(ctx context.Context, c *catalog.ShoppingCart) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockRepository) DeleteCart(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) CartBlockers(ctx context.Context, id int64) ([]catalog.Blocker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Blocker), args.Error(1)
}

func (m *MockRepository) ListCartLines(ctx context.Context, cartID int64) ([]catalog.Line, error) {
	args := m.Called(ctx, cartID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Line), args.Error(1)
}

func (m *MockRepository) ListCartItems(ctx context.Context) ([]catalog.CartItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.CartItem), args.Error(1)
}

func (m *MockRepository) GetCartItemByID(ctx context.Context, id int64) (*catalog.CartItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.CartItem), args.Error(1)
}

func (m *MockRepository) CreateCartItem(ctx context.Context, i *catalog.CartItem) (int64, error) {
	args := m.Called(ctx, i)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) UpdateCartItem(ctx context.Context, i *catalog.CartItem) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockRepository) DeleteCartItem(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) ListOrders(ctx context.Context) ([]catalog.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Order), args.Error(1)
}

func (m *MockRepository) GetOrderByID(ctx context.Context, id int64) (*catalog.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Order), args.Error(1)
}

func (m *MockRepository) CreateOrder(ctx context.Context, o *catalog.Order) (int64, error) {
	args := m.Called(ctx, o)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) UpdateOrder(ctx context.Context, o *catalog.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockRepository) DeleteOrder(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) OrderBlockers(ctx context.Context, id int64) ([]catalog.Blocker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Blocker), args.Error(1)
}

func (m *MockRepository) ListOrderLines(ctx context.Context, orderID int64) ([]catalog.Line, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Line), args.Error(1)
}

func (m *MockRepository) ListOrderLineItems(ctx context.Context) ([]catalog.OrderLineItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.OrderLineItem), args.Error(1)
}

func (m *MockRepository) GetOrderLineItemByID(ctx context.Context, id int64) (*catalog.OrderLineItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.OrderLineItem), args.Error(1)
}

func (m *MockRepository) CreateOrderLineItem(ctx context.Context, i *catalog.OrderLineItem) (int64, error) {
	args := m.Called(ctx, i)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) UpdateOrderLineItem(ctx context.Context, i *catalog.OrderLineItem) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockRepository) DeleteOrderLineItem(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
