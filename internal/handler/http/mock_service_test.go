package http_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vasiliy-maslov/catalog-service/internal/catalog"
)

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListCategories(ctx context.Context) ([]catalog.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Category), args.Error(1)
}

func (m *MockCatalogService) GetCategory(ctx context.Context, id int64) (*catalog.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *MockCatalogService) CreateCategory(ctx context.Context, c *catalog.Category) (*catalog.Category, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *MockCatalogService) UpdateCategory(ctx context.Context, c *catalog.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCatalogService) CheckDeleteCategory(ctx context.Context, id int64) (*catalog.DeleteCheck, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.DeleteCheck), args.Error(1)
}

func (m *MockCatalogService) DeleteCategory(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalogService) ListShippingMethods(ctx context.Context) ([]catalog.ShippingMethod, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.ShippingMethod), args.Error(1)
}

func (m *MockCatalogService) GetShippingMethod(ctx context.Context, id int64) (*catalog.ShippingMethod, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ShippingMethod), args.Error(1)
}

func (m *MockCatalogService) CreateShippingMethod(ctx context.Context, sm *catalog.ShippingMethod) (*catalog.ShippingMethod, error) {
	args := m.Called(ctx, sm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ShippingMethod), args.Error(1)
}

func (m *MockCatalogService) UpdateShippingMethod(ctx context.Context, sm *catalog.ShippingMethod) error {
	args := m.Called(ctx, sm)
	return args.Error(0)
}

func (m *MockCatalogService) CheckDeleteShippingMethod(ctx context.Context, id int64) (*catalog.DeleteCheck, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.DeleteCheck), args.Error(1)
}

func (m *MockCatalogService) DeleteShippingMethod(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalogService) ListPaymentMethods(ctx context.Context) ([]catalog.PaymentMethod, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.PaymentMethod), args.Error(1)
}

func (m *MockCatalogService) GetPaymentMethod(ctx context.Context, id int64) (*catalog.PaymentMethod, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.PaymentMethod), args.Error(1)
}

func (m *MockCatalogService) CreatePaymentMethod(ctx context.Context, pm *catalog.PaymentMethod) (*catalog.PaymentMethod, error) {
	args := m.Called(ctx, pm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.PaymentMethod), args.Error(1)
}

func (m *MockCatalogService) UpdatePaymentMethod(ctx context.Context, pm *catalog.PaymentMethod) error {
	args := m.Called(ctx, pm)
	return args.Error(0)
}

func (m *MockCatalogService) CheckDeletePaymentMethod(ctx context.Context, id int64) (*catalog.DeleteCheck, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.DeleteCheck), args.Error(1)
}

func (m *MockCatalogService) DeletePaymentMethod(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalogService) ListCustomers(ctx context.Context) ([]catalog.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Customer), args.Error(1)
}

func (m *MockCatalogService) GetCustomerDetail(ctx context.Context, id int64) (*catalog.CustomerDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.CustomerDetail), args.Error(1)
}

func (m *MockCatalogService) CreateCustomer(ctx context.Context, c *catalog.Customer) (*catalog.Customer, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Customer), args.Error(1)
}

func (m *MockCatalogService) UpdateCustomer(ctx context.Context, c *catalog.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCatalogService) CheckDeleteCustomer(ctx context.Context, id int64) (*catalog.DeleteCheck, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.DeleteCheck), args.Error(1)
}

func (m *MockCatalogService) DeleteCustomer(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalogService) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockCatalogService) GetProductDetail(ctx context.Context, id int64) (*catalog.ProductDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ProductDetail), args.Error(1)
}

func (m *MockCatalogService) CreateProduct(ctx context.Context, p *catalog.Product) (*catalog.Product, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockCatalogService) UpdateProduct(ctx context.Context, p *catalog.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockCatalogService) CheckDeleteProduct(ctx context.Context, id int64) (*catalog.DeleteCheck, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.DeleteCheck), args.Error(1)
}

func (m *MockCatalogService) DeleteProduct(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalogService) ListCarts(ctx context.Context) ([]catalog.ShoppingCart, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.ShoppingCart), args.Error(1)
}

func (m *MockCatalogService) GetCartDetail(ctx context.Context, id int64) (*catalog.CartDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.CartDetail), args.Error(1)
}

func (m *MockCatalogService) CreateCart(ctx context.Context, c *catalog.ShoppingCart) (*catalog.ShoppingCart, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ShoppingCart), args.Error(1)
}

func (m *MockCatalogService) UpdateCart(ctx context.Context, c *catalog.ShoppingCart) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCatalogService) CheckDeleteCart(ctx context.Context, id int64) (*catalog.DeleteCheck, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.DeleteCheck), args.Error(1)
}

func (m *MockCatalogService) DeleteCart(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalogService) ListCartItems(ctx context.Context) ([]catalog.CartItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.CartItem), args.Error(1)
}

func (m *MockCatalogService) GetCartItemDetail(ctx context.Context, id int64) (*catalog.CartItemDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.CartItemDetail), args.Error(1)
}

func (m *MockCatalogService) CreateCartItem(ctx context.Context, i *catalog.CartItem) (*catalog.CartItem, error) {
	args := m.Called(ctx, i)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.CartItem), args.Error(1)
}

func (m *MockCatalogService) UpdateCartItem(ctx context.Context, i *catalog.CartItem) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockCatalogService) CheckDeleteCartItem(ctx context.Context, id int64) (*catalog.DeleteCheck, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.DeleteCheck), args.Error(1)
}

func (m *MockCatalogService) DeleteCartItem(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalogService) ListOrders(ctx context.Context) ([]catalog.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Order), args.Error(1)
}

func (m *MockCatalogService) GetOrderDetail(ctx context.Context, id int64) (*catalog.OrderDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.OrderDetail), args.Error(1)
}

func (m *MockCatalogService) CreateOrder(ctx context.Context, o *catalog.Order) (*catalog.Order, error) {
	args := m.Called(ctx, o)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Order), args.Error(1)
}

func (m *MockCatalogService) UpdateOrder(ctx context.Context, o *catalog.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockCatalogService) CheckDeleteOrder(ctx context.Context, id int64) (*catalog.DeleteCheck, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.DeleteCheck), args.Error(1)
}

func (m *MockCatalogService) DeleteOrder(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalogService) ListOrderLineItems(ctx context.Context) ([]catalog.OrderLineItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.OrderLineItem), args.Error(1)
}

func (m *MockCatalogService) GetOrderLineItemDetail(ctx context.Context, id int64) (*catalog.OrderLineItemDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.OrderLineItemDetail), args.Error(1)
}

func (m *MockCatalogService) CreateOrderLineItem(ctx context.Context, i *catalog.OrderLineItem) (*catalog.OrderLineItem, error) {
	args := m.Called(ctx, i)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.OrderLineItem), args.Error(1)
}

func (m *MockCatalogService) UpdateOrderLineItem(ctx context.Context, i *catalog.OrderLineItem) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockCatalogService) CheckDeleteOrderLineItem(ctx context.Context, id int64) (*catalog.DeleteCheck, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.DeleteCheck), args.Error(1)
}

func (m *MockCatalogService) DeleteOrderLineItem(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
