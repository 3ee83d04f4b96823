package catalog

import (
	"context"
)

func (s *service) normalizeCart(c *ShoppingCart) error {
	fields := fieldErrors{}
	fields.requireRef("customer_id", c.CustomerID)
	fields.requireRef("shipping_method_id", c.ShippingMethodID)
	fields.requireRef("payment_method_id", c.PaymentMethodID)
	if c.TotalPrice < 0 {
		fields["total_price"] = "total price cannot be negative"
	}
	return fields.err()
}

func (s *service) normalizeCartItem(i *CartItem) error {
	fields := fieldErrors{}
	if i.Quantity <= 0 {
		fields["quantity"] = "quantity must be greater than zero"
	}
	fields.requireRef("cart_id", i.CartID)
	fields.requireRef("product_id", i.ProductID)
	return fields.err()
}

func (s *service) ListCarts(ctx context.Context) ([]ShoppingCart, error) {
	return s.repo.ListCarts(ctx)
}

// GetCartDetail loads a cart with its line items and recomputes the total
// from current product prices. The stored total_price column is reported as
// submitted; it is never reconciled with the computed total.
func (s *service) GetCartDetail(ctx context.Context, id int64) (*CartDetail, error) {
	cart, err := s.repo.GetCartByID(ctx, id)
	if err != nil {
		return nil, err
	}

	customer, err := s.repo.GetCustomerByID(ctx, cart.CustomerID)
	if err != nil {
		return nil, err
	}
	shippingMethod, err := s.repo.GetShippingMethodByID(ctx, cart.ShippingMethodID)
	if err != nil {
		return nil, err
	}
	paymentMethod, err := s.repo.GetPaymentMethodByID(ctx, cart.PaymentMethodID)
	if err != nil {
		return nil, err
	}
	lines, err := s.repo.ListCartLines(ctx, id)
	if err != nil {
		return nil, err
	}

	return &CartDetail{
		ShoppingCart:   *cart,
		Customer:       *customer,
		ShippingMethod: *shippingMethod,
		PaymentMethod:  *paymentMethod,
		Lines:          lines,
		Total:          TotalOf(lines),
	}, nil
}

func (s *service) CreateCart(ctx context.Context, c *ShoppingCart) (*ShoppingCart, error) {
	if err := s.normalizeCart(c); err != nil {
		return nil, err
	}
	id, err := s.repo.CreateCart(ctx, c)
	if err != nil {
		return nil, err
	}
	c.ID = id
	return c, nil
}

func (s *service) UpdateCart(ctx context.Context, c *ShoppingCart) error {
	if err := s.normalizeCart(c); err != nil {
		return err
	}
	return s.repo.UpdateCart(ctx, c)
}

func (s *service) CheckDeleteCart(ctx context.Context, id int64) (*DeleteCheck, error) {
	return s.deleteCheck(ctx, "shopping_cart", id,
		func(ctx context.Context, id int64) error {
			_, err := s.repo.GetCartByID(ctx, id)
			return err
		},
		s.repo.CartBlockers)
}

func (s *service) DeleteCart(ctx context.Context, id int64) error {
	return s.repo.DeleteCart(ctx, id)
}

func (s *service) ListCartItems(ctx context.Context) ([]CartItem, error) {
	return s.repo.ListCartItems(ctx)
}

func (s *service) GetCartItemDetail(ctx context.Context, id int64) (*CartItemDetail, error) {
	item, err := s.repo.GetCartItemByID(ctx, id)
	if err != nil {
		return nil, err
	}
	product, err := s.repo.GetProductByID(ctx, item.ProductID)
	if err != nil {
		return nil, err
	}
	return &CartItemDetail{
		CartItem:     *item,
		ProductName:  product.Name,
		ProductPrice: product.Price,
		SubTotal:     float64(item.Quantity) * product.Price,
	}, nil
}

func (s *service) CreateCartItem(ctx context.Context, i *CartItem) (*CartItem, error) {
	if err := s.normalizeCartItem(i); err != nil {
		return nil, err
	}
	id, err := s.repo.CreateCartItem(ctx, i)
	if err != nil {
		return nil, err
	}
	i.ID = id
	return i, nil
}

func (s *service) UpdateCartItem(ctx context.Context, i *CartItem) error {
	if err := s.normalizeCartItem(i); err != nil {
		return err
	}
	return s.repo.UpdateCartItem(ctx, i)
}

func (s *service) CheckDeleteCartItem(ctx context.Context, id int64) (*DeleteCheck, error) {
	// Cart items have no dependents, so the check can only confirm.
	return s.deleteCheck(ctx, "cart_item", id,
		func(ctx context.Context, id int64) error {
			_, err := s.repo.GetCartItemByID(ctx, id)
			return err
		},
		nil)
}

func (s *service) DeleteCartItem(ctx context.Context, id int64) error {
	return s.repo.DeleteCartItem(ctx, id)
}
