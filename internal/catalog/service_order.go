package catalog

import (
	"context"

	"github.com/rs/zerolog/log"
)

func (s *service) normalizeOrder(o *Order) error {
	fields := fieldErrors{}
	fields.requireTrimmed("receiver", &o.Receiver)
	fields.requireTrimmed("address", &o.Address)
	if o.OrderDate.IsZero() {
		fields["order_date"] = "this field is required"
	}
	if o.TotalPrice < 0 {
		fields["total_price"] = "total price cannot be negative"
	}
	fields.requireRef("customer_id", o.CustomerID)
	fields.requireRef("shipping_method_id", o.ShippingMethodID)
	fields.requireRef("payment_method_id", o.PaymentMethodID)
	return fields.err()
}

func (s *service) normalizeOrderLineItem(i *OrderLineItem) error {
	fields := fieldErrors{}
	if i.Quantity <= 0 {
		fields["quantity"] = "quantity must be greater than zero"
	}
	if i.Price < 0 {
		fields["price"] = "price cannot be negative"
	}
	fields.requireRef("order_id", i.OrderID)
	fields.requireRef("product_id", i.ProductID)
	return fields.err()
}

func (s *service) ListOrders(ctx context.Context) ([]Order, error) {
	return s.repo.ListOrders(ctx)
}

// GetOrderDetail mirrors GetCartDetail: the total is recomputed from current
// product prices on every read.
func (s *service) GetOrderDetail(ctx context.Context, id int64) (*OrderDetail, error) {
	order, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}

	customer, err := s.repo.GetCustomerByID(ctx, order.CustomerID)
	if err != nil {
		return nil, err
	}
	shippingMethod, err := s.repo.GetShippingMethodByID(ctx, order.ShippingMethodID)
	if err != nil {
		return nil, err
	}
	paymentMethod, err := s.repo.GetPaymentMethodByID(ctx, order.PaymentMethodID)
	if err != nil {
		return nil, err
	}
	lines, err := s.repo.ListOrderLines(ctx, id)
	if err != nil {
		return nil, err
	}

	return &OrderDetail{
		Order:          *order,
		Customer:       *customer,
		ShippingMethod: *shippingMethod,
		PaymentMethod:  *paymentMethod,
		Lines:          lines,
		Total:          TotalOf(lines),
	}, nil
}

func (s *service) CreateOrder(ctx context.Context, o *Order) (*Order, error) {
	if err := s.normalizeOrder(o); err != nil {
		return nil, err
	}
	id, err := s.repo.CreateOrder(ctx, o)
	if err != nil {
		return nil, err
	}
	o.ID = id
	log.Info().Int64("order_id", id).Int64("customer_id", o.CustomerID).Msg("service: order created")
	return o, nil
}

func (s *service) UpdateOrder(ctx context.Context, o *Order) error {
	if err := s.normalizeOrder(o); err != nil {
		return err
	}
	return s.repo.UpdateOrder(ctx, o)
}

func (s *service) CheckDeleteOrder(ctx context.Context, id int64) (*DeleteCheck, error) {
	return s.deleteCheck(ctx, "order", id,
		func(ctx context.Context, id int64) error {
			_, err := s.repo.GetOrderByID(ctx, id)
			return err
		},
		s.repo.OrderBlockers)
}

func (s *service) DeleteOrder(ctx context.Context, id int64) error {
	if err := s.repo.DeleteOrder(ctx, id); err != nil {
		return err
	}
	log.Info().Int64("order_id", id).Msg("service: order deleted")
	return nil
}

func (s *service) ListOrderLineItems(ctx context.Context) ([]OrderLineItem, error) {
	return s.repo.ListOrderLineItems(ctx)
}

func (s *service) GetOrderLineItemDetail(ctx context.Context, id int64) (*OrderLineItemDetail, error) {
	item, err := s.repo.GetOrderLineItemByID(ctx, id)
	if err != nil {
		return nil, err
	}
	product, err := s.repo.GetProductByID(ctx, item.ProductID)
	if err != nil {
		return nil, err
	}
	return &OrderLineItemDetail{
		OrderLineItem: *item,
		ProductName:   product.Name,
		ProductPrice:  product.Price,
		SubTotal:      float64(item.Quantity) * product.Price,
	}, nil
}

func (s *service) CreateOrderLineItem(ctx context.Context, i *OrderLineItem) (*OrderLineItem, error) {
	if err := s.normalizeOrderLineItem(i); err != nil {
		return nil, err
	}
	id, err := s.repo.CreateOrderLineItem(ctx, i)
	if err != nil {
		return nil, err
	}
	i.ID = id
	return i, nil
}

func (s *service) UpdateOrderLineItem(ctx context.Context, i *OrderLineItem) error {
	if err := s.normalizeOrderLineItem(i); err != nil {
		return err
	}
	return s.repo.UpdateOrderLineItem(ctx, i)
}

func (s *service) CheckDeleteOrderLineItem(ctx context.Context, id int64) (*DeleteCheck, error) {
	// Order line items have no dependents, so the check can only confirm.
	return s.deleteCheck(ctx, "order_line_item", id,
		func(ctx context.Context, id int64) error {
			_, err := s.repo.GetOrderLineItemByID(ctx, id)
			return err
		},
		nil)
}

func (s *service) DeleteOrderLineItem(ctx context.Context, id int64) error {
	return s.repo.DeleteOrderLineItem(ctx, id)
}
