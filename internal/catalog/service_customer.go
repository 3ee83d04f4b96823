package catalog

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
)

// normalizeCustomer strips surrounding whitespace from the free-text fields
// before the required checks run, so a whitespace-only submission fails. An
// empty disambiguator stays empty; a non-empty one is trimmed.
func (s *service) normalizeCustomer(c *Customer) error {
	fields := fieldErrors{}
	fields.requireTrimmed("first_name", &c.FirstName)
	fields.requireTrimmed("last_name", &c.LastName)
	fields.requireTrimmed("username", &c.Username)
	fields.requireTrimmed("password", &c.Password)
	c.Disambiguator = trimOptional(c.Disambiguator)
	if strings.TrimSpace(c.Email) == "" {
		fields["email"] = "this field is required"
	}
	fields.requireRef("shipping_method_id", c.ShippingMethodID)
	fields.requireRef("payment_method_id", c.PaymentMethodID)
	return fields.err()
}

func (s *service) ListCustomers(ctx context.Context) ([]Customer, error) {
	return s.repo.ListCustomers(ctx)
}

func (s *service) GetCustomerDetail(ctx context.Context, id int64) (*CustomerDetail, error) {
	customer, err := s.repo.GetCustomerByID(ctx, id)
	if err != nil {
		return nil, err
	}

	shippingMethod, err := s.repo.GetShippingMethodByID(ctx, customer.ShippingMethodID)
	if err != nil {
		return nil, err
	}
	paymentMethod, err := s.repo.GetPaymentMethodByID(ctx, customer.PaymentMethodID)
	if err != nil {
		return nil, err
	}
	orders, err := s.repo.ListOrdersByCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	carts, err := s.repo.ListCartsByCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	return &CustomerDetail{
		Customer:       *customer,
		ShippingMethod: *shippingMethod,
		PaymentMethod:  *paymentMethod,
		Orders:         orders,
		ShoppingCarts:  carts,
	}, nil
}

func (s *service) CreateCustomer(ctx context.Context, c *Customer) (*Customer, error) {
	if err := s.normalizeCustomer(c); err != nil {
		return nil, err
	}
	id, err := s.repo.CreateCustomer(ctx, c)
	if err != nil {
		return nil, err
	}
	c.ID = id
	log.Info().Int64("customer_id", id).Str("username", c.Username).Msg("service: customer created")
	return c, nil
}

func (s *service) UpdateCustomer(ctx context.Context, c *Customer) error {
	if err := s.normalizeCustomer(c); err != nil {
		return err
	}
	return s.repo.UpdateCustomer(ctx, c)
}

func (s *service) CheckDeleteCustomer(ctx context.Context, id int64) (*DeleteCheck, error) {
	return s.deleteCheck(ctx, "customer", id,
		func(ctx context.Context, id int64) error {
			_, err := s.repo.GetCustomerByID(ctx, id)
			return err
		},
		s.repo.CustomerBlockers)
}

func (s *service) DeleteCustomer(ctx context.Context, id int64) error {
	if err := s.repo.DeleteCustomer(ctx, id); err != nil {
		return err
	}
	log.Info().Int64("customer_id", id).Msg("service: customer deleted")
	return nil
}
