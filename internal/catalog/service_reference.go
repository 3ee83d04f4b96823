package catalog

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
)

func (s *service) normalizeNamed(name, description *string) error {
	fields := fieldErrors{}
	fields.requireTrimmed("name", name)
	*description = trimOptional(*description)
	return fields.err()
}

// trimOptional strips surrounding whitespace but keeps empty values empty.
func trimOptional(value string) string {
	if value == "" {
		return value
	}
	return strings.TrimSpace(value)
}

func (s *service) ListCategories(ctx context.Context) ([]Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *service) GetCategory(ctx context.Context, id int64) (*Category, error) {
	return s.repo.GetCategoryByID(ctx, id)
}

func (s *service) CreateCategory(ctx context.Context, c *Category) (*Category, error) {
	if err := s.normalizeNamed(&c.Name, &c.Description); err != nil {
		return nil, err
	}
	id, err := s.repo.CreateCategory(ctx, c)
	if err != nil {
		return nil, err
	}
	c.ID = id
	log.Info().Int64("category_id", id).Msg("service: category created")
	return c, nil
}

func (s *service) UpdateCategory(ctx context.Context, c *Category) error {
	if err := s.normalizeNamed(&c.Name, &c.Description); err != nil {
		return err
	}
	return s.repo.UpdateCategory(ctx, c)
}

func (s *service) CheckDeleteCategory(ctx context.Context, id int64) (*DeleteCheck, error) {
	return s.deleteCheck(ctx, "category", id,
		func(ctx context.Context, id int64) error {
			_, err := s.repo.GetCategoryByID(ctx, id)
			return err
		},
		s.repo.CategoryBlockers)
}

func (s *service) DeleteCategory(ctx context.Context, id int64) error {
	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		return err
	}
	log.Info().Int64("category_id", id).Msg("service: category deleted")
	return nil
}

func (s *service) ListShippingMethods(ctx context.Context) ([]ShippingMethod, error) {
	return s.repo.ListShippingMethods(ctx)
}

func (s *service) GetShippingMethod(ctx context.Context, id int64) (*ShippingMethod, error) {
	return s.repo.GetShippingMethodByID(ctx, id)
}

func (s *service) CreateShippingMethod(ctx context.Context, m *ShippingMethod) (*ShippingMethod, error) {
	if err := s.normalizeNamed(&m.Name, &m.Description); err != nil {
		return nil, err
	}
	id, err := s.repo.CreateShippingMethod(ctx, m)
	if err != nil {
		return nil, err
	}
	m.ID = id
	return m, nil
}

func (s *service) UpdateShippingMethod(ctx context.Context, m *ShippingMethod) error {
	if err := s.normalizeNamed(&m.Name, &m.Description); err != nil {
		return err
	}
	return s.repo.UpdateShippingMethod(ctx, m)
}

func (s *service) CheckDeleteShippingMethod(ctx context.Context, id int64) (*DeleteCheck, error) {
	return s.deleteCheck(ctx, "shipping_method", id,
		func(ctx context.Context, id int64) error {
			_, err := s.repo.GetShippingMethodByID(ctx, id)
			return err
		},
		s.repo.ShippingMethodBlockers)
}

func (s *service) DeleteShippingMethod(ctx context.Context, id int64) error {
	return s.repo.DeleteShippingMethod(ctx, id)
}

func (s *service) ListPaymentMethods(ctx context.Context) ([]PaymentMethod, error) {
	return s.repo.ListPaymentMethods(ctx)
}

func (s *service) GetPaymentMethod(ctx context.Context, id int64) (*PaymentMethod, error) {
	return s.repo.GetPaymentMethodByID(ctx, id)
}

func (s *service) CreatePaymentMethod(ctx context.Context, m *PaymentMethod) (*PaymentMethod, error) {
	if err := s.normalizeNamed(&m.Name, &m.Description); err != nil {
		return nil, err
	}
	id, err := s.repo.CreatePaymentMethod(ctx, m)
	if err != nil {
		return nil, err
	}
	m.ID = id
	return m, nil
}

func (s *service) UpdatePaymentMethod(ctx context.Context, m *PaymentMethod) error {
	if err := s.normalizeNamed(&m.Name, &m.Description); err != nil {
		return err
	}
	return s.repo.UpdatePaymentMethod(ctx, m)
}

func (s *service) CheckDeletePaymentMethod(ctx context.Context, id int64) (*DeleteCheck, error) {
	return s.deleteCheck(ctx, "payment_method", id,
		func(ctx context.Context, id int64) error {
			_, err := s.repo.GetPaymentMethodByID(ctx, id)
			return err
		},
		s.repo.PaymentMethodBlockers)
}

func (s *service) DeletePaymentMethod(ctx context.Context, id int64) error {
	return s.repo.DeletePaymentMethod(ctx, id)
}
