package catalog

import (
	"context"

	"github.com/rs/zerolog/log"
)

func (s *service) normalizeProduct(p *Product) error {
	fields := fieldErrors{}
	fields.requireTrimmed("name", &p.Name)
	if p.Price < 0 {
		fields["price"] = "price cannot be negative"
	}
	if p.StockNum < 0 {
		fields["stock_num"] = "stock count cannot be negative"
	}
	fields.requireRef("category_id", p.CategoryID)
	return fields.err()
}

func (s *service) ListProducts(ctx context.Context) ([]Product, error) {
	return s.repo.ListProducts(ctx)
}

func (s *service) GetProductDetail(ctx context.Context, id int64) (*ProductDetail, error) {
	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}
	category, err := s.repo.GetCategoryByID(ctx, product.CategoryID)
	if err != nil {
		return nil, err
	}
	return &ProductDetail{Product: *product, Category: *category}, nil
}

func (s *service) CreateProduct(ctx context.Context, p *Product) (*Product, error) {
	if err := s.normalizeProduct(p); err != nil {
		return nil, err
	}
	id, err := s.repo.CreateProduct(ctx, p)
	if err != nil {
		return nil, err
	}
	p.ID = id
	log.Info().Int64("product_id", id).Str("name", p.Name).Msg("service: product created")
	return p, nil
}

func (s *service) UpdateProduct(ctx context.Context, p *Product) error {
	if err := s.normalizeProduct(p); err != nil {
		return err
	}
	return s.repo.UpdateProduct(ctx, p)
}

func (s *service) CheckDeleteProduct(ctx context.Context, id int64) (*DeleteCheck, error) {
	return s.deleteCheck(ctx, "product", id,
		func(ctx context.Context, id int64) error {
			_, err := s.repo.GetProductByID(ctx, id)
			return err
		},
		s.repo.ProductBlockers)
}

func (s *service) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		return err
	}
	log.Info().Int64("product_id", id).Msg("service: product deleted")
	return nil
}
