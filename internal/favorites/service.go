package favorites

import (
	"context"
	"net/url"

	"clickmart/internal/api"
	"clickmart/internal/product"
)

// Service wraps the backend favorites endpoints. Favorited products carry
// the same catalog shape the product service returns, so "Add to Cart" from
// the favorites view reuses the exact same flow.
type Service interface {
	List(ctx context.Context) ([]product.Product, error)
	Add(ctx context.Context, productID string) error
	Remove(ctx context.Context, productID string) error
}

type service struct {
	client api.Invoker
}

func NewService(client api.Invoker) Service {
	return &service{client: client}
}

func (s *service) List(ctx context.Context) ([]product.Product, error) {
	var out struct {
		Favorites []product.Product `json:"favorites"`
	}
	if err := s.client.Get(ctx, "/favorites", nil, &out); err != nil {
		return nil, err
	}
	return out.Favorites, nil
}

func (s *service) Add(ctx context.Context, productID string) error {
	body := map[string]string{"product_id": productID}
	return s.client.Post(ctx, "/favorites", body, nil)
}

func (s *service) Remove(ctx context.Context, productID string) error {
	query := url.Values{"product_id": {productID}}
	return s.client.Delete(ctx, "/favorites", query)
}
