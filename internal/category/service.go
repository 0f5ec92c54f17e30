package category

import (
	"context"

	"clickmart/internal/api"
)

type Service interface {
	List(ctx context.Context) ([]Category, error)
}

type service struct {
	client api.Invoker
}

func NewService(client api.Invoker) Service {
	return &service{client: client}
}

func (s *service) List(ctx context.Context) ([]Category, error) {
	var out struct {
		Categories []Category `json:"categories"`
	}
	if err := s.client.Get(ctx, "/categories", nil, &out); err != nil {
		return nil, err
	}
	return out.Categories, nil
}
