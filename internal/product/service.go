package product

import (
	"context"
	"errors"
	"net/url"
	"strconv"

	"clickmart/internal/api"
)

var ErrProductNotFound = errors.New("product not found")

// Service exposes catalog browsing to the view layer. Search, filtering,
// pagination and rating aggregation all happen backend-side; this is a
// typed pass-through.
type Service interface {
	List(ctx context.Context, opts ListOptions) (*ListResult, error)
	GetByID(ctx context.Context, id string) (*Product, error)
}

type service struct {
	client api.Invoker
}

func NewService(client api.Invoker) Service {
	return &service{client: client}
}

func (s *service) List(ctx context.Context, opts ListOptions) (*ListResult, error) {
	query := url.Values{}
	if opts.Search != "" {
		query.Set("search", opts.Search)
	}
	if opts.Category != "" {
		query.Set("category", opts.Category)
	}
	if opts.Page > 0 {
		query.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.PerPage > 0 {
		query.Set("per_page", strconv.Itoa(opts.PerPage))
	}

	var result ListResult
	if err := s.client.Get(ctx, "/products", query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Product, error) {
	if id == "" {
		return nil, ErrProductNotFound
	}

	var p Product
	if err := s.client.Get(ctx, "/products/"+url.PathEscape(id), nil, &p); err != nil {
		return nil, err
	}
	if p.ID == "" {
		return nil, ErrProductNotFound
	}
	return &p, nil
}
