package address

import (
	"context"
	"errors"
	"net/url"

	"clickmart/internal/api"
)

var ErrInvalidAddress = errors.New("address line and city are required")

// Service manages the user's address book on the backend. Map-picked
// addresses arrive here after the geo package resolved them.
type Service interface {
	List(ctx context.Context) ([]Address, error)
	Create(ctx context.Context, input CreateAddressInput) (*Address, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	client api.Invoker
}

func NewService(client api.Invoker) Service {
	return &service{client: client}
}

func (s *service) List(ctx context.Context) ([]Address, error) {
	var out struct {
		Addresses []Address `json:"addresses"`
	}
	if err := s.client.Get(ctx, "/users/addresses", nil, &out); err != nil {
		return nil, err
	}
	return out.Addresses, nil
}

func (s *service) Create(ctx context.Context, input CreateAddressInput) (*Address, error) {
	if input.AddressLine1 == "" || input.City == "" {
		return nil, ErrInvalidAddress
	}

	var created Address
	if err := s.client.Post(ctx, "/users/addresses", input, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.client.Delete(ctx, "/users/addresses", url.Values{"id": {id}})
}
