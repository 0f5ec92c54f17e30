package user

import (
	"context"
	"errors"

	"clickmart/internal/api"
)

var ErrNotAuthenticated = errors.New("user not authenticated")

// Service covers the account calls the storefront needs: credentials go
// straight through to the backend, the returned token lands in the Session.
type Service interface {
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, input RegisterInput) error
	Profile(ctx context.Context) (*Profile, error)
}

type service struct {
	client  api.Invoker
	session *Session
}

func NewService(client api.Invoker, session *Session) Service {
	return &service{client: client, session: session}
}

func (s *service) Login(ctx context.Context, email, password string) error {
	body := map[string]string{"email": email, "password": password}

	var out struct {
		Token string `json:"token"`
	}
	if err := s.client.Post(ctx, "/users/login", body, &out); err != nil {
		return err
	}

	s.session.SetToken(out.Token)
	return nil
}

func (s *service) Register(ctx context.Context, input RegisterInput) error {
	return s.client.Post(ctx, "/users/register", input, nil)
}

func (s *service) Profile(ctx context.Context) (*Profile, error) {
	if !s.session.Authenticated() {
		return nil, ErrNotAuthenticated
	}

	var profile Profile
	if err := s.client.Get(ctx, "/users/me", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
