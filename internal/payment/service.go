package payment

import (
	"context"
	"errors"

	"clickmart/internal/api"
	"clickmart/internal/cart"
	"clickmart/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrEmptyCart = errors.New("cannot start checkout with an empty cart")

// Service turns the current cart into a payment redirect. The gateway
// protocol itself lives behind the backend; the client only ships line
// items and follows the returned URL.
type Service interface {
	CreateCheckout(ctx context.Context, items []cart.Item) (*Redirect, error)
}

type service struct {
	client api.Invoker
}

func NewService(client api.Invoker) Service {
	return &service{client: client}
}

func (s *service) CreateCheckout(ctx context.Context, items []cart.Item) (*Redirect, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	req := checkoutRequest{
		ExternalID: uuid.NewString(),
	}
	for _, it := range items {
		unit := it.Price.Float64()
		req.Items = append(req.Items, CheckoutItem{
			ProductID: it.ID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: unit,
		})
		req.Amount += unit * float64(it.Quantity)
	}

	log := logger.L().With(
		zap.String("external_id", req.ExternalID),
		zap.Int("lines", len(req.Items)),
		zap.Float64("amount", req.Amount),
	)

	var redirect Redirect
	if err := s.client.Post(ctx, "/payment/checkout", req, &redirect); err != nil {
		log.Error("checkout failed", zap.Error(err))
		return nil, err
	}
	if redirect.ExternalID == "" {
		redirect.ExternalID = req.ExternalID
	}

	log.Info("checkout created", zap.String("redirect_url", redirect.URL))
	return &redirect, nil
}
