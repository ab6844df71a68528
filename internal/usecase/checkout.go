package usecase

import (
	"context"
	"strings"

	"stayquest/internal/infra"
	"stayquest/internal/pkg/errs"
	"stayquest/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// CreateSessionInput is the booking intent a checkout session is created
// from. HotelID is only used to build the cancel redirect; the other four
// fields travel as session metadata and come back at reconciliation time.
type CreateSessionInput struct {
	HotelID   string
	HotelName string
	CheckIn   string
	CheckOut  string
	UserID    uuid.UUID
}

// PaymentGateway wraps the hosted-checkout provider. CreateSession returns
// the provider-hosted URL to redirect the user to; no local state is written.
type PaymentGateway interface {
	CreateSession(ctx context.Context, in CreateSessionInput) (string, error)
	RetrieveSession(ctx context.Context, sessionID string) (*readmodel.CheckoutSessionRM, error)
}

type CheckoutUseCase interface {
	CreateSession(ctx context.Context, in CreateSessionInput) (string, error)
	GetSession(ctx context.Context, sessionID string) (*readmodel.CheckoutSessionRM, error)
}

type checkoutUseCaseImpl struct {
	gateway PaymentGateway
}

func NewCheckoutUseCase(gateway PaymentGateway) CheckoutUseCase {
	return &checkoutUseCaseImpl{gateway: gateway}
}

func (c *checkoutUseCaseImpl) CreateSession(ctx context.Context, in CreateSessionInput) (string, error) {
	if strings.TrimSpace(in.HotelName) == "" ||
		strings.TrimSpace(in.CheckIn) == "" ||
		strings.TrimSpace(in.CheckOut) == "" ||
		in.UserID == uuid.Nil {
		return "", ErrInvalidCheckoutRequest
	}

	url, err := c.gateway.CreateSession(ctx, in)
	if err != nil {
		return "", errs.Wrap(err, "failed to create checkout session")
	}

	return url, nil
}

func (c *checkoutUseCaseImpl) GetSession(ctx context.Context, sessionID string) (*readmodel.CheckoutSessionRM, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrInvalidCheckoutRequest
	}

	session, err := c.gateway.RetrieveSession(ctx, sessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, errs.Mark(err, ErrSessionRetrieval)
	}

	return session, nil
}
