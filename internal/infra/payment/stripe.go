package payment

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"stayquest/internal/infra"
	"stayquest/internal/pkg/config"
	"stayquest/internal/pkg/errs"
	"stayquest/internal/usecase"
	"stayquest/internal/usecase/readmodel"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// Metadata keys on the checkout session. The provider echoes these back
// verbatim at retrieval time; they are the only carrier of booking intent.
const (
	metadataKeyHotelName = "hotelName"
	metadataKeyCheckIn   = "checkIn"
	metadataKeyCheckOut  = "checkOut"
	metadataKeyUserID    = "userId"
)

type StripeGateway struct {
	api            *client.API
	frontendOrigin string
	amountCents    int64
	currency       string
}

func NewStripeGateway(stripeCfg config.StripeConfig, serverCfg config.ServerConfig) *StripeGateway {
	api := &client.API{}
	api.Init(stripeCfg.SecretKey, nil)

	return &StripeGateway{
		api:            api,
		frontendOrigin: serverCfg.FrontendOrigin,
		amountCents:    stripeCfg.BookingAmountCents,
		currency:       stripeCfg.Currency,
	}
}

func (g *StripeGateway) CreateSession(ctx context.Context, in usecase.CreateSessionInput) (string, error) {
	params := &stripe.CheckoutSessionParams{
		Params:             stripe.Params{Context: ctx},
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(g.currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(in.HotelName + " Booking"),
					},
					UnitAmount: stripe.Int64(g.amountCents),
				},
				Quantity: stripe.Int64(1),
			},
		},
		// The provider substitutes the session id into the success URL so the
		// confirmation page can reconcile it.
		SuccessURL: stripe.String(g.frontendOrigin + "/booking-success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(fmt.Sprintf("%s/hotel/%s", g.frontendOrigin, in.HotelID)),
	}
	params.AddMetadata(metadataKeyHotelName, in.HotelName)
	params.AddMetadata(metadataKeyCheckIn, in.CheckIn)
	params.AddMetadata(metadataKeyCheckOut, in.CheckOut)
	params.AddMetadata(metadataKeyUserID, in.UserID.String())

	session, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return "", errs.Wrap(err, "stripe checkout session create failed")
	}

	return session.URL, nil
}

func (g *StripeGateway) RetrieveSession(ctx context.Context, sessionID string) (*readmodel.CheckoutSessionRM, error) {
	params := &stripe.CheckoutSessionParams{
		Params: stripe.Params{Context: ctx},
	}

	session, err := g.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		if isStripeNotFound(err) {
			return nil, infra.WrapRepoErr("checkout session not found", err, infra.KindNotFound)
		}
		return nil, errs.Wrap(err, "stripe checkout session retrieve failed")
	}

	rm := &readmodel.CheckoutSessionRM{
		ID:            session.ID,
		PaymentStatus: string(session.PaymentStatus),
		HotelName:     session.Metadata[metadataKeyHotelName],
		CheckIn:       session.Metadata[metadataKeyCheckIn],
		CheckOut:      session.Metadata[metadataKeyCheckOut],
		UserID:        session.Metadata[metadataKeyUserID],
	}
	if session.PaymentIntent != nil {
		rm.PaymentIntentID = session.PaymentIntent.ID
	}

	return rm, nil
}

func isStripeNotFound(err error) bool {
	var stripeErr *stripe.Error
	if !errors.As(err, &stripeErr) {
		return false
	}
	return stripeErr.HTTPStatusCode == http.StatusNotFound ||
		stripeErr.Code == stripe.ErrorCodeResourceMissing
}
