//go:build unit

package usecase_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"stayquest/internal/infra"
	"stayquest/internal/usecase"
	"stayquest/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHostedCheckout emulates the payment provider end to end: sessions are
// created unpaid and flip to paid only when MarkPaid is called, the same way
// a real hosted checkout settles out of band.
type fakeHostedCheckout struct {
	mu       sync.Mutex
	sessions map[string]*readmodel.CheckoutSessionRM
	seq      int
}

func newFakeHostedCheckout() *fakeHostedCheckout {
	return &fakeHostedCheckout{sessions: map[string]*readmodel.CheckoutSessionRM{}}
}

func (g *fakeHostedCheckout) CreateSession(_ context.Context, in usecase.CreateSessionInput) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq++
	id := fmt.Sprintf("cs_fake_%03d", g.seq)
	g.sessions[id] = &readmodel.CheckoutSessionRM{
		ID:            id,
		PaymentStatus: "unpaid",
		HotelName:     in.HotelName,
		CheckIn:       in.CheckIn,
		CheckOut:      in.CheckOut,
		UserID:        in.UserID.String(),
	}
	return "https://checkout.example.com/pay/" + id, nil
}

func (g *fakeHostedCheckout) RetrieveSession(_ context.Context, sessionID string) (*readmodel.CheckoutSessionRM, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	session, ok := g.sessions[sessionID]
	if !ok {
		return nil, infra.WrapRepoErr("no such checkout session", nil, infra.KindNotFound)
	}
	copied := *session
	return &copied, nil
}

func (g *fakeHostedCheckout) MarkPaid(sessionID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sessions[sessionID].PaymentStatus = "paid"
	g.sessions[sessionID].PaymentIntentID = "pi_" + sessionID
}

// 決済フロー全体: セッション作成 → 未決済のうちは照合拒否 → 決済完了後に
// 予約が一件だけ生成され、再照合しても増えない。
func TestCheckoutToBookingJourney(t *testing.T) {
	ctx := context.Background()
	gateway := newFakeHostedCheckout()
	repo := newRaceBookingRepo()

	checkoutUC := usecase.NewCheckoutUseCase(gateway)
	bookingUC := usecase.NewBookingUseCase(gateway, repo)
	userID := uuid.New()

	url, err := checkoutUC.CreateSession(ctx, usecase.CreateSessionInput{
		HotelID:   "place-grand-inn",
		HotelName: "Grand Inn",
		CheckIn:   "2025-07-01",
		CheckOut:  "2025-07-03",
		UserID:    userID,
	})
	require.NoError(t, err)
	require.Contains(t, url, "cs_fake_001")
	sessionID := "cs_fake_001"

	session, err := checkoutUC.GetSession(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, "unpaid", session.PaymentStatus)

	_, err = bookingUC.Reconcile(ctx, sessionID)
	assert.ErrorIs(t, err, usecase.ErrPaymentIncomplete)
	assert.Zero(t, repo.writes, "no booking may exist before payment settles")

	gateway.MarkPaid(sessionID)

	first, err := bookingUC.Reconcile(ctx, sessionID)
	require.NoError(t, err)
	assert.True(t, first.Created)
	assert.Equal(t, "Grand Inn", first.Booking.HotelName)
	assert.Equal(t, "confirmed", first.Booking.Status)
	assert.Equal(t, userID, first.Booking.UserID)

	second, err := bookingUC.Reconcile(ctx, sessionID)
	require.NoError(t, err)
	assert.False(t, second.Created)
	assert.Equal(t, first.Booking.ID, second.Booking.ID)
	assert.Equal(t, 1, repo.writes, "the paid session must map to exactly one booking row")
}
