package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/clubhouse/clubhouse-api/internal/db"
	"github.com/clubhouse/clubhouse-api/internal/helpers"
	"github.com/clubhouse/clubhouse-api/internal/mocks"
	"github.com/clubhouse/clubhouse-api/internal/services"
)

const testProvider = "gocardless"

func newReconciler(mockQuerier *mocks.MockQuerier) *services.PaymentReconciler {
	clock := helpers.FixedClock{Fixed: testNow}
	eventService := services.NewSubscriptionEventService(mockQuerier)
	return services.NewPaymentReconciler(mockQuerier, eventService, nil, clock)
}

func paymentFixture(subscriptionID, invoiceID uuid.UUID) db.ProviderPayment {
	p := db.ProviderPayment{
		ID:                uuid.New(),
		Provider:          testProvider,
		ProviderPaymentID: "PM123",
		AmountInCents:     3000,
		Status:            db.ProviderPaymentStatusSubmitted,
	}
	if subscriptionID != uuid.Nil {
		p.SubscriptionID = pgtype.UUID{Bytes: subscriptionID, Valid: true}
	}
	if invoiceID != uuid.Nil {
		p.InvoiceID = pgtype.UUID{Bytes: invoiceID, Valid: true}
	}
	return p
}

func expectGetPayment(mockQuerier *mocks.MockQuerier, ctx context.Context, payment db.ProviderPayment) {
	mockQuerier.EXPECT().GetProviderPaymentByProviderID(ctx, db.GetProviderPaymentByProviderIDParams{
		Provider:          testProvider,
		ProviderPaymentID: "PM123",
	}).Return(payment, nil)
}

func TestPaymentReconciler_HandlePaymentFailure_BelowThreshold(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	reconciler := newReconciler(mockQuerier)
	ctx := context.Background()

	subscriptionID := uuid.New()
	invoiceID := uuid.New()
	payment := paymentFixture(subscriptionID, invoiceID)

	expectGetPayment(mockQuerier, ctx, payment)
	mockQuerier.EXPECT().MarkProviderPaymentFailed(ctx, db.MarkProviderPaymentFailedParams{
		ID:            payment.ID,
		Status:        db.ProviderPaymentStatusFailed,
		FailureReason: pgtype.Text{String: "insufficient_funds", Valid: true},
	}).Return(payment, nil)
	mockQuerier.EXPECT().MarkInvoiceOverdue(ctx, invoiceID).Return(db.Invoice{}, nil)
	mockQuerier.EXPECT().GetSubscriptionForUpdate(ctx, subscriptionID).Return(db.Subscription{
		ID:     subscriptionID,
		Status: db.SubscriptionStatusActive,
	}, nil)
	mockQuerier.EXPECT().IncrementFailedPaymentCount(ctx, subscriptionID).Return(int32(1), nil)
	mockQuerier.EXPECT().CreateSubscriptionEvent(ctx, gomock.Any()).Return(db.SubscriptionEvent{}, nil)
	// no UpdateSubscriptionStatus expectation: one failure must not suspend

	err := reconciler.HandlePaymentFailure(ctx, testProvider, "PM123", "insufficient_funds")
	require.NoError(t, err)
}

func TestPaymentReconciler_HandlePaymentFailure_ThirdFailureSuspends(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	reconciler := newReconciler(mockQuerier)
	ctx := context.Background()

	subscriptionID := uuid.New()
	payment := paymentFixture(subscriptionID, uuid.Nil)

	expectGetPayment(mockQuerier, ctx, payment)
	mockQuerier.EXPECT().MarkProviderPaymentFailed(ctx, gomock.Any()).Return(payment, nil)
	mockQuerier.EXPECT().GetSubscriptionForUpdate(ctx, subscriptionID).Return(db.Subscription{
		ID:     subscriptionID,
		Status: db.SubscriptionStatusActive,
	}, nil)
	mockQuerier.EXPECT().IncrementFailedPaymentCount(ctx, subscriptionID).Return(int32(services.MaxFailedPaymentsBeforeSuspension), nil)
	mockQuerier.EXPECT().CreateSubscriptionEvent(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, arg db.CreateSubscriptionEventParams) (db.SubscriptionEvent, error) {
			assert.Equal(t, db.SubscriptionEventTypePaymentFailed, arg.EventType)
			return db.SubscriptionEvent{}, nil
		})
	mockQuerier.EXPECT().UpdateSubscriptionStatus(ctx, db.UpdateSubscriptionStatusParams{
		ID:     subscriptionID,
		Status: db.SubscriptionStatusSuspended,
	}).Return(db.Subscription{ID: subscriptionID, Status: db.SubscriptionStatusSuspended}, nil)
	mockQuerier.EXPECT().CreateSubscriptionEvent(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, arg db.CreateSubscriptionEventParams) (db.SubscriptionEvent, error) {
			assert.Equal(t, db.SubscriptionEventTypeSuspended, arg.EventType)
			assert.Equal(t, db.ActorTypeWebhook, arg.ActorType)
			return db.SubscriptionEvent{}, nil
		})

	err := reconciler.HandlePaymentFailure(ctx, testProvider, "PM123", "mandate_cancelled")
	require.NoError(t, err)
}

func TestPaymentReconciler_HandlePaymentFailure_AlreadySuspended(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	reconciler := newReconciler(mockQuerier)
	ctx := context.Background()

	subscriptionID := uuid.New()
	payment := paymentFixture(subscriptionID, uuid.Nil)

	expectGetPayment(mockQuerier, ctx, payment)
	mockQuerier.EXPECT().MarkProviderPaymentFailed(ctx, gomock.Any()).Return(payment, nil)
	mockQuerier.EXPECT().GetSubscriptionForUpdate(ctx, subscriptionID).Return(db.Subscription{
		ID:     subscriptionID,
		Status: db.SubscriptionStatusSuspended,
	}, nil)
	mockQuerier.EXPECT().IncrementFailedPaymentCount(ctx, subscriptionID).Return(int32(4), nil)
	mockQuerier.EXPECT().CreateSubscriptionEvent(ctx, gomock.Any()).Return(db.SubscriptionEvent{}, nil)
	// the counter advances but there is no further status change

	err := reconciler.HandlePaymentFailure(ctx, testProvider, "PM123", "insufficient_funds")
	require.NoError(t, err)
}

func TestPaymentReconciler_HandlePaymentFailure_UnknownPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	reconciler := newReconciler(mockQuerier)
	ctx := context.Background()

	mockQuerier.EXPECT().GetProviderPaymentByProviderID(ctx, gomock.Any()).Return(db.ProviderPayment{}, pgx.ErrNoRows)

	err := reconciler.HandlePaymentFailure(ctx, testProvider, "PM123", "")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestPaymentReconciler_HandlePaymentSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	reconciler := newReconciler(mockQuerier)
	ctx := context.Background()

	subscriptionID := uuid.New()
	invoiceID := uuid.New()
	payment := paymentFixture(subscriptionID, invoiceID)

	expectGetPayment(mockQuerier, ctx, payment)
	mockQuerier.EXPECT().UpdateProviderPaymentStatus(ctx, db.UpdateProviderPaymentStatusParams{
		ID:       payment.ID,
		Status:   db.ProviderPaymentStatusPaidOut,
		PayoutID: pgtype.Text{String: "PO77", Valid: true},
	}).Return(payment, nil)
	mockQuerier.EXPECT().MarkInvoicePaid(ctx, db.MarkInvoicePaidParams{
		ID:                invoiceID,
		PaidAmountInCents: 3000,
		PaidAt:            pgtype.Timestamptz{Time: testNow, Valid: true},
	}).Return(db.Invoice{}, nil)
	mockQuerier.EXPECT().GetSubscriptionForUpdate(ctx, subscriptionID).Return(db.Subscription{
		ID:                 subscriptionID,
		Status:             db.SubscriptionStatusActive,
		FailedPaymentCount: 2,
	}, nil)
	mockQuerier.EXPECT().ResetFailedPaymentCount(ctx, subscriptionID).Return(nil)
	mockQuerier.EXPECT().CreateSubscriptionEvent(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, arg db.CreateSubscriptionEventParams) (db.SubscriptionEvent, error) {
			assert.Equal(t, db.SubscriptionEventTypePaymentSucceeded, arg.EventType)
			return db.SubscriptionEvent{}, nil
		})

	err := reconciler.HandlePaymentSuccess(ctx, testProvider, "PM123", "PO77")
	require.NoError(t, err)
}

func TestPaymentReconciler_HandlePaymentSuccess_ReactivatesSuspended(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	reconciler := newReconciler(mockQuerier)
	ctx := context.Background()

	subscriptionID := uuid.New()
	payment := paymentFixture(subscriptionID, uuid.Nil)

	expectGetPayment(mockQuerier, ctx, payment)
	mockQuerier.EXPECT().UpdateProviderPaymentStatus(ctx, gomock.Any()).Return(payment, nil)
	mockQuerier.EXPECT().GetSubscriptionForUpdate(ctx, subscriptionID).Return(db.Subscription{
		ID:                 subscriptionID,
		Status:             db.SubscriptionStatusSuspended,
		FailedPaymentCount: 3,
	}, nil)
	mockQuerier.EXPECT().ResetFailedPaymentCount(ctx, subscriptionID).Return(nil)
	mockQuerier.EXPECT().CreateSubscriptionEvent(ctx, gomock.Any()).Return(db.SubscriptionEvent{}, nil)
	mockQuerier.EXPECT().UpdateSubscriptionStatus(ctx, db.UpdateSubscriptionStatusParams{
		ID:     subscriptionID,
		Status: db.SubscriptionStatusActive,
	}).Return(db.Subscription{ID: subscriptionID, Status: db.SubscriptionStatusActive}, nil)
	mockQuerier.EXPECT().CreateSubscriptionEvent(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, arg db.CreateSubscriptionEventParams) (db.SubscriptionEvent, error) {
			assert.Equal(t, db.SubscriptionEventTypeActivated, arg.EventType)
			assert.Equal(t, "suspended", arg.PreviousStatus.String)
			return db.SubscriptionEvent{}, nil
		})

	err := reconciler.HandlePaymentSuccess(ctx, testProvider, "PM123", "")
	require.NoError(t, err)
}

func TestPaymentReconciler_HandlePaymentSuccess_NoSubscription(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	reconciler := newReconciler(mockQuerier)
	ctx := context.Background()

	payment := paymentFixture(uuid.Nil, uuid.Nil)

	expectGetPayment(mockQuerier, ctx, payment)
	mockQuerier.EXPECT().UpdateProviderPaymentStatus(ctx, gomock.Any()).Return(payment, nil)

	err := reconciler.HandlePaymentSuccess(ctx, testProvider, "PM123", "")
	require.NoError(t, err)
}

func TestPaymentReconciler_HandleChargeback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	reconciler := newReconciler(mockQuerier)
	ctx := context.Background()

	subscriptionID := uuid.New()
	invoiceID := uuid.New()
	payment := paymentFixture(subscriptionID, invoiceID)
	payment.Status = db.ProviderPaymentStatusPaidOut

	expectGetPayment(mockQuerier, ctx, payment)
	mockQuerier.EXPECT().MarkProviderPaymentFailed(ctx, db.MarkProviderPaymentFailedParams{
		ID:            payment.ID,
		Status:        db.ProviderPaymentStatusChargedBack,
		FailureReason: pgtype.Text{String: "authorisation_disputed", Valid: true},
	}).Return(payment, nil)
	mockQuerier.EXPECT().MarkInvoiceOverdue(ctx, invoiceID).Return(db.Invoice{}, nil)
	mockQuerier.EXPECT().GetSubscriptionForUpdate(ctx, subscriptionID).Return(db.Subscription{
		ID:     subscriptionID,
		Status: db.SubscriptionStatusActive,
	}, nil)
	mockQuerier.EXPECT().IncrementFailedPaymentCount(ctx, subscriptionID).Return(int32(1), nil)
	mockQuerier.EXPECT().CreateSubscriptionEvent(ctx, gomock.Any()).Return(db.SubscriptionEvent{}, nil)

	err := reconciler.HandleChargeback(ctx, testProvider, "PM123", "authorisation_disputed")
	require.NoError(t, err)
}

func TestPaymentReconciler_HandlePaymentConfirmed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	reconciler := newReconciler(mockQuerier)
	ctx := context.Background()

	payment := paymentFixture(uuid.New(), uuid.Nil)

	expectGetPayment(mockQuerier, ctx, payment)
	mockQuerier.EXPECT().UpdateProviderPaymentStatus(ctx, db.UpdateProviderPaymentStatusParams{
		ID:       payment.ID,
		Status:   db.ProviderPaymentStatusConfirmed,
		PayoutID: payment.PayoutID,
	}).Return(payment, nil)

	err := reconciler.HandlePaymentConfirmed(ctx, testProvider, "PM123", db.ProviderPaymentStatusConfirmed)
	require.NoError(t, err)
}

func TestPaymentReconciler_RegisterPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	reconciler := newReconciler(mockQuerier)
	ctx := context.Background()

	subscriptionID := uuid.New()
	invoiceID := uuid.New()

	mockQuerier.EXPECT().CreateProviderPayment(ctx, db.CreateProviderPaymentParams{
		SubscriptionID:    pgtype.UUID{Bytes: subscriptionID, Valid: true},
		InvoiceID:         pgtype.UUID{Bytes: invoiceID, Valid: true},
		Provider:          testProvider,
		ProviderPaymentID: "PM123",
		AmountInCents:     3000,
		Status:            db.ProviderPaymentStatusCreated,
	}).Return(db.ProviderPayment{ID: uuid.New(), Status: db.ProviderPaymentStatusCreated}, nil)

	payment, err := reconciler.RegisterPayment(ctx, subscriptionID, invoiceID, testProvider, "PM123", 3000)
	require.NoError(t, err)
	assert.Equal(t, db.ProviderPaymentStatusCreated, payment.Status)
}
