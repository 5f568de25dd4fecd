package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/clubhouse/clubhouse-api/internal/client/directdebit"
	"github.com/clubhouse/clubhouse-api/internal/db"
	"github.com/clubhouse/clubhouse-api/internal/helpers"
	"github.com/clubhouse/clubhouse-api/internal/mocks"
	"github.com/clubhouse/clubhouse-api/internal/services"
)

func newWebhookService(t *testing.T, mockQuerier *mocks.MockQuerier, mockDD *mocks.MockDirectDebitAPI) *services.WebhookService {
	clock := helpers.FixedClock{Fixed: testNow}
	reconciler := services.NewPaymentReconciler(mockQuerier, services.NewSubscriptionEventService(mockQuerier), nil, clock)
	subscriptionService := newSubscriptionService(mockQuerier)
	return services.NewWebhookService(mockQuerier, nil, mockDD, newTestCipher(t), reconciler, subscriptionService, clock)
}

func TestWebhookService_ProcessWebhook_InvalidSignature(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockDD := mocks.NewMockDirectDebitAPI(ctrl)
	service := newWebhookService(t, mockQuerier, mockDD)
	ctx := context.Background()

	body := []byte(`{"events":[]}`)
	storedID := uuid.New()
	mockDD.EXPECT().VerifyWebhookSignature(body, "bad-signature").Return(false)
	mockDD.EXPECT().ProviderName().Return(testProvider).AnyTimes()
	// the delivery is still recorded for forensics, flagged as unsigned, but
	// nothing is parsed or dispatched
	mockQuerier.EXPECT().InsertWebhookEvent(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, arg db.InsertWebhookEventParams) (db.WebhookEvent, error) {
			assert.Equal(t, testProvider, arg.Provider)
			assert.False(t, arg.SignatureValid)
			assert.NotEmpty(t, arg.PayloadEncrypted)
			assert.False(t, arg.ResourceType.Valid)
			assert.False(t, arg.Action.Valid)
			return db.WebhookEvent{ID: storedID}, nil
		})
	mockQuerier.EXPECT().MarkWebhookEventProcessed(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, arg db.MarkWebhookEventProcessedParams) error {
			assert.Equal(t, storedID, arg.ID)
			assert.Equal(t, "invalid signature", arg.Result.String)
			return nil
		})

	result, err := service.ProcessWebhook(ctx, body, "bad-signature")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, services.ErrSignatureInvalid)
}

func TestWebhookService_ProcessWebhook_UnparsableBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockDD := mocks.NewMockDirectDebitAPI(ctrl)
	service := newWebhookService(t, mockQuerier, mockDD)
	ctx := context.Background()

	body := []byte(`not json`)
	mockDD.EXPECT().VerifyWebhookSignature(body, "sig").Return(true)
	mockDD.EXPECT().ParseWebhookEvents(body).Return(nil, assert.AnError)

	_, err := service.ProcessWebhook(ctx, body, "sig")
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestWebhookService_ProcessWebhook_DuplicateEventSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockDD := mocks.NewMockDirectDebitAPI(ctrl)
	service := newWebhookService(t, mockQuerier, mockDD)
	ctx := context.Background()

	body := []byte(`{}`)
	event := directdebit.Event{
		ID:           "EV1",
		ResourceType: directdebit.ResourcePayments,
		Action:       "failed",
		ResourceID:   "PM123",
	}

	mockDD.EXPECT().VerifyWebhookSignature(body, "sig").Return(true)
	mockDD.EXPECT().ParseWebhookEvents(body).Return([]directdebit.Event{event}, nil)
	mockDD.EXPECT().ProviderName().Return(testProvider).AnyTimes()
	// the insert hits the (provider, event_id) conflict and returns no row
	mockQuerier.EXPECT().InsertWebhookEvent(ctx, gomock.Any()).Return(db.WebhookEvent{}, pgx.ErrNoRows)

	result, err := service.ProcessWebhook(ctx, body, "sig")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Received)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 0, result.Processed)
	assert.Equal(t, 0, result.Failed)
}

func TestWebhookService_ProcessWebhook_UnknownEventIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockDD := mocks.NewMockDirectDebitAPI(ctrl)
	service := newWebhookService(t, mockQuerier, mockDD)
	ctx := context.Background()

	body := []byte(`{}`)
	event := directdebit.Event{
		ID:           "EV2",
		ResourceType: directdebit.ResourceRefunds,
		Action:       "created",
		ResourceID:   "RF1",
	}
	storedID := uuid.New()

	mockDD.EXPECT().VerifyWebhookSignature(body, "sig").Return(true)
	mockDD.EXPECT().ParseWebhookEvents(body).Return([]directdebit.Event{event}, nil)
	mockDD.EXPECT().ProviderName().Return(testProvider).AnyTimes()
	mockQuerier.EXPECT().InsertWebhookEvent(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, arg db.InsertWebhookEventParams) (db.WebhookEvent, error) {
			assert.Equal(t, testProvider, arg.Provider)
			assert.Equal(t, "EV2", arg.EventID)
			assert.True(t, arg.SignatureValid)
			assert.NotEmpty(t, arg.PayloadEncrypted)
			return db.WebhookEvent{ID: storedID}, nil
		})
	mockQuerier.EXPECT().MarkWebhookEventProcessed(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, arg db.MarkWebhookEventProcessedParams) error {
			assert.Equal(t, storedID, arg.ID)
			assert.Equal(t, "ignored", arg.Result.String)
			return nil
		})

	result, err := service.ProcessWebhook(ctx, body, "sig")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Received)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 0, result.Failed)
}

func TestWebhookService_ListEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockDD := mocks.NewMockDirectDebitAPI(ctrl)
	service := newWebhookService(t, mockQuerier, mockDD)
	ctx := context.Background()

	mockQuerier.EXPECT().ListWebhookEvents(ctx, db.ListWebhookEventsParams{
		Provider: testProvider,
		Limit:    50,
		Offset:   0,
	}).Return([]db.WebhookEvent{{ID: uuid.New()}}, nil)

	events, err := service.ListEvents(ctx, testProvider, 50, 0)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}
