package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/clubhouse/clubhouse-api/internal/db"
	"github.com/clubhouse/clubhouse-api/internal/helpers"
	"github.com/clubhouse/clubhouse-api/internal/logger"
	"github.com/clubhouse/clubhouse-api/internal/mocks"
	"github.com/clubhouse/clubhouse-api/internal/services"
	"github.com/clubhouse/clubhouse-api/internal/types/api/params"
)

var testNow = time.Date(2026, time.January, 15, 10, 0, 0, 0, time.UTC)

func newSubscriptionService(mockQuerier *mocks.MockQuerier) *services.SubscriptionService {
	clock := helpers.FixedClock{Fixed: testNow}
	proration := services.NewProrationCalculator(logger.Log)
	eventService := services.NewSubscriptionEventService(mockQuerier)
	return services.NewSubscriptionService(mockQuerier, proration, eventService, clock, testProvider)
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from db.SubscriptionStatus
		to   db.SubscriptionStatus
		want bool
	}{
		{db.SubscriptionStatusPending, db.SubscriptionStatusActive, true},
		{db.SubscriptionStatusPending, db.SubscriptionStatusCancelled, true},
		{db.SubscriptionStatusPending, db.SubscriptionStatusPaused, false},
		{db.SubscriptionStatusPending, db.SubscriptionStatusSuspended, false},
		{db.SubscriptionStatusActive, db.SubscriptionStatusPaused, true},
		{db.SubscriptionStatusActive, db.SubscriptionStatusSuspended, true},
		{db.SubscriptionStatusActive, db.SubscriptionStatusCancelled, true},
		{db.SubscriptionStatusActive, db.SubscriptionStatusPending, false},
		{db.SubscriptionStatusPaused, db.SubscriptionStatusActive, true},
		{db.SubscriptionStatusPaused, db.SubscriptionStatusCancelled, true},
		{db.SubscriptionStatusPaused, db.SubscriptionStatusSuspended, true},
		{db.SubscriptionStatusSuspended, db.SubscriptionStatusActive, true},
		{db.SubscriptionStatusSuspended, db.SubscriptionStatusCancelled, true},
		{db.SubscriptionStatusSuspended, db.SubscriptionStatusPaused, false},
		{db.SubscriptionStatusCancelled, db.SubscriptionStatusActive, false},
		{db.SubscriptionStatusCancelled, db.SubscriptionStatusPending, false},
		{db.SubscriptionStatusCancelled, db.SubscriptionStatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, services.CanTransition(tt.from, tt.to))
		})
	}
}

func TestSubscriptionService_CreateSubscription(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := newSubscriptionService(mockQuerier)
	ctx := context.Background()

	clubID := uuid.New()
	tierID := uuid.New()
	parentID := uuid.New()
	childID := uuid.New()
	actor := params.Actor{Type: db.ActorTypeUser, ID: parentID}

	activeTier := db.Tier{
		ID:                  tierID,
		ClubID:              clubID,
		Name:                "Gold",
		MonthlyPriceInCents: 3000,
		AnnualPriceInCents:  30000,
		Active:              true,
	}

	baseParams := params.CreateSubscriptionParams{
		ClubID:            clubID,
		ParentUserID:      parentID,
		ChildUserID:       childID,
		TierID:            tierID,
		BillingFrequency:  db.BillingFrequencyMonthly,
		BillingDayOfMonth: 15,
		Actor:             actor,
	}

	noExisting := func() {
		mockQuerier.EXPECT().GetActiveSubscriptionByChildAndClub(ctx, db.GetActiveSubscriptionByChildAndClubParams{
			ChildUserID: childID,
			ClubID:      clubID,
		}).Return(db.Subscription{}, pgx.ErrNoRows)
	}

	tests := []struct {
		name       string
		params     params.CreateSubscriptionParams
		setupMocks func()
		wantStatus db.SubscriptionStatus
		wantErr    error
	}{
		{
			name:   "starts pending without a mandate",
			params: baseParams,
			setupMocks: func() {
				mockQuerier.EXPECT().GetTier(ctx, tierID).Return(activeTier, nil)
				noExisting()
				mockQuerier.EXPECT().CreateSubscription(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, arg db.CreateSubscriptionParams) (db.Subscription, error) {
						assert.Equal(t, db.SubscriptionStatusPending, arg.Status)
						assert.Equal(t, int64(3000), arg.AmountInCents)
						// the period is anchored at creation even while pending
						assert.Equal(t, testNow, arg.CurrentPeriodStart.Time)
						assert.Equal(t, time.Date(2026, time.February, 15, 0, 0, 0, 0, time.UTC), arg.CurrentPeriodEnd.Time)
						assert.True(t, arg.NextBillingDate.Valid)
						return db.Subscription{ID: uuid.New(), Status: arg.Status}, nil
					})
				mockQuerier.EXPECT().CreateSubscriptionEvent(ctx, gomock.Any()).Return(db.SubscriptionEvent{}, nil)
			},
			wantStatus: db.SubscriptionStatusPending,
		},
		{
			name: "starts active with a chargeable mandate",
			params: func() params.CreateSubscriptionParams {
				p := baseParams
				p.PaymentMandateID = "MD123"
				return p
			}(),
			setupMocks: func() {
				mockQuerier.EXPECT().GetTier(ctx, tierID).Return(activeTier, nil)
				noExisting()
				mockQuerier.EXPECT().GetMandateByProviderID(ctx, db.GetMandateByProviderIDParams{
					Provider:          testProvider,
					ProviderMandateID: "MD123",
				}).Return(db.Mandate{Status: db.MandateStatusActive}, nil)
				mockQuerier.EXPECT().CreateSubscription(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, arg db.CreateSubscriptionParams) (db.Subscription, error) {
						assert.Equal(t, db.SubscriptionStatusActive, arg.Status)
						assert.True(t, arg.CurrentPeriodStart.Valid)
						assert.Equal(t, time.Date(2026, time.February, 15, 0, 0, 0, 0, time.UTC), arg.CurrentPeriodEnd.Time)
						return db.Subscription{ID: uuid.New(), Status: arg.Status}, nil
					})
				// created plus activated
				mockQuerier.EXPECT().CreateSubscriptionEvent(ctx, gomock.Any()).Return(db.SubscriptionEvent{}, nil).Times(2)
			},
			wantStatus: db.SubscriptionStatusActive,
		},
		{
			name: "stays pending when the mandate is not yet chargeable",
			params: func() params.CreateSubscriptionParams {
				p := baseParams
				p.PaymentMandateID = "MD456"
				return p
			}(),
			setupMocks: func() {
				mockQuerier.EXPECT().GetTier(ctx, tierID).Return(activeTier, nil)
				noExisting()
				mockQuerier.EXPECT().GetMandateByProviderID(ctx, gomock.Any()).Return(db.Mandate{Status: db.MandateStatusPendingSetup}, nil)
				mockQuerier.EXPECT().CreateSubscription(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, arg db.CreateSubscriptionParams) (db.Subscription, error) {
						assert.Equal(t, db.SubscriptionStatusPending, arg.Status)
						return db.Subscription{ID: uuid.New(), Status: arg.Status}, nil
					})
				mockQuerier.EXPECT().CreateSubscriptionEvent(ctx, gomock.Any()).Return(db.SubscriptionEvent{}, nil)
			},
			wantStatus: db.SubscriptionStatusPending,
		},
		{
			name:   "tier not found",
			params: baseParams,
			setupMocks: func() {
				mockQuerier.EXPECT().GetTier(ctx, tierID).Return(db.Tier{}, pgx.ErrNoRows)
			},
			wantErr: services.ErrNotFound,
		},
		{
			name:   "inactive tier rejected",
			params: baseParams,
			setupMocks: func() {
				inactive := activeTier
				inactive.Active = false
				mockQuerier.EXPECT().GetTier(ctx, tierID).Return(inactive, nil)
			},
			wantErr: services.ErrConflict,
		},
		{
			name:   "tier from another club rejected",
			params: baseParams,
			setupMocks: func() {
				foreign := activeTier
				foreign.ClubID = uuid.New()
				mockQuerier.EXPECT().GetTier(ctx, tierID).Return(foreign, nil)
			},
			wantErr: services.ErrNotFound,
		},
		{
			name:   "duplicate non-cancelled subscription rejected",
			params: baseParams,
			setupMocks: func() {
				mockQuerier.EXPECT().GetTier(ctx, tierID).Return(activeTier, nil)
				mockQuerier.EXPECT().GetActiveSubscriptionByChildAndClub(ctx, gomock.Any()).Return(db.Subscription{ID: uuid.New()}, nil)
			},
			wantErr: services.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()
			subscription, err := service.CreateSubscription(ctx, tt.params)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, subscription.Status)
		})
	}
}

func TestSubscriptionService_CreateSubscription_AnnualUsesAnnualPrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := newSubscriptionService(mockQuerier)
	ctx := context.Background()

	clubID := uuid.New()
	tierID := uuid.New()

	mockQuerier.EXPECT().GetTier(ctx, tierID).Return(db.Tier{
		ID:                  tierID,
		ClubID:              clubID,
		MonthlyPriceInCents: 3000,
		AnnualPriceInCents:  30000,
		Active:              true,
	}, nil)
	mockQuerier.EXPECT().GetActiveSubscriptionByChildAndClub(ctx, gomock.Any()).Return(db.Subscription{}, pgx.ErrNoRows)
	mockQuerier.EXPECT().CreateSubscription(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, arg db.CreateSubscriptionParams) (db.Subscription, error) {
			assert.Equal(t, int64(30000), arg.AmountInCents)
			return db.Subscription{ID: uuid.New(), Status: arg.Status}, nil
		})
	mockQuerier.EXPECT().CreateSubscriptionEvent(ctx, gomock.Any()).Return(db.SubscriptionEvent{}, nil)

	_, err := service.CreateSubscription(ctx, params.CreateSubscriptionParams{
		ClubID:            clubID,
		ParentUserID:      uuid.New(),
		ChildUserID:       uuid.New(),
		TierID:            tierID,
		BillingFrequency:  db.BillingFrequencyAnnual,
		BillingDayOfMonth: 1,
	})
	require.NoError(t, err)
}

func TestSubscriptionService_CreateSubscription_MandateLookupUsesConfiguredProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	clock := helpers.FixedClock{Fixed: testNow}
	service := services.NewSubscriptionService(mockQuerier, services.NewProrationCalculator(logger.Log), services.NewSubscriptionEventService(mockQuerier), clock, "otherpay")
	ctx := context.Background()

	clubID := uuid.New()
	tierID := uuid.New()

	mockQuerier.EXPECT().GetTier(ctx, tierID).Return(db.Tier{
		ID:                  tierID,
		ClubID:              clubID,
		MonthlyPriceInCents: 3000,
		Active:              true,
	}, nil)
	mockQuerier.EXPECT().GetActiveSubscriptionByChildAndClub(ctx, gomock.Any()).Return(db.Subscription{}, pgx.ErrNoRows)
	mockQuerier.EXPECT().GetMandateByProviderID(ctx, db.GetMandateByProviderIDParams{
		Provider:          "otherpay",
		ProviderMandateID: "MD123",
	}).Return(db.Mandate{Status: db.MandateStatusActive}, nil)
	mockQuerier.EXPECT().CreateSubscription(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, arg db.CreateSubscriptionParams) (db.Subscription, error) {
			return db.Subscription{ID: uuid.New(), Status: arg.Status}, nil
		})
	mockQuerier.EXPECT().CreateSubscriptionEvent(ctx, gomock.Any()).Return(db.SubscriptionEvent{}, nil).Times(2)

	subscription, err := service.CreateSubscription(ctx, params.CreateSubscriptionParams{
		ClubID:            clubID,
		ParentUserID:      uuid.New(),
		ChildUserID:       uuid.New(),
		TierID:            tierID,
		PaymentMandateID:  "MD123",
		BillingFrequency:  db.BillingFrequencyMonthly,
		BillingDayOfMonth: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, db.SubscriptionStatusActive, subscription.Status)
}

func TestSubscriptionService_ActivateSubscription(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := newSubscriptionService(mockQuerier)
	ctx := context.Background()

	subscriptionID := uuid.New()

	t.Run("activates a pending subscription", func(t *testing.T) {
		mockQuerier.EXPECT().GetSubscriptionForUpdate(ctx, subscriptionID).Return(db.Subscription{
			ID:                subscriptionID,
			Status:            db.SubscriptionStatusPending,
			BillingFrequency:  db.BillingFrequencyMonthly,
			BillingDayOfMonth: 15,
		}, nil)
		mockQuerier.EXPECT().ActivateSubscription(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, arg db.ActivateSubscriptionParams) (db.Subscription, error) {
				assert.Equal(t, "MD123", arg.PaymentMandateID.String)
				assert.Equal(t, testNow, arg.CurrentPeriodStart.Time)
				assert.Equal(t, time.Date(2026, time.February, 15, 0, 0, 0, 0, time.UTC), arg.CurrentPeriodEnd.Time)
				return db.Subscription{ID: subscriptionID, Status: db.SubscriptionStatusActive}, nil
			})
		mockQuerier.EXPECT().CreateSubscriptionEvent(ctx, gomock.Any()).Return(db.SubscriptionEvent{}, nil)

		updated, err := service.ActivateSubscription(ctx, subscriptionID, "MD123", params.WebhookActor)
		require.NoError(t, err)
		assert.Equal(t, db.SubscriptionStatusActive, updated.Status)
	})

	t.Run("rejects activation of an active subscription", func(t *testing.T) {
		mockQuerier.EXPECT().GetSubscriptionForUpdate(ctx, subscriptionID).Return(db.Subscription{
			ID:     subscriptionID,
			Status: db.SubscriptionStatusActive,
		}, nil)

		_, err := service.ActivateSubscription(ctx, subscriptionID, "", params.SystemActor)
		require.Error(t, err)
		assert.True(t, services.IsInvalidTransition(err))
	})

	t.Run("subscription not found", func(t *testing.T) {
		mockQuerier.EXPECT().GetSubscriptionForUpdate(ctx, subscriptionID).Return(db.Subscription{}, pgx.ErrNoRows)

		_, err := service.ActivateSubscription(ctx, subscriptionID, "", params.SystemActor)
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}

func TestSubscriptionService_PauseSubscription(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := newSubscriptionService(mockQuerier)
	ctx := context.Background()

	subscriptionID := uuid.New()
	actor := params.Actor{Type: db.ActorTypeUser, ID: uuid.New()}

	activeSub := db.Subscription{ID: subscriptionID, Status: db.SubscriptionStatusActive}

	tests := []struct {
		name       string
		resumeDate string
		setupMocks func()
		wantErr    bool
	}{
		{
			name:       "pauses with a future resume date",
			resumeDate: "2026-03-01",
			setupMocks: func() {
				mockQuerier.EXPECT().GetSubscriptionForUpdate(ctx, subscriptionID).Return(activeSub, nil)
				mockQuerier.EXPECT().PauseSubscription(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, arg db.PauseSubscriptionParams) (db.Subscription, error) {
						assert.True(t, arg.ResumeDate.Valid)
						return db.Subscription{ID: subscriptionID, Status: db.SubscriptionStatusPaused}, nil
					})
				mockQuerier.EXPECT().CreateSubscriptionEvent(ctx, gomock.Any()).Return(db.SubscriptionEvent{}, nil)
			},
		},
		{
			name: "pauses indefinitely without a resume date",
			setupMocks: func() {
				mockQuerier.EXPECT().GetSubscriptionForUpdate(ctx, subscriptionID).Return(activeSub, nil)
				mockQuerier.EXPECT().PauseSubscription(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, arg db.PauseSubscriptionParams) (db.Subscription, error) {
						assert.False(t, arg.ResumeDate.Valid)
						return db.Subscription{ID: subscriptionID, Status: db.SubscriptionStatusPaused}, nil
					})
				mockQuerier.EXPECT().CreateSubscriptionEvent(ctx, gomock.Any()).Return(db.SubscriptionEvent{}, nil)
			},
		},
		{
			name:       "rejects a malformed resume date",
			resumeDate: "01/03/2026",
			setupMocks: func() {
				mockQuerier.EXPECT().GetSubscriptionForUpdate(ctx, subscriptionID).Return(activeSub, nil)
			},
			wantErr: true,
		},
		{
			name:       "rejects a resume date in the past",
			resumeDate: "2026-01-10",
			setupMocks: func() {
				mockQuerier.EXPECT().GetSubscriptionForUpdate(ctx, subscriptionID).Return(activeSub, nil)
			},
			wantErr: true,
		},
		{
			name:       "rejects a resume date of today",
			resumeDate: "2026-01-15",
			setupMocks: func() {
				mockQuerier.EXPECT().GetSubscriptionForUpdate(ctx, subscriptionID).Return(activeSub, nil)
			},
			wantErr: true,
		},
		{
			name: "rejects pausing a pending subscription",
			setupMocks: func() {
				mockQuerier.EXPECT().GetSubscriptionForUpdate(ctx, subscriptionID).Return(db.Subscription{
					ID:     subscriptionID,
					Status: db.SubscriptionStatusPending,
				}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()
			_, err := service.PauseSubscription(ctx, params.PauseSubscriptionParams{
				SubscriptionID: subscriptionID,
				ResumeDate:     tt.resumeDate,
				Actor:          actor,
			})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSubscriptionService_ResumeSubscription(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := newSubscriptionService(mockQuerier)
	ctx := context.Background()

	subscriptionID := uuid.New()

	t.Run("resumes a paused subscription", func(t *testing.T) {
		mockQuerier.EXPECT().GetSubscriptionForUpdate(ctx, subscriptionID).Return(db.Subscription{
			ID:                subscriptionID,
			Status:            db.SubscriptionStatusPaused,
			BillingDayOfMonth: 1,
		}, nil)
		mockQuerier.EXPECT().ResumeSubscription(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, arg db.ResumeSubscriptionParams) (db.Subscription, error) {
				// next occurrence of the 1st after Jan 15
				assert.Equal(t, time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), arg.NextBillingDate.Time)
				return db.Subscription{ID: subscriptionID, Status: db.SubscriptionStatusActive}, nil
			})
		mockQuerier.EXPECT().CreateSubscriptionEvent(ctx, gomock.Any()).Return(db.SubscriptionEvent{}, nil)

		updated, err := service.ResumeSubscription(ctx, subscriptionID, params.SystemActor)
		require.NoError(t, err)
		assert.Equal(t, db.SubscriptionStatusActive, updated.Status)
	})

	t.Run("rejects resuming an active subscription", func(t *testing.T) {
		mockQuerier.EXPECT().GetSubscriptionForUpdate(ctx, subscriptionID).Return(db.Subscription{
			ID:     subscriptionID,
			Status: db.SubscriptionStatusActive,
		}, nil)

		_, err := service.ResumeSubscription(ctx, subscriptionID, params.SystemActor)
		assert.True(t, services.IsInvalidTransition(err))
	})
}

func TestSubscriptionService_CancelSubscription(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := newSubscriptionService(mockQuerier)
	ctx := context.Background()

	subscriptionID := uuid.New()
	actor := params.Actor{Type: db.ActorTypeUser, ID: uuid.New()}

	periodEnd := pgtype.Timestamptz{Time: time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), Valid: true}

	t.Run("immediate cancellation", func(t *testing.T) {
		mockQuerier.EXPECT().GetSubscriptionForUpdate(ctx, subscriptionID).Return(db.Subscription{
			ID:               subscriptionID,
			Status:           db.SubscriptionStatusActive,
			CurrentPeriodEnd: periodEnd,
		}, nil)
		mockQuerier.EXPECT().CancelSubscription(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, arg db.CancelSubscriptionParams) (db.Subscription, error) {
				assert.Equal(t, db.SubscriptionStatusCancelled, arg.Status)
				assert.False(t, arg.CancelAtPeriodEnd)
				assert.True(t, arg.CancelledAt.Valid)
				return db.Subscription{ID: subscriptionID, Status: db.SubscriptionStatusCancelled}, nil
			})
		mockQuerier.EXPECT().CreateSubscriptionEvent(ctx, gomock.Any()).Return(db.SubscriptionEvent{}, nil)

		updated, err := service.CancelSubscription(ctx, params.CancelSubscriptionParams{
			SubscriptionID: subscriptionID,
			Immediate:      true,
			Reason:         "moving away",
			Actor:          actor,
		})
		require.NoError(t, err)
		assert.Equal(t, db.SubscriptionStatusCancelled, updated.Status)
	})

	t.Run("deferred cancellation keeps the subscription running", func(t *testing.T) {
		mockQuerier.EXPECT().GetSubscriptionForUpdate(ctx, subscriptionID).Return(db.Subscription{
			ID:               subscriptionID,
			Status:           db.SubscriptionStatusActive,
			CurrentPeriodEnd: periodEnd,
		}, nil)
		mockQuerier.EXPECT().CancelSubscription(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, arg db.CancelSubscriptionParams) (db.Subscription, error) {
				assert.Equal(t, db.SubscriptionStatusActive, arg.Status)
				assert.True(t, arg.CancelAtPeriodEnd)
				// the effective cancellation date is the period end, not now
				require.True(t, arg.CancelledAt.Valid)
				assert.Equal(t, periodEnd.Time, arg.CancelledAt.Time)
				return db.Subscription{ID: subscriptionID, Status: db.SubscriptionStatusActive, CancelAtPeriodEnd: true}, nil
			})
		mockQuerier.EXPECT().CreateSubscriptionEvent(ctx, gomock.Any()).Return(db.SubscriptionEvent{}, nil)

		updated, err := service.CancelSubscription(ctx, params.CancelSubscriptionParams{
			SubscriptionID: subscriptionID,
			Actor:          actor,
		})
		require.NoError(t, err)
		assert.Equal(t, db.SubscriptionStatusActive, updated.Status)
		assert.True(t, updated.CancelAtPeriodEnd)
	})

	t.Run("pending subscription cancels immediately even if deferred", func(t *testing.T) {
		mockQuerier.EXPECT().GetSubscriptionForUpdate(ctx, subscriptionID).Return(db.Subscription{
			ID:     subscriptionID,
			Status: db.SubscriptionStatusPending,
		}, nil)
		mockQuerier.EXPECT().CancelSubscription(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, arg db.CancelSubscriptionParams) (db.Subscription, error) {
				assert.Equal(t, db.SubscriptionStatusCancelled, arg.Status)
				return db.Subscription{ID: subscriptionID, Status: db.SubscriptionStatusCancelled}, nil
			})
		mockQuerier.EXPECT().CreateSubscriptionEvent(ctx, gomock.Any()).Return(db.SubscriptionEvent{}, nil)

		_, err := service.CancelSubscription(ctx, params.CancelSubscriptionParams{
			SubscriptionID: subscriptionID,
			Actor:          actor,
		})
		require.NoError(t, err)
	})

	t.Run("cancelled subscription cannot be cancelled again", func(t *testing.T) {
		mockQuerier.EXPECT().GetSubscriptionForUpdate(ctx, subscriptionID).Return(db.Subscription{
			ID:     subscriptionID,
			Status: db.SubscriptionStatusCancelled,
		}, nil)

		_, err := service.CancelSubscription(ctx, params.CancelSubscriptionParams{
			SubscriptionID: subscriptionID,
			Actor:          actor,
		})
		assert.True(t, services.IsInvalidTransition(err))
	})
}

func TestSubscriptionService_SuspendForMandateRevocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := newSubscriptionService(mockQuerier)
	ctx := context.Background()

	subscriptionID := uuid.New()

	t.Run("suspends an active subscription with an audit event", func(t *testing.T) {
		mockQuerier.EXPECT().GetSubscriptionForUpdate(ctx, subscriptionID).Return(db.Subscription{
			ID:     subscriptionID,
			Status: db.SubscriptionStatusActive,
		}, nil)
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

		err := service.SuspendForMandateRevocation(ctx, subscriptionID, "MD999")
		require.NoError(t, err)
	})

	t.Run("suspends a paused subscription", func(t *testing.T) {
		mockQuerier.EXPECT().GetSubscriptionForUpdate(ctx, subscriptionID).Return(db.Subscription{
			ID:     subscriptionID,
			Status: db.SubscriptionStatusPaused,
		}, nil)
		mockQuerier.EXPECT().UpdateSubscriptionStatus(ctx, gomock.Any()).Return(db.Subscription{
			ID:     subscriptionID,
			Status: db.SubscriptionStatusSuspended,
		}, nil)
		mockQuerier.EXPECT().CreateSubscriptionEvent(ctx, gomock.Any()).Return(db.SubscriptionEvent{}, nil)

		err := service.SuspendForMandateRevocation(ctx, subscriptionID, "MD999")
		require.NoError(t, err)
	})

	t.Run("no-op on an already suspended subscription", func(t *testing.T) {
		mockQuerier.EXPECT().GetSubscriptionForUpdate(ctx, subscriptionID).Return(db.Subscription{
			ID:     subscriptionID,
			Status: db.SubscriptionStatusSuspended,
		}, nil)

		err := service.SuspendForMandateRevocation(ctx, subscriptionID, "MD999")
		require.NoError(t, err)
	})
}

func TestSubscriptionService_FinalizeScheduledCancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := newSubscriptionService(mockQuerier)
	ctx := context.Background()

	subscriptionID := uuid.New()

	t.Run("finalizes once the period has ended", func(t *testing.T) {
		mockQuerier.EXPECT().GetSubscriptionForUpdate(ctx, subscriptionID).Return(db.Subscription{
			ID:                subscriptionID,
			Status:            db.SubscriptionStatusActive,
			CancelAtPeriodEnd: true,
			CurrentPeriodEnd:  pgtype.Timestamptz{Time: testNow.Add(-time.Hour), Valid: true},
		}, nil)
		mockQuerier.EXPECT().CancelSubscription(ctx, gomock.Any()).Return(db.Subscription{
			ID:     subscriptionID,
			Status: db.SubscriptionStatusCancelled,
		}, nil)
		mockQuerier.EXPECT().CreateSubscriptionEvent(ctx, gomock.Any()).Return(db.SubscriptionEvent{}, nil)

		updated, err := service.FinalizeScheduledCancellation(ctx, subscriptionID)
		require.NoError(t, err)
		assert.Equal(t, db.SubscriptionStatusCancelled, updated.Status)
	})

	t.Run("rejects when no cancellation is scheduled", func(t *testing.T) {
		mockQuerier.EXPECT().GetSubscriptionForUpdate(ctx, subscriptionID).Return(db.Subscription{
			ID:     subscriptionID,
			Status: db.SubscriptionStatusActive,
		}, nil)

		_, err := service.FinalizeScheduledCancellation(ctx, subscriptionID)
		assert.ErrorIs(t, err, services.ErrConflict)
	})

	t.Run("rejects while the period is still running", func(t *testing.T) {
		mockQuerier.EXPECT().GetSubscriptionForUpdate(ctx, subscriptionID).Return(db.Subscription{
			ID:                subscriptionID,
			Status:            db.SubscriptionStatusActive,
			CancelAtPeriodEnd: true,
			CurrentPeriodEnd:  pgtype.Timestamptz{Time: testNow.Add(time.Hour), Valid: true},
		}, nil)

		_, err := service.FinalizeScheduledCancellation(ctx, subscriptionID)
		assert.ErrorIs(t, err, services.ErrConflict)
	})
}

func TestSubscriptionService_ChangeTier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := newSubscriptionService(mockQuerier)
	ctx := context.Background()

	subscriptionID := uuid.New()
	clubID := uuid.New()
	oldTierID := uuid.New()
	newTierID := uuid.New()
	actor := params.Actor{Type: db.ActorTypeUser, ID: uuid.New()}

	activeSub := db.Subscription{
		ID:                 subscriptionID,
		ClubID:             clubID,
		TierID:             oldTierID,
		Status:             db.SubscriptionStatusActive,
		BillingFrequency:   db.BillingFrequencyMonthly,
		AmountInCents:      3000,
		CurrentPeriodStart: pgtype.Timestamptz{Time: day(2026, time.January, 1), Valid: true},
		CurrentPeriodEnd:   pgtype.Timestamptz{Time: day(2026, time.January, 31), Valid: true},
	}

	t.Run("prorates an upgrade", func(t *testing.T) {
		mockQuerier.EXPECT().GetSubscriptionForUpdate(ctx, subscriptionID).Return(activeSub, nil)
		mockQuerier.EXPECT().GetTier(ctx, newTierID).Return(db.Tier{
			ID:                  newTierID,
			ClubID:              clubID,
			MonthlyPriceInCents: 6000,
			Active:              true,
		}, nil)
		mockQuerier.EXPECT().ChangeSubscriptionTier(ctx, db.ChangeSubscriptionTierParams{
			ID:            subscriptionID,
			TierID:        newTierID,
			AmountInCents: 6000,
		}).Return(db.Subscription{ID: subscriptionID, TierID: newTierID, AmountInCents: 6000, Status: db.SubscriptionStatusActive}, nil)
		mockQuerier.EXPECT().CreateSubscriptionEvent(ctx, gomock.Any()).Return(db.SubscriptionEvent{}, nil)

		updated, proration, err := service.ChangeTier(ctx, params.ChangeTierParams{
			SubscriptionID: subscriptionID,
			NewTierID:      newTierID,
			Actor:          actor,
		})
		require.NoError(t, err)
		assert.Equal(t, newTierID, updated.TierID)
		assert.True(t, proration.IsUpgrade)
		// change on Jan 15 of a Jan 1 - Jan 31 period: 16 of 30 days remain
		assert.Equal(t, 16, proration.DaysRemaining)
		assert.Equal(t, int64(1600), proration.CreditAmount)
		assert.Equal(t, int64(3200), proration.ChargeAmount)
		assert.Equal(t, int64(1600), proration.NetAmount)
	})

	t.Run("rejects a change on a paused subscription", func(t *testing.T) {
		paused := activeSub
		paused.Status = db.SubscriptionStatusPaused
		mockQuerier.EXPECT().GetSubscriptionForUpdate(ctx, subscriptionID).Return(paused, nil)

		_, _, err := service.ChangeTier(ctx, params.ChangeTierParams{
			SubscriptionID: subscriptionID,
			NewTierID:      newTierID,
			Actor:          actor,
		})
		assert.ErrorIs(t, err, services.ErrConflict)
	})

	t.Run("rejects a change to the current tier", func(t *testing.T) {
		mockQuerier.EXPECT().GetSubscriptionForUpdate(ctx, subscriptionID).Return(activeSub, nil)

		_, _, err := service.ChangeTier(ctx, params.ChangeTierParams{
			SubscriptionID: subscriptionID,
			NewTierID:      oldTierID,
			Actor:          actor,
		})
		assert.ErrorIs(t, err, services.ErrConflict)
	})

	t.Run("rejects a tier from a different club", func(t *testing.T) {
		mockQuerier.EXPECT().GetSubscriptionForUpdate(ctx, subscriptionID).Return(activeSub, nil)
		mockQuerier.EXPECT().GetTier(ctx, newTierID).Return(db.Tier{
			ID:                  newTierID,
			ClubID:              uuid.New(),
			MonthlyPriceInCents: 6000,
			Active:              true,
		}, nil)

		_, _, err := service.ChangeTier(ctx, params.ChangeTierParams{
			SubscriptionID: subscriptionID,
			NewTierID:      newTierID,
			Actor:          actor,
		})
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}

func TestSubscriptionService_GetSubscription_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := newSubscriptionService(mockQuerier)
	ctx := context.Background()

	id := uuid.New()
	mockQuerier.EXPECT().GetSubscription(ctx, id).Return(db.Subscription{}, pgx.ErrNoRows)

	_, err := service.GetSubscription(ctx, id)
	assert.ErrorIs(t, err, services.ErrNotFound)

	mockQuerier.EXPECT().GetSubscription(ctx, id).Return(db.Subscription{}, errors.New("connection refused"))
	_, err = service.GetSubscription(ctx, id)
	require.Error(t, err)
	assert.NotErrorIs(t, err, services.ErrNotFound)
}
