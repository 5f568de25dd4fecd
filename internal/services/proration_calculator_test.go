package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubhouse/clubhouse-api/internal/db"
	"github.com/clubhouse/clubhouse-api/internal/logger"
	"github.com/clubhouse/clubhouse-api/internal/services"
)

func init() {
	logger.InitLogger("test")
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestProrationCalculator_Calculate(t *testing.T) {
	calc := services.NewProrationCalculator(logger.Log)

	periodStart := day(2026, time.January, 1)
	periodEnd := day(2026, time.January, 31)

	tests := []struct {
		name          string
		oldAmount     int64
		newAmount     int64
		changeDate    time.Time
		wantCredit    int64
		wantCharge    int64
		wantNet       int64
		wantDaysUsed  int
		wantRemaining int
		wantErr       bool
	}{
		{
			name:          "midpoint upgrade",
			oldAmount:     3000,
			newAmount:     6000,
			changeDate:    day(2026, time.January, 16),
			wantCredit:    1500,
			wantCharge:    3000,
			wantNet:       1500,
			wantDaysUsed:  15,
			wantRemaining: 15,
		},
		{
			name:          "midpoint downgrade carries credit",
			oldAmount:     6000,
			newAmount:     3000,
			changeDate:    day(2026, time.January, 16),
			wantCredit:    3000,
			wantCharge:    1500,
			wantNet:       -1500,
			wantDaysUsed:  15,
			wantRemaining: 15,
		},
		{
			name:          "change on period start credits everything",
			oldAmount:     3000,
			newAmount:     6000,
			changeDate:    periodStart,
			wantCredit:    3000,
			wantCharge:    6000,
			wantNet:       3000,
			wantDaysUsed:  0,
			wantRemaining: 30,
		},
		{
			name:          "change on period end credits nothing",
			oldAmount:     3000,
			newAmount:     6000,
			changeDate:    periodEnd,
			wantCredit:    0,
			wantCharge:    0,
			wantNet:       0,
			wantDaysUsed:  30,
			wantRemaining: 0,
		},
		{
			name:          "daily rates round to the nearest cent",
			oldAmount:     1000,
			newAmount:     2500,
			changeDate:    day(2026, time.January, 21),
			wantCredit:    333, // 1000/30 * 10
			wantCharge:    833, // 2500/30 * 10
			wantNet:       500,
			wantDaysUsed:  20,
			wantRemaining: 10,
		},
		{
			name:       "change date before period start",
			oldAmount:  3000,
			newAmount:  6000,
			changeDate: day(2025, time.December, 31),
			wantErr:    true,
		},
		{
			name:       "change date after period end",
			oldAmount:  3000,
			newAmount:  6000,
			changeDate: day(2026, time.February, 1),
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := calc.Calculate(tt.oldAmount, tt.newAmount, periodStart, periodEnd, tt.changeDate)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCredit, result.CreditAmount)
			assert.Equal(t, tt.wantCharge, result.ChargeAmount)
			assert.Equal(t, tt.wantNet, result.NetAmount)
			assert.Equal(t, 30, result.DaysTotal)
			assert.Equal(t, tt.wantDaysUsed, result.DaysUsed)
			assert.Equal(t, tt.wantRemaining, result.DaysRemaining)
		})
	}
}

func TestProrationCalculator_Calculate_InvalidPeriod(t *testing.T) {
	calc := services.NewProrationCalculator(logger.Log)

	_, err := calc.Calculate(3000, 6000, day(2026, time.January, 31), day(2026, time.January, 1), day(2026, time.January, 15))
	assert.Error(t, err)

	_, err = calc.Calculate(3000, 6000, day(2026, time.January, 1), day(2026, time.January, 1), day(2026, time.January, 1))
	assert.Error(t, err)
}

func TestProrationCalculator_Calculate_IgnoresTimeOfDay(t *testing.T) {
	calc := services.NewProrationCalculator(logger.Log)

	start := time.Date(2026, time.January, 1, 23, 50, 0, 0, time.UTC)
	end := time.Date(2026, time.January, 31, 0, 5, 0, 0, time.UTC)
	change := time.Date(2026, time.January, 16, 9, 30, 0, 0, time.UTC)

	result, err := calc.Calculate(3000, 6000, start, end, change)
	require.NoError(t, err)
	assert.Equal(t, 30, result.DaysTotal)
	assert.Equal(t, 15, result.DaysUsed)
	assert.Equal(t, 15, result.DaysRemaining)
}

func TestProrationCalculator_CalculateTierChange(t *testing.T) {
	calc := services.NewProrationCalculator(logger.Log)

	periodStart := day(2026, time.January, 1)
	periodEnd := day(2026, time.January, 31)
	change := day(2026, time.January, 16)

	upgrade, err := calc.CalculateTierChange(3000, 6000, periodStart, periodEnd, change)
	require.NoError(t, err)
	assert.True(t, upgrade.IsUpgrade)
	assert.Equal(t, int64(1500), upgrade.NetAmount)
	assert.Equal(t, change, upgrade.ChangeDate)

	downgrade, err := calc.CalculateTierChange(6000, 3000, periodStart, periodEnd, change)
	require.NoError(t, err)
	assert.False(t, downgrade.IsUpgrade)
	assert.Equal(t, int64(-1500), downgrade.NetAmount)
}

func TestAddBillingPeriod(t *testing.T) {
	tests := []struct {
		name       string
		from       time.Time
		frequency  db.BillingFrequency
		billingDay int
		want       time.Time
	}{
		{
			name:       "plain monthly advance",
			from:       day(2026, time.March, 15),
			frequency:  db.BillingFrequencyMonthly,
			billingDay: 15,
			want:       day(2026, time.April, 15),
		},
		{
			name:       "january 31 anchor clamps to february 28",
			from:       day(2026, time.January, 31),
			frequency:  db.BillingFrequencyMonthly,
			billingDay: 31,
			want:       day(2026, time.February, 28),
		},
		{
			name:       "january 31 anchor clamps to february 29 in a leap year",
			from:       day(2024, time.January, 31),
			frequency:  db.BillingFrequencyMonthly,
			billingDay: 31,
			want:       day(2024, time.February, 29),
		},
		{
			name:       "anchor returns to the 31st after a short month",
			from:       day(2026, time.February, 28),
			frequency:  db.BillingFrequencyMonthly,
			billingDay: 31,
			want:       day(2026, time.March, 31),
		},
		{
			name:       "december rolls into the next year",
			from:       day(2026, time.December, 10),
			frequency:  db.BillingFrequencyMonthly,
			billingDay: 10,
			want:       day(2027, time.January, 10),
		},
		{
			name:       "annual advance",
			from:       day(2026, time.March, 15),
			frequency:  db.BillingFrequencyAnnual,
			billingDay: 15,
			want:       day(2027, time.March, 15),
		},
		{
			name:       "annual from leap day clamps",
			from:       day(2024, time.February, 29),
			frequency:  db.BillingFrequencyAnnual,
			billingDay: 29,
			want:       day(2025, time.February, 28),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.AddBillingPeriod(tt.from, tt.frequency, tt.billingDay))
		})
	}
}

func TestNextBillingDate(t *testing.T) {
	tests := []struct {
		name       string
		from       time.Time
		billingDay int
		want       time.Time
	}{
		{
			name:       "billing day still ahead this month",
			from:       day(2026, time.January, 10),
			billingDay: 15,
			want:       day(2026, time.January, 15),
		},
		{
			name:       "billing day already passed rolls to next month",
			from:       day(2026, time.January, 20),
			billingDay: 15,
			want:       day(2026, time.February, 15),
		},
		{
			name:       "same day rolls forward",
			from:       day(2026, time.January, 15),
			billingDay: 15,
			want:       day(2026, time.February, 15),
		},
		{
			name:       "clamped in a short month",
			from:       day(2026, time.February, 10),
			billingDay: 31,
			want:       day(2026, time.February, 28),
		},
		{
			name:       "december rollover",
			from:       day(2026, time.December, 20),
			billingDay: 15,
			want:       day(2027, time.January, 15),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.NextBillingDate(tt.from, tt.billingDay))
		})
	}
}
