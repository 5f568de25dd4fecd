package services

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/clubhouse/clubhouse-api/internal/db"
	"github.com/clubhouse/clubhouse-api/internal/types/business"
)

// ProrationCalculator computes credit and charge amounts for mid-period tier
// changes. All money math is done in integer cents; daily rates are rounded
// to the nearest cent only at the final step.
type ProrationCalculator struct {
	logger *zap.Logger
}

func NewProrationCalculator(logger *zap.Logger) *ProrationCalculator {
	return &ProrationCalculator{logger: logger}
}

// Calculate prorates a tier change at changeDate within the billing period
// [periodStart, periodEnd). The credit is the unused portion of the old price,
// the charge is the remaining-days portion of the new price. NetAmount is
// positive when the member owes money and negative when they are owed credit.
func (c *ProrationCalculator) Calculate(
	oldAmountInCents int64,
	newAmountInCents int64,
	periodStart time.Time,
	periodEnd time.Time,
	changeDate time.Time,
) (*business.ProrationResult, error) {
	if !periodEnd.After(periodStart) {
		return nil, fmt.Errorf("period end %s is not after period start %s", periodEnd.Format(time.RFC3339), periodStart.Format(time.RFC3339))
	}
	if changeDate.Before(periodStart) || changeDate.After(periodEnd) {
		return nil, fmt.Errorf("change date %s is outside billing period", changeDate.Format(time.RFC3339))
	}

	daysTotal := daysBetween(periodStart, periodEnd)
	daysUsed := daysBetween(periodStart, changeDate)
	daysRemaining := daysTotal - daysUsed
	if daysRemaining < 0 {
		daysRemaining = 0
	}

	oldDailyRate := float64(oldAmountInCents) / float64(daysTotal)
	newDailyRate := float64(newAmountInCents) / float64(daysTotal)

	credit := int64(math.Round(oldDailyRate * float64(daysRemaining)))
	charge := int64(math.Round(newDailyRate * float64(daysRemaining)))

	result := &business.ProrationResult{
		CreditAmount:  credit,
		ChargeAmount:  charge,
		NetAmount:     charge - credit,
		DaysTotal:     daysTotal,
		DaysUsed:      daysUsed,
		DaysRemaining: daysRemaining,
		OldDailyRate:  oldDailyRate,
		NewDailyRate:  newDailyRate,
	}

	c.logger.Debug("calculated proration",
		zap.Int64("old_amount", oldAmountInCents),
		zap.Int64("new_amount", newAmountInCents),
		zap.Int("days_remaining", daysRemaining),
		zap.Int64("net_amount", result.NetAmount))

	return result, nil
}

// CalculateTierChange wraps Calculate with the upgrade/downgrade flag used by
// the subscription service to decide whether the net amount is charged now or
// carried as credit.
func (c *ProrationCalculator) CalculateTierChange(
	oldAmountInCents int64,
	newAmountInCents int64,
	periodStart time.Time,
	periodEnd time.Time,
	changeDate time.Time,
) (*business.TierChangeProration, error) {
	result, err := c.Calculate(oldAmountInCents, newAmountInCents, periodStart, periodEnd, changeDate)
	if err != nil {
		return nil, err
	}
	return &business.TierChangeProration{
		ProrationResult: *result,
		IsUpgrade:       newAmountInCents > oldAmountInCents,
		ChangeDate:      changeDate,
	}, nil
}

// daysBetween counts whole calendar days from a to b, normalizing both to
// midnight UTC so time-of-day drift never changes the count.
func daysBetween(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

// AddBillingPeriod advances from through one billing period, clamping the
// anchor day to the last day of shorter months. A January 31 monthly anchor
// bills February 28 (or 29) and returns to the 31st in March.
func AddBillingPeriod(from time.Time, frequency db.BillingFrequency, billingDay int) time.Time {
	year, month := from.Year(), from.Month()
	switch frequency {
	case db.BillingFrequencyAnnual:
		year++
	default:
		month++
		if month > time.December {
			month = time.January
			year++
		}
	}
	day := clampDayOfMonth(year, month, billingDay)
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// NextBillingDate returns the first occurrence of billingDay strictly after
// from, clamped to month length.
func NextBillingDate(from time.Time, billingDay int) time.Time {
	year, month := from.Year(), from.Month()
	day := clampDayOfMonth(year, month, billingDay)
	candidate := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if candidate.After(truncateToDay(from)) {
		return candidate
	}
	month++
	if month > time.December {
		month = time.January
		year++
	}
	day = clampDayOfMonth(year, month, billingDay)
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func clampDayOfMonth(year int, month time.Month, day int) int {
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day > last {
		return last
	}
	if day < 1 {
		return 1
	}
	return day
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
