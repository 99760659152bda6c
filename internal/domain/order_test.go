package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func dayPtr(s string) *time.Time {
	t := day(s)
	return &t
}

func TestDeriveExpectedDate(t *testing.T) {
	exp, err := DeriveExpectedDate(day("2025-02-01"), 20)
	require.NoError(t, err)
	assert.Equal(t, day("2025-02-21"), exp)

	// same inputs, same output
	again, err := DeriveExpectedDate(day("2025-02-01"), 20)
	require.NoError(t, err)
	assert.Equal(t, exp, again)

	exp, err = DeriveExpectedDate(day("2025-01-31"), 0)
	require.NoError(t, err)
	assert.Equal(t, day("2025-01-31"), exp)

	_, err = DeriveExpectedDate(day("2025-02-01"), -1)
	assert.ErrorIs(t, err, ErrNegativeLeadTime)
}

func TestRecalculate(t *testing.T) {
	o := &Order{StartDate: dayPtr("2025-02-01"), LeadTime: 20, Quantity: 10, UnitPrice: 2.5, DepositAmount: 10}
	require.NoError(t, o.Recalculate())
	require.NotNil(t, o.ExpectedDate)
	assert.Equal(t, day("2025-02-21"), *o.ExpectedDate)
	assert.Equal(t, 25.0, o.TotalAmount)
	assert.Equal(t, 0.4, o.DepositRatio)

	// no start date: expected date stays unset, not an error
	o = &Order{LeadTime: 5}
	require.NoError(t, o.Recalculate())
	assert.Nil(t, o.ExpectedDate)

	// zero total never divides
	o = &Order{StartDate: dayPtr("2025-02-01"), DepositAmount: 50}
	require.NoError(t, o.Recalculate())
	assert.Equal(t, 0.0, o.DepositRatio)

	o = &Order{StartDate: dayPtr("2025-02-01"), LeadTime: -3}
	assert.ErrorIs(t, o.Recalculate(), ErrNegativeLeadTime)
}

func TestClassifyDelivery(t *testing.T) {
	delta, status := ClassifyDelivery(day("2025-01-10"), day("2025-01-10"))
	assert.Equal(t, 0, delta)
	assert.Equal(t, "delivered on time", status)

	delta, status = ClassifyDelivery(day("2025-01-10"), day("2025-01-15"))
	assert.Equal(t, 5, delta)
	assert.Equal(t, "delivered late by 5 days", status)

	delta, status = ClassifyDelivery(day("2025-01-10"), day("2025-01-05"))
	assert.Equal(t, -5, delta)
	assert.Equal(t, "delivered early by 5 days", status)
}

func TestDaysBetweenNormalizesTime(t *testing.T) {
	a := time.Date(2025, 1, 10, 23, 50, 0, 0, time.UTC)
	b := time.Date(2025, 1, 11, 0, 5, 0, 0, time.UTC)
	assert.Equal(t, 1, DaysBetween(a, b))
	assert.Equal(t, -1, DaysBetween(b, a))
}

func TestComputeStats(t *testing.T) {
	orders := []Order{
		{ID: 5, ExpectedDate: dayPtr("2025-01-10"), DeliveredDate: dayPtr("2025-01-10")},
		{ID: 4, ExpectedDate: dayPtr("2025-01-10"), DeliveredDate: dayPtr("2025-01-12")},
		{ID: 3, ExpectedDate: dayPtr("2025-01-10"), DeliveredDate: dayPtr("2025-01-08")},
		{ID: 2, ExpectedDate: dayPtr("2025-02-01")},
		{ID: 1},
	}
	s := ComputeStats(orders)
	assert.Equal(t, Stats{Total: 5, Delivered: 3, Open: 2, OnTime: 1, Late: 1, Early: 1}, s)
}
