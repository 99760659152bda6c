package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRemindersClassification(t *testing.T) {
	ref := day("2025-01-01")
	orders := []Order{
		{ID: 6, Name: "due today", ExpectedDate: dayPtr("2025-01-01")},
		{ID: 5, Name: "overdue", ExpectedDate: dayPtr("2024-12-30")},
		{ID: 4, Name: "upcoming 3", ExpectedDate: dayPtr("2025-01-04")},
		{ID: 3, Name: "upcoming 5", ExpectedDate: dayPtr("2025-01-06")},
		{ID: 2, Name: "silent 2", ExpectedDate: dayPtr("2025-01-03")},
		{ID: 1, Name: "silent far", ExpectedDate: dayPtr("2025-03-01")},
	}

	out := BuildReminders(orders, ref, DefaultReminderWindow())
	require.Len(t, out, 4)

	assert.Equal(t, int64(6), out[0].OrderID)
	assert.Equal(t, SeverityDueToday, out[0].Severity)
	assert.Equal(t, 0, out[0].DaysLeft)

	assert.Equal(t, int64(5), out[1].OrderID)
	assert.Equal(t, SeverityOverdue, out[1].Severity)
	assert.Equal(t, -2, out[1].DaysLeft)
	assert.Contains(t, out[1].Message, "2 days late")

	assert.Equal(t, int64(4), out[2].OrderID)
	assert.Equal(t, SeverityUpcoming, out[2].Severity)
	assert.Equal(t, 3, out[2].DaysLeft)

	assert.Equal(t, int64(3), out[3].OrderID)
	assert.Equal(t, SeverityUpcoming, out[3].Severity)
	assert.Equal(t, 5, out[3].DaysLeft)
}

func TestBuildRemindersSkipsClosedAndUndated(t *testing.T) {
	ref := day("2025-01-01")
	orders := []Order{
		// delivered orders never remind, even when overdue on paper
		{ID: 3, ExpectedDate: dayPtr("2024-12-01"), DeliveredDate: dayPtr("2024-12-20")},
		// no expected date, nothing to compare against
		{ID: 2},
		{ID: 1, ExpectedDate: dayPtr("2025-01-01")},
	}
	out := BuildReminders(orders, ref, DefaultReminderWindow())
	require.Len(t, out, 1)
	assert.Equal(t, int64(1), out[0].OrderID)
}

func TestBuildRemindersPreservesInputOrder(t *testing.T) {
	ref := day("2025-01-01")
	// id-descending input, mixed severities: output must not re-sort by urgency
	orders := []Order{
		{ID: 9, ExpectedDate: dayPtr("2025-01-10")}, // upcoming 9
		{ID: 8, ExpectedDate: dayPtr("2024-12-25")}, // overdue
		{ID: 7, ExpectedDate: dayPtr("2025-01-01")}, // due today
	}
	out := BuildReminders(orders, ref, DefaultReminderWindow())
	require.Len(t, out, 3)
	assert.Equal(t, []int64{9, 8, 7}, []int64{out[0].OrderID, out[1].OrderID, out[2].OrderID})
}

func TestBuildRemindersCustomWindow(t *testing.T) {
	ref := day("2025-01-01")
	orders := []Order{
		{ID: 2, ExpectedDate: dayPtr("2025-01-03")}, // 2 days out
		{ID: 1, ExpectedDate: dayPtr("2025-01-04")}, // 3 days out
	}
	out := BuildReminders(orders, ref, []int{2})
	require.Len(t, out, 1)
	assert.Equal(t, int64(2), out[0].OrderID)
}

func TestBuildRemindersIsPure(t *testing.T) {
	ref := day("2025-01-01")
	orders := []Order{{ID: 1, ExpectedDate: dayPtr("2025-01-01")}}
	first := BuildReminders(orders, ref, DefaultReminderWindow())
	second := BuildReminders(orders, ref, DefaultReminderWindow())
	assert.Equal(t, first, second)
}

func TestFilterReminderOrdersMatchesBuild(t *testing.T) {
	ref := day("2025-01-01")
	orders := []Order{
		{ID: 8, ExpectedDate: dayPtr("2025-01-01")},
		{ID: 7, ExpectedDate: dayPtr("2024-12-15")},
		{ID: 6, ExpectedDate: dayPtr("2025-01-06")},
		{ID: 5, ExpectedDate: dayPtr("2025-01-09")}, // 8 days out, silent
		{ID: 4, ExpectedDate: dayPtr("2025-01-02")}, // 1 day out, silent
		{ID: 3, ExpectedDate: dayPtr("2024-12-31"), DeliveredDate: dayPtr("2024-12-31")},
		{ID: 2},
	}
	window := DefaultReminderWindow()

	reminders := BuildReminders(orders, ref, window)
	subset := FilterReminderOrders(orders, ref, window)

	require.Equal(t, len(reminders), len(subset))
	for i := range subset {
		assert.Equal(t, reminders[i].OrderID, subset[i].ID)
	}
}

func TestBuildRemindersEmpty(t *testing.T) {
	out := BuildReminders(nil, day("2025-01-01"), DefaultReminderWindow())
	assert.Empty(t, out)
}
