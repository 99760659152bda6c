package excel

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportRoundTrip(t *testing.T) {
	e := New()
	data, err := e.Export("orders",
		[]string{"id", "name", "expected_date"},
		[][]any{
			{int64(2), "acme - widgets", "2025-02-21"},
			{int64(1), "beta - gears", ""},
		})
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"orders"}, f.GetSheetList())
	rows, err := f.GetRows("orders")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"id", "name", "expected_date"}, rows[0])
	assert.Equal(t, "2", rows[1][0])
	assert.Equal(t, "acme - widgets", rows[1][1])
	assert.Equal(t, "2025-02-21", rows[1][2])
	assert.Equal(t, "beta - gears", rows[2][1])
}

func TestExportHeaderOnly(t *testing.T) {
	data, err := New().Export("reminders", []string{"id"}, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("reminders")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
