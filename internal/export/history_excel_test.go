package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/omkarsindha/GSM-Alarm/internal/models"
)

func TestHistoryWorkbook(t *testing.T) {
	temp := 31.5
	data, err := HistoryWorkbook([]models.HistoryEntry{
		{Message: "Temperature above max", Temperature: &temp, Time: "2024-05-01 10:00"},
		{Message: "Power restored"},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{HistorySheet}, f.GetSheetList())
	rows, err := f.GetRows(HistorySheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, HistoryHeader, rows[0])
	assert.Equal(t, []string{"1", "Temperature above max", "31.5", "2024-05-01 10:00"}, rows[1])
	assert.Equal(t, []string{"2", "Power restored"}, rows[2])
}

func TestHistoryWorkbook_Empty(t *testing.T) {
	data, err := HistoryWorkbook(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(HistorySheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
