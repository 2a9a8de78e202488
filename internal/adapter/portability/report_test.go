package portability_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/srgjo27/exhorizon/internal/adapter/portability"
	"github.com/srgjo27/exhorizon/internal/core/domain"
)

func TestXLSXReport_EmptyRefused(t *testing.T) {
	data, err := portability.NewXLSXReport(time.UTC).Export(nil)

	assert.ErrorIs(t, err, domain.ErrExportEmptyCollection)
	assert.Nil(t, data)
}

func TestXLSXReport_Row(t *testing.T) {
	r := portability.NewXLSXReport(time.UTC)

	row := r.Row(samplePlans()[0])

	require.Len(t, row, len(portability.ReportHeaders))
	assert.Equal(t, "周杰伦 嘉年华", row[0])
	assert.Equal(t, "上海", row[1])
	assert.Equal(t, "2025-05-01 内场 A区 (¥500) - [Booked]\n2025-05-02  (¥300) - [Pending]", row[2])
	assert.Equal(t, "MU5101: PEK->SHA (¥650.5) - [Booked]\nMU5102: SHA->PEK (¥700) - [Pending]", row[3])
	assert.Equal(t, "Hyatt (2025-04-30~2025-05-03) ¥1200 - [Booked]", row[4])
	assert.Equal(t, "带应援棒", row[5])
	assert.Equal(t, 800.0, row[6])
	assert.Equal(t, 1350.5, row[7])
	assert.Equal(t, 1200.0, row[8])
	assert.Equal(t, 3350.5, row[9])
	assert.Equal(t, "2024-04-24 23:06:40", row[10])
}

func TestXLSXReport_RemarksPlaceholder(t *testing.T) {
	row := portability.NewXLSXReport(time.UTC).Row(samplePlans()[1])

	assert.Equal(t, portability.RemarksPlaceholder, row[5])
	assert.Equal(t, "", row[2])
	assert.Equal(t, 0.0, row[9])
}

func TestXLSXReport_Workbook(t *testing.T) {
	data, err := portability.NewXLSXReport(time.UTC).Export(samplePlans())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{portability.ReportSheet}, f.GetSheetList())

	rows, err := f.GetRows(portability.ReportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, portability.ReportHeaders, rows[0])
	assert.Equal(t, "周杰伦 嘉年华", rows[1][0])
	assert.Equal(t, "3350.5", rows[1][9])
	assert.Equal(t, "Eason", rows[2][0])
	assert.Equal(t, portability.RemarksPlaceholder, rows[2][5])
}
