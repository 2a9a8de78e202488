package portability_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/exhorizon/internal/adapter/portability"
	"github.com/srgjo27/exhorizon/internal/core/domain"
)

func TestXLSXPreview_NeverProducesPlans(t *testing.T) {
	data, err := portability.NewXLSXReport(time.UTC).Export(samplePlans())
	require.NoError(t, err)

	res, err := portability.NewXLSXPreview().Import(data)

	require.NoError(t, err)
	assert.Empty(t, res.Plans)
	assert.Equal(t, portability.PreviewNotice, res.Notice)
	require.NotNil(t, res.Preview)
	assert.Equal(t, portability.ReportSheet, res.Preview.Sheet)
	assert.Equal(t, portability.ReportHeaders, res.Preview.Headers)
	assert.Len(t, res.Preview.Rows, 2)
}

func TestXLSXPreview_Garbage(t *testing.T) {
	res, err := portability.NewXLSXPreview().Import([]byte("this is not a workbook"))

	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrImportParse)
}

func TestLegacyXLSImport_NoticeOnly(t *testing.T) {
	// OLE2 compound document header used by .xls workbooks.
	legacy := append([]byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}, make([]byte, 504)...)

	imp := portability.NewLegacyXLSImport()
	res, err := imp.Import(legacy)

	require.NoError(t, err)
	assert.Empty(t, res.Plans)
	assert.Nil(t, res.Preview)
	assert.Equal(t, portability.LegacyNotice, res.Notice)
	assert.Equal(t, []string{"xls"}, imp.Extensions())
	assert.Equal(t, []string{"xlsx"}, portability.NewXLSXPreview().Extensions())
}
