package portability

import (
	"bytes"

	"github.com/xuri/excelize/v2"

	"github.com/srgjo27/exhorizon/internal/core/domain"
)

const (
	PreviewNotice = "Spreadsheet import is preview only; use a JSON backup to restore plans."
	LegacyNotice  = "Legacy .xls workbooks cannot be previewed; use a JSON backup to restore plans."
)

// XLSXPreview reads the first sheet of a workbook for display. It never
// produces plans.
type XLSXPreview struct{}

func NewXLSXPreview() *XLSXPreview {
	return &XLSXPreview{}
}

func (p *XLSXPreview) Extensions() []string { return []string{"xlsx"} }

func (p *XLSXPreview) Import(data []byte) (*domain.ImportResult, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, &domain.ImportError{Format: "xlsx", Reason: "unreadable workbook", Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &domain.ImportError{Format: "xlsx", Reason: "workbook has no sheets"}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &domain.ImportError{Format: "xlsx", Reason: "unreadable sheet", Err: err}
	}

	preview := &domain.Preview{Sheet: sheets[0]}
	if len(rows) > 0 {
		preview.Headers = rows[0]
		preview.Rows = rows[1:]
	}

	return &domain.ImportResult{
		Plans:   []domain.ConcertPlan{},
		Preview: preview,
		Notice:  PreviewNotice,
	}, nil
}

// LegacyXLSImport accepts binary .xls workbooks and contributes nothing but a
// notice. The workbook is not parsed.
type LegacyXLSImport struct{}

func NewLegacyXLSImport() *LegacyXLSImport {
	return &LegacyXLSImport{}
}

func (l *LegacyXLSImport) Extensions() []string { return []string{"xls"} }

func (l *LegacyXLSImport) Import(data []byte) (*domain.ImportResult, error) {
	return &domain.ImportResult{
		Plans:  []domain.ConcertPlan{},
		Notice: LegacyNotice,
	}, nil
}
