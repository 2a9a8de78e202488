package portability

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/srgjo27/exhorizon/internal/core/domain"
)

const (
	ReportSheet        = "演唱会行程计划"
	RemarksPlaceholder = "无"
)

// ReportHeaders is the fixed column order of the spreadsheet report.
var ReportHeaders = []string{
	"项目名称",
	"城市",
	"门票详情",
	"航班安排",
	"住宿详情",
	"备注信息",
	"门票总额",
	"交通总额",
	"住宿总额",
	"行程总预算",
	"创建时间",
}

// XLSXReport writes one row per plan. It is export-only.
type XLSXReport struct {
	loc *time.Location
}

func NewXLSXReport(loc *time.Location) *XLSXReport {
	if loc == nil {
		loc = time.Local
	}
	return &XLSXReport{loc: loc}
}

func (r *XLSXReport) Kind() string      { return "Report" }
func (r *XLSXReport) Extension() string { return "xlsx" }

func (r *XLSXReport) Row(p domain.ConcertPlan) []any {
	totals := domain.CalculateTotals(p)

	return []any{
		p.ConcertName,
		p.City,
		joinLines(p.Tickets, ticketLine),
		joinLines(p.Segments(), segmentLine),
		joinLines(p.Hotels, hotelLine),
		orDefault(p.Remarks, RemarksPlaceholder),
		totals.Ticket,
		totals.Transport,
		totals.Hotel,
		totals.Grand,
		p.CreatedAt.Time().In(r.loc).Format("2006-01-02 15:04:05"),
	}
}

func (r *XLSXReport) Export(plans []domain.ConcertPlan) ([]byte, error) {
	if len(plans) == 0 {
		return nil, domain.ErrExportEmptyCollection
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ReportSheet); err != nil {
		return nil, err
	}

	for i, h := range ReportHeaders {
		if err := setCell(f, i+1, 1, h); err != nil {
			return nil, err
		}

		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		width := float64(max(utf8.RuneCountInString(h)*2, 15))
		if err := f.SetColWidth(ReportSheet, col, col, width); err != nil {
			return nil, err
		}
	}

	for i, p := range plans {
		for j, v := range r.Row(p) {
			if err := setCell(f, j+1, i+2, v); err != nil {
				return nil, err
			}
		}
	}

	wrap, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return nil, err
	}

	last, err := excelize.CoordinatesToCellName(len(ReportHeaders), len(plans)+1)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(ReportSheet, "A2", last, wrap); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	return buf.Bytes(), nil
}

func setCell(f *excelize.File, col, row int, v any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(ReportSheet, cell, v)
}
