package portability

import (
	"bytes"
	_ "embed"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/srgjo27/exhorizon/internal/core/domain"
)

// DejaVu covers Latin, Greek, Cyrillic and symbols such as ¥. Text is written as
// UTF-8 either way; CJK glyphs need a font passed with WithFont.
//
//go:embed fonts/DejaVuSansCondensed.ttf
var defaultFont []byte

const fontFamily = "itinerary"

type ItineraryOption func(*PDFItinerary)

// WithFont replaces the embedded font with a UTF-8 TrueType font, for example
// one with CJK coverage. Empty input keeps the default.
func WithFont(ttf []byte) ItineraryOption {
	return func(it *PDFItinerary) {
		if len(ttf) > 0 {
			it.font = ttf
		}
	}
}

func WithCompression(on bool) ItineraryOption {
	return func(it *PDFItinerary) { it.compress = on }
}

// PDFItinerary prints one page per plan, the printable form of the detail view.
type PDFItinerary struct {
	loc      *time.Location
	locale   domain.Locale
	font     []byte
	compress bool
}

func NewPDFItinerary(loc *time.Location, locale domain.Locale, opts ...ItineraryOption) *PDFItinerary {
	if loc == nil {
		loc = time.Local
	}

	it := &PDFItinerary{loc: loc, locale: locale, font: defaultFont, compress: true}
	for _, opt := range opts {
		opt(it)
	}

	return it
}

func (it *PDFItinerary) Kind() string      { return "Itinerary" }
func (it *PDFItinerary) Extension() string { return "pdf" }

func (it *PDFItinerary) Export(plans []domain.ConcertPlan) ([]byte, error) {
	if len(plans) == 0 {
		return nil, domain.ErrExportEmptyCollection
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(it.compress)
	pdf.SetTitle("Concert Itinerary", true)
	pdf.AddUTF8FontFromBytes(fontFamily, "", it.font)
	pdf.AddUTF8FontFromBytes(fontFamily, "B", it.font)
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("failed to load itinerary font: %w", err)
	}

	for _, p := range plans {
		it.page(pdf, p)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render itinerary: %w", err)
	}

	return buf.Bytes(), nil
}

func (it *PDFItinerary) page(pdf *gofpdf.Fpdf, p domain.ConcertPlan) {
	summary := domain.Summarize(p)

	pdf.AddPage()
	pdf.SetFont(fontFamily, "B", 18)
	pdf.Cell(0, 10, p.ConcertName)
	pdf.Ln(10)

	pdf.SetFont(fontFamily, "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("City: %s    Created: %s", p.City, p.CreatedAt.Time().In(it.loc).Format("2006-01-02 15:04")))
	pdf.Ln(10)

	section(pdf, fmt.Sprintf("Sessions (%s)", doneMark(summary.Completion.Tickets)))
	for i, t := range p.Tickets {
		day := domain.WeekdayLabel(t.Date, it.locale)
		line(pdf, fmt.Sprintf("#%d  %s %s  %s  ¥%s  [%s]", i+1, orDefault(t.Date, "-"), day, orDefault(t.Seat, "-"), t.Price, t.Status))
	}

	section(pdf, fmt.Sprintf("Transport (%s)", doneMark(summary.Completion.Transport)))
	legs := func(label string, segs []domain.FlightSegment) {
		for i, f := range segs {
			line(pdf, fmt.Sprintf("%s #%d  %s  %s -> %s  %s ~ %s  ¥%s  [%s]",
				label, i+1, orDefault(f.FlightNo, "-"), orDefault(f.DepAirport, "-"), orDefault(f.ArrAirport, "-"),
				orDefault(f.DepTime, "-"), orDefault(f.ArrTime, "-"), f.Price, f.Status))
		}
	}
	legs("Out", p.DepartureFlights)
	legs("Back", p.ReturnFlights)

	section(pdf, fmt.Sprintf("Stays (%s)", doneMark(summary.Completion.Hotels)))
	for i, h := range p.Hotels {
		line(pdf, fmt.Sprintf("#%d  %s  %s ~ %s  ¥%s  [%s]", i+1, orDefault(h.Name, "-"), orDefault(h.CheckIn, "-"), orDefault(h.CheckOut, "-"), h.Price, h.Status))
	}

	section(pdf, "Remarks")
	pdf.SetFont(fontFamily, "", 10)
	pdf.MultiCell(0, 6, orDefault(p.Remarks, "-"), "", "", false)

	section(pdf, "Budget")
	line(pdf, fmt.Sprintf("Tickets ¥%s   Transport ¥%s   Hotels ¥%s",
		domain.Price(summary.Totals.Ticket), domain.Price(summary.Totals.Transport), domain.Price(summary.Totals.Hotel)))
	pdf.SetFont(fontFamily, "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total ¥%s", domain.Price(summary.Totals.Grand)))
	pdf.Ln(8)
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.Ln(2)
	pdf.SetFont(fontFamily, "B", 12)
	pdf.Cell(0, 7, title)
	pdf.Ln(7)
}

func line(pdf *gofpdf.Fpdf, s string) {
	pdf.SetFont(fontFamily, "", 10)
	pdf.Cell(0, 6, s)
	pdf.Ln(6)
}

func doneMark(done bool) string {
	if done {
		return "all booked"
	}
	return "pending"
}
