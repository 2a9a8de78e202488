package handler

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/srgjo27/exhorizon/internal/core/domain"
	"github.com/srgjo27/exhorizon/internal/core/services"
)

const Usage = `usage: exhorizon <command> [flags]

commands:
  list   [-q term] [-sort concertName|city|createdAt|totalCost] [-order asc|desc] [-json]
  show   <id>
  add    -f plan.json       (use - for stdin)
  update <id> -f patch.json
  delete [-y] <id>
  export json|xlsx|pdf [-dir path]
  import <file.json|file.xlsx|file.xls>
`

var ErrUsage = errors.New("invalid usage")

type PlanHandler struct {
	plans     *services.PlanService
	transfer  *services.TransferService
	locale    domain.Locale
	exportDir string
	in        io.Reader
	out       io.Writer
}

func NewPlanHandler(plans *services.PlanService, transfer *services.TransferService, locale domain.Locale, exportDir string, in io.Reader, out io.Writer) *PlanHandler {
	return &PlanHandler{
		plans:     plans,
		transfer:  transfer,
		locale:    locale,
		exportDir: exportDir,
		in:        in,
		out:       out,
	}
}

func (h *PlanHandler) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "list":
		return h.List(rest)
	case "show":
		return h.Show(rest)
	case "add":
		return h.Add(ctx, rest)
	case "update":
		return h.Update(ctx, rest)
	case "delete":
		return h.Delete(ctx, rest)
	case "export":
		return h.Export(ctx, rest)
	case "import":
		return h.Import(ctx, rest)
	}

	return fmt.Errorf("%w: unknown command %q", ErrUsage, cmd)
}

func (h *PlanHandler) List(args []string) error {
	fs := newFlagSet("list")
	search := fs.String("q", "", "search concert name or city")
	field := fs.String("sort", string(domain.SortByCreatedAt), "sort field")
	order := fs.String("order", string(domain.SortDesc), "sort order")
	asJSON := fs.Bool("json", false, "print JSON")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	q := domain.PlanQuery{Search: *search}
	var ok bool
	if q.Field, ok = domain.ParseSortField(*field); !ok {
		return fmt.Errorf("%w: unknown sort field %q", ErrUsage, *field)
	}
	if q.Order, ok = domain.ParseSortOrder(*order); !ok {
		return fmt.Errorf("%w: unknown sort order %q", ErrUsage, *order)
	}

	plans := h.plans.Query(q)

	if *asJSON {
		return h.writeJSON(plans)
	}

	tw := tabwriter.NewWriter(h.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCONCERT\tCITY\tSESSIONS\tBUDGET\tSTATUS")
	for _, p := range plans {
		s := domain.Summarize(p)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t¥%s\t%s\n",
			p.ID, p.ConcertName, p.City, s.TicketCount, domain.Price(s.Totals.Grand), statusDots(s.Completion))
	}
	return tw.Flush()
}

func (h *PlanHandler) Show(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: show needs exactly one id", ErrUsage)
	}

	p, err := h.plans.Get(args[0])
	if err != nil {
		return err
	}

	s := domain.Summarize(p)
	w := h.out

	fmt.Fprintf(w, "%s  @ %s\n", p.ConcertName, p.City)
	fmt.Fprintf(w, "id %s  created %s\n\n", p.ID, p.CreatedAt.Time().Format("2006-01-02 15:04"))

	fmt.Fprintf(w, "Sessions %s  ¥%s\n", mark(s.Completion.Tickets), domain.Price(s.Totals.Ticket))
	for i, t := range p.Tickets {
		fmt.Fprintf(w, "  #%d %s %s  %s  ¥%s  [%s]\n", i+1, t.Date, domain.WeekdayLabel(t.Date, h.locale), t.Seat, t.Price, t.Status)
	}

	fmt.Fprintf(w, "Transport %s  ¥%s\n", mark(s.Completion.Transport), domain.Price(s.Totals.Transport))
	for i, f := range p.DepartureFlights {
		fmt.Fprintf(w, "  out #%d %s %s->%s  %s ~ %s  ¥%s  [%s]\n", i+1, f.FlightNo, f.DepAirport, f.ArrAirport, f.DepTime, f.ArrTime, f.Price, f.Status)
	}
	for i, f := range p.ReturnFlights {
		fmt.Fprintf(w, "  back #%d %s %s->%s  %s ~ %s  ¥%s  [%s]\n", i+1, f.FlightNo, f.DepAirport, f.ArrAirport, f.DepTime, f.ArrTime, f.Price, f.Status)
	}

	fmt.Fprintf(w, "Stays %s  ¥%s\n", mark(s.Completion.Hotels), domain.Price(s.Totals.Hotel))
	for i, ht := range p.Hotels {
		fmt.Fprintf(w, "  #%d %s  %s ~ %s  ¥%s  [%s]\n", i+1, ht.Name, ht.CheckIn, ht.CheckOut, ht.Price, ht.Status)
	}

	if p.Remarks != "" {
		fmt.Fprintf(w, "Remarks\n  %s\n", p.Remarks)
	}
	fmt.Fprintf(w, "\nTotal ¥%s\n", domain.Price(s.Totals.Grand))

	return nil
}

func (h *PlanHandler) Add(ctx context.Context, args []string) error {
	fs := newFlagSet("add")
	file := fs.String("f", "", "plan JSON file, - for stdin")
	if err := fs.Parse(args); err != nil || *file == "" {
		return fmt.Errorf("%w: add needs -f", ErrUsage)
	}

	var draft domain.PlanDraft
	if err := h.decodeFile(*file, &draft); err != nil {
		return err
	}

	p, err := h.plans.Add(ctx, draft)
	if err != nil {
		return err
	}

	fmt.Fprintf(h.out, "added %s\n", p.ID)
	return nil
}

func (h *PlanHandler) Update(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: update needs an id", ErrUsage)
	}
	id := args[0]

	fs := newFlagSet("update")
	file := fs.String("f", "", "patch JSON file, - for stdin")
	if err := fs.Parse(args[1:]); err != nil || *file == "" {
		return fmt.Errorf("%w: update needs -f", ErrUsage)
	}

	var patch domain.PlanPatch
	if err := h.decodeFile(*file, &patch); err != nil {
		return err
	}

	p, err := h.plans.Update(ctx, id, patch)
	if err != nil {
		return err
	}

	if p == nil {
		fmt.Fprintf(h.out, "no plan %s, nothing updated\n", id)
		return nil
	}

	fmt.Fprintf(h.out, "updated %s\n", p.ID)
	return nil
}

func (h *PlanHandler) Delete(ctx context.Context, args []string) error {
	fs := newFlagSet("delete")
	yes := fs.Bool("y", false, "skip confirmation")
	if err := fs.Parse(args); err != nil || fs.NArg() != 1 {
		return fmt.Errorf("%w: delete needs exactly one id", ErrUsage)
	}
	id := fs.Arg(0)

	if !*yes && !h.confirm(fmt.Sprintf("Delete plan %s? [y/N] ", id)) {
		fmt.Fprintln(h.out, "cancelled")
		return nil
	}

	if err := h.plans.Delete(ctx, id); err != nil {
		return err
	}

	fmt.Fprintf(h.out, "deleted %s\n", id)
	return nil
}

func (h *PlanHandler) Export(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: export needs a format", ErrUsage)
	}
	format := args[0]

	fs := newFlagSet("export")
	dir := fs.String("dir", h.exportDir, "output directory")
	if err := fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	path, err := h.transfer.Export(ctx, format, *dir)
	if err != nil {
		return err
	}

	fmt.Fprintf(h.out, "exported %s\n", path)
	return nil
}

func (h *PlanHandler) Import(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: import needs exactly one file", ErrUsage)
	}

	res, err := h.transfer.ImportFile(ctx, args[0])
	if err != nil {
		return err
	}

	if res.Notice != "" {
		fmt.Fprintln(h.out, res.Notice)
	}
	if res.Preview != nil {
		fmt.Fprintf(h.out, "sheet %q: %d columns, %d rows\n", res.Preview.Sheet, len(res.Preview.Headers), len(res.Preview.Rows))
		if len(res.Preview.Headers) > 0 {
			fmt.Fprintln(h.out, strings.Join(res.Preview.Headers, " | "))
		}
	}

	fmt.Fprintf(h.out, "imported %d plans\n", len(res.Plans))
	return nil
}

// Notice turns an error into the one-line message shown to the user.
func Notice(err error) string {
	switch {
	case errors.Is(err, ErrUsage):
		return err.Error() + "\n\n" + Usage
	case errors.Is(err, domain.ErrImportParse), errors.Is(err, domain.ErrUnsupportedFormat):
		return "Import failed, please check the file format."
	case errors.Is(err, domain.ErrExportEmptyCollection):
		return "No data to export."
	case errors.Is(err, domain.ErrPlanNotFound):
		return err.Error()
	case errors.Is(err, domain.ErrInvalidPlan):
		return "Plan rejected: " + err.Error()
	case errors.Is(err, domain.ErrPersistenceLoad):
		return "Saved plans could not be read: " + err.Error()
	}
	return "internal error: " + err.Error()
}

func (h *PlanHandler) decodeFile(path string, v any) error {
	var r io.Reader = h.in
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	if err := json.NewDecoder(r).Decode(v); err != nil {
		return fmt.Errorf("%w: invalid json body: %v", ErrUsage, err)
	}
	return nil
}

func (h *PlanHandler) writeJSON(v any) error {
	enc := json.NewEncoder(h.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (h *PlanHandler) confirm(prompt string) bool {
	fmt.Fprint(h.out, prompt)

	line, err := bufio.NewReader(h.in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func statusDots(c domain.Completion) string {
	return dot(c.Tickets) + dot(c.Transport) + dot(c.Hotels)
}

func dot(done bool) string {
	if done {
		return "●"
	}
	return "○"
}

func mark(done bool) string {
	if done {
		return "[booked]"
	}
	return "[pending]"
}
