package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/srgjo27/exhorizon/internal/core/domain"
	"github.com/srgjo27/exhorizon/internal/core/ports"
)

// TransferService moves the whole plan list in and out of files. Exports
// always see the full store, never a filtered view.
type TransferService struct {
	plans     *PlanService
	product   string
	exporters map[string]ports.Exporter
	importers map[string]ports.Importer
	now       func() time.Time
	logger    *zap.Logger
}

type TransferOption func(*TransferService)

func WithTransferLogger(l *zap.Logger) TransferOption {
	return func(s *TransferService) { s.logger = l }
}

func WithTransferClock(fn func() time.Time) TransferOption {
	return func(s *TransferService) { s.now = fn }
}

func NewTransferService(plans *PlanService, product string, exporters []ports.Exporter, importers []ports.Importer, opts ...TransferOption) *TransferService {
	s := &TransferService{
		plans:     plans,
		product:   product,
		exporters: make(map[string]ports.Exporter),
		importers: make(map[string]ports.Importer),
		now:       time.Now,
		logger:    zap.NewNop(),
	}

	for _, e := range exporters {
		s.exporters[normalizeExt(e.Extension())] = e
	}
	for _, i := range importers {
		for _, ext := range i.Extensions() {
			s.importers[normalizeExt(ext)] = i
		}
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// FileName builds <product>_<Kind>_<YYYY-MM-DD>.<ext>.
func (s *TransferService) FileName(kind, ext string) string {
	return fmt.Sprintf("%s_%s_%s.%s", s.product, kind, s.now().Format("2006-01-02"), normalizeExt(ext))
}

// Render produces the file name and body for the given format without
// touching the filesystem.
func (s *TransferService) Render(format string) (string, []byte, error) {
	exp, ok := s.exporters[normalizeExt(format)]
	if !ok {
		return "", nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, format)
	}

	data, err := exp.Export(s.plans.Plans())
	if err != nil {
		return "", nil, err
	}

	return s.FileName(exp.Kind(), exp.Extension()), data, nil
}

// Export writes the rendered file into dir and returns its path.
func (s *TransferService) Export(ctx context.Context, format, dir string) (string, error) {
	name, data, err := s.Render(format)
	if err != nil {
		s.logger.Warn("export refused", zap.String("format", format), zap.Error(err))
		return "", err
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	s.logger.Info("plans exported", zap.String("path", path), zap.Int("bytes", len(data)))

	return path, nil
}

func (s *TransferService) ImportFile(ctx context.Context, path string) (*domain.ImportResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return s.Import(ctx, filepath.Base(path), data)
}

// Import picks the importer by the file extension of name. Parsed plans are
// prepended to the store; a failed parse leaves the store untouched.
func (s *TransferService) Import(ctx context.Context, name string, data []byte) (*domain.ImportResult, error) {
	ext := normalizeExt(filepath.Ext(name))

	imp, ok := s.importers[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, ext)
	}

	result, err := imp.Import(data)
	if err != nil {
		s.logger.Warn("import rejected", zap.String("file", name), zap.Error(err))
		return nil, err
	}

	if err := s.plans.Prepend(ctx, result.Plans); err != nil {
		return nil, err
	}

	s.logger.Info("import finished", zap.String("file", name), zap.Int("plans", len(result.Plans)))

	return result, nil
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}
