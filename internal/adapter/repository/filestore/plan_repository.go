package filestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/srgjo27/exhorizon/internal/core/domain"
)

// PlanRepository keeps the snapshot in <dir>/<slot>.json.
type PlanRepository struct {
	path string
}

func NewPlanRepository(dir, slot string) *PlanRepository {
	return &PlanRepository{path: filepath.Join(dir, slot+".json")}
}

func (r *PlanRepository) Path() string {
	return r.path
}

func (r *PlanRepository) Load(ctx context.Context) ([]domain.ConcertPlan, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", r.path, err)
	}

	return domain.DecodeSnapshot(data)
}

// Save replaces the snapshot through a temp file and a rename.
func (r *PlanRepository) Save(ctx context.Context, plans []domain.ConcertPlan) error {
	data, err := domain.EncodeSnapshot(plans)
	if err != nil {
		return err
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close snapshot: %w", err)
	}

	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}

	return nil
}
