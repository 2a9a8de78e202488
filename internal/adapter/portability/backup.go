package portability

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/srgjo27/exhorizon/internal/core/domain"
)

const formatJSON = "json"

// JSONBackup is the lossless interchange format: a pretty-printed array of
// plans on export, a single plan or an array of plans on import.
type JSONBackup struct {
	newID domain.IDFunc
	now   func() time.Time
}

func NewJSONBackup() *JSONBackup {
	return &JSONBackup{
		newID: uuid.NewString,
		now:   time.Now,
	}
}

func (b *JSONBackup) Kind() string         { return "Backup" }
func (b *JSONBackup) Extension() string    { return formatJSON }
func (b *JSONBackup) Extensions() []string { return []string{formatJSON} }

func (b *JSONBackup) Export(plans []domain.ConcertPlan) ([]byte, error) {
	data, err := domain.MarshalIndent(plans)
	if err != nil {
		return nil, fmt.Errorf("failed to encode backup: %w", err)
	}
	return data, nil
}

// Import decodes and validates every plan. Any failure rejects the whole
// document. Plans keep their ids and createdAt; missing ones are generated.
func (b *JSONBackup) Import(data []byte) (*domain.ImportResult, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, &domain.ImportError{Format: formatJSON, Reason: "empty document"}
	}

	var plans []domain.ConcertPlan
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &plans); err != nil {
			return nil, &domain.ImportError{Format: formatJSON, Reason: "malformed plan array", Err: err}
		}
	case '{':
		var plan domain.ConcertPlan
		if err := json.Unmarshal(trimmed, &plan); err != nil {
			return nil, &domain.ImportError{Format: formatJSON, Reason: "malformed plan object", Err: err}
		}
		plans = []domain.ConcertPlan{plan}
	default:
		return nil, &domain.ImportError{Format: formatJSON, Reason: "expected a plan object or an array of plans"}
	}

	for i := range plans {
		if plans[i].ID == "" {
			plans[i].ID = b.newID()
		}
		if plans[i].CreatedAt == 0 {
			plans[i].CreatedAt = domain.MillisFrom(b.now())
		}
		plans[i].Normalize(b.newID)

		if err := plans[i].Validate(); err != nil {
			return nil, &domain.ImportError{Format: formatJSON, Reason: fmt.Sprintf("plan %d is invalid", i+1), Err: err}
		}
	}

	if plans == nil {
		plans = []domain.ConcertPlan{}
	}

	return &domain.ImportResult{Plans: plans}, nil
}
