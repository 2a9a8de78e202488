package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/srgjo27/exhorizon/internal/core/domain"
)

const Collection = "plan_snapshots"

type snapshotDoc struct {
	Slot      string    `bson:"_id"`
	Payload   string    `bson:"payload"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// PlanRepository keeps one document per slot with the JSON snapshot as payload.
type PlanRepository struct {
	coll *mongo.Collection
	slot string
	now  func() time.Time
}

func NewPlanRepository(coll *mongo.Collection, slot string) *PlanRepository {
	return &PlanRepository{coll: coll, slot: slot, now: time.Now}
}

func (r *PlanRepository) Load(ctx context.Context) ([]domain.ConcertPlan, error) {
	var doc snapshotDoc
	err := r.coll.FindOne(ctx, bson.M{"_id": r.slot}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read snapshot %s: %w", r.slot, err)
	}

	return domain.DecodeSnapshot([]byte(doc.Payload))
}

func (r *PlanRepository) Save(ctx context.Context, plans []domain.ConcertPlan) error {
	data, err := domain.EncodeSnapshot(plans)
	if err != nil {
		return err
	}

	doc := snapshotDoc{Slot: r.slot, Payload: string(data), UpdatedAt: r.now().UTC()}
	opts := options.Replace().SetUpsert(true)

	if _, err := r.coll.ReplaceOne(ctx, bson.M{"_id": r.slot}, doc, opts); err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", r.slot, err)
	}

	return nil
}
