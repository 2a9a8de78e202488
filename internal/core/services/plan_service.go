package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/srgjo27/exhorizon/internal/core/domain"
	"github.com/srgjo27/exhorizon/internal/core/ports"
)

// PlanService owns the in-memory plan list. Every state change goes through
// Add, Update, Delete or Prepend and is written to the repository before the
// call returns.
type PlanService struct {
	repo   ports.PlanRepository
	plans  domain.Collection
	newID  domain.IDFunc
	now    func() time.Time
	logger *zap.Logger
}

type Option func(*PlanService)

func WithLogger(l *zap.Logger) Option {
	return func(s *PlanService) { s.logger = l }
}

func WithIDGenerator(fn domain.IDFunc) Option {
	return func(s *PlanService) { s.newID = fn }
}

func WithClock(fn func() time.Time) Option {
	return func(s *PlanService) { s.now = fn }
}

func NewPlanService(repo ports.PlanRepository, opts ...Option) *PlanService {
	s := &PlanService{
		repo:   repo,
		newID:  uuid.NewString,
		now:    time.Now,
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Load replaces the in-memory list with the persisted one. An empty slot
// yields an empty list. Item ids generated for a snapshot that lacked them are
// written back so they stay stable across runs.
func (s *PlanService) Load(ctx context.Context) error {
	plans, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load plans: %w", err)
	}

	filled := false
	for i := range plans {
		filled = plans[i].Normalize(s.newID) || filled
	}

	next := domain.Collection(plans)
	s.logger.Info("plans loaded", zap.Int("count", len(plans)))

	if !filled {
		s.plans = next
		return nil
	}

	s.logger.Info("persisting generated item ids")
	return s.commit(ctx, next, &domain.PersistCommand{Snapshot: next.Clone()})
}

// Plans returns a copy of the full, unfiltered list in store order.
func (s *PlanService) Plans() []domain.ConcertPlan {
	return []domain.ConcertPlan(s.plans.Clone())
}

func (s *PlanService) Query(q domain.PlanQuery) []domain.ConcertPlan {
	return q.Apply(s.plans)
}

func (s *PlanService) Get(id string) (domain.ConcertPlan, error) {
	p, ok := s.plans.Find(id)
	if !ok {
		return domain.ConcertPlan{}, fmt.Errorf("%w: %s", domain.ErrPlanNotFound, id)
	}
	return p, nil
}

func (s *PlanService) Add(ctx context.Context, draft domain.PlanDraft) (*domain.ConcertPlan, error) {
	plan, err := domain.NewPlan(draft, s.newID(), s.now(), s.newID)
	if err != nil {
		return nil, err
	}

	next, cmd := s.plans.Add(plan)
	if err := s.commit(ctx, next, cmd); err != nil {
		return nil, err
	}

	s.logger.Info("plan added", zap.String("plan_id", plan.ID), zap.String("concert", plan.ConcertName))

	return &plan, nil
}

// Update merges patch into the plan with the given id. An unknown id is a
// no-op and returns nil, nil.
func (s *PlanService) Update(ctx context.Context, id string, patch domain.PlanPatch) (*domain.ConcertPlan, error) {
	next, updated, cmd, err := s.plans.Update(id, patch, s.newID)
	if err != nil {
		return nil, err
	}

	if updated == nil {
		s.logger.Debug("update skipped, plan not found", zap.String("plan_id", id))
		return nil, nil
	}

	if err := s.commit(ctx, next, cmd); err != nil {
		return nil, err
	}

	s.logger.Info("plan updated", zap.String("plan_id", id))

	return updated, nil
}

// Delete removes the plan with the given id. Unknown ids are ignored.
func (s *PlanService) Delete(ctx context.Context, id string) error {
	next, cmd := s.plans.Delete(id)
	if cmd == nil {
		s.logger.Debug("delete skipped, plan not found", zap.String("plan_id", id))
		return nil
	}

	if err := s.commit(ctx, next, cmd); err != nil {
		return err
	}

	s.logger.Info("plan deleted", zap.String("plan_id", id))

	return nil
}

// Prepend puts imported plans ahead of the existing ones. Ids are kept as
// imported; duplicates of existing ids are not detected.
func (s *PlanService) Prepend(ctx context.Context, plans []domain.ConcertPlan) error {
	next, cmd := s.plans.Prepend(plans)
	if cmd == nil {
		return nil
	}

	if err := s.commit(ctx, next, cmd); err != nil {
		return err
	}

	s.logger.Info("plans imported", zap.Int("count", len(plans)))

	return nil
}

func (s *PlanService) commit(ctx context.Context, next domain.Collection, cmd *domain.PersistCommand) error {
	s.plans = next
	if cmd == nil {
		return nil
	}

	if err := s.repo.Save(ctx, cmd.Snapshot); err != nil {
		s.logger.Error("failed to persist plans", zap.Error(err))
		return fmt.Errorf("failed to persist plans: %w", err)
	}

	return nil
}
