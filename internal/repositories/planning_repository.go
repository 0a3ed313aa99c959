package repositories

import (
	"context"
	"time"

	"tripmigo/internal/models/db_models"
	mem "tripmigo/pkg/memcache"
)

type PlanningRepository interface {
	Insert(ctx context.Context, session *db_models.PlanningSession) error
	Update(ctx context.Context, session *db_models.PlanningSession) error
	FindById(ctx context.Context, id string) (*db_models.PlanningSession, error)
}

type planningRepository struct {
	store mem.Store
	ttl   time.Duration
}

// NewPlanningRepository keeps each session for ttl after its last write.
func NewPlanningRepository(store mem.Store, ttl time.Duration) PlanningRepository {
	return &planningRepository{store: store, ttl: ttl}
}

func planningKey(id string) string { return "planning:" + id }

func (r *planningRepository) Insert(ctx context.Context, session *db_models.PlanningSession) error {
	session.BeforeCreate()
	return putJSON(ctx, r.store, planningKey(session.ID), session, r.ttl)
}

func (r *planningRepository) Update(ctx context.Context, session *db_models.PlanningSession) error {
	session.BeforeUpdate()
	return putJSON(ctx, r.store, planningKey(session.ID), session, r.ttl)
}

func (r *planningRepository) FindById(ctx context.Context, id string) (*db_models.PlanningSession, error) {
	var session db_models.PlanningSession
	found, err := getJSON(ctx, r.store, planningKey(id), &session)
	if err != nil || !found {
		return nil, err
	}
	return &session, nil
}
