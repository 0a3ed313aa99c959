package repositories

import (
	"context"
	"time"

	"tripmigo/internal/models/db_models"
	mem "tripmigo/pkg/memcache"
)

type SessionRepository interface {
	Save(ctx context.Context, session *db_models.Session) error
	FindById(ctx context.Context, id string) (*db_models.Session, error)
	Delete(ctx context.Context, id string) error
}

type sessionRepository struct {
	store mem.Store
}

func NewSessionRepository(store mem.Store) SessionRepository {
	return &sessionRepository{store: store}
}

func sessionKey(id string) string { return "session:" + id }

// Save keeps the session until its token expires.
func (r *sessionRepository) Save(ctx context.Context, session *db_models.Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	return putJSON(ctx, r.store, sessionKey(session.ID), session, ttl)
}

func (r *sessionRepository) FindById(ctx context.Context, id string) (*db_models.Session, error) {
	var session db_models.Session
	found, err := getJSON(ctx, r.store, sessionKey(id), &session)
	if err != nil || !found {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	return deleteKey(ctx, r.store, sessionKey(id))
}
