package repositories

import (
	"context"
	"strings"

	"tripmigo/internal/models/db_models"
	mem "tripmigo/pkg/memcache"
	"tripmigo/pkg/utils"
)

type UserRepository interface {
	Insert(ctx context.Context, user *db_models.User) error
	Update(ctx context.Context, user *db_models.User) error
	FindById(ctx context.Context, id string) (*db_models.User, error)
	FindByEmail(ctx context.Context, email string) (*db_models.User, error)
}

type userRepository struct {
	store mem.Store
}

func NewUserRepository(store mem.Store) UserRepository {
	return &userRepository{store: store}
}

func userKey(id string) string { return "user:" + id }

func userEmailKey(email string) string {
	return "user_email:" + strings.ToLower(strings.TrimSpace(email))
}

// Insert stores a new user and its email index. Users do not expire.
func (r *userRepository) Insert(ctx context.Context, user *db_models.User) error {
	existing, err := r.FindByEmail(ctx, user.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return utils.ErrUserAlreadyExists
	}

	user.BeforeCreate()
	if err := putJSON(ctx, r.store, userKey(user.ID), user, 0); err != nil {
		return err
	}
	return putJSON(ctx, r.store, userEmailKey(user.Email), user.ID, 0)
}

func (r *userRepository) Update(ctx context.Context, user *db_models.User) error {
	user.BeforeUpdate()
	return putJSON(ctx, r.store, userKey(user.ID), user, 0)
}

func (r *userRepository) FindById(ctx context.Context, id string) (*db_models.User, error) {
	var user db_models.User
	found, err := getJSON(ctx, r.store, userKey(id), &user)
	if err != nil || !found {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	var id string
	found, err := getJSON(ctx, r.store, userEmailKey(email), &id)
	if err != nil || !found {
		return nil, err
	}
	return r.FindById(ctx, id)
}
