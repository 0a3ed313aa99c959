package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripmigo/internal/models/db_models"
	"tripmigo/internal/models/request_models"
	mem "tripmigo/pkg/memcache"
	"tripmigo/pkg/utils"
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(mem.NewMemoryStore())

	user := &db_models.User{Email: "Ana@Example.com", Profile: db_models.UserProfile{Name: "Ana Silva"}}
	require.NoError(t, repo.Insert(ctx, user))
	assert.NotEmpty(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	byEmail, err := repo.FindByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, user.ID, byEmail.ID)

	dup := &db_models.User{Email: "ana@example.com"}
	assert.ErrorIs(t, repo.Insert(ctx, dup), utils.ErrUserAlreadyExists)

	missing, err := repo.FindById(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	byEmail.Profile.Location = "Lisbon"
	require.NoError(t, repo.Update(ctx, byEmail))
	reloaded, err := repo.FindById(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lisbon", reloaded.Profile.Location)
}

func TestSessionRepository_ExpiresWithToken(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	ctx := context.Background()
	repo := NewSessionRepository(mem.NewRedisStore(client, "test:"))

	session := &db_models.Session{ID: "s1", UserID: "u1", AccessToken: "tok", ExpiresAt: time.Now().Add(time.Minute)}
	require.NoError(t, repo.Save(ctx, session))

	got, err := repo.FindById(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "u1", got.UserID)

	mr.FastForward(2 * time.Minute)
	got, err = repo.FindById(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.NoError(t, repo.Delete(ctx, "s1"))
}

func TestPlanningRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewPlanningRepository(mem.NewMemoryStore(), time.Hour)

	session := db_models.NewPlanningSession("")
	require.NoError(t, repo.Insert(ctx, session))
	require.Len(t, session.Steps, 6)

	session.Steps[0].Data = map[string]any{"duration": 4}
	session.Steps[0].Completed = true
	session.TripRequest = &request_models.TripRequest{Destination: "Lisbon"}
	require.NoError(t, repo.Update(ctx, session))

	got, err := repo.FindById(ctx, session.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Steps[0].Completed)
	assert.Equal(t, float64(4), got.StepData(db_models.StepBasicDetails)["duration"])
	assert.Equal(t, "Lisbon", got.TripRequest.Destination)
	assert.Nil(t, got.StepData(7))
}

func TestDestinationRepository(t *testing.T) {
	repo, err := NewDestinationRepository()
	require.NoError(t, err)

	all := repo.Search("", 0)
	assert.Len(t, all, 5)

	culture := repo.Search("culture", 10)
	require.NotEmpty(t, culture)
	for _, d := range culture {
		assert.Contains(t, d.Tags, "Culture")
	}

	assert.Len(t, repo.Search("", 2), 2)
	assert.Len(t, repo.Search("japan", 10), 1)

	top := repo.TopRated(2)
	require.Len(t, top, 2)
	assert.Equal(t, "santorini-greece", top[0].ID)
	assert.Equal(t, "paris-france", top[1].ID)

	d, err := repo.FindById("tokyo-japan")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "Tokyo, Japan", d.Name)
	assert.Len(t, d.Images.Slideshow, 3)

	d, err = repo.FindById("atlantis")
	require.NoError(t, err)
	assert.Nil(t, d)

	assert.Len(t, repo.PopularTrips(), 2)
	assert.Len(t, repo.ItineraryTemplates(), 3)
	assert.Len(t, repo.StaticSuggestions(), 3)
}

func TestDestinationRepository_BadCatalog(t *testing.T) {
	_, err := newDestinationRepository([]byte("destinations: [\n"))
	assert.Error(t, err)
}
