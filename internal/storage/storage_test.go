package storage

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"localbistro/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionStore_RoundTrip(t *testing.T) {
	store := NewMemorySessionStore(time.Minute)
	ctx := context.Background()

	in := domain.Cart{ID: "c1", Items: map[string]int{"3": 2}}
	require.NoError(t, store.Put(ctx, "cart:c1", in))

	var out domain.Cart
	require.NoError(t, store.Get(ctx, "cart:c1", &out))
	assert.Equal(t, in.ID, out.ID)
	assert.Equal(t, in.Items, out.Items)

	require.NoError(t, store.Delete(ctx, "cart:c1"))
	assert.ErrorIs(t, store.Get(ctx, "cart:c1", &out), ErrKeyNotFound)
}

func TestMemorySessionStore_Expiry(t *testing.T) {
	store := NewMemorySessionStore(-time.Second)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "k", "v"))

	var out string
	assert.ErrorIs(t, store.Get(ctx, "k", &out), ErrKeyNotFound)
}

func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestRedisSessionStore_RoundTrip(t *testing.T) {
	store := NewRedisSessionStore(setupTestRedis(t), time.Minute)
	ctx := context.Background()

	in := domain.Lightbox{ID: "lb1", Category: "Dishes"}
	require.NoError(t, store.Put(ctx, "lightbox:lb1", in))

	var out domain.Lightbox
	require.NoError(t, store.Get(ctx, "lightbox:lb1", &out))
	assert.Equal(t, in, out)

	require.NoError(t, store.Delete(ctx, "lightbox:lb1"))
	assert.Error(t, store.Get(ctx, "lightbox:lb1", &out))
}

func TestRedisSessionStore_MissingKey(t *testing.T) {
	store := NewRedisSessionStore(setupTestRedis(t), time.Minute)

	var out domain.Cart
	assert.Error(t, store.Get(context.Background(), "cart:none", &out))
}

func setupTestDB(t *testing.T) (*PostgresReviewRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresReviewRepository(db), mock
}

func TestPostgresReviewRepository_List(t *testing.T) {
	repo, mock := setupTestDB(t)

	rows := sqlmock.NewRows([]string{"id", "name", "rating", "date_label", "text", "image_url", "helpful"}).
		AddRow("2", "Newer", 5, "Just now", "text b", "", 0).
		AddRow("1", "Older", 4, "2 days ago", "text a", "", 3)
	mock.ExpectQuery("SELECT id, name, rating, date_label, text, image_url, helpful").
		WillReturnRows(rows)

	reviews, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "Newer", reviews[0].Name)
	assert.Equal(t, 3, reviews[1].Helpful)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresReviewRepository_Insert(t *testing.T) {
	repo, mock := setupTestDB(t)

	mock.ExpectExec("INSERT INTO reviews").
		WithArgs("r1", "Al", 3, "Just now", "Great spot", "", 0).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Insert(context.Background(), &domain.Review{
		ID: "r1", Name: "Al", Rating: 3, Date: "Just now", Text: "Great spot",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresReviewRepository_IncrementHelpful(t *testing.T) {
	repo, mock := setupTestDB(t)

	rows := sqlmock.NewRows([]string{"id", "name", "rating", "date_label", "text", "image_url", "helpful"}).
		AddRow("r1", "Al", 3, "Just now", "Great spot", "", 4)
	mock.ExpectQuery("UPDATE reviews SET helpful").
		WithArgs("r1").
		WillReturnRows(rows)

	review, err := repo.IncrementHelpful(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, 4, review.Helpful)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresReviewRepository_IncrementHelpful_Missing(t *testing.T) {
	repo, mock := setupTestDB(t)

	mock.ExpectQuery("UPDATE reviews SET helpful").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.IncrementHelpful(context.Background(), "missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestMemoryReviewRepository_SeedIsCopied(t *testing.T) {
	repo := NewMemoryReviewRepository(domain.SeedReviews)
	ctx := context.Background()

	_, err := repo.IncrementHelpful(ctx, "1")
	require.NoError(t, err)

	// The package seed must stay untouched.
	assert.Equal(t, 12, domain.SeedReviews[0].Helpful)

	reviews, _ := repo.List(ctx)
	assert.Equal(t, 13, reviews[0].Helpful)
}
