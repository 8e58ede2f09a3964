package repository_test

import (
	"context"
	"testing"
	"time"

	"mangarate/internal/webapi/models"
	"mangarate/internal/webapi/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqlRecorder captures every statement gorm builds so tests can pin the
// generated SQL without a live database.
type sqlRecorder struct {
	statements []string
}

func (r *sqlRecorder) LogMode(logger.LogLevel) logger.Interface { return r }

func (r *sqlRecorder) Info(context.Context, string, ...interface{})  {}
func (r *sqlRecorder) Warn(context.Context, string, ...interface{})  {}
func (r *sqlRecorder) Error(context.Context, string, ...interface{}) {}

func (r *sqlRecorder) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	sql, _ := fc()
	r.statements = append(r.statements, sql)
}

// dryRunDB opens a postgres-dialect session that only builds SQL. The driver
// opens its pool lazily, so no connection is ever made.
func dryRunDB(t *testing.T) (*gorm.DB, *sqlRecorder) {
	t.Helper()

	recorder := &sqlRecorder{}
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  "host=localhost user=test dbname=test",
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:                 recorder,
	})
	require.NoError(t, err)
	return db, recorder
}

func TestRatingRepository_UpsertSQL(t *testing.T) {
	db, recorder := dryRunDB(t)
	repo := repository.NewRatingRepository(db)

	err := repo.Upsert(context.Background(), &models.Rating{
		UserID: 7,
		WorkID: 3,
		Score:  4,
	})
	require.NoError(t, err)
	require.Len(t, recorder.statements, 1)

	// a rating write must be a single conflict-aware insert keyed on the
	// (user_id, work_id) unique index, never an insert-or-update pair
	sql := recorder.statements[0]
	assert.Contains(t, sql, `INSERT INTO "ratings"`)
	assert.Contains(t, sql, `ON CONFLICT ("user_id","work_id") DO UPDATE`)
	assert.Contains(t, sql, `"score"="excluded"."score"`)
	assert.Contains(t, sql, `"updated_at"="excluded"."updated_at"`)
}
