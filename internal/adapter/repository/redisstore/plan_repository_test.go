package redisstore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/exhorizon/internal/adapter/repository/redisstore"
	"github.com/srgjo27/exhorizon/internal/core/domain"
)

const key = "exhorizon_plans_v5"

func TestLoad_MissingKey(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	repo := redisstore.NewPlanRepository(db, key)

	mockRedis.ExpectGet(key).RedisNil()

	plans, err := repo.Load(context.Background())

	assert.NoError(t, err)
	assert.Nil(t, plans)
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestLoad_Snapshot(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	repo := redisstore.NewPlanRepository(db, key)

	mockRedis.ExpectGet(key).SetVal(`[{"id":"p1","concertName":"A","city":"B","tickets":[{"id":"t1","price":99,"status":"Booked"}]}]`)

	plans, err := repo.Load(context.Background())

	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, 99.0, domain.CalculateTotals(plans[0]).Ticket)
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestLoad_Malformed(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	repo := redisstore.NewPlanRepository(db, key)

	mockRedis.ExpectGet(key).SetVal("not-json")

	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrPersistenceLoad)
}

func TestSave(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	repo := redisstore.NewPlanRepository(db, key)

	mockRedis.ExpectSet(key, "[]", 0).SetVal("OK")

	require.NoError(t, repo.Save(context.Background(), []domain.ConcertPlan{}))
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestSave_Error(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	repo := redisstore.NewPlanRepository(db, key)

	mockRedis.ExpectSet(key, "[]", 0).SetErr(errors.New("READONLY"))

	err := repo.Save(context.Background(), nil)
	assert.Error(t, err)
}
