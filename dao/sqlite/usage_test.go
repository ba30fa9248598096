package sqlite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OnurLexa/DreamGen/models"
)

func setupDB(t *testing.T) {
	t.Helper()
	require.NoError(t, Init(":memory:"))
	t.Cleanup(Close)
}

func record(id int64, userID string) *models.UsageRecord {
	return &models.UsageRecord{
		ID:        id,
		UserID:    userID,
		Username:  "onur#0001",
		Prompt:    "a red fox",
		Model:     "stable-diffusion-xl-1024-v1-0",
		Width:     512,
		Height:    512,
		Steps:     30,
		Samples:   1,
		CfgScale:  7.0,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

func TestInit_SchemaIsIdempotent(t *testing.T) {
	require.NoError(t, Init(":memory:"))
	defer Close()

	// creating the schema again must not fail
	_, err := Db.Exec(schema)
	assert.NoError(t, err)
}

func TestUsageDao_InsertAndList(t *testing.T) {
	setupDB(t)
	dao := UsageDao{}

	require.NoError(t, dao.InsertUsage(record(1, "42")))
	require.NoError(t, dao.InsertUsage(record(2, "42")))
	require.NoError(t, dao.InsertUsage(record(3, "other")))

	rows, err := ListUsageByUser("42", 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// newest first
	assert.Equal(t, int64(2), rows[0].ID)
	assert.Equal(t, int64(1), rows[1].ID)
	assert.Equal(t, "a red fox", rows[0].Prompt)
}

func TestUsageDao_NilSeedRoundTrips(t *testing.T) {
	setupDB(t)
	dao := UsageDao{}

	withSeed := record(1, "42")
	seed := int64(123)
	withSeed.Seed = &seed
	require.NoError(t, dao.InsertUsage(withSeed))
	require.NoError(t, dao.InsertUsage(record(2, "42")))

	rows, err := ListUsageByUser("42", 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Nil(t, rows[0].Seed)
	require.NotNil(t, rows[1].Seed)
	assert.Equal(t, int64(123), *rows[1].Seed)
}

func TestListUsageByUser_LimitFallback(t *testing.T) {
	setupDB(t)
	dao := UsageDao{}
	for i := int64(1); i <= 25; i++ {
		require.NoError(t, dao.InsertUsage(record(i, "42")))
	}

	rows, err := ListUsageByUser("42", -5)
	require.NoError(t, err)
	assert.Len(t, rows, 20, "invalid limit falls back to 20")

	rows, err = ListUsageByUser("42", 5)
	require.NoError(t, err)
	assert.Len(t, rows, 5)
}
