package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sam-roberts/oura-data-visualiser/internal"
)

func TestFileStore_UpsertContractMatchesSQLBackends(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "rows.json"), testLogger())
	require.NoError(t, err)
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.CreateTable(ctx))

	inserted, err := store.InsertDay(ctx, &internal.SleepRow{Date: "2023-06-01", Score: 82})
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = store.InsertDay(ctx, &internal.SleepRow{Date: "2023-06-01", Score: 11})
	require.NoError(t, err)
	assert.False(t, inserted)

	rows, err := store.ListRange(ctx, "2023-06-01", "2023-06-01")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 82, rows[0].Score)
}

func TestFileStore_RowsSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.json")
	ctx := context.Background()

	store, err := NewFileStore(path, testLogger())
	require.NoError(t, err)
	require.NoError(t, store.CreateTable(ctx))
	_, err = store.InsertDay(ctx, &internal.SleepRow{Date: "2023-06-02", Score: 77})
	require.NoError(t, err)
	_, err = store.InsertDay(ctx, &internal.SleepRow{Date: "2023-06-01", Score: 70})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := NewFileStore(path, testLogger())
	require.NoError(t, err)
	defer reopened.Close()

	exists, err := reopened.TableExists(ctx)
	require.NoError(t, err)
	assert.True(t, exists)

	rows, err := reopened.ListRange(ctx, "2023-06-01", "2023-06-02")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2023-06-01", rows[0].Date)
	assert.Equal(t, 77, rows[1].Score)
}

func TestFileStore_InsertBeforeCreateFails(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "rows.json"), testLogger())
	require.NoError(t, err)
	defer store.Close()

	_, err = store.InsertDay(context.Background(), &internal.SleepRow{Date: "2023-06-01"})
	assert.Error(t, err)
}
