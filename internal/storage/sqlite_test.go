package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sam-roberts/oura-data-visualiser/internal"
)

func testLogger() internal.Logger {
	return internal.NewZapLogger(zap.NewNop().Sugar())
}

func newTestSQLite(t *testing.T) *SQLiteStore {
	store, err := NewSQLiteStore(context.Background(),
		filepath.Join(t.TempDir(), "sleep.db"), "sleep_data", testLogger())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLite_TableLifecycle(t *testing.T) {
	store := newTestSQLite(t)
	ctx := context.Background()

	exists, err := store.TableExists(ctx)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, store.CreateTable(ctx))
	exists, err = store.TableExists(ctx)
	require.NoError(t, err)
	assert.True(t, exists)

	// CreateTable is create-if-missing, calling it again is fine.
	require.NoError(t, store.CreateTable(ctx))

	require.NoError(t, store.DropTable(ctx))
	exists, err = store.TableExists(ctx)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSQLite_InsertDaySkipsExistingDate(t *testing.T) {
	store := newTestSQLite(t)
	ctx := context.Background()
	require.NoError(t, store.CreateTable(ctx))

	inserted, err := store.InsertDay(ctx, &internal.SleepRow{Date: "2023-06-01", Score: 82, TimeInBed: 30000})
	require.NoError(t, err)
	assert.True(t, inserted)

	// Same date again with different values: silent no-op.
	inserted, err = store.InsertDay(ctx, &internal.SleepRow{Date: "2023-06-01", Score: 11, TimeInBed: 1})
	require.NoError(t, err)
	assert.False(t, inserted)

	rows, err := store.ListRange(ctx, "2023-06-01", "2023-06-01")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 82, rows[0].Score)
	assert.Equal(t, 30000, rows[0].TimeInBed)
}

func TestSQLite_ListRangeOrdersByDate(t *testing.T) {
	store := newTestSQLite(t)
	ctx := context.Background()
	require.NoError(t, store.CreateTable(ctx))

	for _, date := range []string{"2023-06-03", "2023-06-01", "2023-06-02", "2023-05-31"} {
		_, err := store.InsertDay(ctx, &internal.SleepRow{Date: date})
		require.NoError(t, err)
	}

	rows, err := store.ListRange(ctx, "2023-06-01", "2023-06-03")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "2023-06-01", rows[0].Date)
	assert.Equal(t, "2023-06-02", rows[1].Date)
	assert.Equal(t, "2023-06-03", rows[2].Date)
}
