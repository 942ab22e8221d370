package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMemory(t *testing.T) *DB {
	t.Helper()
	d, err := OpenDB(memoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })

	return d
}

func sampleRun() Run {
	return Run{
		CreatedAt:  time.Unix(1700000000, 0),
		Source:     "grid:2x2",
		RandSeed:   7,
		Sizes:      []int{3, 1},
		SeatTarget: 100,
		Attempts:   2,
		Population: map[int]float64{0: 300, 1: 100},
		Seats:      map[int]int{0: 3, 1: 1},
		Assignment: map[string]int{"0,0": 0, "0,1": 0, "1,0": 0, "1,1": 1},
	}
}

func TestSaveAndGetRun(t *testing.T) {
	d := openMemory(t)
	ctx := context.Background()

	id, err := d.SaveRun(ctx, sampleRun())
	require.NoError(t, err)
	require.Positive(t, id)

	got, err := d.GetRun(ctx, id)
	require.NoError(t, err)
	want := sampleRun()
	assert.Equal(t, id, got.ID)
	assert.True(t, want.CreatedAt.Equal(got.CreatedAt))
	assert.Equal(t, want.Source, got.Source)
	assert.Equal(t, want.RandSeed, got.RandSeed)
	assert.Equal(t, []int{1, 3}, got.Sizes, "sizes are stored sorted")
	assert.Equal(t, want.SeatTarget, got.SeatTarget)
	assert.Equal(t, want.Attempts, got.Attempts)
	assert.Equal(t, want.Population, got.Population)
	assert.Equal(t, want.Seats, got.Seats)
	assert.Equal(t, want.Assignment, got.Assignment)
}

func TestGetRun_NotFound(t *testing.T) {
	d := openMemory(t)

	_, err := d.GetRun(context.Background(), 42)
	require.ErrorIs(t, err, ErrRunNotFound)
}

func TestSaveRun_Empty(t *testing.T) {
	d := openMemory(t)

	_, err := d.SaveRun(context.Background(), Run{Source: "x"})
	require.ErrorIs(t, err, ErrEmptyRun)
}

func TestListRuns(t *testing.T) {
	d := openMemory(t)
	ctx := context.Background()

	for seed := int64(1); seed <= 3; seed++ {
		r := sampleRun()
		r.RandSeed = seed
		_, err := d.SaveRun(ctx, r)
		require.NoError(t, err)
	}

	all, err := d.ListRuns(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, int64(3), all[0].RandSeed, "newest first")
	assert.Equal(t, 2, all[0].Districts)

	two, err := d.ListRuns(ctx, 2)
	require.NoError(t, err)
	require.Len(t, two, 2)
}

func TestOpenDB_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	d, err := OpenDB(path)
	require.NoError(t, err)
	id, err := d.SaveRun(context.Background(), sampleRun())
	require.NoError(t, err)
	require.NoError(t, d.Close())

	reopened, err := OpenDB(path)
	require.NoError(t, err)
	defer reopened.Close()
	got, err := reopened.GetRun(context.Background(), id)
	require.NoError(t, err)
	assert.Len(t, got.Assignment, 4)
}

// TestDeleteRun_Cascades: every pooled connection enforces foreign keys,
// so child rows never outlive their run.
func TestDeleteRun_Cascades(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	d, err := OpenDB(path)
	require.NoError(t, err)
	defer d.Close()
	ctx := context.Background()

	// Hold two connections at once so the pool must open a second one.
	c1, err := d.conn.Conn(ctx)
	require.NoError(t, err)
	defer c1.Close()
	c2, err := d.conn.Conn(ctx)
	require.NoError(t, err)
	defer c2.Close()
	for _, c := range []*sql.Conn{c1, c2} {
		var on int
		require.NoError(t, c.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&on))
		assert.Equal(t, 1, on)
	}
	require.NoError(t, c1.Close())
	require.NoError(t, c2.Close())

	id, err := d.SaveRun(ctx, sampleRun())
	require.NoError(t, err)
	keep, err := d.SaveRun(ctx, sampleRun())
	require.NoError(t, err)

	require.NoError(t, d.DeleteRun(ctx, id))
	_, err = d.GetRun(ctx, id)
	require.ErrorIs(t, err, ErrRunNotFound)
	require.ErrorIs(t, d.DeleteRun(ctx, id), ErrRunNotFound)

	for _, table := range []string{"run_seats", "run_assignments"} {
		var n int
		require.NoError(t, d.conn.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM "+table+" WHERE run_id = ?", id).Scan(&n))
		assert.Zero(t, n, table)
	}
	got, err := d.GetRun(ctx, keep)
	require.NoError(t, err)
	assert.Len(t, got.Assignment, 4)
}

func TestOpenDB_Memory(t *testing.T) {
	d := openMemory(t)
	var on int
	require.NoError(t, d.conn.QueryRow("PRAGMA foreign_keys").Scan(&on))
	assert.Equal(t, 1, on)
}

func TestSizesFormat(t *testing.T) {
	assert.Equal(t, "1,2,2", formatSizes([]int{2, 1, 2}))
	got, err := parseSizes("1,2,2")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 2}, got)

	_, err = parseSizes("1,x")
	require.Error(t, err)
}
