package doccount

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kailas-cloud/browse/internal/db"
	"github.com/kailas-cloud/browse/internal/db/sqlite"
	"github.com/kailas-cloud/browse/internal/domain"
)

// --- Mocks ---

type mockKV struct {
	data map[string][]byte
	err  error
	keys []string
}

func (m *mockKV) Get(_ context.Context, key string) ([]byte, error) {
	m.keys = append(m.keys, key)
	if m.err != nil {
		return nil, m.err
	}
	v, ok := m.data[key]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return v, nil
}

type mockQuerier struct {
	n   int64
	err error
}

func (m *mockQuerier) QueryInt64(_ context.Context, _ string, _ ...any) (int64, error) {
	return m.n, m.err
}

// --- KV ---

func TestKV_DocumentCount(t *testing.T) {
	kv := &mockKV{data: map[string][]byte{DefaultKey: []byte("2456789\n")}}

	n, err := NewKV(kv, "").DocumentCount(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(2456789), n)
	assert.Equal(t, []string{DefaultKey}, kv.keys, "one GET of the default key")
}

func TestKV_CustomKey(t *testing.T) {
	kv := &mockKV{data: map[string][]byte{"custom": []byte("7")}}

	n, err := NewKV(kv, "custom").DocumentCount(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
}

func TestKV_MissingKey(t *testing.T) {
	_, err := NewKV(&mockKV{}, "").DocumentCount(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestKV_StoreError(t *testing.T) {
	boom := &db.Error{Op: db.OpGet, Err: context.DeadlineExceeded}

	_, err := NewKV(&mockKV{err: boom}, "").DocumentCount(context.Background())

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound, "store failure must not be reported as not found")
}

func TestKV_BadValues(t *testing.T) {
	for _, raw := range []string{"abc", "-5", "", "12.5"} {
		kv := &mockKV{data: map[string][]byte{DefaultKey: []byte(raw)}}
		_, err := NewKV(kv, "").DocumentCount(context.Background())
		assert.Error(t, err, "value %q", raw)
	}
}

// --- SQL ---

func TestSQL_DocumentCount_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := NewSQL(&mockQuerier{err: db.ErrNoValue}).DocumentCount(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = NewSQL(&mockQuerier{err: errors.New("disk I/O error")}).DocumentCount(ctx)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)

	_, err = NewSQL(&mockQuerier{n: -3}).DocumentCount(ctx)
	assert.Error(t, err, "negative total")
}

func TestSQL_DocumentCount_SQLite(t *testing.T) {
	conn, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "stats.db"))
	require.NoError(t, err)
	store := sqlite.NewStoreFromDB(conn)
	defer store.Close()

	repo := NewSQL(store)
	ctx := context.Background()

	_, err = repo.DocumentCount(ctx)
	require.Error(t, err, "table does not exist yet")

	_, err = conn.Exec(`CREATE TABLE arXiv_stats_monthly_submissions (
		ym TEXT PRIMARY KEY,
		num_new INTEGER NOT NULL,
		num_migrated INTEGER NOT NULL,
		num_deleted INTEGER NOT NULL,
		historical_delta INTEGER NOT NULL
	)`)
	require.NoError(t, err)

	_, err = repo.DocumentCount(ctx)
	require.ErrorIs(t, err, domain.ErrNotFound, "empty table")

	_, err = conn.Exec(`INSERT INTO arXiv_stats_monthly_submissions VALUES
		('1991-08-01', 100, 0, 2, 5),
		('1991-09-01', 300, 0, 1, 0),
		('1991-10-01', 600, 0, 0, -2)`)
	require.NoError(t, err)

	n, err := repo.DocumentCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), n)
}
