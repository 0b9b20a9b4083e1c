package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/dia-companion/internal/config"
	"github.com/MKhiriev/dia-companion/internal/logger"
	"github.com/MKhiriev/dia-companion/models"
)

type failingMedium struct {
	err error
}

func (m *failingMedium) Get(context.Context, string) ([]byte, bool, error) { return nil, false, m.err }
func (m *failingMedium) Set(context.Context, string, []byte) error         { return m.err }
func (m *failingMedium) Delete(context.Context, string) error              { return m.err }
func (m *failingMedium) Close() error                                      { return nil }

// media returns every key-value backend, each freshly created.
func media(t *testing.T) map[string]KVMedium {
	t.Helper()
	ctx := context.Background()

	sqliteMedium, err := NewSQLiteMedium(ctx, filepath.Join(t.TempDir(), "diary.db"), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqliteMedium.Close() })

	mr := miniredis.RunT(t)
	redisMedium, err := NewRedisMedium(ctx, mr.Addr(), "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = redisMedium.Close() })

	return map[string]KVMedium{
		config.DiaryBackendMemory: NewMemoryMedium(),
		config.DiaryBackendSQLite: sqliteMedium,
		config.DiaryBackendRedis:  redisMedium,
	}
}

func TestDiaryStore_SaveLoadNewestFirst(t *testing.T) {
	for name, medium := range media(t) {
		t.Run(name, func(t *testing.T) {
			diary := NewDiaryStore(medium, "diaCompanionRecords", logger.Nop())
			ctx := context.Background()

			records := []models.HealthRecord{
				{ID: "1", Datetime: "2024-01-01T08:00", Glucose: models.Float64(5.5)},
				{ID: "2", Datetime: "2024-01-03T08:00", Systolic: models.Int(120), Diastolic: models.Int(80)},
				{ID: "3", Datetime: "2024-01-02T08:00", Glucose: models.Float64(6.1), Comment: `after "lunch"`},
			}
			require.NoError(t, diary.Save(ctx, "a@b.c", records))

			got := diary.Load(ctx, "a@b.c")
			require.Len(t, got, 3)
			assert.Equal(t, []string{"2", "3", "1"}, []string{got[0].ID, got[1].ID, got[2].ID})
			assert.Equal(t, 120, *got[0].Systolic)
			assert.Equal(t, `after "lunch"`, got[1].Comment)

			// overwrite replaces the whole set
			require.NoError(t, diary.Save(ctx, "a@b.c", records[:1]))
			assert.Len(t, diary.Load(ctx, "a@b.c"), 1)
		})
	}
}

func TestDiaryStore_PartitionIsolation(t *testing.T) {
	for name, medium := range media(t) {
		t.Run(name, func(t *testing.T) {
			diary := NewDiaryStore(medium, "diaCompanionRecords", logger.Nop())
			ctx := context.Background()

			require.NoError(t, diary.Save(ctx, "a@b.c", []models.HealthRecord{{ID: "a", Datetime: "2024-01-01T08:00", Glucose: models.Float64(5.5)}}))
			require.NoError(t, diary.Save(ctx, "b@b.c", []models.HealthRecord{{ID: "b", Datetime: "2024-01-01T08:00", Glucose: models.Float64(7.2)}}))

			a := diary.Load(ctx, "a@b.c")
			b := diary.Load(ctx, "b@b.c")
			require.Len(t, a, 1)
			require.Len(t, b, 1)
			assert.Equal(t, 5.5, *a[0].Glucose)
			assert.Equal(t, 7.2, *b[0].Glucose)
		})
	}
}

func TestDiaryStore_MissingAndDeleted(t *testing.T) {
	for name, medium := range media(t) {
		t.Run(name, func(t *testing.T) {
			diary := NewDiaryStore(medium, "ns", logger.Nop())
			ctx := context.Background()

			got := diary.Load(ctx, "nobody@b.c")
			assert.NotNil(t, got)
			assert.Empty(t, got)

			require.NoError(t, diary.Save(ctx, "a@b.c", []models.HealthRecord{{ID: "1", Datetime: "2024-01-01"}}))
			require.NoError(t, diary.Delete(ctx, "a@b.c"))
			assert.Empty(t, diary.Load(ctx, "a@b.c"))

			// deleting twice is fine
			assert.NoError(t, diary.Delete(ctx, "a@b.c"))
		})
	}
}

func TestDiaryStore_CorruptDataYieldsEmpty(t *testing.T) {
	medium := NewMemoryMedium()
	diary := NewDiaryStore(medium, "ns", logger.Nop())
	ctx := context.Background()

	require.NoError(t, medium.Set(ctx, "ns_a@b.c", []byte(`{not json`)))
	assert.Empty(t, diary.Load(ctx, "a@b.c"))

	require.NoError(t, medium.Set(ctx, "ns_a@b.c", []byte(`null`)))
	got := diary.Load(ctx, "a@b.c")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestDiaryStore_MediumErrors(t *testing.T) {
	diary := NewDiaryStore(&failingMedium{err: errors.New("down")}, "ns", logger.Nop())
	ctx := context.Background()

	assert.Empty(t, diary.Load(ctx, "a@b.c"))
	assert.Error(t, diary.Save(ctx, "a@b.c", nil))
	assert.Error(t, diary.Delete(ctx, "a@b.c"))
}

func TestDiaryStore_KeyLayout(t *testing.T) {
	mr := miniredis.RunT(t)
	medium, err := NewRedisMedium(context.Background(), mr.Addr(), "", 0)
	require.NoError(t, err)
	defer medium.Close()

	diary := NewDiaryStore(medium, "diaCompanionRecords", logger.Nop())
	require.NoError(t, diary.Save(context.Background(), "a@b.c", nil))

	assert.True(t, mr.Exists("diaCompanionRecords_a@b.c"))
	value, err := mr.Get("diaCompanionRecords_a@b.c")
	require.NoError(t, err)
	assert.Equal(t, "[]", value)
}

func TestNewRedisMedium_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewRedisMedium(context.Background(), addr, "", 0)
	assert.Error(t, err)
}

func TestNewDiaryMedium(t *testing.T) {
	ctx := context.Background()

	m, err := NewDiaryMedium(ctx, config.Diary{Backend: config.DiaryBackendMemory}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, m)

	m, err = NewDiaryMedium(ctx, config.Diary{Backend: config.DiaryBackendSQLite, DSN: filepath.Join(t.TempDir(), "kv", "diary.db")}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, m.Close())

	_, err = NewDiaryMedium(ctx, config.Diary{Backend: "etcd"}, logger.Nop())
	assert.True(t, errors.Is(err, ErrUnsupportedDiaryBackend))
}
