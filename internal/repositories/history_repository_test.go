package repositories

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/nursingskill/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// failingKVStore is a KVStore whose operations fail on demand
type failingKVStore struct {
	KVStore
	getErr error
	setErr error
}

func (s *failingKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.KVStore.Get(ctx, key)
}

func (s *failingKVStore) Set(ctx context.Context, key string, value []byte) error {
	if s.setErr != nil {
		return s.setErr
	}
	return s.KVStore.Set(ctx, key, value)
}

func newRecord(id string, score int) models.AssessmentRecord {
	return models.AssessmentRecord{
		ID:         id,
		Date:       time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC),
		Score:      score,
		Passed:     score >= models.PassingScore,
		Type:       models.AssessmentTypeSelfCheck,
		SkillTitle: "활력징후 측정 (Vital Signs)",
	}
}

func TestHistoryRepository_AppendReadAll(t *testing.T) {
	repo := NewHistoryRepository(NewMemoryKVStore(), zap.NewNop())
	ctx := context.Background()

	history, err := repo.ReadAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, history)
	assert.Empty(t, history)

	for i := 1; i <= 3; i++ {
		record := newRecord(fmt.Sprintf("r%d", i), 60+i*10)
		require.NoError(t, repo.Append(ctx, record))

		history, err := repo.ReadAll(ctx)
		require.NoError(t, err)
		require.Len(t, history, i)
		assert.Equal(t, record, history[len(history)-1])
	}

	history, err = repo.ReadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"r1", "r2", "r3"}, []string{history[0].ID, history[1].ID, history[2].ID})
}

func TestHistoryRepository_CorruptHistory(t *testing.T) {
	store := NewMemoryKVStore()
	require.NoError(t, store.Set(context.Background(), HistoryKey, []byte(`{not json`)))
	repo := NewHistoryRepository(store, zap.NewNop())
	ctx := context.Background()

	history, err := repo.ReadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, history)

	record := newRecord("r1", 90)
	require.NoError(t, repo.Append(ctx, record))

	history, err = repo.ReadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.AssessmentRecord{record}, history)
}

func TestHistoryRepository_NullHistory(t *testing.T) {
	store := NewMemoryKVStore()
	require.NoError(t, store.Set(context.Background(), HistoryKey, []byte(`null`)))
	repo := NewHistoryRepository(store, zap.NewNop())

	history, err := repo.ReadAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, history)
	assert.Empty(t, history)
}

func TestHistoryRepository_StoreErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("read error is not treated as empty", func(t *testing.T) {
		store := &failingKVStore{KVStore: NewMemoryKVStore(), getErr: errors.New("connection refused")}
		repo := NewHistoryRepository(store, zap.NewNop())

		_, err := repo.ReadAll(ctx)
		assert.Error(t, err)

		err = repo.Append(ctx, newRecord("r1", 90))
		assert.Error(t, err)
	})

	t.Run("write error", func(t *testing.T) {
		store := &failingKVStore{KVStore: NewMemoryKVStore(), setErr: errors.New("read only")}
		repo := NewHistoryRepository(store, zap.NewNop())

		err := repo.Append(ctx, newRecord("r1", 90))
		assert.Error(t, err)

		history, err := repo.ReadAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, history)
	})
}

func TestHistoryRepository_ConcurrentAppend(t *testing.T) {
	repo := NewHistoryRepository(NewMemoryKVStore(), zap.NewNop())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, repo.Append(ctx, newRecord(fmt.Sprintf("r%d", i), i)))
		}(i)
	}
	wg.Wait()

	history, err := repo.ReadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, history, 20)
}
