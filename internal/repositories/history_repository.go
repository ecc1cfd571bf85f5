package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/nursingskill/backend/internal/models"
	"go.uber.org/zap"
)

// HistoryKey is the storage key of the assessment history
const HistoryKey = "nursing_history"

// historyRepository implements an append-only assessment log stored as a single JSON array
type historyRepository struct {
	store  KVStore
	logger *zap.Logger
	// mu serializes read-modify-write cycles of this process
	mu sync.Mutex
}

// NewHistoryRepository creates a new history repository
func NewHistoryRepository(store KVStore, logger *zap.Logger) *historyRepository {
	return &historyRepository{
		store:  store,
		logger: logger,
	}
}

// Append adds a record to the end of the history.
//
// Unparsable stored contents are replaced by a history holding only the new record.
// A failed read is returned as an error so that stored data is never overwritten blindly.
// Two processes appending at the same time may lose one of the records.
func (r *historyRepository) Append(ctx context.Context, record models.AssessmentRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	history, err := r.read(ctx)
	if err != nil {
		return err
	}
	history = append(history, record)

	data, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}
	if err := r.store.Set(ctx, HistoryKey, data); err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}

	return nil
}

// ReadAll returns all records in insertion order.
//
// An absent or corrupt history is returned as an empty slice.
func (r *historyRepository) ReadAll(ctx context.Context) ([]models.AssessmentRecord, error) {
	return r.read(ctx)
}

// read loads and decodes the stored history
func (r *historyRepository) read(ctx context.Context) ([]models.AssessmentRecord, error) {
	data, err := r.store.Get(ctx, HistoryKey)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return []models.AssessmentRecord{}, nil
		}
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	var history []models.AssessmentRecord
	if err := json.Unmarshal(data, &history); err != nil {
		r.logger.Warn("stored history is corrupt, using empty history", zap.Error(err))
		return []models.AssessmentRecord{}, nil
	}
	if history == nil {
		history = []models.AssessmentRecord{}
	}

	return history, nil
}
