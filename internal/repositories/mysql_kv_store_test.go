package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupMySQLKVStore creates a store with a mock database
func setupMySQLKVStore(t *testing.T) (*mysqlKVStore, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	store := NewMySQLKVStore(db)

	cleanup := func() {
		db.Close()
	}

	return store, mock, cleanup
}

func TestNewMySQLKVStore(t *testing.T) {
	db := &sql.DB{}

	store := NewMySQLKVStore(db)

	assert.NotNil(t, store)
	assert.Equal(t, db, store.db)
}

func TestMySQLKVStore_Get(t *testing.T) {
	tests := []struct {
		name          string
		key           string
		setupMock     func(sqlmock.Sqlmock)
		expectedValue []byte
		expectedErr   error
		expectedError bool
	}{
		{
			name: "success",
			key:  HistoryKey,
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"v"}).AddRow([]byte(`[]`))
				mock.ExpectQuery(`SELECT v FROM kv_entries WHERE k = \?`).
					WithArgs(HistoryKey).
					WillReturnRows(rows)
			},
			expectedValue: []byte(`[]`),
		},
		{
			name: "key not found",
			key:  ProfileKey,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT v FROM kv_entries WHERE k = \?`).
					WithArgs(ProfileKey).
					WillReturnRows(sqlmock.NewRows([]string{"v"}))
			},
			expectedError: true,
			expectedErr:   ErrKeyNotFound,
		},
		{
			name: "database error",
			key:  HistoryKey,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT v FROM kv_entries WHERE k = \?`).
					WithArgs(HistoryKey).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, mock, cleanup := setupMySQLKVStore(t)
			defer cleanup()

			tt.setupMock(mock)

			value, err := store.Get(context.Background(), tt.key)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, value)
				if tt.expectedErr != nil {
					assert.True(t, errors.Is(err, tt.expectedErr))
				} else {
					assert.False(t, errors.Is(err, ErrKeyNotFound))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedValue, value)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMySQLKVStore_Set(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO kv_entries \(k, v\)`).
					WithArgs(ProfileKey, sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO kv_entries`).
					WithArgs(ProfileKey, sqlmock.AnyArg()).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, mock, cleanup := setupMySQLKVStore(t)
			defer cleanup()

			tt.setupMock(mock)

			err := store.Set(context.Background(), ProfileKey, []byte(`{"name":"홍길동"}`))

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMySQLKVStore_Delete(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM kv_entries WHERE k = \?`).
					WithArgs(ProfileKey).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "absent key",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM kv_entries WHERE k = \?`).
					WithArgs(ProfileKey).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM kv_entries`).
					WithArgs(ProfileKey).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, mock, cleanup := setupMySQLKVStore(t)
			defer cleanup()

			tt.setupMock(mock)

			err := store.Delete(context.Background(), ProfileKey)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
