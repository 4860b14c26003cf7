package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type widget struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;not null"`
}

func openMemory(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(context.Background(), Config{Driver: "sqlite", DSN: ":memory:"}, nil)
	require.NoError(t, err, "failed to open sqlite")
	require.NoError(t, Migrate(db, &widget{}))
	return db
}

// TestSQLiteDSN は外部キーの指定がちょうど1回だけ付くことを検証します。
func TestSQLiteDSN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"users.db", "users.db?_foreign_keys=on"},
		{":memory:", ":memory:?_foreign_keys=on"},
		{"file:app.db?cache=shared", "file:app.db?cache=shared&_foreign_keys=on"},
		{"app.db?_foreign_keys=off", "app.db?_foreign_keys=off"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SQLiteDSN(tt.in))
	}
}

// TestConnectWithRetry_SuccessOnFirstTry はリトライせずに DB を返すことを検証します。
func TestConnectWithRetry_SuccessOnFirstTry(t *testing.T) {
	t.Parallel()

	mockDB := &gorm.DB{}
	attempts := 0
	opener := func(dsn string) (*gorm.DB, error) {
		attempts++
		return mockDB, nil
	}

	db, err := ConnectWithRetry(context.Background(), "test-dsn", 5*time.Second, opener, nil)

	require.NoError(t, err)
	assert.Same(t, mockDB, db)
	assert.Equal(t, 1, attempts)
}

// TestConnectWithRetry_RetriesOnFailure は一時的なエラーの後に最終的に成功することを検証します。
func TestConnectWithRetry_RetriesOnFailure(t *testing.T) {
	old := retryInterval
	retryInterval = 10 * time.Millisecond
	t.Cleanup(func() { retryInterval = old })

	mockDB := &gorm.DB{}
	attempts := 0
	opener := func(dsn string) (*gorm.DB, error) {
		attempts++
		if attempts < 3 {
			return nil, errors.New("connection refused")
		}
		return mockDB, nil
	}

	db, err := ConnectWithRetry(context.Background(), "test-dsn", 5*time.Second, opener, nil)

	require.NoError(t, err)
	assert.Same(t, mockDB, db)
	assert.Equal(t, 3, attempts)
}

// TestConnectWithRetry_TimeoutAfterRetries は期限を過ぎたら諦めることを検証します。
func TestConnectWithRetry_TimeoutAfterRetries(t *testing.T) {
	old := retryInterval
	retryInterval = 10 * time.Millisecond
	t.Cleanup(func() { retryInterval = old })

	attempts := 0
	opener := func(dsn string) (*gorm.DB, error) {
		attempts++
		return nil, errors.New("connection refused")
	}

	_, err := ConnectWithRetry(context.Background(), "test-dsn", 30*time.Millisecond, opener, nil)

	assert.ErrorContains(t, err, "connection refused")
	assert.GreaterOrEqual(t, attempts, 1)
}

// TestConnectWithRetry_StopsWhenContextDone は ctx がキャンセルされたらすぐに戻ることを検証します。
func TestConnectWithRetry_StopsWhenContextDone(t *testing.T) {
	old := retryInterval
	retryInterval = time.Hour
	t.Cleanup(func() { retryInterval = old })

	ctx, cancel := context.WithCancel(context.Background())
	attempts := 0
	opener := func(dsn string) (*gorm.DB, error) {
		attempts++
		cancel()
		return nil, errors.New("connection refused")
	}

	done := make(chan error, 1)
	go func() {
		_, err := ConnectWithRetry(ctx, "test-dsn", time.Hour, opener, nil)
		done <- err
	}()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, attempts)
	case <-time.After(5 * time.Second):
		t.Fatal("ConnectWithRetry ignored a canceled context")
	}
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), Config{Driver: "oracle", DSN: "x"}, nil)
	assert.Error(t, err)
}

func TestOpen_TranslatesDuplicateKey(t *testing.T) {
	t.Parallel()

	db := openMemory(t)
	require.NoError(t, db.Create(&widget{Name: "a"}).Error)

	err := db.Create(&widget{Name: "a"}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestTransactor_CommitAndRollback(t *testing.T) {
	t.Parallel()

	db := openMemory(t)
	tr := NewTransactor(db)
	ctx := context.Background()

	err := tr.WithinTransaction(ctx, func(ctx context.Context) error {
		return Conn(ctx, db).Create(&widget{Name: "committed"}).Error
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = tr.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := Conn(ctx, db).Create(&widget{Name: "rolled-back"}).Error; err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var names []string
	require.NoError(t, db.Model(&widget{}).Order("id").Pluck("name", &names).Error)
	assert.Equal(t, []string{"committed"}, names)
}

func TestTransactor_NestedCallsShareTransaction(t *testing.T) {
	t.Parallel()

	db := openMemory(t)
	tr := NewTransactor(db)

	err := tr.WithinTransaction(context.Background(), func(ctx context.Context) error {
		if err := tr.WithinTransaction(ctx, func(ctx context.Context) error {
			return Conn(ctx, db).Create(&widget{Name: "inner"}).Error
		}); err != nil {
			return err
		}
		return errors.New("outer fails")
	})
	assert.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&widget{}).Count(&count).Error)
	assert.Zero(t, count, "inner write must roll back with the outer transaction")
}
