package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/urbanshade/notify-center/internal/storage"
)

func setupMockDB(t *testing.T) (*Store, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}

	wrappedDB := &dbpg.DB{Master: db}
	return New(wrappedDB), mock
}

func TestStore_Get(t *testing.T) {
	store, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT value
		FROM kv_state
		WHERE key = $1;
    `)).
		WithArgs("dnd_settings").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte(`{"enabled":true}`)))

	value, err := store.Get(context.Background(), retry.Strategy{}, "dnd_settings")
	assert.NoError(t, err)
	assert.Equal(t, `{"enabled":true}`, string(value))
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT value
		FROM kv_state
		WHERE key = $1;
    `)).
		WithArgs("dnd_settings").
		WillReturnError(sql.ErrNoRows)

	_, err = store.Get(context.Background(), retry.Strategy{}, "dnd_settings")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Set(t *testing.T) {
	store, mock := setupMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta(`
		INSERT INTO kv_state (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = now();
    `)).
		WithArgs("system_notifications", []byte("[]")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.Set(context.Background(), retry.Strategy{}, "system_notifications", []byte("[]"))
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Delete(t *testing.T) {
	store, mock := setupMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta(`
		DELETE FROM kv_state
		WHERE key = $1;
    `)).
		WithArgs("settings_dnd").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.Delete(context.Background(), "settings_dnd")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
