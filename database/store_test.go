package database

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "survey.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewStore(db)
}

func setupStoreMock(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewStore(db), mock
}

func strPtr(s string) *string { return &s }

func TestInsertSurvey_RoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	uid, err := store.InsertSurvey(ctx, 30, "F", "EU")
	require.NoError(t, err)
	assert.Len(t, uid, 36)

	got, err := store.GetSurvey(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, uid, got.UID)
	assert.Equal(t, 30, got.Age)
	assert.Equal(t, "F", got.Gender)
	assert.Equal(t, "EU", got.Region)
}

func TestInsertSurvey_UniqueUIDs(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		uid, err := store.InsertSurvey(ctx, i, "M", "NA")
		require.NoError(t, err)
		assert.False(t, seen[uid], "uid %s issued twice", uid)
		seen[uid] = true
	}
}

func TestInsertSurvey_DuplicateUIDFails(t *testing.T) {
	store := openTestStore(t)
	store.newUID = func() (string, error) { return "fixed", nil }
	ctx := context.Background()

	_, err := store.InsertSurvey(ctx, 1, "", "")
	require.NoError(t, err)
	_, err = store.InsertSurvey(ctx, 2, "", "")
	assert.ErrorContains(t, err, "insert survey")
}

func TestInsertSurvey_UIDGenerationFails(t *testing.T) {
	store, _ := setupStoreMock(t)
	store.newUID = func() (string, error) { return "", errors.New("no entropy") }

	_, err := store.InsertSurvey(context.Background(), 1, "", "")
	assert.ErrorContains(t, err, "generate uid")
}

func TestGetSurvey_NotFound(t *testing.T) {
	store := openTestStore(t)
	_, err := store.GetSurvey(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListDistinctSentences(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for _, s := range []*string{
		strPtr("hello world"),
		strPtr("hello world"),
		strPtr("Hello world"),
		nil,
		strPtr("another"),
		strPtr("hello world"),
	} {
		require.NoError(t, store.InsertUpload(ctx, s))
	}

	got, err := store.ListDistinctSentences(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Hello world", "another", "hello world"}, got)
}

func TestListDistinctSentences_Empty(t *testing.T) {
	store := openTestStore(t)
	got, err := store.ListDistinctSentences(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestInsertUpload_Error(t *testing.T) {
	store, mock := setupStoreMock(t)
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO uploads (sentence)`)).
		WithArgs("hi").
		WillReturnError(errors.New("disk I/O error"))

	err := store.InsertUpload(context.Background(), strPtr("hi"))
	assert.ErrorContains(t, err, "disk I/O error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListDistinctSentences_QueryError(t *testing.T) {
	store, mock := setupStoreMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT DISTINCT sentence`)).
		WillReturnError(errors.New("database is locked"))

	_, err := store.ListDistinctSentences(context.Background())
	assert.ErrorContains(t, err, "database is locked")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListDistinctSentences_RowError(t *testing.T) {
	store, mock := setupStoreMock(t)
	rows := sqlmock.NewRows([]string{"sentence"}).
		AddRow("a").
		AddRow("b").
		RowError(1, errors.New("corrupt page"))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT DISTINCT sentence`)).WillReturnRows(rows)

	_, err := store.ListDistinctSentences(context.Background())
	assert.ErrorContains(t, err, "corrupt page")
}

func TestInitSchema_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "survey.db")
	db, err := Open(path)
	require.NoError(t, err)
	defer db.Close()

	store := NewStore(db)
	ctx := context.Background()
	uid, err := store.InsertSurvey(ctx, 41, "M", "AS")
	require.NoError(t, err)
	require.NoError(t, store.InsertUpload(ctx, strPtr("kept")))

	require.NoError(t, InitSchema(db))
	require.NoError(t, InitSchema(db))

	got, err := store.GetSurvey(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, 41, got.Age)

	sentences, err := store.ListDistinctSentences(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"kept"}, sentences)
}

func TestOpen_ReopenKeepsRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "survey.db")
	db, err := Open(path)
	require.NoError(t, err)
	uid, err := NewStore(db).InsertSurvey(context.Background(), 25, "F", "SA")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = Open(path)
	require.NoError(t, err)
	defer db.Close()
	got, err := NewStore(db).GetSurvey(context.Background(), uid)
	require.NoError(t, err)
	assert.Equal(t, "SA", got.Region)
}

func TestOpen_PreexistingTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "survey.db")
	db, err := Open(path)
	require.NoError(t, err)
	// simulate a store created before migrations were tracked
	_, err = db.Exec(`DROP TABLE schema_migrations`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = Open(path)
	require.NoError(t, err)
	db.Close()
}
