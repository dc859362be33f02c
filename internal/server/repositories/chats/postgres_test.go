package chats

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/chineye-ai/chatserver/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+chat_history\s*\(id,\s*user_id,\s*message,\s*response\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4\)\s*RETURNING\s+timestamp\s*$`

	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(q).
		WithArgs(sqlmock.AnyArg(), "u-1", "hello", "hi there").
		WillReturnRows(sqlmock.NewRows([]string{"timestamp"}).AddRow(ts))

	msg := &models.ChatMessage{UserID: "u-1", Message: "hello", Response: "hi there"}
	got, err := repo.Create(context.Background(), msg)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID == "" || !got.Timestamp.Equal(ts) {
		t.Fatalf("unexpected message: %+v", got)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^INSERT\s+INTO\s+chat_history`).
		WithArgs(sqlmock.AnyArg(), "u-1", "hello", "hi there").
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.ChatMessage{UserID: "u-1", Message: "hello", Response: "hi there"})
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestListByUser_OrderedAscending(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*user_id,\s*message,\s*response,\s*timestamp\s+FROM\s+chat_history\s+WHERE\s+user_id\s*=\s*\$1\s+ORDER\s+BY\s+timestamp\s+ASC\s+LIMIT\s+\$2\s*$`

	t1 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Minute)
	rows := sqlmock.NewRows([]string{"id", "user_id", "message", "response", "timestamp"}).
		AddRow("m-1", "u-1", "hello", "hi", t1).
		AddRow("m-2", "u-1", "how are you", "fine", t2)
	mock.ExpectQuery(q).
		WithArgs("u-1", 50).
		WillReturnRows(rows)

	history, err := repo.ListByUser(context.Background(), "u-1", 50)
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(history))
	}
	if history[0].Message != "hello" || history[1].Message != "how are you" {
		t.Fatalf("unexpected order: %+v", history)
	}
}

func TestListByUser_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+id,\s*user_id`).
		WithArgs("u-2", 50).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "message", "response", "timestamp"}))

	history, err := repo.ListByUser(context.Background(), "u-2", 50)
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("expected empty history, got %d entries", len(history))
	}
}
