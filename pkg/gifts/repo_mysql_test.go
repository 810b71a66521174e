package gifts

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"ktap/pkg/content"
)

var heart = &content.Gift{ID: 3, Name: "Heart", Description: "a little love", URL: "icons/heart.png", Price: 200}

func TestList(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("cant create mock: %s", err)
	}
	defer db.Close()

	repo := NewGiftRepoSQL(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "name", "description", "icon", "price"}).
		AddRow(heart.ID, heart.Name, heart.Description, heart.URL, heart.Price)
	mock.ExpectQuery("SELECT (.+) FROM gifts ORDER BY").WillReturnRows(rows)

	res, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !reflect.DeepEqual(res, []*content.Gift{heart}) {
		t.Fatalf("expected %v but was %v", []*content.Gift{heart}, res)
	}

	mock.ExpectQuery("SELECT (.+) FROM gifts ORDER BY").WillReturnError(errors.New("db_error"))
	if _, err := repo.List(ctx); err == nil {
		t.Fatalf("expected error but was nil")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestReceipts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("cant create mock: %s", err)
	}
	defer db.Close()

	repo := NewGiftRepoSQL(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "name", "description", "icon", "price", "count"}).
		AddRow(1, "Star", "", "icons/star.png", 50, 2).
		AddRow(heart.ID, heart.Name, heart.Description, heart.URL, heart.Price, 3)
	mock.ExpectQuery("SELECT (.+) FROM gift_sends s JOIN gifts g").
		WithArgs("review", "r1").
		WillReturnRows(rows)

	res, total, err := repo.Receipts(ctx, content.Review, "r1")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if total != 5 || len(res) != 2 {
		t.Fatalf("expected 2 receipts totalling 5, got %d totalling %d", len(res), total)
	}
	if res[1].Name != "Heart" || res[1].Count != 3 {
		t.Errorf("unexpected receipt %+v", res[1])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestSend(t *testing.T) {
	send := &Send{GiftID: heart.ID, SenderID: 7, RecipientID: 2, Kind: content.Review, ItemID: "r1"}
	dbErr := errors.New("db_error")

	cases := []struct {
		name    string
		prepare func(mock sqlmock.Sqlmock)
		balance int64
		err     error
	}{
		{
			name: "HappyCase",
			prepare: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT `price` FROM gifts").WithArgs(heart.ID).
					WillReturnRows(sqlmock.NewRows([]string{"price"}).AddRow(200))
				mock.ExpectQuery("SELECT `balance` FROM users WHERE id = \\? FOR UPDATE").WithArgs(int64(7)).
					WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow(500))
				mock.ExpectExec("UPDATE users SET").WithArgs(int64(200), int64(7)).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("INSERT INTO gift_sends").WithArgs(heart.ID, int64(7), int64(2), "review", "r1").
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectCommit()
			},
			balance: 300,
		},
		{
			name: "UnknownGift",
			prepare: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT `price` FROM gifts").WithArgs(heart.ID).
					WillReturnRows(sqlmock.NewRows([]string{"price"}))
				mock.ExpectRollback()
			},
			err: ErrGiftNotFound,
		},
		{
			name: "InsufficientBalance",
			prepare: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT `price` FROM gifts").WithArgs(heart.ID).
					WillReturnRows(sqlmock.NewRows([]string{"price"}).AddRow(200))
				mock.ExpectQuery("SELECT `balance` FROM users").WithArgs(int64(7)).
					WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow(199))
				mock.ExpectRollback()
			},
			err: ErrInsufficientBalance,
		},
		{
			name: "InsertFails",
			prepare: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT `price` FROM gifts").WithArgs(heart.ID).
					WillReturnRows(sqlmock.NewRows([]string{"price"}).AddRow(200))
				mock.ExpectQuery("SELECT `balance` FROM users").WithArgs(int64(7)).
					WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow(500))
				mock.ExpectExec("UPDATE users SET").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("INSERT INTO gift_sends").WillReturnError(dbErr)
				mock.ExpectRollback()
			},
			err: dbErr,
		},
	}

	for i, c := range cases {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("cant create mock: %s", err)
		}

		c.prepare(mock)
		balance, err := NewGiftRepoSQL(db).Send(context.Background(), send)

		if err != c.err {
			t.Errorf("test case %d %s failed: expected error %v but was %v", i, c.name, c.err, err)
		}
		if balance != c.balance {
			t.Errorf("test case %d %s failed: expected balance %d but was %d", i, c.name, c.balance, balance)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("test case %d %s failed: there were unfulfilled expectations: %s", i, c.name, err)
		}
		db.Close()
	}
}
