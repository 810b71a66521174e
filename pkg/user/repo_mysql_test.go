package user

import (
	"context"
	"database/sql"
	"errors"
	"reflect"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

type getByFieldTestCase struct {
	name  string
	getBy func(*UserRepoSQL, interface{}) (*User, error)
	param interface{}
}

var id = int64(25)
var u = &User{
	ID:       id,
	Email:    "vector@ktap.dev",
	Name:     "vectoreal",
	Avatar:   "https://cdn.ktap.dev/a/25.png",
	Password: []byte("secretPASSW0rd"),
	Balance:  300,
}

var columns = []string{"id", "email", "name", "avatar", "password", "balance", "is_admin"}

var cases = []getByFieldTestCase{
	{
		name: "by id",
		getBy: func(r *UserRepoSQL, id interface{}) (*User, error) {
			return r.GetByID(context.Background(), id.(int64))
		},
		param: u.ID,
	},
	{
		name: "by email",
		getBy: func(r *UserRepoSQL, email interface{}) (*User, error) {
			return r.GetByEmail(context.Background(), email.(string))
		},
		param: u.Email,
	},
}

func TestGetBy(t *testing.T) {
	for _, tc := range cases {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
		}

		defer db.Close()

		repo := NewUserRepoSQL(db)

		rows := sqlmock.NewRows(columns).
			AddRow(id, u.Email, u.Name, u.Avatar, u.Password, u.Balance, false)

		mock.
			ExpectQuery("SELECT (.+) FROM users WHERE").
			WithArgs(tc.param).
			WillReturnRows(rows)

		res, err := tc.getBy(repo, tc.param)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err.Error())
		}

		if !reflect.DeepEqual(u, res) {
			t.Fatalf("%s: expected %v, but was %v", tc.name, u, res)
		}

		// error
		mock.
			ExpectQuery("SELECT (.+) FROM users WHERE").
			WithArgs(tc.param).
			WillReturnError(errors.New("db_error"))

		res, err = tc.getBy(repo, tc.param)

		if res != nil {
			t.Fatalf("%s: unexpected result: %v", tc.name, res)
		}

		if err == nil {
			t.Fatalf("%s: expected error but was nil", tc.name)
		}

		// no rows
		mock.
			ExpectQuery("SELECT (.+) FROM users WHERE").
			WithArgs(tc.param).
			WillReturnError(sql.ErrNoRows)

		res, err = tc.getBy(repo, tc.param)

		if res != nil || err != nil {
			t.Fatalf("%s: wrong result, expected both nil but was %v, %v", tc.name, res, err)
		}

		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("%s: there were unfulfilled expectations: %s", tc.name, err)
		}
	}
}

func TestAdd(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	ctx := context.Background()
	repo := NewUserRepoSQL(db)
	mock.
		ExpectExec("INSERT INTO users").
		WithArgs(u.Email, u.Name, u.Avatar, u.Password, u.Balance).
		WillReturnResult(sqlmock.NewResult(u.ID, int64(1)))

	id, err := repo.Add(ctx, u)
	if err != nil {
		t.Fatalf("unexpected error while adding user: %v", err.Error())
	}
	if id != u.ID {
		t.Fatalf("expected %v but was %v", u.ID, id)
	}

	// error
	mock.
		ExpectExec("INSERT INTO users").
		WithArgs(u.Email, u.Name, u.Avatar, u.Password, u.Balance).
		WillReturnError(errors.New("db_error"))

	_, err = repo.Add(ctx, u)
	if err == nil || err.Error() != "db_error" {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.
		ExpectExec("INSERT INTO users").
		WithArgs(u.Email, u.Name, u.Avatar, u.Password, u.Balance).
		WillReturnResult(sqlmock.NewErrorResult(errors.New("db_error")))

	_, err = repo.Add(ctx, u)
	if err == nil || err.Error() != "db_error" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("secretPASSW0rd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		hash  []byte
		plain string
		ok    bool
	}{
		{hash, "secretPASSW0rd", true},
		{hash, "secretPASSW0rD", false},
		{hash[:4], "secretPASSW0rd", false},
	}

	for i, c := range cases {
		if got := CheckPassword(c.hash, c.plain); got != c.ok {
			t.Fatalf("test case %d failed: expected %v but was %v", i, c.ok, got)
		}
	}
}

func TestContent(t *testing.T) {
	c := u.Content()
	if c.ID != u.ID || c.Balance != u.Balance || c.Email != u.Email || c.IsAdmin {
		t.Errorf("unexpected content user %+v", c)
	}
	a := u.Author()
	if a.ID != u.ID || a.Name != u.Name || a.Avatar != u.Avatar {
		t.Errorf("unexpected author %+v", a)
	}
}
