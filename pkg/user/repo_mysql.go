package user

import (
	"context"
	"database/sql"
)

const userColumns = "`id`, `email`, `name`, `avatar`, `password`, `balance`, `is_admin`"

type UserRepoSQL struct {
	db *sql.DB
}

func NewUserRepoSQL(db *sql.DB) *UserRepoSQL {
	return &UserRepoSQL{db: db}
}

func (repo *UserRepoSQL) GetByID(ctx context.Context, id int64) (*User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE id = ?"
	return scanUser(repo.db.QueryRowContext(ctx, query, id))
}

func (repo *UserRepoSQL) GetByEmail(ctx context.Context, email string) (*User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE email = ?"
	return scanUser(repo.db.QueryRowContext(ctx, query, email))
}

func scanUser(r *sql.Row) (*User, error) {
	u := User{}
	err := r.Scan(&u.ID, &u.Email, &u.Name, &u.Avatar, &u.Password, &u.Balance, &u.IsAdmin)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (repo *UserRepoSQL) Add(ctx context.Context, user *User) (int64, error) {
	query := "INSERT INTO users (`email`, `name`, `avatar`, `password`, `balance`) VALUES (?, ?, ?, ?, ?)"
	r, err := repo.db.ExecContext(ctx, query, user.Email, user.Name, user.Avatar, user.Password, user.Balance)
	if err != nil {
		return 0, err
	}

	lastID, err := r.LastInsertId()
	if err != nil {
		return 0, err
	}

	return lastID, nil
}
