package user

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v4/stdlib"

	"blog/pkg/common"
)

var ErrNotFound = errors.New("user/repo: user not found")

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{
		db: db,
	}
}

func (r *UserRepo) Add(u *User) (string, error) {
	row := r.db.QueryRow(
		"INSERT INTO users(username, first_name, last_name, email, password) VALUES($1, $2, $3, $4, $5) RETURNING id",
		u.Username, u.FirstName, u.LastName, u.Email, u.Password)
	var userID string
	if err := row.Scan(&userID); err != nil {
		return ``, fmt.Errorf("user/repo: user wasn't added: %w", err)
	}
	return userID, nil
}

func (r *UserRepo) GetByUsernameAndPass(uname string, pass string) (*User, error) {
	row := r.db.QueryRow(
		"SELECT id, username, first_name, last_name, email, password FROM users WHERE username=$1", uname)
	u := new(User)
	if err := row.Scan(&u.Id, &u.Username, &u.FirstName, &u.LastName, &u.Email, &u.Password); err != nil {
		return nil, fmt.Errorf("user/repo: row scan failed: %w", err)
	}
	// User found by username, now check if passwords are the same
	salt := string(u.Password[0:8])
	if !bytes.Equal(common.HashPass(pass, salt), u.Password) {
		return nil, errors.New("user/repo: password is invalid")
	}
	return u, nil
}

func (r *UserRepo) UserExists(uname string) bool {
	row := r.db.QueryRow("SELECT id FROM users WHERE username=$1", uname)
	u := new(User)
	if err := row.Scan(&u.Id); err != nil {
		return false
	}
	return true
}

func (r *UserRepo) GetById(ctx context.Context, uid string) (*User, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, username, first_name, last_name, email FROM users WHERE id=$1", uid)
	u := new(User)
	if err := row.Scan(&u.Id, &u.Username, &u.FirstName, &u.LastName, &u.Email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("user/repo: could not scan row: %w", err)
	}
	return u, nil
}

func (r *UserRepo) GetByUsername(ctx context.Context, uname string) (*User, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, username, first_name, last_name, email FROM users WHERE username=$1", uname)
	u := new(User)
	if err := row.Scan(&u.Id, &u.Username, &u.FirstName, &u.LastName, &u.Email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("user/repo: could not scan row: %w", err)
	}
	return u, nil
}

func (r *UserRepo) UpdateProfile(ctx context.Context, u *User) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE users SET username=$1, first_name=$2, last_name=$3, email=$4 WHERE id=$5",
		u.Username, u.FirstName, u.LastName, u.Email, u.Id)
	if err != nil {
		return fmt.Errorf("user/repo: failed updating profile: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("user/repo: failed updating profile: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Returns all users. Used only for seeding the DB.
func (r *UserRepo) GetAll() ([]*User, error) {
	rows, err := r.db.Query("SELECT id, username, first_name, last_name, email, password FROM users")
	if err != nil {
		return nil, fmt.Errorf("user/repo: failed executing query for getting all users: %w", err)
	}
	defer rows.Close()

	users := []*User{}
	for rows.Next() {
		u := new(User)
		err := rows.Scan(&u.Id, &u.Username, &u.FirstName, &u.LastName, &u.Email, &u.Password)
		if err != nil {
			return nil, fmt.Errorf("user/repo: could not scan row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		log.Printf("user/repo: rows iteration failed: %v", err)
		return nil, err
	}

	return users, nil
}
