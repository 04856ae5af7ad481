package repository

import (
	"database/sql"
	"errors"

	"smartbrief/internal/model"
)

var ErrEmailTaken = errors.New("email already registered")

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *model.User) error {
	err := r.db.QueryRow(`
		INSERT INTO app_user(name, email, password_hash)
		VALUES($1, $2, $3)
		ON CONFLICT (email) DO NOTHING
		RETURNING id, created_at
	`, user.Name, user.Email, user.PasswordHash).Scan(&user.ID, &user.CreatedAt)

	if err == sql.ErrNoRows {
		return ErrEmailTaken
	}

	return err
}

func (r *UserRepository) GetByEmail(email string) (*model.User, error) {
	var u model.User
	err := r.db.QueryRow(`
		SELECT id, name, email, password_hash, created_at
		FROM app_user
		WHERE email = $1
	`, email).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *UserRepository) GetByID(id int64) (*model.User, error) {
	var u model.User
	err := r.db.QueryRow(`
		SELECT id, name, email, password_hash, created_at
		FROM app_user
		WHERE id = $1
	`, id).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &u, nil
}
