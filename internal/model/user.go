package model

import (
	"time"
)

type User struct {
	ID           int64     `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Avatar       *string   `db:"avatar"`
	CreatedAt    time.Time `db:"created_at"`
}
