package domain

import "time"

type User struct {
	ID           uint64
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type RegisterUserInput struct {
	Email        string
	Name         string
	PasswordHash string
}
