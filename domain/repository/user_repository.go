package repository

import "portfolio-go-server/domain/entity"

type UserRepository interface {
	// Upsert creates or updates a user (Clerk webhook sync).
	Upsert(user *entity.User) error

	// GetByID fetches a user by Clerk user_id. (nil, nil) when absent.
	GetByID(userID string) (*entity.User, error)
}
