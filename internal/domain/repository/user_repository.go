// Package repository defines the interfaces for the remote data layer.
package repository

import (
	"context"

	"curator/internal/domain/entity"
)

// UpdateProfileParams carries the profile fields to change. Nil fields are left untouched.
type UpdateProfileParams struct {
	FirstName   *string           `json:"first_name,omitempty"`
	LastName    *string           `json:"last_name,omitempty"`
	Username    *string           `json:"username,omitempty"`
	Bio         *string           `json:"bio,omitempty"`
	Photo       *string           `json:"photo,omitempty"`
	Location    *string           `json:"location,omitempty"`
	Website     *string           `json:"website,omitempty"`
	SocialLinks map[string]string `json:"social_links,omitempty"`
}

// UserRepository defines the /users endpoints.
type UserRepository interface {
	// GetUser retrieves a single user by ID.
	GetUser(ctx context.Context, id string) (*entity.User, error)

	// UpdateProfile modifies a user's profile and returns the updated user.
	UpdateProfile(ctx context.Context, id string, params UpdateProfileParams) (*entity.User, error)

	// UpdatePreferences replaces a user's style preferences.
	UpdatePreferences(ctx context.Context, id string, prefs entity.UserPreferences) (*entity.User, error)

	// Follow makes the current user follow id.
	Follow(ctx context.Context, id string) error

	// Unfollow reverses Follow.
	Unfollow(ctx context.Context, id string) error

	// GetFollowers lists the users following id.
	GetFollowers(ctx context.Context, id string, page entity.Pagination) (*entity.Page[entity.User], error)

	// GetFollowing lists the users id follows.
	GetFollowing(ctx context.Context, id string, page entity.Pagination) (*entity.Page[entity.User], error)

	// DeleteAccount permanently removes the account.
	DeleteAccount(ctx context.Context, id string) error
}
