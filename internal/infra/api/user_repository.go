package api

import (
	"context"

	"curator/internal/domain/entity"
	"curator/internal/domain/repository"
)

type userRepository struct {
	client *Client
}

// NewUserRepository creates the /users repository.
func NewUserRepository(client *Client) repository.UserRepository {
	return &userRepository{client: client}
}

func (r *userRepository) GetUser(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User
	if err := r.client.get(ctx, "/users/"+seg(id)+"/", nil, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, id string, params repository.UpdateProfileParams) (*entity.User, error) {
	var user entity.User
	if err := r.client.patch(ctx, "/users/"+seg(id)+"/", params, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) UpdatePreferences(ctx context.Context, id string, prefs entity.UserPreferences) (*entity.User, error) {
	var user entity.User
	if err := r.client.patch(ctx, "/users/"+seg(id)+"/preferences/", prefs, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) Follow(ctx context.Context, id string) error {
	return r.client.post(ctx, "/users/"+seg(id)+"/follow/", nil, nil)
}

func (r *userRepository) Unfollow(ctx context.Context, id string) error {
	return r.client.delete(ctx, "/users/"+seg(id)+"/follow/", nil)
}

func (r *userRepository) GetFollowers(ctx context.Context, id string, page entity.Pagination) (*entity.Page[entity.User], error) {
	return getPage[entity.User](ctx, r.client, "/users/"+seg(id)+"/followers/", nil, page)
}

func (r *userRepository) GetFollowing(ctx context.Context, id string, page entity.Pagination) (*entity.Page[entity.User], error) {
	return getPage[entity.User](ctx, r.client, "/users/"+seg(id)+"/following/", nil, page)
}

func (r *userRepository) DeleteAccount(ctx context.Context, id string) error {
	return r.client.delete(ctx, "/users/"+seg(id)+"/", nil)
}
