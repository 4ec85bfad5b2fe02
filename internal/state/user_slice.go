package state

import (
	"context"

	"curator/internal/domain/entity"
	"curator/internal/domain/repository"
)

// UserState holds the profile being viewed and its social graph.
type UserState struct {
	Status
	Profile        *entity.User  `json:"profile"`
	Followers      []entity.User `json:"followers"`
	FollowersPager Pager         `json:"followers_pager"`
	Following      []entity.User `json:"following"`
	FollowingPager Pager         `json:"following_pager"`
}

func initialUserState() UserState {
	return UserState{
		Followers: []entity.User{},
		Following: []entity.User{},
	}
}

// UserSlice owns profile state. Follow and unfollow are optimistic.
type UserSlice struct {
	*Slice[UserState]

	repo repository.UserRepository
	auth *AuthSlice
}

// NewUserSlice creates the user slice. Updates to the signed-in user are
// mirrored into auth when it is non-nil.
func NewUserSlice(repo repository.UserRepository, auth *AuthSlice) *UserSlice {
	return &UserSlice{
		Slice: NewSlice("user", initialUserState, func(s *UserState) *Status {
			return &s.Status
		}),
		repo: repo,
		auth: auth,
	}
}

// FetchUser loads a profile.
func (s *UserSlice) FetchUser(ctx context.Context, id string) (*entity.User, error) {
	return Run(ctx, s.Slice, Reducers[UserState, *entity.User]{
		Fulfilled: func(st *UserState, u *entity.User) {
			if st.Profile == nil || st.Profile.ID != u.ID {
				st.Followers, st.FollowersPager = []entity.User{}, Pager{}
				st.Following, st.FollowingPager = []entity.User{}, Pager{}
			}
			st.Profile = u
		},
		Fallback: "Failed to load profile",
	}, func(ctx context.Context) (*entity.User, error) {
		return s.repo.GetUser(ctx, id)
	})
}

func (s *UserSlice) UpdateProfile(ctx context.Context, id string, params repository.UpdateProfileParams) (*entity.User, error) {
	return s.commitUser(ctx, "Failed to update profile", func(ctx context.Context) (*entity.User, error) {
		return s.repo.UpdateProfile(ctx, id, params)
	})
}

func (s *UserSlice) UpdatePreferences(ctx context.Context, id string, prefs entity.UserPreferences) (*entity.User, error) {
	return s.commitUser(ctx, "Failed to update preferences", func(ctx context.Context) (*entity.User, error) {
		return s.repo.UpdatePreferences(ctx, id, prefs)
	})
}

func (s *UserSlice) commitUser(ctx context.Context, fallback string, call func(context.Context) (*entity.User, error)) (*entity.User, error) {
	user, err := Run(ctx, s.Slice, Reducers[UserState, *entity.User]{
		Fulfilled: func(st *UserState, u *entity.User) {
			if st.Profile == nil || st.Profile.ID == u.ID {
				st.Profile = u
			}
		},
		Fallback: fallback,
	}, call)
	if err == nil && s.auth != nil && s.auth.UserID() == user.ID {
		s.auth.SetUser(user)
	}

	return user, err
}

func (s *UserSlice) Follow(ctx context.Context, id string) error {
	return s.setFollowing(ctx, id, true, "Failed to follow user", s.repo.Follow)
}

func (s *UserSlice) Unfollow(ctx context.Context, id string) error {
	return s.setFollowing(ctx, id, false, "Failed to unfollow user", s.repo.Unfollow)
}

func (s *UserSlice) setFollowing(ctx context.Context, id string, follow bool, fallback string, call func(context.Context, string) error) error {
	var changed bool
	set := func(st *UserState, value bool) bool {
		if st.Profile == nil || st.Profile.ID != id || st.Profile.IsFollowing == value {
			return false
		}
		p := *st.Profile
		p.IsFollowing = value
		if value {
			p.FollowersCount++
		} else if p.FollowersCount > 0 {
			p.FollowersCount--
		}
		st.Profile = &p

		return true
	}

	return Exec(ctx, s.Slice, Reducers[UserState, none]{
		Pending: func(st *UserState) {
			changed = set(st, follow)
		},
		Rollback: func(st *UserState) {
			if changed {
				set(st, !follow)
			}
		},
		Fallback: fallback,
	}, func(ctx context.Context) error {
		return call(ctx, id)
	})
}

// FetchFollowers loads a page of followers of id.
func (s *UserSlice) FetchFollowers(ctx context.Context, id string, page entity.Pagination) (*entity.Page[entity.User], error) {
	return Run(ctx, s.Slice, Reducers[UserState, *entity.Page[entity.User]]{
		Fulfilled: func(st *UserState, p *entity.Page[entity.User]) {
			st.Followers = MergePage(st.Followers, p, userID)
			st.FollowersPager.apply(p.Page, p.Total, p.HasMore)
		},
		Fallback: "Failed to load followers",
	}, func(ctx context.Context) (*entity.Page[entity.User], error) {
		return s.repo.GetFollowers(ctx, id, page.Normalize())
	})
}

// FetchFollowing loads a page of users id follows.
func (s *UserSlice) FetchFollowing(ctx context.Context, id string, page entity.Pagination) (*entity.Page[entity.User], error) {
	return Run(ctx, s.Slice, Reducers[UserState, *entity.Page[entity.User]]{
		Fulfilled: func(st *UserState, p *entity.Page[entity.User]) {
			st.Following = MergePage(st.Following, p, userID)
			st.FollowingPager.apply(p.Page, p.Total, p.HasMore)
		},
		Fallback: "Failed to load following",
	}, func(ctx context.Context) (*entity.Page[entity.User], error) {
		return s.repo.GetFollowing(ctx, id, page.Normalize())
	})
}

// DeleteAccount removes the account. The caller is expected to log out.
func (s *UserSlice) DeleteAccount(ctx context.Context, id string) error {
	return Exec(ctx, s.Slice, Reducers[UserState, none]{
		Fulfilled: func(st *UserState, _ none) {
			if st.Profile != nil && st.Profile.ID == id {
				*st = initialUserState()
			}
		},
		Fallback: "Failed to delete account",
	}, func(ctx context.Context) error {
		return s.repo.DeleteAccount(ctx, id)
	})
}
