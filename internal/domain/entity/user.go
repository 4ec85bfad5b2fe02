// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// User is an account on the platform together with its profile, style
// preferences and social counters.
type User struct {
	ID              string          `json:"id"`
	Email           string          `json:"email"`
	Username        string          `json:"username"`
	FirstName       string          `json:"first_name,omitempty"`
	LastName        string          `json:"last_name,omitempty"`
	Profile         UserProfile     `json:"profile"`
	Preferences     UserPreferences `json:"preferences"`
	Role            Role            `json:"role"`
	IsEmailVerified bool            `json:"is_email_verified"`
	FollowersCount  int             `json:"followers_count"`
	FollowingCount  int             `json:"following_count"`
	PostsCount      int             `json:"posts_count"`
	IsFollowing     bool            `json:"is_following,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// FullName joins first and last name, falling back to the username.
func (u *User) FullName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	default:
		return u.Username
	}
}

// UserProfile holds the public profile of a user.
type UserProfile struct {
	Photo       string            `json:"photo,omitempty"`
	Bio         string            `json:"bio,omitempty"`
	Location    string            `json:"location,omitempty"`
	Website     string            `json:"website,omitempty"`
	SocialLinks map[string]string `json:"social_links,omitempty"`
}

// UserPreferences holds the style preferences that drive recommendations.
type UserPreferences struct {
	Styles    []string          `json:"styles"`
	Sizes     map[string]string `json:"sizes"`
	Budget    BudgetRange       `json:"budget"`
	Colors    []string          `json:"colors"`
	Occasions []string          `json:"occasions"`
}

// BudgetRange is an inclusive price range. A nil bound is open.
type BudgetRange struct {
	Min *decimal.Decimal `json:"min,omitempty"`
	Max *decimal.Decimal `json:"max,omitempty"`
}
