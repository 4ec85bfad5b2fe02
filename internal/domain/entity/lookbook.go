package entity

import "time"

// Lookbook is a curated, shareable collection of outfits.
type Lookbook struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CoverImage  string    `json:"cover_image,omitempty"`
	Author      Author    `json:"author"`
	Outfits     []Outfit  `json:"outfits"`
	Tags        []string  `json:"tags,omitempty"`
	IsPublic    bool      `json:"is_public"`
	LikesCount  int       `json:"likes_count"`
	IsLiked     bool      `json:"is_liked"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LookbookFilter narrows a lookbook listing.
type LookbookFilter struct {
	AuthorID string `json:"author_id,omitempty"`
	Tag      string `json:"tag,omitempty"`
	Featured bool   `json:"featured,omitempty"`
}
