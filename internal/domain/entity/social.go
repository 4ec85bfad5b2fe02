package entity

import "time"

// Author is the compact user reference embedded in posts and comments.
type Author struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Photo    string `json:"photo,omitempty"`
}

// SocialPost is an entry in the social feed.
type SocialPost struct {
	ID            string    `json:"id"`
	Author        Author    `json:"author"`
	Caption       string    `json:"caption"`
	Images        []string  `json:"images"`
	Tags          []string  `json:"tags,omitempty"`
	OutfitID      string    `json:"outfit_id,omitempty"`
	LikesCount    int       `json:"likes_count"`
	CommentsCount int       `json:"comments_count"`
	IsLiked       bool      `json:"is_liked"`
	IsSaved       bool      `json:"is_saved"`
	CreatedAt     time.Time `json:"created_at"`
}

// Comment is a reply on a post.
type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	Author    Author    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
