package state

import (
	"context"

	"curator/internal/domain/entity"
	"curator/internal/domain/repository"
	"curator/internal/usecase"
)

// SocialState holds the feed, the open post and its comments.
// CommentsPostID names the post the loaded comment thread belongs to.
type SocialState struct {
	Status
	Pager
	Posts          []entity.SocialPost `json:"posts"`
	CurrentPost    *entity.SocialPost  `json:"current_post"`
	Comments       []entity.Comment    `json:"comments"`
	CommentsPager  Pager               `json:"comments_pager"`
	CommentsPostID string              `json:"comments_post_id,omitempty"`
}

func (st *SocialState) threadOwner() string {
	if st.CommentsPostID != "" {
		return st.CommentsPostID
	}
	if st.CurrentPost != nil {
		return st.CurrentPost.ID
	}

	return ""
}

func (st *SocialState) resetThread(postID string) {
	st.Comments = []entity.Comment{}
	st.CommentsPager = Pager{}
	st.CommentsPostID = postID
}

func initialSocialState() SocialState {
	return SocialState{
		Posts:    []entity.SocialPost{},
		Comments: []entity.Comment{},
	}
}

// SocialSlice owns feed state. Like and save are optimistic.
type SocialSlice struct {
	*Slice[SocialState]

	repo       repository.SocialRepository
	createPost usecase.CreatePostUseCase
	session    sessionReader
}

func NewSocialSlice(repo repository.SocialRepository, createPost usecase.CreatePostUseCase, session sessionReader) *SocialSlice {
	return &SocialSlice{
		Slice: NewSlice("social", initialSocialState, func(s *SocialState) *Status {
			return &s.Status
		}),
		repo:       repo,
		createPost: createPost,
		session:    session,
	}
}

// FetchFeed loads a page of the feed.
func (s *SocialSlice) FetchFeed(ctx context.Context, page entity.Pagination) (*entity.Page[entity.SocialPost], error) {
	return Run(ctx, s.Slice, Reducers[SocialState, *entity.Page[entity.SocialPost]]{
		Fulfilled: func(st *SocialState, p *entity.Page[entity.SocialPost]) {
			st.Posts = MergePage(st.Posts, p, postID)
			st.Pager.apply(p.Page, p.Total, p.HasMore)
		},
		Fallback: "Failed to load feed",
	}, func(ctx context.Context) (*entity.Page[entity.SocialPost], error) {
		return s.repo.GetFeed(ctx, page.Normalize())
	})
}

// FetchPost loads one post into CurrentPost.
func (s *SocialSlice) FetchPost(ctx context.Context, id string) (*entity.SocialPost, error) {
	return Run(ctx, s.Slice, Reducers[SocialState, *entity.SocialPost]{
		Fulfilled: func(st *SocialState, p *entity.SocialPost) {
			if st.CurrentPost == nil || st.CurrentPost.ID != p.ID {
				st.resetThread(p.ID)
			}
			st.CurrentPost = p
			st.Posts = replaceByID(st.Posts, *p, postID)
		},
		Fallback: "Failed to load post",
	}, func(ctx context.Context) (*entity.SocialPost, error) {
		return s.repo.GetPost(ctx, id)
	})
}

// CreatePost validates and publishes a post, then prepends it to the feed.
func (s *SocialSlice) CreatePost(ctx context.Context, params repository.CreatePostParams) (*entity.SocialPost, error) {
	return Run(ctx, s.Slice, Reducers[SocialState, *entity.SocialPost]{
		Fulfilled: func(st *SocialState, p *entity.SocialPost) {
			var added bool
			if st.Posts, added = prependUnique(st.Posts, *p, postID); added {
				st.Total++
			}
		},
		Fallback: "Failed to create post",
	}, func(ctx context.Context) (*entity.SocialPost, error) {
		var uid string
		if s.session != nil {
			uid = s.session.UserID()
		}

		return s.createPost.Execute(ctx, usecase.CreatePostInput{
			AuthorID: uid,
			Caption:  params.Caption,
			Images:   params.Images,
			Tags:     params.Tags,
			OutfitID: params.OutfitID,
		})
	})
}

// DeletePost removes a post once the backend confirms.
func (s *SocialSlice) DeletePost(ctx context.Context, id string) error {
	return Exec(ctx, s.Slice, Reducers[SocialState, none]{
		Fulfilled: func(st *SocialState, _ none) {
			before := len(st.Posts)
			st.Posts = removeByID(st.Posts, id, postID)
			if len(st.Posts) < before && st.Total > 0 {
				st.Total--
			}
			if st.CurrentPost != nil && st.CurrentPost.ID == id {
				st.CurrentPost = nil
				st.resetThread("")
			}
		},
		Fallback: "Failed to delete post",
	}, func(ctx context.Context) error {
		return s.repo.DeletePost(ctx, id)
	})
}

func (s *SocialSlice) LikePost(ctx context.Context, id string) error {
	return s.toggle(ctx, id, setPostLiked, true, "Failed to like post", s.repo.LikePost)
}

func (s *SocialSlice) UnlikePost(ctx context.Context, id string) error {
	return s.toggle(ctx, id, setPostLiked, false, "Failed to unlike post", s.repo.UnlikePost)
}

func (s *SocialSlice) SavePost(ctx context.Context, id string) error {
	return s.toggle(ctx, id, setPostSaved, true, "Failed to save post", s.repo.SavePost)
}

func (s *SocialSlice) UnsavePost(ctx context.Context, id string) error {
	return s.toggle(ctx, id, setPostSaved, false, "Failed to unsave post", s.repo.UnsavePost)
}

func (s *SocialSlice) toggle(
	ctx context.Context,
	id string,
	set func(p *entity.SocialPost, value bool) bool,
	value bool,
	fallback string,
	call func(context.Context, string) error,
) error {
	var changed bool

	return Exec(ctx, s.Slice, Reducers[SocialState, none]{
		Pending: func(st *SocialState) {
			changed = st.apply(id, func(p *entity.SocialPost) bool { return set(p, value) })
		},
		Rollback: func(st *SocialState) {
			if changed {
				st.apply(id, func(p *entity.SocialPost) bool { return set(p, !value) })
			}
		},
		Fallback: fallback,
	}, func(ctx context.Context) error {
		return call(ctx, id)
	})
}

// FetchComments loads a page of comments for a post. Loading another post's
// comments replaces the thread.
func (s *SocialSlice) FetchComments(ctx context.Context, postID string, page entity.Pagination) (*entity.Page[entity.Comment], error) {
	return Run(ctx, s.Slice, Reducers[SocialState, *entity.Page[entity.Comment]]{
		Fulfilled: func(st *SocialState, p *entity.Page[entity.Comment]) {
			if st.CommentsPostID != postID {
				st.resetThread(postID)
			}
			st.Comments = MergePage(st.Comments, p, commentID)
			st.CommentsPager.apply(p.Page, p.Total, p.HasMore)
		},
		Fallback: "Failed to load comments",
	}, func(ctx context.Context) (*entity.Page[entity.Comment], error) {
		return s.repo.GetComments(ctx, postID, page.Normalize())
	})
}

// AddComment bumps the post's comment counter and appends the comment when
// that post's thread is the one loaded.
func (s *SocialSlice) AddComment(ctx context.Context, postID, text string) (*entity.Comment, error) {
	return Run(ctx, s.Slice, Reducers[SocialState, *entity.Comment]{
		Fulfilled: func(st *SocialState, c *entity.Comment) {
			if containsID(st.Comments, c.ID, commentID) {
				return
			}
			owner := c.PostID
			if owner == "" {
				owner = postID
			}
			if owner == st.threadOwner() {
				st.Comments = append(append([]entity.Comment{}, st.Comments...), *c)
				st.CommentsPager.Total++
			}
			st.apply(owner, func(p *entity.SocialPost) bool {
				p.CommentsCount++

				return true
			})
		},
		Fallback: "Failed to add comment",
	}, func(ctx context.Context) (*entity.Comment, error) {
		return s.repo.AddComment(ctx, postID, text)
	})
}

// DeleteComment removes a comment once the backend confirms.
func (s *SocialSlice) DeleteComment(ctx context.Context, id string) error {
	var owner string
	for _, c := range s.State().Comments {
		if c.ID == id {
			owner = c.PostID
		}
	}

	return Exec(ctx, s.Slice, Reducers[SocialState, none]{
		Fulfilled: func(st *SocialState, _ none) {
			before := len(st.Comments)
			st.Comments = removeByID(st.Comments, id, commentID)
			if len(st.Comments) == before {
				return
			}
			if st.CommentsPager.Total > 0 {
				st.CommentsPager.Total--
			}
			if owner != "" {
				st.apply(owner, func(p *entity.SocialPost) bool {
					if p.CommentsCount > 0 {
						p.CommentsCount--
					}

					return true
				})
			}
		},
		Fallback: "Failed to delete comment",
	}, func(ctx context.Context) error {
		return s.repo.DeleteComment(ctx, id)
	})
}

// apply runs fn on every copy of post id held in state.
func (st *SocialState) apply(id string, fn func(*entity.SocialPost) bool) bool {
	changed := false
	st.Posts, _ = updateByID(st.Posts, id, postID, func(p *entity.SocialPost) {
		changed = fn(p) || changed
	})
	if st.CurrentPost != nil && st.CurrentPost.ID == id {
		current := *st.CurrentPost
		changed = fn(&current) || changed
		st.CurrentPost = &current
	}

	return changed
}

func setPostLiked(p *entity.SocialPost, liked bool) bool {
	if p.IsLiked == liked {
		return false
	}
	p.IsLiked = liked
	if liked {
		p.LikesCount++
	} else if p.LikesCount > 0 {
		p.LikesCount--
	}

	return true
}

func setPostSaved(p *entity.SocialPost, saved bool) bool {
	if p.IsSaved == saved {
		return false
	}
	p.IsSaved = saved

	return true
}
