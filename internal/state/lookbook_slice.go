package state

import (
	"context"

	"curator/internal/domain/entity"
	"curator/internal/domain/repository"
)

// LookbookState holds the lookbook listing and the open lookbook.
type LookbookState struct {
	Status
	Pager
	Lookbooks []entity.Lookbook     `json:"lookbooks"`
	Filter    entity.LookbookFilter `json:"filter"`
	Current   *entity.Lookbook      `json:"current"`
}

func initialLookbookState() LookbookState {
	return LookbookState{Lookbooks: []entity.Lookbook{}}
}

// LookbookSlice owns lookbook state. Like and unlike are optimistic.
type LookbookSlice struct {
	*Slice[LookbookState]

	repo repository.LookbookRepository
}

// NewLookbookSlice returns an empty lookbook slice.
func NewLookbookSlice(repo repository.LookbookRepository) *LookbookSlice {
	return &LookbookSlice{
		Slice: NewSlice("lookbook", initialLookbookState, func(s *LookbookState) *Status {
			return &s.Status
		}),
		repo: repo,
	}
}

// FetchLookbooks loads a page of lookbooks matching filter.
func (s *LookbookSlice) FetchLookbooks(ctx context.Context, filter entity.LookbookFilter, page entity.Pagination) (*entity.Page[entity.Lookbook], error) {
	return Run(ctx, s.Slice, Reducers[LookbookState, *entity.Page[entity.Lookbook]]{
		Pending: func(st *LookbookState) {
			st.Filter = filter
		},
		Fulfilled: func(st *LookbookState, p *entity.Page[entity.Lookbook]) {
			st.Lookbooks = MergePage(st.Lookbooks, p, lookbookID)
			st.Pager.apply(p.Page, p.Total, p.HasMore)
		},
		Fallback: "Failed to load lookbooks",
	}, func(ctx context.Context) (*entity.Page[entity.Lookbook], error) {
		return s.repo.GetLookbooks(ctx, filter, page.Normalize())
	})
}

// FetchLookbook loads one lookbook into Current.
func (s *LookbookSlice) FetchLookbook(ctx context.Context, id string) (*entity.Lookbook, error) {
	return Run(ctx, s.Slice, Reducers[LookbookState, *entity.Lookbook]{
		Fulfilled: s.commit,
		Fallback:  "Failed to load lookbook",
	}, func(ctx context.Context) (*entity.Lookbook, error) {
		return s.repo.GetLookbook(ctx, id)
	})
}

// CreateLookbook creates a lookbook, prepends it and opens it.
func (s *LookbookSlice) CreateLookbook(ctx context.Context, params repository.CreateLookbookParams) (*entity.Lookbook, error) {
	return Run(ctx, s.Slice, Reducers[LookbookState, *entity.Lookbook]{
		Fulfilled: func(st *LookbookState, l *entity.Lookbook) {
			var added bool
			if st.Lookbooks, added = prependUnique(st.Lookbooks, *l, lookbookID); added {
				st.Total++
			}
			st.Current = l
		},
		Fallback: "Failed to create lookbook",
	}, func(ctx context.Context) (*entity.Lookbook, error) {
		return s.repo.CreateLookbook(ctx, params)
	})
}

// DeleteLookbook removes a lookbook once the backend confirms.
func (s *LookbookSlice) DeleteLookbook(ctx context.Context, id string) error {
	return Exec(ctx, s.Slice, Reducers[LookbookState, none]{
		Fulfilled: func(st *LookbookState, _ none) {
			before := len(st.Lookbooks)
			st.Lookbooks = removeByID(st.Lookbooks, id, lookbookID)
			if len(st.Lookbooks) < before && st.Total > 0 {
				st.Total--
			}
			if st.Current != nil && st.Current.ID == id {
				st.Current = nil
			}
		},
		Fallback: "Failed to delete lookbook",
	}, func(ctx context.Context) error {
		return s.repo.DeleteLookbook(ctx, id)
	})
}

// AddOutfit adds an outfit to a lookbook.
func (s *LookbookSlice) AddOutfit(ctx context.Context, lookbookID, outfitID string) (*entity.Lookbook, error) {
	return Run(ctx, s.Slice, Reducers[LookbookState, *entity.Lookbook]{
		Fulfilled: s.commit,
		Fallback:  "Failed to add outfit to lookbook",
	}, func(ctx context.Context) (*entity.Lookbook, error) {
		return s.repo.AddOutfit(ctx, lookbookID, outfitID)
	})
}

// RemoveOutfit takes an outfit out of a lookbook.
func (s *LookbookSlice) RemoveOutfit(ctx context.Context, lookbookID, outfitID string) (*entity.Lookbook, error) {
	return Run(ctx, s.Slice, Reducers[LookbookState, *entity.Lookbook]{
		Fulfilled: s.commit,
		Fallback:  "Failed to remove outfit from lookbook",
	}, func(ctx context.Context) (*entity.Lookbook, error) {
		return s.repo.RemoveOutfit(ctx, lookbookID, outfitID)
	})
}

// commit stores a server-returned lookbook as Current and in the list.
func (s *LookbookSlice) commit(st *LookbookState, l *entity.Lookbook) {
	st.Current = l
	st.Lookbooks = replaceByID(st.Lookbooks, *l, lookbookID)
}

// LikeLookbook likes a lookbook optimistically.
func (s *LookbookSlice) LikeLookbook(ctx context.Context, id string) error {
	return s.setLiked(ctx, id, true, "Failed to like lookbook", s.repo.LikeLookbook)
}

// UnlikeLookbook reverts a like optimistically.
func (s *LookbookSlice) UnlikeLookbook(ctx context.Context, id string) error {
	return s.setLiked(ctx, id, false, "Failed to unlike lookbook", s.repo.UnlikeLookbook)
}

func (s *LookbookSlice) setLiked(ctx context.Context, id string, liked bool, fallback string, call func(context.Context, string) error) error {
	var changed bool

	return Exec(ctx, s.Slice, Reducers[LookbookState, none]{
		Pending: func(st *LookbookState) {
			changed = st.apply(id, liked)
		},
		Rollback: func(st *LookbookState) {
			if changed {
				st.apply(id, !liked)
			}
		},
		Fallback: fallback,
	}, func(ctx context.Context) error {
		return call(ctx, id)
	})
}

func (st *LookbookState) apply(id string, liked bool) bool {
	set := func(l *entity.Lookbook) bool {
		if l.IsLiked == liked {
			return false
		}
		l.IsLiked = liked
		if liked {
			l.LikesCount++
		} else if l.LikesCount > 0 {
			l.LikesCount--
		}

		return true
	}

	changed := false
	st.Lookbooks, _ = updateByID(st.Lookbooks, id, lookbookID, func(l *entity.Lookbook) {
		changed = set(l) || changed
	})
	if st.Current != nil && st.Current.ID == id {
		current := *st.Current
		changed = set(&current) || changed
		st.Current = &current
	}

	return changed
}
