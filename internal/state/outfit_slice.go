package state

import (
	"context"

	"curator/internal/domain/entity"
	"curator/internal/domain/repository"
	"curator/internal/usecase"
)

// OutfitState holds recommendations and saved outfits.
type OutfitState struct {
	Status
	Pager
	Recommendations []entity.OutfitRecommendation `json:"recommendations"`
	Filters         entity.RecommendationFilters  `json:"filters"`
	SavedOutfits    []entity.Outfit               `json:"saved_outfits"`
	SavedPager      Pager                         `json:"saved_pager"`
	Current         *entity.Outfit                `json:"current"`
}

func initialOutfitState() OutfitState {
	return OutfitState{
		Recommendations: []entity.OutfitRecommendation{},
		SavedOutfits:    []entity.Outfit{},
	}
}

// OutfitSlice owns recommendation state. Like and save are optimistic.
type OutfitSlice struct {
	*Slice[OutfitState]

	repo            repository.OutfitRepository
	recommendations usecase.GetRecommendationsUseCase
	session         sessionReader
}

func NewOutfitSlice(repo repository.OutfitRepository, recommendations usecase.GetRecommendationsUseCase, session sessionReader) *OutfitSlice {
	return &OutfitSlice{
		Slice: NewSlice("outfit", initialOutfitState, func(s *OutfitState) *Status {
			return &s.Status
		}),
		repo:            repo,
		recommendations: recommendations,
		session:         session,
	}
}

// FetchRecommendations queries recommendations, merged with stored preferences.
func (s *OutfitSlice) FetchRecommendations(ctx context.Context, filters entity.RecommendationFilters) (*entity.Page[entity.OutfitRecommendation], error) {
	if filters.Page < 1 {
		filters.Page = 1
	}

	return Run(ctx, s.Slice, Reducers[OutfitState, *entity.Page[entity.OutfitRecommendation]]{
		Pending: func(st *OutfitState) {
			st.Filters = filters
		},
		Fulfilled: func(st *OutfitState, p *entity.Page[entity.OutfitRecommendation]) {
			st.Recommendations = MergePage(st.Recommendations, p, recommendationID)
			st.Pager.apply(p.Page, p.Total, p.HasMore)
		},
		Fallback: "Failed to load recommendations",
	}, func(ctx context.Context) (*entity.Page[entity.OutfitRecommendation], error) {
		var uid string
		if s.session != nil {
			uid = s.session.UserID()
		}

		return s.recommendations.Execute(ctx, usecase.RecommendationsInput{UserID: uid, Filters: filters})
	})
}

// FetchOutfit loads one outfit into Current.
func (s *OutfitSlice) FetchOutfit(ctx context.Context, id string) (*entity.Outfit, error) {
	return Run(ctx, s.Slice, Reducers[OutfitState, *entity.Outfit]{
		Fulfilled: func(st *OutfitState, o *entity.Outfit) {
			st.Current = o
		},
		Fallback: "Failed to load outfit",
	}, func(ctx context.Context) (*entity.Outfit, error) {
		return s.repo.GetOutfit(ctx, id)
	})
}

// FetchSaved loads a page of saved outfits.
func (s *OutfitSlice) FetchSaved(ctx context.Context, page entity.Pagination) (*entity.Page[entity.Outfit], error) {
	return Run(ctx, s.Slice, Reducers[OutfitState, *entity.Page[entity.Outfit]]{
		Fulfilled: func(st *OutfitState, p *entity.Page[entity.Outfit]) {
			st.SavedOutfits = MergePage(st.SavedOutfits, p, outfitID)
			st.SavedPager.apply(p.Page, p.Total, p.HasMore)
		},
		Fallback: "Failed to load saved outfits",
	}, func(ctx context.Context) (*entity.Page[entity.Outfit], error) {
		return s.repo.GetSaved(ctx, page.Normalize())
	})
}

func (s *OutfitSlice) LikeOutfit(ctx context.Context, id string) error {
	return s.toggle(ctx, id, setOutfitLiked, true, "Failed to like outfit", s.repo.LikeOutfit)
}

func (s *OutfitSlice) UnlikeOutfit(ctx context.Context, id string) error {
	return s.toggle(ctx, id, setOutfitLiked, false, "Failed to unlike outfit", s.repo.UnlikeOutfit)
}

func (s *OutfitSlice) SaveOutfit(ctx context.Context, id string) error {
	return s.toggle(ctx, id, setOutfitSaved, true, "Failed to save outfit", s.repo.SaveOutfit)
}

// UnsaveOutfit clears the saved flag and drops the outfit from SavedOutfits
// once confirmed.
func (s *OutfitSlice) UnsaveOutfit(ctx context.Context, id string) error {
	err := s.toggle(ctx, id, setOutfitSaved, false, "Failed to unsave outfit", s.repo.UnsaveOutfit)
	if err == nil {
		s.Update(func(st *OutfitState) {
			st.SavedOutfits = removeByID(st.SavedOutfits, id, outfitID)
		})
	}

	return err
}

// toggle applies set(value) on pending and set(!value) on rollback, only to
// outfits it actually changed.
func (s *OutfitSlice) toggle(
	ctx context.Context,
	id string,
	set func(o *entity.Outfit, value bool) bool,
	value bool,
	fallback string,
	call func(context.Context, string) error,
) error {
	var changed bool

	return Exec(ctx, s.Slice, Reducers[OutfitState, none]{
		Pending: func(st *OutfitState) {
			changed = st.apply(id, func(o *entity.Outfit) bool { return set(o, value) })
		},
		Rollback: func(st *OutfitState) {
			if changed {
				st.apply(id, func(o *entity.Outfit) bool { return set(o, !value) })
			}
		},
		Fallback: fallback,
	}, func(ctx context.Context) error {
		return call(ctx, id)
	})
}

// apply runs fn on every copy of outfit id held in state.
func (st *OutfitState) apply(id string, fn func(*entity.Outfit) bool) bool {
	changed := false
	st.Recommendations, _ = updateByID(st.Recommendations, id, recommendationID, func(r *entity.OutfitRecommendation) {
		changed = fn(&r.Outfit) || changed
	})
	st.SavedOutfits, _ = updateByID(st.SavedOutfits, id, outfitID, func(o *entity.Outfit) {
		changed = fn(o) || changed
	})
	if st.Current != nil && st.Current.ID == id {
		current := *st.Current
		changed = fn(&current) || changed
		st.Current = &current
	}

	return changed
}

func setOutfitLiked(o *entity.Outfit, liked bool) bool {
	if o.IsLiked == liked {
		return false
	}
	o.IsLiked = liked
	if liked {
		o.LikesCount++
	} else if o.LikesCount > 0 {
		o.LikesCount--
	}

	return true
}

func setOutfitSaved(o *entity.Outfit, saved bool) bool {
	if o.IsSaved == saved {
		return false
	}
	o.IsSaved = saved

	return true
}
