package state

import (
	"context"

	"curator/internal/domain/entity"
	"curator/internal/domain/repository"
	"curator/internal/usecase"
)

// SearchState holds text and visual search results.
type SearchState struct {
	Status
	Pager
	Query         string                      `json:"query"`
	Filters       entity.SearchFilters        `json:"filters"`
	Results       []entity.SearchResult       `json:"results"`
	VisualResults []entity.SearchResult       `json:"visual_results"`
	History       []entity.SearchHistoryEntry `json:"history"`
}

func initialSearchState() SearchState {
	return SearchState{
		Results:       []entity.SearchResult{},
		VisualResults: []entity.SearchResult{},
		History:       []entity.SearchHistoryEntry{},
	}
}

type SearchSlice struct {
	*Slice[SearchState]

	repo    repository.SearchRepository
	visual  usecase.PerformVisualSearchUseCase
	session sessionReader
}

func NewSearchSlice(repo repository.SearchRepository, visual usecase.PerformVisualSearchUseCase, session sessionReader) *SearchSlice {
	return &SearchSlice{
		Slice: NewSlice("search", initialSearchState, func(s *SearchState) *Status {
			return &s.Status
		}),
		repo:    repo,
		visual:  visual,
		session: session,
	}
}

// TextSearch runs a keyword query. Page 1 starts a new result list.
func (s *SearchSlice) TextSearch(ctx context.Context, query string, filters entity.SearchFilters, page entity.Pagination) (*entity.Page[entity.SearchResult], error) {
	page = page.Normalize()

	return Run(ctx, s.Slice, Reducers[SearchState, *entity.Page[entity.SearchResult]]{
		Pending: func(st *SearchState) {
			st.Query = query
			st.Filters = filters
		},
		Fulfilled: func(st *SearchState, p *entity.Page[entity.SearchResult]) {
			st.Results = MergePage(st.Results, p, searchResultID)
			st.Pager.apply(p.Page, p.Total, p.HasMore)
		},
		Fallback: "Search failed",
	}, func(ctx context.Context) (*entity.Page[entity.SearchResult], error) {
		return s.repo.TextSearch(ctx, query, filters, page)
	})
}

// VisualSearch validates the image and replaces VisualResults.
func (s *SearchSlice) VisualSearch(ctx context.Context, image entity.ImageUpload, opts entity.VisualSearchOptions) ([]entity.SearchResult, error) {
	return Run(ctx, s.Slice, Reducers[SearchState, []entity.SearchResult]{
		Fulfilled: func(st *SearchState, results []entity.SearchResult) {
			st.VisualResults = append([]entity.SearchResult{}, results...)
		},
		Fallback: "Visual search failed",
	}, func(ctx context.Context) ([]entity.SearchResult, error) {
		var uid string
		if s.session != nil {
			uid = s.session.UserID()
		}

		return s.visual.Execute(ctx, usecase.VisualSearchInput{
			UserID:      uid,
			Image:       image,
			ContentType: image.ContentType,
			Options:     opts,
		})
	})
}

func (s *SearchSlice) FetchHistory(ctx context.Context) ([]entity.SearchHistoryEntry, error) {
	return Run(ctx, s.Slice, Reducers[SearchState, []entity.SearchHistoryEntry]{
		Fulfilled: func(st *SearchState, history []entity.SearchHistoryEntry) {
			st.History = append([]entity.SearchHistoryEntry{}, history...)
		},
		Fallback: "Failed to load search history",
	}, s.repo.GetHistory)
}

func (s *SearchSlice) ClearHistory(ctx context.Context) error {
	return Exec(ctx, s.Slice, Reducers[SearchState, none]{
		Fulfilled: func(st *SearchState, _ none) {
			st.History = []entity.SearchHistoryEntry{}
		},
		Fallback: "Failed to clear search history",
	}, s.repo.ClearHistory)
}

// ClearResults drops text and visual results and the query.
func (s *SearchSlice) ClearResults() {
	s.Update(func(st *SearchState) {
		st.Query = ""
		st.Filters = entity.SearchFilters{}
		st.Results = []entity.SearchResult{}
		st.VisualResults = []entity.SearchResult{}
		st.Pager = Pager{}
	})
}
