package state

import (
	"context"

	"curator/internal/domain/entity"
	"curator/internal/domain/repository"
	"curator/internal/usecase"
)

// WardrobeState is the current user's wardrobe.
type WardrobeState struct {
	Status
	Pager
	Wardrobe     *entity.Wardrobe      `json:"wardrobe"`
	Items        []entity.WardrobeItem `json:"items"`
	SelectedItem *entity.WardrobeItem  `json:"selected_item"`
	Filter       entity.WardrobeFilter `json:"filter"`
}

func initialWardrobeState() WardrobeState {
	return WardrobeState{Items: []entity.WardrobeItem{}}
}

// WardrobeSlice owns wardrobe state.
type WardrobeSlice struct {
	*Slice[WardrobeState]

	repo    repository.WardrobeRepository
	addItem usecase.AddWardrobeItemUseCase
	session sessionReader
}

// sessionReader exposes the signed-in user to slices that need it.
type sessionReader interface {
	UserID() string
}

func NewWardrobeSlice(repo repository.WardrobeRepository, addItem usecase.AddWardrobeItemUseCase, session sessionReader) *WardrobeSlice {
	return &WardrobeSlice{
		Slice: NewSlice("wardrobe", initialWardrobeState, func(s *WardrobeState) *Status {
			return &s.Status
		}),
		repo:    repo,
		addItem: addItem,
		session: session,
	}
}

// FetchWardrobe loads the wardrobe with all its items.
func (s *WardrobeSlice) FetchWardrobe(ctx context.Context) (*entity.Wardrobe, error) {
	return Run(ctx, s.Slice, Reducers[WardrobeState, *entity.Wardrobe]{
		Fulfilled: func(st *WardrobeState, w *entity.Wardrobe) {
			st.Wardrobe = w
			st.Items = append([]entity.WardrobeItem{}, w.Items...)
			st.Pager.apply(1, w.TotalItems, false)
		},
		Fallback: "Failed to load wardrobe",
	}, s.repo.GetWardrobe)
}

// FetchItems loads a page of items matching the current filter.
func (s *WardrobeSlice) FetchItems(ctx context.Context, page entity.Pagination) (*entity.Page[entity.WardrobeItem], error) {
	filter := s.State().Filter

	return Run(ctx, s.Slice, Reducers[WardrobeState, *entity.Page[entity.WardrobeItem]]{
		Fulfilled: func(st *WardrobeState, p *entity.Page[entity.WardrobeItem]) {
			st.Items = MergePage(st.Items, p, wardrobeItemID)
			st.Pager.apply(p.Page, p.Total, p.HasMore)
		},
		Fallback: "Failed to load wardrobe items",
	}, func(ctx context.Context) (*entity.Page[entity.WardrobeItem], error) {
		return s.repo.GetItems(ctx, filter, page.Normalize())
	})
}

// FetchNextItems loads the page after the last one loaded.
func (s *WardrobeSlice) FetchNextItems(ctx context.Context) (*entity.Page[entity.WardrobeItem], error) {
	return s.FetchItems(ctx, entity.Pagination{Page: s.State().Pager.next()})
}

// FetchItem loads one item into SelectedItem.
func (s *WardrobeSlice) FetchItem(ctx context.Context, id string) (*entity.WardrobeItem, error) {
	return Run(ctx, s.Slice, Reducers[WardrobeState, *entity.WardrobeItem]{
		Fulfilled: func(st *WardrobeState, item *entity.WardrobeItem) {
			st.SelectedItem = item
			st.Items = replaceByID(st.Items, *item, wardrobeItemID)
		},
		Fallback: "Failed to load item",
	}, func(ctx context.Context) (*entity.WardrobeItem, error) {
		return s.repo.GetItem(ctx, id)
	})
}

// AddItem validates and creates an item, then prepends it.
func (s *WardrobeSlice) AddItem(ctx context.Context, item entity.WardrobeItem) (*entity.WardrobeItem, error) {
	return Run(ctx, s.Slice, Reducers[WardrobeState, *entity.WardrobeItem]{
		Fulfilled: func(st *WardrobeState, created *entity.WardrobeItem) {
			var added bool
			st.Items, added = prependUnique(st.Items, *created, wardrobeItemID)
			if added {
				st.Total++
				if st.Wardrobe != nil {
					w := *st.Wardrobe
					w.TotalItems++
					w.TotalValue = w.TotalValue.Add(created.Price)
					st.Wardrobe = &w
				}
			}
		},
		Fallback: "Failed to add item",
	}, func(ctx context.Context) (*entity.WardrobeItem, error) {
		return s.addItem.Execute(ctx, usecase.AddWardrobeItemInput{
			UserID: s.userID(),
			Item:   item,
		})
	})
}

// UpdateItem applies a partial update.
func (s *WardrobeSlice) UpdateItem(ctx context.Context, id string, params repository.UpdateWardrobeItemParams) (*entity.WardrobeItem, error) {
	return Run(ctx, s.Slice, Reducers[WardrobeState, *entity.WardrobeItem]{
		Fulfilled: s.commitItem,
		Fallback:  "Failed to update item",
	}, func(ctx context.Context) (*entity.WardrobeItem, error) {
		return s.repo.UpdateItem(ctx, id, params)
	})
}

// MarkWorn records that the item was worn today.
func (s *WardrobeSlice) MarkWorn(ctx context.Context, id string) (*entity.WardrobeItem, error) {
	return Run(ctx, s.Slice, Reducers[WardrobeState, *entity.WardrobeItem]{
		Fulfilled: s.commitItem,
		Fallback:  "Failed to mark item as worn",
	}, func(ctx context.Context) (*entity.WardrobeItem, error) {
		return s.repo.MarkWorn(ctx, id)
	})
}

func (s *WardrobeSlice) commitItem(st *WardrobeState, item *entity.WardrobeItem) {
	st.Items = replaceByID(st.Items, *item, wardrobeItemID)
	if st.SelectedItem != nil && st.SelectedItem.ID == item.ID {
		st.SelectedItem = item
	}
}

// DeleteItem removes an item once the backend confirms.
func (s *WardrobeSlice) DeleteItem(ctx context.Context, id string) error {
	return Exec(ctx, s.Slice, Reducers[WardrobeState, none]{
		Fulfilled: func(st *WardrobeState, _ none) {
			var removed *entity.WardrobeItem
			for i := range st.Items {
				if st.Items[i].ID == id {
					item := st.Items[i]
					removed = &item

					break
				}
			}
			if removed != nil {
				st.Items = removeByID(st.Items, id, wardrobeItemID)
				if st.Total > 0 {
					st.Total--
				}
				if st.Wardrobe != nil {
					w := *st.Wardrobe
					if w.TotalItems > 0 {
						w.TotalItems--
					}
					w.TotalValue = w.TotalValue.Sub(removed.Price)
					st.Wardrobe = &w
				}
			}
			if st.SelectedItem != nil && st.SelectedItem.ID == id {
				st.SelectedItem = nil
			}
		},
		Fallback: "Failed to delete item",
	}, func(ctx context.Context) error {
		return s.repo.DeleteItem(ctx, id)
	})
}

// SetFilter replaces the filter used by FetchItems.
func (s *WardrobeSlice) SetFilter(filter entity.WardrobeFilter) {
	s.Update(func(st *WardrobeState) {
		st.Filter = filter
	})
}

func (s *WardrobeSlice) userID() string {
	if s.session == nil {
		return ""
	}

	return s.session.UserID()
}
