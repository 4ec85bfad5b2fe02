package state

import "curator/internal/domain/entity"

// Pager tracks the position of a paginated collection.
type Pager struct {
	Page    int  `json:"page"`
	Total   int  `json:"total"`
	HasMore bool `json:"has_more"`
}

func (p *Pager) apply(page int, total int, hasMore bool) {
	p.Page = page
	p.Total = total
	p.HasMore = hasMore
}

// next returns the page after the last one loaded.
func (p Pager) next() int {
	return p.Page + 1
}

// MergePage folds a fetched page into current. Page 1 (or less) replaces the
// collection; later pages append, skipping IDs already present.
func MergePage[T any](current []T, page *entity.Page[T], id func(T) string) []T {
	if page.Page <= 1 {
		return append([]T{}, page.Items...)
	}

	seen := make(map[string]struct{}, len(current))
	for _, item := range current {
		seen[id(item)] = struct{}{}
	}

	merged := make([]T, len(current), len(current)+len(page.Items))
	copy(merged, current)
	for _, item := range page.Items {
		key := id(item)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		merged = append(merged, item)
	}

	return merged
}

// updateByID returns a copy of items with fn applied to every element whose ID
// matches, and whether any did.
func updateByID[T any](items []T, target string, id func(T) string, fn func(*T)) ([]T, bool) {
	found := false
	out := make([]T, len(items))
	copy(out, items)
	for i := range out {
		if id(out[i]) == target {
			fn(&out[i])
			found = true
		}
	}
	if !found {
		return items, false
	}

	return out, true
}

// replaceByID swaps in item for the element with the same ID.
func replaceByID[T any](items []T, item T, id func(T) string) []T {
	out, _ := updateByID(items, id(item), id, func(p *T) { *p = item })

	return out
}

// removeByID drops every element with the given ID.
func removeByID[T any](items []T, target string, id func(T) string) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if id(item) != target {
			out = append(out, item)
		}
	}

	return out
}

// prependUnique puts item first unless its ID is already present.
func prependUnique[T any](items []T, item T, id func(T) string) ([]T, bool) {
	for _, existing := range items {
		if id(existing) == id(item) {
			return items, false
		}
	}

	out := make([]T, 0, len(items)+1)
	out = append(out, item)
	out = append(out, items...)

	return out, true
}

func containsID[T any](items []T, target string, id func(T) string) bool {
	for _, item := range items {
		if id(item) == target {
			return true
		}
	}

	return false
}

func ptr[T any](v T) *T {
	return &v
}

// ID accessors.
func wardrobeItemID(i entity.WardrobeItem) string           { return i.ID }
func outfitID(o entity.Outfit) string                       { return o.ID }
func recommendationID(o entity.OutfitRecommendation) string { return o.ID }
func postID(p entity.SocialPost) string                     { return p.ID }
func commentID(c entity.Comment) string                     { return c.ID }
func userID(u entity.User) string                           { return u.ID }
func searchResultID(r entity.SearchResult) string           { return r.ID }
func lookbookID(l entity.Lookbook) string                   { return l.ID }
func notificationID(n entity.Notification) string           { return n.ID }
func toastID(t Toast) string                                { return t.ID }
