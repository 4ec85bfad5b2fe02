package state

import (
	"context"
	"net/http"
	"testing"

	"curator/internal/domain/entity"
	domainerrors "curator/internal/domain/errors"
	"curator/internal/domain/repository"
	"curator/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWardrobeSlice_FetchWardrobe(t *testing.T) {
	ts := newTestStore(t)
	ctx := context.Background()
	wardrobe := &entity.Wardrobe{
		ID: "w1",
		Items: []entity.WardrobeItem{
			{ID: "1", Name: "Tee", Category: entity.CategoryTop},
			{ID: "2", Name: "Jeans", Category: entity.CategoryBottom},
			{ID: "3", Name: "Boots", Category: entity.CategoryShoes},
		},
		TotalItems: 3,
	}
	ts.wardrobeRepo.On("GetWardrobe", ctx).Return(wardrobe, nil)

	_, err := ts.Wardrobe.FetchWardrobe(ctx)

	require.NoError(t, err)
	st := ts.Wardrobe.State()
	assert.Len(t, st.Items, 3)
	require.NotNil(t, st.Wardrobe)
	assert.Equal(t, 3, st.Wardrobe.TotalItems)
	assert.False(t, st.IsLoading)
	assert.Empty(t, st.Error)
}

func TestWardrobeSlice_FetchItemsPagination(t *testing.T) {
	ts := newTestStore(t)
	ctx := context.Background()
	filter := entity.WardrobeFilter{Category: entity.CategoryTop}
	ts.Wardrobe.SetFilter(filter)

	ts.wardrobeRepo.On("GetItems", ctx, filter, entity.Pagination{Page: 1, Limit: entity.DefaultPageSize}).
		Return(&entity.Page[entity.WardrobeItem]{
			Items: []entity.WardrobeItem{{ID: "1"}, {ID: "2"}}, Page: 1, Total: 3, HasMore: true,
		}, nil)
	ts.wardrobeRepo.On("GetItems", ctx, filter, entity.Pagination{Page: 2, Limit: entity.DefaultPageSize}).
		Return(&entity.Page[entity.WardrobeItem]{
			Items: []entity.WardrobeItem{{ID: "2"}, {ID: "3"}}, Page: 2, Total: 3,
		}, nil)

	_, err := ts.Wardrobe.FetchItems(ctx, entity.Pagination{Page: 1})
	require.NoError(t, err)
	_, err = ts.Wardrobe.FetchNextItems(ctx)
	require.NoError(t, err)

	st := ts.Wardrobe.State()
	ids := make([]string, 0, len(st.Items))
	for _, item := range st.Items {
		ids = append(ids, item.ID)
	}
	assert.Equal(t, []string{"1", "2", "3"}, ids)
	assert.Equal(t, 2, st.Page)
	assert.False(t, st.HasMore)

	// Page 1 again starts over.
	ts.wardrobeRepo.On("GetItems", ctx, filter, entity.Pagination{Page: 1, Limit: 5}).
		Return(&entity.Page[entity.WardrobeItem]{Items: []entity.WardrobeItem{{ID: "9"}}, Page: 1, Total: 1}, nil)

	_, err = ts.Wardrobe.FetchItems(ctx, entity.Pagination{Page: 1, Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, []entity.WardrobeItem{{ID: "9"}}, ts.Wardrobe.State().Items)
}

func TestWardrobeSlice_AddItemUsesUseCase(t *testing.T) {
	ts := newTestStore(t)
	ctx := context.Background()

	var got usecase.AddWardrobeItemInput
	slice := NewWardrobeSlice(ts.wardrobeRepo, addItemFunc(func(_ context.Context, in usecase.AddWardrobeItemInput) (*entity.WardrobeItem, error) {
		got = in
		item := in.Item
		item.ID = "new"

		return &item, nil
	}), fixedSession("u1"))

	_, err := slice.AddItem(ctx, entity.WardrobeItem{Name: "Scarf", Category: entity.CategoryAccessory})

	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, "Scarf", got.Item.Name)
	st := slice.State()
	require.Len(t, st.Items, 1)
	assert.Equal(t, "new", st.Items[0].ID)
	assert.Equal(t, 1, st.Total)
}

func TestWardrobeSlice_AddItemRejected(t *testing.T) {
	ts := newTestStore(t)

	slice := NewWardrobeSlice(ts.wardrobeRepo, addItemFunc(func(context.Context, usecase.AddWardrobeItemInput) (*entity.WardrobeItem, error) {
		return nil, domainerrors.NewValidationError("Item name is required")
	}), nil)

	_, err := slice.AddItem(context.Background(), entity.WardrobeItem{})

	require.Error(t, err)
	assert.Equal(t, "Item name is required", slice.State().Error)
	assert.Empty(t, slice.State().Items)
}

func TestWardrobeSlice_DeleteItemKeepsTotalsInStep(t *testing.T) {
	ts := newTestStore(t)
	ctx := context.Background()
	ts.wardrobeRepo.On("GetWardrobe", ctx).Return(&entity.Wardrobe{
		ID:         "w1",
		Items:      []entity.WardrobeItem{{ID: "1", Name: "Tee", Price: decimal.NewFromInt(10)}},
		TotalItems: 1,
		TotalValue: decimal.NewFromInt(10),
	}, nil)
	ts.wardrobeRepo.On("AddItem", ctx, mock.AnythingOfType("*entity.WardrobeItem")).
		Return(&entity.WardrobeItem{ID: "2", Name: "Coat", Category: entity.CategoryOuterwear, Price: decimal.NewFromInt(50)}, nil)
	ts.wardrobeRepo.On("DeleteItem", ctx, "2").Return(nil)
	ts.wardrobeRepo.On("DeleteItem", ctx, "missing").Return(nil)

	_, err := ts.Wardrobe.FetchWardrobe(ctx)
	require.NoError(t, err)
	_, err = ts.Wardrobe.AddItem(ctx, entity.WardrobeItem{Name: "Coat", Category: entity.CategoryOuterwear})
	require.NoError(t, err)
	require.NoError(t, ts.Wardrobe.DeleteItem(ctx, "2"))

	st := ts.Wardrobe.State()
	require.NotNil(t, st.Wardrobe)
	assert.Equal(t, 1, st.Wardrobe.TotalItems)
	assert.True(t, decimal.NewFromInt(10).Equal(st.Wardrobe.TotalValue), st.Wardrobe.TotalValue.String())
	assert.Equal(t, 1, st.Total)

	// Unknown IDs leave the counters alone.
	require.NoError(t, ts.Wardrobe.DeleteItem(ctx, "missing"))

	st = ts.Wardrobe.State()
	assert.Len(t, st.Items, 1)
	assert.Equal(t, 1, st.Wardrobe.TotalItems)
	assert.Equal(t, 1, st.Total)
	assert.True(t, decimal.NewFromInt(10).Equal(st.Wardrobe.TotalValue))
}

func TestCartSlice_MutationReplacesWholeCart(t *testing.T) {
	ts := newTestStore(t)
	ctx := context.Background()

	ts.Cart.Update(func(st *CartState) {
		st.replace(&entity.Cart{
			Items:    []entity.CartItem{{ID: "old", Quantity: 5}},
			Subtotal: decimal.NewFromInt(500),
			Total:    decimal.NewFromInt(500),
		})
	})

	params := repository.AddToCartParams{ProductID: "p1", Quantity: 2}
	server := &entity.Cart{
		ID:        "c1",
		Items:     []entity.CartItem{{ID: "i1", ProductID: "p1", Price: decimal.RequireFromString("10.50"), Quantity: 2}},
		Subtotal:  decimal.RequireFromString("21.00"),
		Shipping:  decimal.RequireFromString("4.99"),
		Tax:       decimal.RequireFromString("1.68"),
		Discount:  decimal.Zero,
		Total:     decimal.RequireFromString("99.99"), // server value is trusted even when inconsistent
		PromoCode: "",
		Currency:  "USD",
	}
	ts.cartRepo.On("AddItem", ctx, params).Return(server, nil)

	_, err := ts.Cart.AddToCart(ctx, params)

	require.NoError(t, err)
	st := ts.Cart.State()
	assert.Equal(t, server.Items, st.Items)
	assert.True(t, st.Subtotal.Equal(server.Subtotal))
	assert.True(t, st.Total.Equal(server.Total))
	assert.True(t, st.Shipping.Equal(server.Shipping))
	assert.Equal(t, 2, st.ItemCount)
	assert.Equal(t, "USD", st.Currency)
	assert.Same(t, server, st.Cart)
}

func TestCartSlice_CancelledMutationDoesNotCommit(t *testing.T) {
	ts := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())

	ts.cartRepo.On("GetCart", mock.Anything).
		Run(func(mock.Arguments) { cancel() }).
		Return(&entity.Cart{Items: []entity.CartItem{{ID: "late"}}}, nil)

	_, err := ts.Cart.FetchCart(ctx)

	require.ErrorIs(t, err, context.Canceled)
	st := ts.Cart.State()
	assert.Empty(t, st.Items)
	assert.Nil(t, st.Cart)
	assert.False(t, st.IsLoading)
}

func TestCartSlice_Checkout(t *testing.T) {
	ts := newTestStore(t)
	ctx := context.Background()
	ts.Cart.Update(func(st *CartState) {
		st.replace(&entity.Cart{Items: []entity.CartItem{{ID: "i1", Quantity: 1}}, Total: decimal.NewFromInt(10)})
	})

	params := repository.CheckoutParams{PaymentMethodID: "pm_1"}
	order := &entity.Order{ID: "o1", Status: "pending"}
	ts.cartRepo.On("Checkout", ctx, params).Return(order, nil)

	_, err := ts.Cart.Checkout(ctx, params)

	require.NoError(t, err)
	st := ts.Cart.State()
	assert.Same(t, order, st.LastOrder)
	assert.Empty(t, st.Items)
	assert.True(t, st.Total.IsZero())
}

func TestOutfitSlice_LikeRollsBackOnFailure(t *testing.T) {
	ts := newTestStore(t)
	ctx := context.Background()
	ts.Outfit.Update(func(st *OutfitState) {
		st.Recommendations = []entity.OutfitRecommendation{{Outfit: entity.Outfit{ID: "o1", LikesCount: 4}}}
		st.Current = &entity.Outfit{ID: "o1", LikesCount: 4}
	})

	var duringCall OutfitState
	ts.outfitRepo.On("LikeOutfit", ctx, "o1").
		Run(func(mock.Arguments) { duringCall = ts.Outfit.State() }).
		Return(domainerrors.NewAPIError(http.StatusInternalServerError, nil))

	err := ts.Outfit.LikeOutfit(ctx, "o1")

	require.Error(t, err)
	assert.True(t, duringCall.Recommendations[0].IsLiked)
	assert.Equal(t, 5, duringCall.Recommendations[0].LikesCount)
	assert.True(t, duringCall.Current.IsLiked)

	st := ts.Outfit.State()
	assert.False(t, st.Recommendations[0].IsLiked)
	assert.Equal(t, 4, st.Recommendations[0].LikesCount)
	assert.False(t, st.Current.IsLiked)
	assert.Equal(t, 4, st.Current.LikesCount)
	assert.Equal(t, "Request failed with status code 500", st.Error)
}

func TestOutfitSlice_UnsaveRemovesFromSaved(t *testing.T) {
	ts := newTestStore(t)
	ctx := context.Background()
	ts.Outfit.Update(func(st *OutfitState) {
		st.SavedOutfits = []entity.Outfit{{ID: "o1", IsSaved: true}, {ID: "o2", IsSaved: true}}
	})
	ts.outfitRepo.On("UnsaveOutfit", ctx, "o1").Return(nil)

	require.NoError(t, ts.Outfit.UnsaveOutfit(ctx, "o1"))

	st := ts.Outfit.State()
	require.Len(t, st.SavedOutfits, 1)
	assert.Equal(t, "o2", st.SavedOutfits[0].ID)
}

func TestOutfitSlice_FetchRecommendations(t *testing.T) {
	ts := newTestStore(t)
	ctx := context.Background()
	filters := entity.RecommendationFilters{Occasion: "work", Page: 1}
	ts.outfitRepo.On("GetRecommendations", ctx, filters).Return(&entity.Page[entity.OutfitRecommendation]{
		Items: []entity.OutfitRecommendation{{Outfit: entity.Outfit{ID: "o1"}}},
		Page:  1,
		Total: 1,
	}, nil)

	_, err := ts.Outfit.FetchRecommendations(ctx, entity.RecommendationFilters{Occasion: "work"})

	require.NoError(t, err)
	st := ts.Outfit.State()
	assert.Len(t, st.Recommendations, 1)
	assert.Equal(t, "work", st.Filters.Occasion)
}

func TestSocialSlice_OptimisticToggles(t *testing.T) {
	ts := newTestStore(t)
	ctx := context.Background()
	ts.Social.Update(func(st *SocialState) {
		st.Posts = []entity.SocialPost{{ID: "p1", LikesCount: 1}}
	})

	ts.socialRepo.On("LikePost", ctx, "p1").Return(nil)
	require.NoError(t, ts.Social.LikePost(ctx, "p1"))
	assert.True(t, ts.Social.State().Posts[0].IsLiked)
	assert.Equal(t, 2, ts.Social.State().Posts[0].LikesCount)

	ts.socialRepo.On("SavePost", ctx, "p1").Return(errors.New("offline"))
	require.Error(t, ts.Social.SavePost(ctx, "p1"))
	st := ts.Social.State()
	assert.False(t, st.Posts[0].IsSaved)
	assert.Equal(t, "offline", st.Error)
}

func TestSocialSlice_CreatePostAndComments(t *testing.T) {
	ts := newTestStore(t)
	ctx := context.Background()

	var input usecase.CreatePostInput
	social := NewSocialSlice(ts.socialRepo, createPostFunc(func(_ context.Context, in usecase.CreatePostInput) (*entity.SocialPost, error) {
		input = in

		return &entity.SocialPost{ID: "p9", Caption: in.Caption, Images: in.Images}, nil
	}), fixedSession("u1"))

	_, err := social.CreatePost(ctx, repository.CreatePostParams{Caption: "fit check", Images: []string{"a.jpg"}})
	require.NoError(t, err)
	assert.Equal(t, "u1", input.AuthorID)
	require.Len(t, social.State().Posts, 1)

	ts.socialRepo.On("GetComments", ctx, "p9", entity.Pagination{Page: 1, Limit: entity.DefaultPageSize}).
		Return(&entity.Page[entity.Comment]{Items: []entity.Comment{}, Page: 1}, nil)
	_, err = social.FetchComments(ctx, "p9", entity.Pagination{Page: 1})
	require.NoError(t, err)

	ts.socialRepo.On("AddComment", ctx, "p9", "nice").
		Return(&entity.Comment{ID: "c1", PostID: "p9", Text: "nice"}, nil)
	_, err = social.AddComment(ctx, "p9", "nice")
	require.NoError(t, err)

	st := social.State()
	require.Len(t, st.Comments, 1)
	assert.Equal(t, 1, st.Posts[0].CommentsCount)

	ts.socialRepo.On("DeleteComment", ctx, "c1").Return(nil)
	require.NoError(t, social.DeleteComment(ctx, "c1"))

	st = social.State()
	assert.Empty(t, st.Comments)
	assert.Equal(t, 0, st.Posts[0].CommentsCount)
}

func TestSocialSlice_AddCommentToOtherPost(t *testing.T) {
	ts := newTestStore(t)
	ctx := context.Background()
	ts.Social.Update(func(st *SocialState) {
		st.Posts = []entity.SocialPost{{ID: "A", CommentsCount: 1}, {ID: "B"}}
	})

	ts.socialRepo.On("GetComments", ctx, "A", entity.Pagination{Page: 1, Limit: entity.DefaultPageSize}).
		Return(&entity.Page[entity.Comment]{Items: []entity.Comment{{ID: "c1", PostID: "A"}}, Page: 1, Total: 1}, nil)
	ts.socialRepo.On("AddComment", ctx, "B", "love it").
		Return(&entity.Comment{ID: "c2", PostID: "B", Text: "love it"}, nil)

	_, err := ts.Social.FetchComments(ctx, "A", entity.Pagination{Page: 1})
	require.NoError(t, err)
	_, err = ts.Social.AddComment(ctx, "B", "love it")
	require.NoError(t, err)

	st := ts.Social.State()
	require.Len(t, st.Comments, 1)
	assert.Equal(t, "c1", st.Comments[0].ID)
	assert.Equal(t, 1, st.CommentsPager.Total)
	assert.Equal(t, "A", st.CommentsPostID)
	assert.Equal(t, 1, st.Posts[0].CommentsCount)
	assert.Equal(t, 1, st.Posts[1].CommentsCount)

	// Switching threads drops the old post's comments.
	ts.socialRepo.On("GetComments", ctx, "B", entity.Pagination{Page: 2, Limit: entity.DefaultPageSize}).
		Return(&entity.Page[entity.Comment]{Items: []entity.Comment{{ID: "c2", PostID: "B"}}, Page: 2, Total: 1}, nil)

	_, err = ts.Social.FetchComments(ctx, "B", entity.Pagination{Page: 2})
	require.NoError(t, err)

	st = ts.Social.State()
	require.Len(t, st.Comments, 1)
	assert.Equal(t, "c2", st.Comments[0].ID)
	assert.Equal(t, "B", st.CommentsPostID)
}

func TestUserSlice_FollowRollback(t *testing.T) {
	ts := newTestStore(t)
	ctx := context.Background()
	ts.User.Update(func(st *UserState) {
		st.Profile = &entity.User{ID: "u2", FollowersCount: 10}
	})

	ts.userRepo.On("Follow", ctx, "u2").Return(errors.New("rate limited"))

	require.Error(t, ts.User.Follow(ctx, "u2"))
	st := ts.User.State()
	assert.False(t, st.Profile.IsFollowing)
	assert.Equal(t, 10, st.Profile.FollowersCount)
}

func TestUserSlice_UpdateProfileMirrorsAuth(t *testing.T) {
	ts := newTestStore(t)
	ctx := context.Background()
	ts.Auth.SetUser(&entity.User{ID: "u1", Username: "old"})

	bio := "hello"
	params := repository.UpdateProfileParams{Bio: &bio}
	updated := &entity.User{ID: "u1", Username: "old", Profile: entity.UserProfile{Bio: bio}}
	ts.userRepo.On("UpdateProfile", ctx, "u1", params).Return(updated, nil)

	_, err := ts.User.UpdateProfile(ctx, "u1", params)

	require.NoError(t, err)
	assert.Same(t, updated, ts.User.State().Profile)
	assert.Same(t, updated, ts.Auth.State().User)
}

func TestSearchSlice_VisualSearch(t *testing.T) {
	ts := newTestStore(t)
	image := entity.ImageUpload{Filename: "a.png", ContentType: "image/png", Data: []byte{1}}

	var got usecase.VisualSearchInput
	search := NewSearchSlice(ts.searchRepo, visualSearchFunc(func(_ context.Context, in usecase.VisualSearchInput) ([]entity.SearchResult, error) {
		got = in

		return []entity.SearchResult{{ID: "r1"}}, nil
	}), nil)

	results, err := search.VisualSearch(context.Background(), image, entity.VisualSearchOptions{})

	require.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, "image/png", got.ContentType)
	assert.Len(t, search.State().VisualResults, 1)

	search.ClearResults()
	assert.Empty(t, search.State().VisualResults)
}

func TestSearchSlice_TextSearch(t *testing.T) {
	ts := newTestStore(t)
	ctx := context.Background()
	filters := entity.SearchFilters{Brand: "acme"}
	ts.searchRepo.On("TextSearch", ctx, "linen", filters, entity.Pagination{Page: 1, Limit: entity.DefaultPageSize}).
		Return(&entity.Page[entity.SearchResult]{Items: []entity.SearchResult{{ID: "1"}}, Page: 1, Total: 1}, nil)

	_, err := ts.Search.TextSearch(ctx, "linen", filters, entity.Pagination{})

	require.NoError(t, err)
	st := ts.Search.State()
	assert.Equal(t, "linen", st.Query)
	assert.Len(t, st.Results, 1)
}

func TestLookbookSlice_LikeAndAddOutfit(t *testing.T) {
	ts := newTestStore(t)
	ctx := context.Background()
	ts.Lookbook.Update(func(st *LookbookState) {
		st.Lookbooks = []entity.Lookbook{{ID: "l1"}}
	})

	ts.lookbookRepo.On("LikeLookbook", ctx, "l1").Return(nil)
	require.NoError(t, ts.Lookbook.LikeLookbook(ctx, "l1"))
	assert.Equal(t, 1, ts.Lookbook.State().Lookbooks[0].LikesCount)

	updated := &entity.Lookbook{ID: "l1", Outfits: []entity.Outfit{{ID: "o1"}}, LikesCount: 1, IsLiked: true}
	ts.lookbookRepo.On("AddOutfit", ctx, "l1", "o1").Return(updated, nil)
	_, err := ts.Lookbook.AddOutfit(ctx, "l1", "o1")
	require.NoError(t, err)

	st := ts.Lookbook.State()
	assert.Same(t, updated, st.Current)
	assert.Len(t, st.Lookbooks[0].Outfits, 1)
}

func TestNotificationSlice(t *testing.T) {
	ts := newTestStore(t)
	ctx := context.Background()

	assert.True(t, ts.Notification.Receive(entity.Notification{ID: "n1"}))
	assert.False(t, ts.Notification.Receive(entity.Notification{ID: "n1"}))
	assert.True(t, ts.Notification.Receive(entity.Notification{ID: "n2"}))

	st := ts.Notification.State()
	assert.Equal(t, 2, st.UnreadCount)
	assert.Equal(t, "n2", st.Notifications[0].ID)

	ts.notificationRepo.On("MarkRead", ctx, "n1").Return(nil)
	require.NoError(t, ts.Notification.MarkRead(ctx, "n1"))
	assert.Equal(t, 1, ts.Notification.State().UnreadCount)

	ts.notificationRepo.On("MarkAllRead", ctx).Return(nil)
	require.NoError(t, ts.Notification.MarkAllRead(ctx))
	st = ts.Notification.State()
	assert.Equal(t, 0, st.UnreadCount)
	for _, n := range st.Notifications {
		assert.True(t, n.IsRead)
	}
}

func TestUISlice(t *testing.T) {
	ts := newTestStore(t)
	ctx := context.Background()

	ts.prefs.On("LoadSidebarCollapsed", ctx).Return(false, repository.ErrNotStored).Once()
	require.NoError(t, ts.UI.LoadPreferences(ctx))
	assert.False(t, ts.UI.State().SidebarCollapsed)
	assert.Empty(t, ts.UI.State().Error)

	ts.prefs.On("SaveSidebarCollapsed", ctx, true).Return(nil)
	collapsed, err := ts.UI.ToggleSidebar(ctx)
	require.NoError(t, err)
	assert.True(t, collapsed)

	for range maxToasts + 2 {
		ts.UI.ShowToast(ToastInfo, "hi")
	}
	assert.Len(t, ts.UI.State().Toasts, maxToasts)

	id := ts.UI.State().Toasts[0].ID
	ts.UI.DismissToast(id)
	assert.Len(t, ts.UI.State().Toasts, maxToasts-1)

	ts.Store.Reset()
	st := ts.UI.State()
	assert.True(t, st.SidebarCollapsed)
	assert.Empty(t, st.Toasts)
}

func TestStore_ResetAndSnapshot(t *testing.T) {
	ts := newTestStore(t)
	ts.Auth.SetUser(&entity.User{ID: "u1"})
	ts.Notification.Receive(entity.Notification{ID: "n1"})

	snapshot, ok := ts.Snapshot("notification")
	require.True(t, ok)
	assert.Len(t, snapshot.(NotificationState).Notifications, 1)

	_, ok = ts.Snapshot("nope")
	assert.False(t, ok)

	ts.Store.Reset()

	assert.Nil(t, ts.Auth.State().User)
	assert.Empty(t, ts.Notification.State().Notifications)
	assert.Len(t, ts.Names(), 10)
}
