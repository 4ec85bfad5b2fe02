// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"curator/config"
	"curator/internal/delivery/http/middleware"
	"curator/internal/delivery/http/router/handler"
	"curator/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config              *config.Config
	SessionMiddleware   *middleware.SessionMiddleware
	StateHandler        *handler.StateHandler
	AuthHandler         *handler.AuthHandler
	UserHandler         *handler.UserHandler
	WardrobeHandler     *handler.WardrobeHandler
	OutfitHandler       *handler.OutfitHandler
	SocialHandler       *handler.SocialHandler
	SearchHandler       *handler.SearchHandler
	CartHandler         *handler.CartHandler
	NotificationHandler *handler.NotificationHandler
	LookbookHandler     *handler.LookbookHandler
	UIHandler           *handler.UIHandler
}

type router struct {
	RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{RouterParams: params}
}

// RegisterRoutes sets up every gateway route. Social and lookbook routes only
// exist when their feature flag is on.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	stateGroup := e.Group("/state")
	if !r.Config.Env.Debug {
		// Raw slice dumps are a debugging aid; outside debug mode only admins see them.
		stateGroup.Use(r.SessionMiddleware.RequireSession, r.SessionMiddleware.RequireRole(entity.RoleAdmin))
	}
	{
		stateGroup.GET("", r.StateHandler.List)
		stateGroup.GET("/:slice", r.StateHandler.Get)
	}

	authGroup := e.Group("/auth")
	{
		authGroup.GET("", r.AuthHandler.State)
		authGroup.POST("/login", r.AuthHandler.Login)
		authGroup.POST("/register", r.AuthHandler.Register)
		authGroup.GET("/oauth/providers", r.AuthHandler.Providers)
		authGroup.GET("/oauth/:provider/url", r.AuthHandler.OAuthURL)
		authGroup.POST("/oauth/:provider", r.AuthHandler.LoginWithOAuth)
		authGroup.POST("/refresh", r.AuthHandler.Refresh)
		authGroup.POST("/verify-email", r.AuthHandler.VerifyEmail)
		authGroup.POST("/password-reset", r.AuthHandler.RequestPasswordReset)
		authGroup.POST("/password-reset/confirm", r.AuthHandler.ResetPassword)
		authGroup.GET("/me", r.AuthHandler.Me, r.SessionMiddleware.RequireSession)
		authGroup.POST("/logout", r.AuthHandler.Logout, r.SessionMiddleware.RequireSession)
	}

	// Public catalogue reads
	e.GET("/users/:id", r.UserHandler.Get)
	e.GET("/users/:id/followers", r.UserHandler.Followers)
	e.GET("/users/:id/following", r.UserHandler.Following)
	e.GET("/outfits/:id", r.OutfitHandler.Get)
	e.GET("/outfits/:id/qr", r.OutfitHandler.ShareQR)
	e.GET("/search", r.SearchHandler.Text)

	userGroup := e.Group("/users", r.SessionMiddleware.RequireSession)
	{
		userGroup.PATCH("/:id", r.UserHandler.UpdateProfile)
		userGroup.PUT("/:id/preferences", r.UserHandler.UpdatePreferences)
		userGroup.POST("/:id/follow", r.UserHandler.Follow)
		userGroup.DELETE("/:id/follow", r.UserHandler.Unfollow)
		userGroup.DELETE("/:id", r.UserHandler.Delete)
	}

	wardrobeGroup := e.Group("/wardrobe", r.SessionMiddleware.RequireSession)
	{
		wardrobeGroup.GET("", r.WardrobeHandler.Get)
		wardrobeGroup.GET("/items", r.WardrobeHandler.Items)
		wardrobeGroup.GET("/items/next", r.WardrobeHandler.NextItems)
		wardrobeGroup.GET("/items/:id", r.WardrobeHandler.Item)
		wardrobeGroup.POST("/items", r.WardrobeHandler.AddItem)
		wardrobeGroup.PATCH("/items/:id", r.WardrobeHandler.UpdateItem)
		wardrobeGroup.POST("/items/:id/worn", r.WardrobeHandler.MarkWorn)
		wardrobeGroup.DELETE("/items/:id", r.WardrobeHandler.DeleteItem)
	}

	outfitGroup := e.Group("/outfits", r.SessionMiddleware.RequireSession)
	{
		outfitGroup.GET("/recommendations", r.OutfitHandler.Recommendations)
		outfitGroup.GET("/saved", r.OutfitHandler.Saved)
		outfitGroup.POST("/:id/like", r.OutfitHandler.Like)
		outfitGroup.DELETE("/:id/like", r.OutfitHandler.Unlike)
		outfitGroup.POST("/:id/save", r.OutfitHandler.Save)
		outfitGroup.DELETE("/:id/save", r.OutfitHandler.Unsave)
	}

	searchGroup := e.Group("/search", r.SessionMiddleware.RequireSession)
	{
		searchGroup.POST("/visual", r.SearchHandler.Visual)
		searchGroup.GET("/history", r.SearchHandler.History)
		searchGroup.DELETE("/history", r.SearchHandler.ClearHistory)
		searchGroup.DELETE("/results", r.SearchHandler.ClearResults)
	}

	cartGroup := e.Group("/cart", r.SessionMiddleware.RequireSession)
	{
		cartGroup.GET("", r.CartHandler.Get)
		cartGroup.DELETE("", r.CartHandler.Clear)
		cartGroup.POST("/items", r.CartHandler.AddItem)
		cartGroup.PATCH("/items/:id", r.CartHandler.UpdateQuantity)
		cartGroup.DELETE("/items/:id", r.CartHandler.RemoveItem)
		cartGroup.POST("/promo", r.CartHandler.ApplyPromo)
		cartGroup.DELETE("/promo", r.CartHandler.RemovePromo)
		cartGroup.POST("/shipping", r.CartHandler.Shipping)
		cartGroup.POST("/checkout", r.CartHandler.Checkout)
	}

	notificationGroup := e.Group("/notifications", r.SessionMiddleware.RequireSession)
	{
		notificationGroup.GET("", r.NotificationHandler.List)
		notificationGroup.GET("/unread-count", r.NotificationHandler.UnreadCount)
		notificationGroup.POST("/read-all", r.NotificationHandler.MarkAllRead)
		notificationGroup.POST("/:id/read", r.NotificationHandler.MarkRead)
		notificationGroup.DELETE("/:id", r.NotificationHandler.Delete)
	}

	uiGroup := e.Group("/ui")
	{
		uiGroup.GET("", r.UIHandler.Get)
		uiGroup.POST("/sidebar/toggle", r.UIHandler.ToggleSidebar)
		uiGroup.PUT("/sidebar", r.UIHandler.SetSidebar)
		uiGroup.POST("/toasts", r.UIHandler.ShowToast)
		uiGroup.DELETE("/toasts/:id", r.UIHandler.DismissToast)
		uiGroup.PUT("/modal", r.UIHandler.OpenModal)
		uiGroup.DELETE("/modal", r.UIHandler.CloseModal)
	}

	if r.Config.Features.Social {
		r.registerSocialRoutes(e)
	}
	if r.Config.Features.Lookbooks {
		r.registerLookbookRoutes(e)
	}
}

func (r *router) registerSocialRoutes(e *echo.Echo) {
	socialGroup := e.Group("/social", r.SessionMiddleware.RequireSession)
	{
		socialGroup.GET("/feed", r.SocialHandler.Feed)
		socialGroup.POST("/posts", r.SocialHandler.CreatePost)
		socialGroup.GET("/posts/:id", r.SocialHandler.Post)
		socialGroup.DELETE("/posts/:id", r.SocialHandler.DeletePost)
		socialGroup.POST("/posts/:id/like", r.SocialHandler.Like)
		socialGroup.DELETE("/posts/:id/like", r.SocialHandler.Unlike)
		socialGroup.POST("/posts/:id/save", r.SocialHandler.Save)
		socialGroup.DELETE("/posts/:id/save", r.SocialHandler.Unsave)
		socialGroup.GET("/posts/:id/comments", r.SocialHandler.Comments)
		socialGroup.POST("/posts/:id/comments", r.SocialHandler.AddComment)
		socialGroup.DELETE("/comments/:id", r.SocialHandler.DeleteComment)
	}
}

func (r *router) registerLookbookRoutes(e *echo.Echo) {
	e.GET("/lookbooks", r.LookbookHandler.List)
	e.GET("/lookbooks/:id", r.LookbookHandler.Get)
	e.GET("/lookbooks/:id/qr", r.LookbookHandler.ShareQR)

	lookbookGroup := e.Group("/lookbooks", r.SessionMiddleware.RequireSession)
	{
		lookbookGroup.POST("", r.LookbookHandler.Create)
		lookbookGroup.DELETE("/:id", r.LookbookHandler.Delete)
		lookbookGroup.POST("/:id/outfits", r.LookbookHandler.AddOutfit)
		lookbookGroup.DELETE("/:id/outfits/:outfitId", r.LookbookHandler.RemoveOutfit)
		lookbookGroup.POST("/:id/like", r.LookbookHandler.Like)
		lookbookGroup.DELETE("/:id/like", r.LookbookHandler.Unlike)
	}
}
