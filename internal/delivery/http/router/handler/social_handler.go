package handler

import (
	"net/http"

	"curator/internal/delivery/http/response"
	"curator/internal/domain/repository"
	"curator/internal/state"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type SocialHandler struct {
	social *state.SocialSlice
}

func NewSocialHandler(store *state.Store) *SocialHandler {
	return &SocialHandler{social: store.Social}
}

type commentsRequest struct {
	pageQuery
	PostID string `param:"id" json:"-"`
}

type addCommentRequest struct {
	PostID string `param:"id" json:"-"`
	Text   string `json:"text" validate:"required,max=1000"`
}

func (h *SocialHandler) Feed(c echo.Context) error {
	var req pageQuery
	if err := bind(c, &req); err != nil {
		return err
	}
	if _, err := h.social.FetchFeed(c.Request().Context(), req.pagination()); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, h.social.State())
}

func (h *SocialHandler) Post(c echo.Context) error {
	if _, err := h.social.FetchPost(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, h.social.State())
}

func (h *SocialHandler) CreatePost(c echo.Context) error {
	var params repository.CreatePostParams
	if err := bind(c, &params); err != nil {
		return err
	}
	if _, err := h.social.CreatePost(c.Request().Context(), params); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, h.social.State(), "Post created")
}

func (h *SocialHandler) DeletePost(c echo.Context) error {
	return h.respond(c, h.social.DeletePost(c.Request().Context(), c.Param("id")))
}

func (h *SocialHandler) Like(c echo.Context) error {
	return h.respond(c, h.social.LikePost(c.Request().Context(), c.Param("id")))
}

func (h *SocialHandler) Unlike(c echo.Context) error {
	return h.respond(c, h.social.UnlikePost(c.Request().Context(), c.Param("id")))
}

func (h *SocialHandler) Save(c echo.Context) error {
	return h.respond(c, h.social.SavePost(c.Request().Context(), c.Param("id")))
}

func (h *SocialHandler) Unsave(c echo.Context) error {
	return h.respond(c, h.social.UnsavePost(c.Request().Context(), c.Param("id")))
}

func (h *SocialHandler) Comments(c echo.Context) error {
	var req commentsRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if _, err := h.social.FetchComments(c.Request().Context(), req.PostID, req.pagination()); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, h.social.State())
}

func (h *SocialHandler) AddComment(c echo.Context) error {
	var req addCommentRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if _, err := h.social.AddComment(c.Request().Context(), req.PostID, req.Text); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, h.social.State(), "Comment added")
}

func (h *SocialHandler) DeleteComment(c echo.Context) error {
	return h.respond(c, h.social.DeleteComment(c.Request().Context(), c.Param("id")))
}

func (h *SocialHandler) respond(c echo.Context, err error) error {
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, h.social.State())
}
