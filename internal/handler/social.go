package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ophelieturenne/cloud-bookshelf/internal/model"
	"github.com/ophelieturenne/cloud-bookshelf/pkg/auth"
)

func (h *Handler) GetReviews(c echo.Context) error {
	ctx := c.Request().Context()
	userID, err := auth.UserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	libraryID, err := pathID(c, "libraryId")
	if err != nil {
		return err
	}
	bookID, err := pathID(c, "bookId")
	if err != nil {
		return err
	}
	if err := h.requireMember(ctx, libraryID, userID); err != nil {
		return err
	}
	reviews, err := h.svc.GetReviews(ctx, bookID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, reviews)
}

func (h *Handler) CreateReview(c echo.Context) error {
	ctx := c.Request().Context()
	userID, err := auth.UserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	libraryID, err := pathID(c, "libraryId")
	if err != nil {
		return err
	}
	bookID, err := pathID(c, "bookId")
	if err != nil {
		return err
	}
	if err := h.requireMember(ctx, libraryID, userID); err != nil {
		return err
	}
	var req model.CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	review, err := h.svc.CreateReview(ctx, userID, bookID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, review)
}

func (h *Handler) DeleteReview(c echo.Context) error {
	ctx := c.Request().Context()
	userID, err := auth.UserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	reviewID, err := pathID(c, "reviewId")
	if err != nil {
		return err
	}
	if err := h.svc.DeleteReview(ctx, reviewID, userID); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) AddToWishlist(c echo.Context) error {
	ctx := c.Request().Context()
	userID, err := auth.UserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	libraryID, err := pathID(c, "libraryId")
	if err != nil {
		return err
	}
	bookID, err := pathID(c, "bookId")
	if err != nil {
		return err
	}
	if err := h.requireMember(ctx, libraryID, userID); err != nil {
		return err
	}
	entry, err := h.svc.AddToWishlist(ctx, userID, libraryID, bookID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, entry)
}

func (h *Handler) RemoveFromWishlist(c echo.Context) error {
	ctx := c.Request().Context()
	userID, err := auth.UserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	bookID, err := pathID(c, "bookId")
	if err != nil {
		return err
	}
	if err := h.svc.RemoveFromWishlist(ctx, userID, bookID); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) GetWishlists(c echo.Context) error {
	ctx := c.Request().Context()
	userID, err := auth.UserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	entries, err := h.svc.GetWishlists(ctx, userID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, entries)
}

func (h *Handler) GetNotifications(c echo.Context) error {
	ctx := c.Request().Context()
	userID, err := auth.UserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	items, err := h.svc.GetNotifications(ctx, userID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}
