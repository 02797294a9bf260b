package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/ophelieturenne/cloud-bookshelf/internal/model"
	"github.com/ophelieturenne/cloud-bookshelf/pkg/auth"
)

type bookResponse struct {
	model.Book     `json:",inline"`
	AvailableCount int `json:"availableCount"`
}

func newBookResponse(b model.BookWithCounts) bookResponse {
	return bookResponse{
		Book:           b.Book,
		AvailableCount: b.AvailableCount(),
	}
}

func (h *Handler) GetBooks(c echo.Context) error {
	ctx := c.Request().Context()
	userID, err := auth.UserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	libraryID, err := pathID(c, "libraryId")
	if err != nil {
		return err
	}
	if err := h.requireMember(ctx, libraryID, userID); err != nil {
		return err
	}
	books, err := h.svc.GetBooks(ctx, libraryID)
	if err != nil {
		return httpError(err)
	}
	resp := make([]bookResponse, 0, len(books))
	for _, b := range books {
		resp = append(resp, newBookResponse(b))
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetBook(c echo.Context) error {
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
	book, err := h.svc.GetBook(ctx, libraryID, bookID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, newBookResponse(book))
}

func (h *Handler) CreateBook(c echo.Context) error {
	ctx := c.Request().Context()
	userID, err := auth.UserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	libraryID, err := pathID(c, "libraryId")
	if err != nil {
		return err
	}
	if err := h.requireLibraryAdmin(ctx, libraryID, userID); err != nil {
		return err
	}
	var req model.CreateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	book, err := h.svc.CreateBook(ctx, libraryID, userID, req)
	if err != nil {
		if errors.Is(err, model.ErrYearInFuture) || errors.Is(err, model.ErrQuantityRequired) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, book)
}

func (h *Handler) UpdateBook(c echo.Context) error {
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
	if err := h.requireLibraryAdmin(ctx, libraryID, userID); err != nil {
		return err
	}
	var req model.CreateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	book, err := h.svc.UpdateBook(ctx, libraryID, bookID, req)
	if err != nil {
		if errors.Is(err, model.ErrYearInFuture) || errors.Is(err, model.ErrQuantityRequired) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) DeleteBook(c echo.Context) error {
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
	if err := h.requireLibraryAdmin(ctx, libraryID, userID); err != nil {
		return err
	}
	if err := h.svc.DeleteBook(ctx, libraryID, bookID); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ReserveBook opens a pending reservation for the caller.
func (h *Handler) ReserveBook(c echo.Context) error {
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
	checkout, err := h.svc.RequestReservation(ctx, libraryID, bookID, userID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, checkout)
}
