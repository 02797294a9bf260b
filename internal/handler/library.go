package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ophelieturenne/cloud-bookshelf/internal/model"
	"github.com/ophelieturenne/cloud-bookshelf/pkg/auth"
)

// requireMember admits library members and site-wide admins. The ledger
// itself never checks identity; it all happens here.
func (h *Handler) requireMember(ctx context.Context, libraryID, userID int) error {
	if auth.IsAdmin(ctx) {
		return nil
	}
	ok, err := h.svc.IsMember(ctx, libraryID, userID)
	if err != nil {
		return httpError(err)
	}
	if !ok {
		return echo.NewHTTPError(http.StatusForbidden, "not a member of this library")
	}
	return nil
}

func (h *Handler) requireLibraryAdmin(ctx context.Context, libraryID, userID int) error {
	if auth.IsAdmin(ctx) {
		return nil
	}
	ok, err := h.svc.IsLibraryAdmin(ctx, libraryID, userID)
	if err != nil {
		return httpError(err)
	}
	if !ok {
		return echo.NewHTTPError(http.StatusForbidden, "not an admin of this library")
	}
	return nil
}

func (h *Handler) GetLibraries(c echo.Context) error {
	ctx := c.Request().Context()
	userID, err := auth.UserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	libs, err := h.svc.GetLibraries(ctx, userID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, libs)
}

func (h *Handler) CreateLibrary(c echo.Context) error {
	ctx := c.Request().Context()
	userID, err := auth.UserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	var req model.CreateLibraryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	lib, err := h.svc.CreateLibrary(ctx, req.Name, userID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, lib)
}

// AccessLibrary joins the caller to a library by its shared unique id.
func (h *Handler) AccessLibrary(c echo.Context) error {
	ctx := c.Request().Context()
	userID, err := auth.UserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	var req model.AccessLibraryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	lib, err := h.svc.AccessLibrary(ctx, req.UniqueID, userID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, lib)
}

func (h *Handler) GetLibrary(c echo.Context) error {
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
	lib, err := h.svc.GetLibrary(ctx, libraryID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, lib)
}
