package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ophelieturenne/cloud-bookshelf/pkg/auth"
)

func (h *Handler) GetCheckouts(c echo.Context) error {
	ctx := c.Request().Context()
	userID, err := auth.UserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	checkouts, err := h.svc.GetCheckouts(ctx, userID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, checkouts)
}

// CancelReservation withdraws the caller's own pending request.
func (h *Handler) CancelReservation(c echo.Context) error {
	ctx := c.Request().Context()
	userID, err := auth.UserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	checkoutUID := c.Param("checkoutUid")
	if checkoutUID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "checkoutUid is empty")
	}
	if err := h.svc.CancelReservation(ctx, checkoutUID, userID); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ReturnCheckout closes an approved checkout. Allowed for the borrower and
// for admins of the checkout's library.
func (h *Handler) ReturnCheckout(c echo.Context) error {
	ctx := c.Request().Context()
	userID, err := auth.UserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	checkoutUID := c.Param("checkoutUid")
	if checkoutUID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "checkoutUid is empty")
	}
	checkout, err := h.svc.GetCheckout(ctx, checkoutUID)
	if err != nil {
		return httpError(err)
	}
	if checkout.UserID != userID {
		if err := h.requireLibraryAdmin(ctx, checkout.LibraryID, userID); err != nil {
			return err
		}
	}
	returned, err := h.svc.MarkReturned(ctx, checkoutUID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, returned)
}

func (h *Handler) ApproveReservation(c echo.Context) error {
	return h.resolveReservation(c, true)
}

func (h *Handler) DenyReservation(c echo.Context) error {
	return h.resolveReservation(c, false)
}

// resolveReservation handles the admin approve/deny actions, which share the
// same authorization path.
func (h *Handler) resolveReservation(c echo.Context, approve bool) error {
	ctx := c.Request().Context()
	userID, err := auth.UserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	checkoutUID := c.Param("checkoutUid")
	if checkoutUID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "checkoutUid is empty")
	}
	checkout, err := h.svc.GetCheckout(ctx, checkoutUID)
	if err != nil {
		return httpError(err)
	}
	if err := h.requireLibraryAdmin(ctx, checkout.LibraryID, userID); err != nil {
		return err
	}

	if approve {
		checkout, err = h.svc.ApproveReservation(ctx, checkoutUID)
	} else {
		checkout, err = h.svc.DenyReservation(ctx, checkoutUID)
	}
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, checkout)
}

// GetPendingCheckouts is the admin dashboard queue: unresolved requests in
// submission order.
func (h *Handler) GetPendingCheckouts(c echo.Context) error {
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
	checkouts, err := h.svc.GetPendingCheckouts(ctx, libraryID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, checkouts)
}
