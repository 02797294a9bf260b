package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/ophelieturenne/cloud-bookshelf/internal/errs"
	md "github.com/ophelieturenne/cloud-bookshelf/pkg/middleware"
	"github.com/ophelieturenne/cloud-bookshelf/pkg/validate"
)

type Handler struct {
	svc BookshelfService
	log *zap.Logger
}

func New(svc BookshelfService, log *zap.Logger) *Handler {
	return &Handler{
		svc: svc,
		log: log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.POST("/register", h.Register)
	api.POST("/authorize", h.Authorize)

	authed := api.Group("", md.JwtAuthentication)

	authed.GET("/libraries", h.GetLibraries)
	authed.POST("/libraries", h.CreateLibrary)
	authed.POST("/libraries/access", h.AccessLibrary)
	authed.GET("/libraries/:libraryId", h.GetLibrary)

	authed.GET("/libraries/:libraryId/books", h.GetBooks)
	authed.POST("/libraries/:libraryId/books", h.CreateBook)
	authed.GET("/libraries/:libraryId/books/:bookId", h.GetBook)
	authed.PUT("/libraries/:libraryId/books/:bookId", h.UpdateBook)
	authed.DELETE("/libraries/:libraryId/books/:bookId", h.DeleteBook)

	authed.POST("/libraries/:libraryId/books/:bookId/reserve", h.ReserveBook)
	authed.GET("/libraries/:libraryId/books/:bookId/reviews", h.GetReviews)
	authed.POST("/libraries/:libraryId/books/:bookId/reviews", h.CreateReview)
	authed.POST("/libraries/:libraryId/books/:bookId/wishlist", h.AddToWishlist)
	authed.DELETE("/libraries/:libraryId/books/:bookId/wishlist", h.RemoveFromWishlist)

	authed.GET("/checkouts", h.GetCheckouts)
	authed.DELETE("/checkouts/:checkoutUid", h.CancelReservation)
	authed.POST("/checkouts/:checkoutUid/return", h.ReturnCheckout)
	authed.POST("/checkouts/:checkoutUid/approve", h.ApproveReservation)
	authed.POST("/checkouts/:checkoutUid/deny", h.DenyReservation)
	authed.GET("/libraries/:libraryId/admin/checkouts", h.GetPendingCheckouts)

	authed.DELETE("/reviews/:reviewId", h.DeleteReview)
	authed.GET("/wishlists", h.GetWishlists)
	authed.GET("/notifications", h.GetNotifications)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func pathID(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

// httpError maps the error taxonomy onto status codes: validation 400,
// missing 404, state conflicts and constraint violations 409.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrStateConflict), errors.Is(err, errs.ErrNotReservable):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrAlreadyMember),
		errors.Is(err, errs.ErrWishlistExists),
		errors.Is(err, errs.ErrLibraryExists),
		errors.Is(err, errs.ErrUserExists):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	var constraintErr *errs.ConstraintError
	if errors.As(err, &constraintErr) {
		return echo.NewHTTPError(http.StatusConflict, constraintErr.Message)
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
