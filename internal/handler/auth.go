package handler

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/ophelieturenne/cloud-bookshelf/internal/errs"
	"github.com/ophelieturenne/cloud-bookshelf/internal/model"
	"github.com/ophelieturenne/cloud-bookshelf/pkg/auth"
)

const tokenTTL = 24 * time.Hour

func (h *Handler) Register(c echo.Context) error {
	var req model.UserCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.svc.RegisterUser(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, user)
}

func (h *Handler) Authorize(c echo.Context) error {
	var credentials model.AuthRequest
	if err := c.Bind(&credentials); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&credentials); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.svc.Authenticate(c.Request().Context(), credentials.Username, credentials.Password)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
		}
		return httpError(err)
	}

	claims := &auth.Claims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
		},
	}
	claims.Profile.UserID = user.ID
	claims.Profile.Username = user.Username
	claims.Profile.Admin = user.Admin

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(auth.JWTKey)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, model.AuthResponse{Token: tokenString})
}
