package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

// JWTKey is set once at startup from config before the server starts.
var JWTKey = []byte("cloud-bookshelf-dev-key")

type Config struct {
	Secret string `yaml:"secret" envconfig:"JWT_SECRET"`
}

type Claims struct {
	Profile struct {
		UserID   int    `json:"userId"`
		Username string `json:"username"`
		Admin    bool   `json:"admin"`
	} `json:"profile"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type contextKey int

const (
	userIDKey contextKey = iota + 1
	userNameKey
	userAdminKey
)

func SetAuthContext(ctx context.Context, userID int, username string, admin bool) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	ctx = context.WithValue(ctx, userNameKey, username)
	return context.WithValue(ctx, userAdminKey, admin)
}

func UserID(ctx context.Context) (int, error) {
	id, ok := ctx.Value(userIDKey).(int)
	if !ok || id == 0 {
		return 0, errors.New("user id is not set")
	}
	return id, nil
}

func UserName(ctx context.Context) (string, error) {
	name, ok := ctx.Value(userNameKey).(string)
	if !ok || name == "" {
		return "", errors.New("username is not set")
	}
	return name, nil
}

// IsAdmin reports the site-wide admin flag carried by the token,
// independent of per-library admin membership.
func IsAdmin(ctx context.Context) bool {
	admin, _ := ctx.Value(userAdminKey).(bool)
	return admin
}
