package handler

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"

	"barterex/internal/domain/repository"
	"barterex/internal/infrastructure/firebase"
	"barterex/pkg/response"
)

// DevTokenHandler mints test credentials in development: Firebase custom
// tokens for the REST surface and HMAC socket tokens for the chat gateway.
type DevTokenHandler struct {
	firebaseAuth *firebase.AuthClient
	userRepo     repository.UserRepository
	jwtSecret    string
}

func NewDevTokenHandler(firebaseAuth *firebase.AuthClient, userRepo repository.UserRepository, jwtSecret string) *DevTokenHandler {
	return &DevTokenHandler{
		firebaseAuth: firebaseAuth,
		userRepo:     userRepo,
		jwtSecret:    jwtSecret,
	}
}

type devTokenRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

func (h *DevTokenHandler) GenerateTokens(c echo.Context) error {
	var req devTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userRepo.GetByID(c.Request().Context(), req.UserID)
	if err != nil {
		return response.Error(c, err)
	}

	customToken, err := h.firebaseAuth.GenerateToken(c.Request().Context(), user.ID)
	if err != nil {
		return response.Error(c, err)
	}

	socketToken, err := h.signSocketToken(user.ID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Dev tokens generated", map[string]interface{}{
		"custom_token": customToken,
		"socket_token": socketToken,
		"user": map[string]interface{}{
			"id":       user.ID,
			"email":    user.Email,
			"username": user.Username,
			"role":     user.Role,
		},
	})
}

func (h *DevTokenHandler) signSocketToken(uid string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   uid,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.jwtSecret))
}
