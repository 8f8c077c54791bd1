package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"taskhub/internal/auth"
	"taskhub/internal/errors"
)

// MessageResponse is the body of plain confirmation responses.
type MessageResponse struct {
	Message string `json:"message"`
}

// currentClaims returns the validated claims the auth middleware stored.
func currentClaims(c echo.Context) (*auth.Claims, error) {
	claims, ok := c.Get("user").(*auth.Claims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: errors.ErrInvalidToken.Error(),
			Code:  "INVALID_TOKEN",
		})
	}
	return claims, nil
}

// callerID resolves the caller's user id from the token subject. It is
// the sole source of authorization scoping; request bodies are never
// consulted for identity.
func callerID(c echo.Context) (uint, error) {
	claims, err := currentClaims(c)
	if err != nil {
		return 0, err
	}
	id, err := claims.UserID()
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: errors.ErrInvalidToken.Error(),
			Code:  "INVALID_TOKEN",
		})
	}
	return id, nil
}
