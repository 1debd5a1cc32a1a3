package http

import (
	"net/http"
	"strings"

	"github.com/arnav-sinha2713/trading-journal/internal/dto"
	"github.com/arnav-sinha2713/trading-journal/pkg/logger"

	"github.com/labstack/echo/v4"
)

const identityContextKey = "identity"

// authMiddleware gates every journal route: a bearer token must resolve to
// an authenticated user at the userinfo collaborator. The email becomes the
// identity key for the request.
func (h *HttpAPIHandler) authMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if token == "" {
			return c.JSON(http.StatusUnauthorized, dto.NewBaseResponse(http.StatusUnauthorized, "missing bearer token", nil))
		}

		user, err := h.authRepo.UserInfo(c.Request().Context(), token)
		if err != nil {
			h.log.WarnContext(c.Request().Context(), "Rejected unauthenticated request", logger.ErrorField(err))
			return c.JSON(http.StatusUnauthorized, dto.NewBaseResponse(http.StatusUnauthorized, "invalid or expired session", nil))
		}

		c.Set(identityContextKey, user.Email)
		return next(c)
	}
}

func identityFromContext(c echo.Context) string {
	identity, _ := c.Get(identityContextKey).(string)
	return identity
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
