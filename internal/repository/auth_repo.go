package repository

import (
	"context"
	"fmt"
	"net/http"

	"github.com/arnav-sinha2713/trading-journal/config"
	"github.com/arnav-sinha2713/trading-journal/internal/dto"
	"github.com/arnav-sinha2713/trading-journal/pkg/cache"
	"github.com/arnav-sinha2713/trading-journal/pkg/httpclient"
	"github.com/arnav-sinha2713/trading-journal/pkg/logger"
)

// AuthRepository resolves a bearer token into the authenticated user via
// the external userinfo endpoint. Resolved sessions are cached for a short
// TTL so every request does not round-trip to the identity provider.
type AuthRepository interface {
	UserInfo(ctx context.Context, token string) (*dto.UserInfo, error)
}

type authRepository struct {
	httpClient httpclient.HTTPClient
	cache      cache.Cache
	cfg        *config.Config
	log        *logger.Logger
}

func NewAuthRepository(cfg *config.Config, sessionCache cache.Cache, log *logger.Logger) AuthRepository {
	return &authRepository{
		httpClient: httpclient.New(cfg.Auth.UserInfoURL, cfg.Auth.Timeout),
		cache:      sessionCache,
		cfg:        cfg,
		log:        log,
	}
}

func sessionKey(token string) string {
	return "session:" + token
}

func (r *authRepository) UserInfo(ctx context.Context, token string) (*dto.UserInfo, error) {
	if cached, ok := r.cache.Get(sessionKey(token)); ok {
		if user, ok := cached.(*dto.UserInfo); ok {
			return user, nil
		}
	}

	headers := map[string]string{
		"Authorization": "Bearer " + token,
	}

	var user dto.UserInfo
	resp, err := r.httpClient.Get(ctx, "", nil, headers, &user)
	if err != nil {
		return nil, fmt.Errorf("userinfo request failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo endpoint returned status %d", resp.StatusCode)
	}
	if user.Email == "" {
		return nil, fmt.Errorf("userinfo response missing email")
	}

	r.cache.Set(sessionKey(token), &user, r.cfg.Auth.SessionTTL)
	return &user, nil
}
