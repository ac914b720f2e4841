package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"safha/internal/domain"
	"safha/internal/domain/models"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
)

// RequiredRole is the role claim a token must carry to use the API
const RequiredRole = "authenticated"

// jwksVerifier implements JWTVerifier on top of a jwt.Keyfunc.
type jwksVerifier struct {
	keyFunc jwt.Keyfunc
	cancel  context.CancelFunc
	logger  *slog.Logger
}

// NewJWTVerifier creates a verifier that fetches public keys from a JWKS endpoint.
// Keys are cached and refreshed in the background until Close is called.
func NewJWTVerifier(jwksURL string, logger *slog.Logger) (JWTVerifier, error) {
	if jwksURL == "" {
		return nil, errors.New("JWKS URL cannot be empty")
	}

	ctx, cancel := context.WithCancel(context.Background())
	jwks, err := keyfunc.NewDefaultCtx(ctx, []string{jwksURL})
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to create JWKS client: %w", err)
	}

	logger.Info("JWT verifier initialized", "jwks_url", jwksURL)

	return &jwksVerifier{
		keyFunc: jwks.Keyfunc,
		cancel:  cancel,
		logger:  logger,
	}, nil
}

// newKeyfuncVerifier builds a verifier around a fixed key lookup
func newKeyfuncVerifier(keyFunc jwt.Keyfunc, logger *slog.Logger) *jwksVerifier {
	return &jwksVerifier{
		keyFunc: keyFunc,
		cancel:  func() {},
		logger:  logger,
	}
}

// VerifyToken validates a JWT token and extracts its claims.
func (v *jwksVerifier) VerifyToken(tokenString string) (*models.AccessClaims, error) {
	// Only asymmetric algorithms; rejects alg confusion with HS256 and "none"
	token, err := jwt.ParseWithClaims(tokenString, &models.AccessClaims{}, v.keyFunc,
		jwt.WithValidMethods([]string{"RS256", "ES256"}),
	)
	if err != nil {
		v.logger.Debug("token parse failed", "error", err.Error())
		return nil, domain.NewUnauthorizedError(err.Error())
	}
	if !token.Valid {
		return nil, domain.NewUnauthorizedError("token is invalid")
	}

	claims, ok := token.Claims.(*models.AccessClaims)
	if !ok {
		v.logger.Error("failed to extract claims from token")
		return nil, domain.NewUnauthorizedError("unexpected claims type")
	}

	if claims.Subject == "" {
		return nil, domain.NewUnauthorizedError("token missing subject claim")
	}

	// Reject anonymous tokens
	if claims.Role != RequiredRole {
		v.logger.Debug("token has invalid role",
			"role", claims.Role,
			"expected", RequiredRole,
			"user_id", claims.Subject,
		)
		return nil, domain.NewUnauthorizedError(fmt.Sprintf("role %q is not allowed", claims.Role))
	}

	return claims, nil
}

// Close stops the background JWKS refresh.
func (v *jwksVerifier) Close() error {
	v.cancel()
	v.logger.Info("JWT verifier closed")
	return nil
}
