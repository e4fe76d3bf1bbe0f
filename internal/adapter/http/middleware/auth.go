package middleware

import (
	"strings"

	"vnpay-connector/internal/core/ports"
	"vnpay-connector/pkg/apperror"
	"vnpay-connector/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// CtxAPIClient is the gin context key holding the authenticated token subject.
const CtxAPIClient = "api_client"

const bearerPrefix = "Bearer "

// JWTAuth guards merchant API routes with a bearer token that must carry scope.
// A missing signing secret rejects every request with CFG_001.
func JWTAuth(tokenSvc ports.TokenService, scope string, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenSvc == nil {
			response.Error(c, apperror.ErrConfiguration("auth.jwt_secret"))
			c.Abort()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, bearerPrefix) || len(authHeader) == len(bearerPrefix) {
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}

		claims, err := tokenSvc.Validate(strings.TrimSpace(authHeader[len(bearerPrefix):]))
		if err != nil {
			if apperror.HasCode(err, apperror.CodeConfiguration) {
				log.Error().Err(err).Msg("merchant API token secret not configured")
				response.Error(c, err)
			} else {
				log.Warn().Err(err).Str("client_ip", ClientIP(c)).Msg("rejected merchant API token")
				response.Error(c, apperror.ErrInvalidToken())
			}
			c.Abort()
			return
		}

		if !claims.HasScope(scope) {
			log.Warn().Str("api_client", claims.Client).Str("scope", scope).Msg("merchant API token lacks scope")
			response.Error(c, apperror.ErrForbidden(scope))
			c.Abort()
			return
		}

		c.Set(CtxAPIClient, claims.Client)
		c.Next()
	}
}
