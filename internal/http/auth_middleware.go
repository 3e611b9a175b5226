package http

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"carbon-edu/internal/service"
)

const accessClaimsKey = "access_claims"

// BearerAuthMiddleware valida el token de acceso si hay secreto configurado.
// Sin secreto el endpoint queda abierto.
func BearerAuthMiddleware(tokens *service.AccessTokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !tokens.Enabled() {
			c.Next()
			return
		}

		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}

		token := strings.TrimSpace(header[len("Bearer "):])
		claims, err := tokens.Parse(token)
		if err != nil {
			msg := "invalid token"
			if errors.Is(err, service.ErrTokenExpired) {
				msg = "token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		c.Set(accessClaimsKey, claims)
		c.Next()
	}
}

// GetAccessClaims obtiene los claims del token desde el contexto.
func GetAccessClaims(c *gin.Context) (service.AccessClaims, bool) {
	val, ok := c.Get(accessClaimsKey)
	if !ok {
		return service.AccessClaims{}, false
	}
	claims, ok := val.(service.AccessClaims)
	return claims, ok
}

// RateLimitMiddleware aplica el limitador de la ruta y publica los headers X-RateLimit-*.
// La clave es el sujeto del token si lo hay, si no la IP del cliente.
func RateLimitMiddleware(limiter service.RequestRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}
		key := c.ClientIP()
		if claims, ok := GetAccessClaims(c); ok {
			key = "sub:" + claims.Subject
		}

		decision := limiter.Allow(c.Request.Context(), key)
		if decision.Remaining >= 0 {
			c.Header("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
			c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
		}
		if !decision.Allowed {
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(decision.RetryAfter.Seconds()))))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":     "Rate limit tercapai. Silakan coba lagi nanti.",
				"retryable": true,
			})
			return
		}
		c.Next()
	}
}
