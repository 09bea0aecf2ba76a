package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"mealpedeal/internal/pkg/jwt"
)

type AuthMiddleware struct {
	tokens *jwt.Service
}

const (
	ctxActorIDKey      = "actor_id"
	ctxActorRoleKey    = "actor_role"
	ctxRestaurantIDKey = "restaurant_id"
)

func NewAuthMiddleware(tokens *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxActorIDKey, claims.ActorID)
		c.Set(ctxActorRoleKey, jwt.Role(claims.Role))
		if claims.RestaurantID != nil {
			c.Set(ctxRestaurantIDKey, *claims.RestaurantID)
		}
		c.Set("jwt_claims", map[string]any{
			"actor_id": claims.ActorID.String(),
			"role":     claims.Role,
		})
		c.Next()
	}
}

// RequireManager must run after RequireAuth. It admits only restaurant
// managers carrying a restaurant claim.
func (m *AuthMiddleware) RequireManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetActorRole(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}
		if role != jwt.RoleManager {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Restaurant manager role required",
			})
			c.Abort()
			return
		}
		if _, ok := GetRestaurantID(c); !ok {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "No restaurant associated with this account",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func (m *AuthMiddleware) RequireCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetActorRole(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}
		if role != jwt.RoleCustomer {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Customer role required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetActorID(c *gin.Context) (uuid.UUID, bool) {
	actorID, exists := c.Get(ctxActorIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := actorID.(uuid.UUID)
	return id, ok
}

func GetActorRole(c *gin.Context) (jwt.Role, bool) {
	actorRole, exists := c.Get(ctxActorRoleKey)
	if !exists {
		return "", false
	}

	role, ok := actorRole.(jwt.Role)
	return role, ok
}

func GetRestaurantID(c *gin.Context) (uuid.UUID, bool) {
	restaurantID, exists := c.Get(ctxRestaurantIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := restaurantID.(uuid.UUID)
	return id, ok
}
