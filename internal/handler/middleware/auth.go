package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"clubtab/internal/domain/member"
	"clubtab/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TokenValidator is satisfied by jwt.Service.
type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

type AuthMiddleware struct {
	tokenValidator TokenValidator
}

const (
	ctxMemberIDKey   = "member_id"
	ctxMemberRoleKey = "member_role"
	ctxTokenScopeKey = "token_scope"
)

var roleHierarchy = map[member.Role]int{
	member.RoleMember: 1,
	member.RoleAdmin:  2,
}

func NewAuthMiddleware(tokenValidator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxMemberIDKey, claims.MemberID)
		c.Set(ctxMemberRoleKey, member.Role(claims.Role))
		c.Set(ctxTokenScopeKey, claims.Scope)
		c.Set("jwt_claims", map[string]any{
			"member_id": claims.MemberID.String(),
			"role":      claims.Role,
			"scope":     claims.Scope,
		})
		c.Next()
	}
}

func hasMinimumRole(memberRole, minRole member.Role) bool {
	memberLevel, memberExists := roleHierarchy[memberRole]
	minLevel, minExists := roleHierarchy[minRole]
	return memberExists && minExists && memberLevel >= minLevel
}

func (m *AuthMiddleware) RequireRoleAtLeast(minRole member.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetMemberRole(c)
		if !ok {
			// Unexpected error: should be used after RequireAuth()
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if !hasMinimumRole(role, minRole) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireFullScope rejects kiosk tokens. Terminal sessions may only book
// drinks and look at the logged-in member's own tab; everything else needs
// a full login.
func (m *AuthMiddleware) RequireFullScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		scope, ok := GetTokenScope(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if scope != jwt.ScopeFull {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Not available on a terminal session",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func GetMemberID(c *gin.Context) (uuid.UUID, bool) {
	memberID, exists := c.Get(ctxMemberIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := memberID.(uuid.UUID)
	return id, ok
}

func GetMemberRole(c *gin.Context) (member.Role, bool) {
	memberRole, exists := c.Get(ctxMemberRoleKey)
	if !exists {
		return "", false
	}

	role, ok := memberRole.(member.Role)
	return role, ok
}

func GetTokenScope(c *gin.Context) (string, bool) {
	scope, exists := c.Get(ctxTokenScopeKey)
	if !exists {
		return "", false
	}

	s, ok := scope.(string)
	return s, ok
}

// IsAdmin is a convenience for handlers that branch on ownership checks.
func IsAdmin(c *gin.Context) bool {
	role, ok := GetMemberRole(c)
	return ok && role == member.RoleAdmin
}
