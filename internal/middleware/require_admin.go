package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"w3liquor_backend/internal/authz"
)

// RequireAdmin vérifie qu'un enregistrement admin existe pour l'identité du
// token. Le statut est résolu à chaque requête, jamais mis en cache au-delà
// de la session, et toute incertitude vaut refus : le contenu protégé n'est
// jamais servi tant que le statut n'est pas StatusGranted.
func RequireAdmin(resolver *authz.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		if resolver == nil || resolver.Resolve(c.Request.Context(), userID) != authz.StatusGranted {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Akses admin diperlukan.",
				"code":  "auth/admin-only",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
