package user

import (
	"errors"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/golang-jwt/jwt/v5"

	"w3liquor_backend/internal/authz"
	"w3liquor_backend/internal/cache"
	"w3liquor_backend/internal/database"
	"w3liquor_backend/internal/models"
	"w3liquor_backend/internal/utils"
)

// ================== AUTH ADMIN ==================

// Login authentifie un couple email/mot de passe puis vérifie le rôle admin
// AVANT d'émettre le token : un compte non-admin ne reçoit jamais de session
// active. Les codes d'erreur sont stables pour le mapping côté client.
func Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Login gagal. Coba lagi.", "code": "auth/invalid-request"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Format email tidak valid.", "code": "auth/invalid-email"})
		return
	}

	ctx := c.Request.Context()

	session, err := database.GetUsersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login gagal. Coba lagi.", "code": "auth/internal"})
		return
	}

	var u models.User
	u.Email = email
	err = session.Query(`SELECT user_id, name, password FROM users_by_email WHERE email = ?`, email).
		WithContext(ctx).Scan(&u.ID, &u.Name, &u.Password)
	if errors.Is(err, gocql.ErrNotFound) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email tidak terdaftar.", "code": "auth/user-not-found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login gagal. Coba lagi.", "code": "auth/internal"})
		return
	}

	ok, err := utils.VerifyPassword(input.Password, u.Password)
	if err != nil || !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Password salah.", "code": "auth/wrong-password"})
		return
	}

	// Même procédure de résolution que la garde : fail closed
	if authz.Default.Resolve(ctx, u.ID.String()) != authz.StatusGranted {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Akun ini tidak terdaftar sebagai admin.",
			"code":  "auth/admin-only",
		})
		return
	}

	token, err := utils.GenerateJWT(u)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login gagal. Coba lagi.", "code": "auth/internal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"userId":  u.ID.String(),
		"email":   u.Email,
		"name":    u.Name,
		"isAdmin": true,
	})
}

// Logout révoque le token présenté pour la durée restante de sa validité.
func Logout(c *gin.Context) {
	tokenString := c.GetString("token")
	if tokenString == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Token manquant"})
		return
	}

	ttl := 24 * time.Hour
	if token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{}); err == nil {
		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if exp, ok := claims["exp"].(float64); ok {
				ttl = time.Until(time.Unix(int64(exp), 0))
			}
		}
	}

	cache.BlacklistToken(c.Request.Context(), tokenString, ttl)
	c.JSON(http.StatusOK, gin.H{"message": "Berhasil keluar."})
}

// Me retourne l'identité du token et son statut admin, résolu à la demande.
// C'est le lookup "get-admin-record" que la garde côté client interroge.
func Me(c *gin.Context) {
	userID := c.GetString("user_id")
	status := authz.Default.Resolve(c.Request.Context(), userID)

	c.JSON(http.StatusOK, gin.H{
		"userId":  userID,
		"email":   c.GetString("email"),
		"isAdmin": status == authz.StatusGranted,
	})
}
