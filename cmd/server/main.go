package main

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/google/uuid"

	"w3liquor_backend/internal/authz"
	"w3liquor_backend/internal/config"
	"w3liquor_backend/internal/database"
	"w3liquor_backend/internal/routes"
	"w3liquor_backend/internal/utils"
)

func main() {
	config.Load()

	database.ConnectDatabases()

	// Resolver admin partagé entre le login et la garde des routes
	authz.Init(authz.ScyllaDirectory{})

	warmupRedisCache()
	ensureBootstrapAdmin()

	r := gin.Default()
	routes.RegisterRoutes(r)

	port := config.Getenv("PORT", "8080")
	log.Println("🚀 Serveur W3LIQUOR lancé sur le port", port)
	r.Run(":" + port)
}

// warmupRedisCache fait un ping pour établir la connexion avant le premier appel
func warmupRedisCache() {
	ctx := context.Background()
	if err := database.Redis.Ping(ctx).Err(); err == nil {
		log.Println("✅ Cache Redis pré-chauffé")
	}
}

// ensureBootstrapAdmin crée le compte admin initial si ADMIN_EMAIL et
// ADMIN_PASSWORD sont définis, pour qu'un déploiement frais soit utilisable.
func ensureBootstrapAdmin() {
	email := strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL")))
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	session, err := database.GetUsersSession()
	if err != nil {
		log.Println("⚠️ Bootstrap admin impossible :", err)
		return
	}

	var userID gocql.UUID
	err = session.Query(`SELECT user_id FROM users_by_email WHERE email = ?`, email).Scan(&userID)
	if err == nil {
		ensureAdminRecord(session, userID, email)
		return
	}
	if !errors.Is(err, gocql.ErrNotFound) {
		log.Println("⚠️ Bootstrap admin impossible :", err)
		return
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Println("⚠️ Bootstrap admin impossible :", err)
		return
	}

	userID = gocql.UUID(uuid.New())
	name := config.Getenv("ADMIN_NAME", "Admin")
	now := time.Now().UTC()

	if err := session.Query(`INSERT INTO users (user_id, email, name, password, created_at) VALUES (?, ?, ?, ?, ?)`,
		userID, email, name, hash, now).Exec(); err != nil {
		log.Println("⚠️ Bootstrap admin impossible :", err)
		return
	}
	if err := session.Query(`INSERT INTO users_by_email (email, user_id, name, password) VALUES (?, ?, ?, ?)`,
		email, userID, name, hash).Exec(); err != nil {
		log.Println("⚠️ Bootstrap admin impossible :", err)
		return
	}

	ensureAdminRecord(session, userID, email)
	log.Println("✅ Compte admin initial créé :", email)
}

func ensureAdminRecord(session *gocql.Session, userID gocql.UUID, email string) {
	var existing string
	err := session.Query(`SELECT email FROM admins WHERE user_id = ?`, userID).Scan(&existing)
	if err == nil {
		return
	}
	if !errors.Is(err, gocql.ErrNotFound) {
		log.Println("⚠️ Vérification admin impossible :", err)
		return
	}

	if err := session.Query(`INSERT INTO admins (user_id, email, granted_at) VALUES (?, ?, ?)`,
		userID, email, time.Now().UTC()).Exec(); err != nil {
		log.Println("⚠️ Création de l'enregistrement admin impossible :", err)
	}
}
