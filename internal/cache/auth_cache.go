package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"w3liquor_backend/internal/database"
)

// Les tokens révoqués au logout restent en blacklist jusqu'à leur expiration
// naturelle, ensuite la clé Redis tombe toute seule.

func revokedKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "session:revoked:" + hex.EncodeToString(sum[:])
}

// BlacklistToken révoque un token JWT pour la durée restante de sa validité.
func BlacklistToken(ctx context.Context, token string, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	database.Redis.Set(ctx, revokedKey(token), "revoked", ttl)
}

// IsTokenBlacklisted indique si un token a été révoqué par un logout.
func IsTokenBlacklisted(ctx context.Context, token string) bool {
	return database.Redis.Exists(ctx, revokedKey(token)).Val() > 0
}
