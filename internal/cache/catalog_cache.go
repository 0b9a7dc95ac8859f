package cache

import (
	"context"
	"encoding/json"
	"time"

	"w3liquor_backend/internal/database"
	"w3liquor_backend/internal/models"
)

const (
	LiquorsCacheKey = "liquors:all"
	LiquorsCacheTTL = 1 * time.Hour
)

// GetCachedLiquors retourne la liste complète depuis Redis si présente.
func GetCachedLiquors(ctx context.Context) ([]models.Liquor, bool) {
	val, err := database.Redis.Get(ctx, LiquorsCacheKey).Result()
	if err != nil || val == "" {
		return nil, false
	}

	var liquors []models.Liquor
	if err := json.Unmarshal([]byte(val), &liquors); err != nil {
		return nil, false
	}
	return liquors, true
}

// SetCachedLiquors met la liste complète en cache. Une erreur Redis n'est pas
// bloquante, le cache est du best-effort.
func SetCachedLiquors(ctx context.Context, liquors []models.Liquor) {
	if data, err := json.Marshal(liquors); err == nil {
		database.Redis.Set(ctx, LiquorsCacheKey, data, LiquorsCacheTTL)
	}
}

// InvalidateLiquors supprime le cache après toute mutation : le modèle de
// synchronisation est un full refresh, jamais un patch incrémental.
func InvalidateLiquors(ctx context.Context) {
	database.Redis.Del(ctx, LiquorsCacheKey)
}
