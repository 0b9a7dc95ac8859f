package services

import (
	"context"
	"net/url"
	"os"
	"time"

	"w3liquor_backend/internal/database"
)

// GenerateSignedURL génère une URL GET signée avec expiration pour une clé
// objet du bucket images, pour les déploiements où le bucket n'est pas public.
func GenerateSignedURL(ctx context.Context, objectKey string, duration time.Duration) (string, error) {
	reqParams := make(url.Values)

	presignedURL, err := database.MinIO.PresignedGetObject(
		ctx,
		os.Getenv("MINIO_BUCKET"),
		objectKey,
		duration,
		reqParams,
	)
	if err != nil {
		return "", err
	}

	return presignedURL.String(), nil
}
