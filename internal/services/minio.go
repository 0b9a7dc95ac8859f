package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"path"
	"time"

	"github.com/minio/minio-go/v7"

	"w3liquor_backend/internal/database"
)

// UploadFolder retourne le dossier cible des images produit dans le bucket.
func UploadFolder() string {
	if folder := os.Getenv("MINIO_UPLOAD_FOLDER"); folder != "" {
		return folder
	}
	return "products"
}

// UploadLiquorImage pousse l'image dans MinIO et retourne l'URL publique et
// la clé objet. La clé est conservée sur l'enregistrement (gambar_id) pour
// une éventuelle suppression ultérieure.
func UploadLiquorImage(ctx context.Context, file *multipart.FileHeader) (string, string, error) {
	if database.MinIO == nil {
		return "", "", fmt.Errorf("MinIO non initialisé")
	}

	f, err := file.Open()
	if err != nil {
		return "", "", err
	}
	defer f.Close()

	bucket := os.Getenv("MINIO_BUCKET")
	objectName := path.Join(UploadFolder(), fmt.Sprintf("%d-%s", time.Now().UnixNano(), file.Filename))

	_, err = database.MinIO.PutObject(ctx, bucket, objectName, f, file.Size,
		minio.PutObjectOptions{ContentType: file.Header.Get("Content-Type")})
	if err != nil {
		return "", "", err
	}

	scheme := "http"
	if os.Getenv("MINIO_USE_SSL") == "true" {
		scheme = "https"
	}
	url := fmt.Sprintf("%s://%s/%s/%s", scheme, os.Getenv("MINIO_ENDPOINT"), bucket, objectName)
	return url, objectName, nil
}
