package liquor

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/google/uuid"

	"w3liquor_backend/internal/cache"
	"w3liquor_backend/internal/database"
	"w3liquor_backend/internal/services"
)

// UpdateLiquor réécrit tous les champs éditables d'un produit. Le dashboard
// renvoie le formulaire entier à chaque édition, il n'y a pas de patch
// partiel. Un nouveau fichier gambar remplace l'image, sinon l'ancienne est
// conservée telle quelle.
func UpdateLiquor(c *gin.Context) {
	liquorUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}
	id := gocql.UUID(liquorUUID)

	ctx := c.Request.Context()

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal simpan data!"})
		return
	}

	// L'enregistrement existant fournit l'image courante et created_at
	var gambar, gambarID string
	var createdAt time.Time
	err = session.Query(`SELECT gambar, gambar_id, created_at FROM liquors WHERE liquor_id = ?`, id).
		WithContext(ctx).Scan(&gambar, &gambarID, &createdAt)
	if errors.Is(err, gocql.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produk tidak ditemukan"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal simpan data!"})
		return
	}

	l := formInput(c).Normalize()
	l.ID = id
	l.Gambar = gambar
	l.GambarID = gambarID
	l.CreatedAt = createdAt

	if file, err := c.FormFile("gambar"); err == nil && file != nil {
		url, key, err := services.UploadLiquorImage(ctx, file)
		if err != nil {
			// Échec de l'upload = échec de toute la soumission, rien n'est écrit
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengunggah gambar!", "code": "upload/failed"})
			return
		}
		// L'ancien objet MinIO reste en place (limitation connue)
		l.Gambar = url
		l.GambarID = key
	}

	l.UpdatedAt = time.Now().UTC()

	query := `UPDATE liquors SET nama = ?, kategori = ?, harga = ?, diskon = ?, stok = ?,
	          deskripsi = ?, rating = ?, sold = ?, gambar = ?, gambar_id = ?, updated_at = ?
	          WHERE liquor_id = ?`
	if err := session.Query(query, l.Nama, l.Kategori, l.Harga, l.Diskon, l.Stok,
		l.Deskripsi, l.Rating, l.Sold, l.Gambar, l.GambarID, l.UpdatedAt, l.ID).
		WithContext(ctx).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal simpan data!"})
		return
	}

	cache.InvalidateLiquors(ctx)
	c.JSON(http.StatusOK, l)
}

// DeleteLiquor supprime un produit. La suppression est immédiate et
// définitive côté client, l'image hébergée n'est pas retirée du bucket
// (limitation connue).
func DeleteLiquor(c *gin.Context) {
	liquorUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}
	id := gocql.UUID(liquorUUID)

	ctx := c.Request.Context()

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal hapus data!"})
		return
	}

	// Un DELETE ScyllaDB sur un id inconnu réussit silencieusement, d'où la
	// vérification d'existence pour pouvoir signaler l'échec au dashboard
	var existing gocql.UUID
	err = session.Query(`SELECT liquor_id FROM liquors WHERE liquor_id = ?`, id).
		WithContext(ctx).Scan(&existing)
	if errors.Is(err, gocql.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produk tidak ditemukan"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal hapus data!"})
		return
	}

	if err := session.Query(`DELETE FROM liquors WHERE liquor_id = ?`, id).
		WithContext(ctx).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal hapus data!"})
		return
	}

	cache.InvalidateLiquors(ctx)
	c.JSON(http.StatusOK, gin.H{"message": "Produk dihapus."})
}
