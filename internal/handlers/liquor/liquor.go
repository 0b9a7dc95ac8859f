package liquor

import (
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/google/uuid"

	"w3liquor_backend/internal/cache"
	"w3liquor_backend/internal/database"
	"w3liquor_backend/internal/models"
	"w3liquor_backend/internal/services"
)

const selectColumns = `liquor_id, nama, kategori, harga, diskon, stok, deskripsi, rating, sold, gambar, gambar_id, created_at, updated_at`

// formInput lit les champs du formulaire multipart tels quels, la coercition
// est faite par models.LiquorInput.Normalize.
func formInput(c *gin.Context) models.LiquorInput {
	return models.LiquorInput{
		Nama:      c.PostForm("nama"),
		Harga:     c.PostForm("harga"),
		Diskon:    c.PostForm("diskon"),
		Stok:      c.PostForm("stok"),
		Deskripsi: c.PostForm("deskripsi"),
		Kategori:  c.PostForm("kategori"),
		Rating:    c.PostForm("rating"),
		Sold:      c.PostForm("sold"),
	}
}

// ListLiquors retourne le catalogue complet trié par date de création
// décroissante, avec cache Redis en lecture.
func ListLiquors(c *gin.Context) {
	ctx := c.Request.Context()

	if cached, ok := cache.GetCachedLiquors(ctx); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil data!"})
		return
	}

	iter := session.Query(`SELECT ` + selectColumns + ` FROM liquors`).WithContext(ctx).Iter()

	liquors := []models.Liquor{}
	var l models.Liquor

	for iter.Scan(&l.ID, &l.Nama, &l.Kategori, &l.Harga, &l.Diskon, &l.Stok, &l.Deskripsi,
		&l.Rating, &l.Sold, &l.Gambar, &l.GambarID, &l.CreatedAt, &l.UpdatedAt) {
		liquors = append(liquors, l)
		l = models.Liquor{}
	}

	if err := iter.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil data!"})
		return
	}

	// Le scan ScyllaDB n'est pas ordonné, tri en mémoire (petit catalogue)
	sort.Slice(liquors, func(i, j int) bool {
		return liquors[i].CreatedAt.After(liquors[j].CreatedAt)
	})

	cache.SetCachedLiquors(ctx, liquors)
	c.JSON(http.StatusOK, liquors)
}

// GetLiquor retourne un produit par id.
func GetLiquor(c *gin.Context) {
	liquorUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil data!"})
		return
	}

	var l models.Liquor
	err = session.Query(`SELECT `+selectColumns+` FROM liquors WHERE liquor_id = ?`, gocql.UUID(liquorUUID)).
		WithContext(c.Request.Context()).
		Scan(&l.ID, &l.Nama, &l.Kategori, &l.Harga, &l.Diskon, &l.Stok, &l.Deskripsi,
			&l.Rating, &l.Sold, &l.Gambar, &l.GambarID, &l.CreatedAt, &l.UpdatedAt)
	if errors.Is(err, gocql.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produk tidak ditemukan"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil data!"})
		return
	}

	c.JSON(http.StatusOK, l)
}

// GetLiquorImageURL retourne une URL signée temporaire pour l'image d'un
// produit, pour les déploiements où le bucket MinIO n'est pas public.
func GetLiquorImageURL(c *gin.Context) {
	liquorUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil data!"})
		return
	}

	ctx := c.Request.Context()

	var gambarID string
	err = session.Query(`SELECT gambar_id FROM liquors WHERE liquor_id = ?`, gocql.UUID(liquorUUID)).
		WithContext(ctx).Scan(&gambarID)
	if errors.Is(err, gocql.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produk tidak ditemukan"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil data!"})
		return
	}
	if gambarID == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produk tidak memiliki gambar"})
		return
	}

	url, err := services.GenerateSignedURL(ctx, gambarID, 15*time.Minute)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil data!"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// CreateLiquor crée un produit depuis le formulaire multipart du dashboard.
// L'image éventuelle est uploadée d'abord : si l'upload échoue, rien n'est
// écrit. Si l'insert échoue après l'upload, l'objet MinIO reste orphelin
// (limitation connue, pas de remédiation).
func CreateLiquor(c *gin.Context) {
	ctx := c.Request.Context()

	l := formInput(c).Normalize()

	if file, err := c.FormFile("gambar"); err == nil && file != nil {
		url, key, err := services.UploadLiquorImage(ctx, file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengunggah gambar!", "code": "upload/failed"})
			return
		}
		l.Gambar = url
		l.GambarID = key
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal simpan data!"})
		return
	}

	l.ID = gocql.TimeUUID()
	now := time.Now().UTC()
	l.CreatedAt = now
	l.UpdatedAt = now

	query := `INSERT INTO liquors (` + selectColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	if err := session.Query(query, l.ID, l.Nama, l.Kategori, l.Harga, l.Diskon, l.Stok, l.Deskripsi,
		l.Rating, l.Sold, l.Gambar, l.GambarID, l.CreatedAt, l.UpdatedAt).WithContext(ctx).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal simpan data!"})
		return
	}

	cache.InvalidateLiquors(ctx)
	c.JSON(http.StatusCreated, l)
}
