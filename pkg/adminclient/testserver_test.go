package adminclient

import (
	"encoding/json"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/gocql/gocql"

	"w3liquor_backend/internal/models"
)

// fakeBackend imite le backend W3LIQUOR en mémoire pour les tests du client.
type fakeBackend struct {
	mu      sync.Mutex
	liquors []models.Liquor
	listErr bool
	seq     int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{}
}

func (b *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", b.login)
	mux.HandleFunc("POST /api/auth/logout", b.logout)
	mux.HandleFunc("GET /api/auth/me", b.me)
	mux.HandleFunc("GET /api/liquors", b.list)
	mux.HandleFunc("GET /api/liquors/{id}", b.get)
	mux.HandleFunc("POST /api/liquors", b.create)
	mux.HandleFunc("PUT /api/liquors/{id}", b.update)
	mux.HandleFunc("DELETE /api/liquors/{id}", b.remove)
	return mux
}

func (b *fakeBackend) nextCreatedAt() time.Time {
	b.seq++
	return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(b.seq) * time.Second)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (b *fakeBackend) login(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	json.NewDecoder(r.Body).Decode(&input)

	switch {
	case input.Email == "pas-un-email":
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Format email tidak valid.", "code": "auth/invalid-email"})
	case input.Email == "inconnu@w3liquor.test":
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Email tidak terdaftar.", "code": "auth/user-not-found"})
	case input.Email == "staff@w3liquor.test":
		writeJSON(w, http.StatusForbidden, map[string]string{"error": "Akun ini tidak terdaftar sebagai admin.", "code": "auth/admin-only"})
	case input.Password != "rahasia":
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Password salah.", "code": "auth/wrong-password"})
	default:
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"token":   "tok-admin",
			"userId":  "u-admin",
			"email":   input.Email,
			"name":    "Admin",
			"isAdmin": true,
		})
	}
}

func (b *fakeBackend) logout(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") == "" {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Token manquant"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Déconnecté"})
}

func (b *fakeBackend) get(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := r.PathValue("id")
	for _, existing := range b.liquors {
		if existing.ID.String() == id {
			writeJSON(w, http.StatusOK, existing)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "Produk tidak ditemukan"})
}

func (b *fakeBackend) me(w http.ResponseWriter, r *http.Request) {
	switch r.Header.Get("Authorization") {
	case "Bearer tok-admin":
		writeJSON(w, http.StatusOK, map[string]interface{}{"userId": "u-admin", "email": "admin@w3liquor.test", "isAdmin": true})
	case "Bearer tok-staff":
		writeJSON(w, http.StatusOK, map[string]interface{}{"userId": "u-staff", "email": "staff@w3liquor.test", "isAdmin": false})
	default:
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Token manquant"})
	}
}

func (b *fakeBackend) list(w http.ResponseWriter, _ *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.listErr {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Gagal mengambil data!"})
		return
	}

	out := make([]models.Liquor, len(b.liquors))
	copy(out, b.liquors)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	writeJSON(w, http.StatusOK, out)
}

func (b *fakeBackend) create(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	l := b.liquorFromForm(r)
	l.ID = gocql.TimeUUID()
	l.CreatedAt = b.nextCreatedAt()
	l.UpdatedAt = l.CreatedAt

	b.liquors = append(b.liquors, l)
	writeJSON(w, http.StatusCreated, l)
}

func (b *fakeBackend) update(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := r.PathValue("id")
	for i, existing := range b.liquors {
		if existing.ID.String() == id {
			l := b.liquorFromForm(r)
			l.ID = existing.ID
			l.CreatedAt = existing.CreatedAt
			if l.Gambar == "" {
				l.Gambar = existing.Gambar
				l.GambarID = existing.GambarID
			}
			l.UpdatedAt = b.nextCreatedAt()
			b.liquors[i] = l
			writeJSON(w, http.StatusOK, l)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "Produk tidak ditemukan"})
}

func (b *fakeBackend) remove(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := r.PathValue("id")
	for i, existing := range b.liquors {
		if existing.ID.String() == id {
			b.liquors = append(b.liquors[:i], b.liquors[i+1:]...)
			writeJSON(w, http.StatusOK, map[string]string{"message": "Produk dihapus."})
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "Produk tidak ditemukan"})
}

// liquorFromForm applique la même coercition que le vrai backend.
func (b *fakeBackend) liquorFromForm(r *http.Request) models.Liquor {
	r.ParseMultipartForm(10 << 20)
	l := models.LiquorInput{
		Nama:      r.FormValue("nama"),
		Harga:     r.FormValue("harga"),
		Diskon:    r.FormValue("diskon"),
		Stok:      r.FormValue("stok"),
		Deskripsi: r.FormValue("deskripsi"),
		Kategori:  r.FormValue("kategori"),
		Rating:    r.FormValue("rating"),
		Sold:      r.FormValue("sold"),
	}.Normalize()

	if _, hdr, err := r.FormFile("gambar"); err == nil {
		l.Gambar = "http://images.test/products/" + hdr.Filename
		l.GambarID = "products/" + hdr.Filename
	}
	return l
}
