package adminclient

import (
	"context"
	"errors"
	"io"
	"strconv"
	"sync"
)

// ErrSubmitInFlight est retourné quand une soumission est déjà en cours :
// une seule soumission à la fois par formulaire.
var ErrSubmitInFlight = errors.New("soumission déjà en cours")

// Draft est le brouillon du formulaire produit : les valeurs voyagent en
// string comme dans le formulaire du dashboard, la coercition numérique est
// faite côté serveur à l'écriture.
type Draft struct {
	Nama      string
	Harga     string
	Diskon    string
	Stok      string
	Deskripsi string
	Kategori  string
	Rating    string
	Sold      string

	// Image optionnelle, envoyée dans la même soumission multipart
	GambarName string
	Gambar     io.Reader
}

// Form gère le brouillon d'un produit, nouveau ou existant.
type Form struct {
	client *Client

	mu       sync.Mutex
	selected *Liquor
	draft    Draft
	busy     bool
}

func NewForm(client *Client) *Form {
	return &Form{client: client, draft: emptyDraft()}
}

// Valeurs par défaut du formulaire de création
func emptyDraft() Draft {
	return Draft{Rating: "5.0", Sold: "0"}
}

func draftFrom(l *Liquor) Draft {
	return Draft{
		Nama:      l.Nama,
		Harga:     strconv.FormatFloat(l.Harga, 'f', -1, 64),
		Diskon:    strconv.Itoa(int(l.Diskon)),
		Stok:      strconv.Itoa(l.Stok),
		Deskripsi: l.Deskripsi,
		Kategori:  l.Kategori,
		Rating:    strconv.FormatFloat(l.Rating, 'f', -1, 64),
		Sold:      strconv.Itoa(l.Sold),
	}
}

// SetSelected change le produit en cours d'édition (nil = mode création).
// Le brouillon est toujours réinitialisé : jamais de champs hérités en douce
// d'une sélection précédente.
func (f *Form) SetSelected(l *Liquor) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.selected = l
	if l == nil {
		f.draft = emptyDraft()
	} else {
		f.draft = draftFrom(l)
	}
}

// Edit applique une modification au brouillon courant.
func (f *Form) Edit(fn func(*Draft)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(&f.draft)
}

// Draft retourne une copie du brouillon courant.
func (f *Form) Draft() Draft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// IsEdit indique si le formulaire édite un produit existant.
func (f *Form) IsEdit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.selected != nil
}

// Submit envoie le brouillon : update si un identifiant existant est
// sélectionné, create sinon. Une seule soumission en vol à la fois. Après un
// succès l'appelant efface la sélection et recharge la liste.
func (f *Form) Submit(ctx context.Context) (*Liquor, error) {
	f.mu.Lock()
	if f.busy {
		f.mu.Unlock()
		return nil, ErrSubmitInFlight
	}
	f.busy = true
	selected := f.selected
	draft := f.draft
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.busy = false
		f.mu.Unlock()
	}()

	if selected != nil {
		return f.client.UpdateLiquor(ctx, selected.ID.String(), draft)
	}
	return f.client.CreateLiquor(ctx, draft)
}
