package adminclient

import (
	"context"
	"sync"
)

// Catalog tient la collection de produits affichée par le dashboard. La
// synchronisation est un full refresh : chaque Load remplace la collection
// entière, il n'y a pas de merge incrémental.
type Catalog struct {
	client *Client

	mu      sync.RWMutex
	liquors []Liquor
}

func NewCatalog(client *Client) *Catalog {
	return &Catalog{client: client}
}

// Load recharge la collection complète depuis le backend. En cas d'échec la
// collection en mémoire reste telle quelle, jamais d'écrasement partiel.
func (cat *Catalog) Load(ctx context.Context) error {
	liquors, err := cat.client.ListLiquors(ctx)
	if err != nil {
		return err
	}

	cat.mu.Lock()
	cat.liquors = liquors
	cat.mu.Unlock()
	return nil
}

// Delete supprime un produit puis resynchronise par un Load complet. Si la
// suppression échoue, la collection n'est pas touchée.
func (cat *Catalog) Delete(ctx context.Context, id string) error {
	if err := cat.client.DeleteLiquor(ctx, id); err != nil {
		return err
	}
	return cat.Load(ctx)
}

// Liquors retourne une copie de la collection courante.
func (cat *Catalog) Liquors() []Liquor {
	cat.mu.RLock()
	defer cat.mu.RUnlock()

	out := make([]Liquor, len(cat.liquors))
	copy(out, cat.liquors)
	return out
}
