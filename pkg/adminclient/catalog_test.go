package adminclient

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, backend *fakeBackend) *Client {
	t.Helper()
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)

	c := New(srv.URL)
	c.SetToken("tok-admin")
	return c
}

func TestCatalog_LoadReplacesCollection(t *testing.T) {
	ctx := context.Background()
	backend := newFakeBackend()
	client := newTestClient(t, backend)
	cat := NewCatalog(client)

	_, err := client.CreateLiquor(ctx, Draft{Nama: "Old Fashioned Bourbon", Harga: "250000", Stok: "10", Kategori: "Whisky", Rating: "4.7", Sold: "0"})
	require.NoError(t, err)
	_, err = client.CreateLiquor(ctx, Draft{Nama: "Dry Gin", Harga: "180000", Stok: "4", Kategori: "Gin", Rating: "4.2", Sold: "1"})
	require.NoError(t, err)

	require.NoError(t, cat.Load(ctx))

	liquors := cat.Liquors()
	require.Len(t, liquors, 2)
	// Tri par date de création décroissante
	assert.Equal(t, "Dry Gin", liquors[0].Nama)
	assert.Equal(t, "Old Fashioned Bourbon", liquors[1].Nama)

	created := liquors[1]
	assert.False(t, created.ID.Time().IsZero())
	assert.Equal(t, 250000.0, created.Harga)
	assert.Equal(t, 10, created.Stok)
	assert.Equal(t, "Whisky", created.Kategori)
	assert.Equal(t, 4.7, created.Rating)
	assert.Equal(t, 0, created.Sold)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCatalog_FailedLoadKeepsStaleData(t *testing.T) {
	ctx := context.Background()
	backend := newFakeBackend()
	client := newTestClient(t, backend)
	cat := NewCatalog(client)

	_, err := client.CreateLiquor(ctx, Draft{Nama: "Anggur Merah", Kategori: "Wine"})
	require.NoError(t, err)
	require.NoError(t, cat.Load(ctx))
	require.Len(t, cat.Liquors(), 1)

	backend.mu.Lock()
	backend.listErr = true
	backend.mu.Unlock()

	assert.Error(t, cat.Load(ctx))
	// La collection précédente reste servie telle quelle
	assert.Len(t, cat.Liquors(), 1)
	assert.Equal(t, "Anggur Merah", cat.Liquors()[0].Nama)
}

func TestCatalog_DeleteThenFullRefresh(t *testing.T) {
	ctx := context.Background()
	backend := newFakeBackend()
	client := newTestClient(t, backend)
	cat := NewCatalog(client)

	l1, err := client.CreateLiquor(ctx, Draft{Nama: "Tequila Blanco", Kategori: "Tequila"})
	require.NoError(t, err)
	_, err = client.CreateLiquor(ctx, Draft{Nama: "Spiced Rum", Kategori: "Rum"})
	require.NoError(t, err)
	require.NoError(t, cat.Load(ctx))

	require.NoError(t, cat.Delete(ctx, l1.ID.String()))

	liquors := cat.Liquors()
	require.Len(t, liquors, 1)
	assert.Equal(t, "Spiced Rum", liquors[0].Nama)

	// La collection tenue est exactement le résultat d'un load frais
	fresh, err := client.ListLiquors(ctx)
	require.NoError(t, err)
	assert.Equal(t, fresh, liquors)
}

func TestCatalog_DeleteUnknownIDLeavesCollectionUntouched(t *testing.T) {
	ctx := context.Background()
	backend := newFakeBackend()
	client := newTestClient(t, backend)
	cat := NewCatalog(client)

	_, err := client.CreateLiquor(ctx, Draft{Nama: "Cognac VSOP", Kategori: "Cognac"})
	require.NoError(t, err)
	require.NoError(t, cat.Load(ctx))

	err = cat.Delete(ctx, "b5f06ad0-0000-1000-8000-000000000000")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.StatusCode)
	assert.Len(t, cat.Liquors(), 1)
}
