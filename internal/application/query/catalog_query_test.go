// internal/application/query/catalog_query_test.go
package query

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fabdom "texia/internal/domain/fabric"
)

type fakeFabricReader struct {
	items []fabdom.Fabric
	err   error
}

func (f *fakeFabricReader) ListAll(context.Context) ([]fabdom.Fabric, error) {
	return f.items, f.err
}

type fakeImageResolver struct{}

func (fakeImageResolver) ResolveForResponse(objectPath string) string {
	if objectPath == "" {
		return ""
	}
	return "https://storage.googleapis.com/texia-fabric-images/" + objectPath
}

func catalogFixture() []fabdom.Fabric {
	return []fabdom.Fabric{
		{ID: "3", Name: "Lino Natural", Type: "Lino", Color: "Beige", Price: 25.0, Stock: 80, OrderCount: 5},
		{ID: "1", Name: "Algodón Pima", Type: "Algodón", Color: "Blanco", Price: 18.5, Stock: 320, OrderCount: 42, ImagePath: "telas/pima.jpg"},
		{ID: "2", Name: "Denim 14oz", Type: "Denim", Color: "Azul índigo", Price: 18.5, Stock: 150, OrderCount: 12},
	}
}

func TestCatalogListDefaultsToNameOrder(t *testing.T) {
	q := NewCatalogQuery(&fakeFabricReader{items: catalogFixture()}, fakeImageResolver{})

	got, err := q.List(context.Background(), CatalogParams{})
	require.NoError(t, err)

	require.Len(t, got.Telas, 3)
	assert.Equal(t, 3, got.Total)
	assert.Equal(t, "Algodón Pima", got.Telas[0].Nombre)
	assert.Equal(t, "Denim 14oz", got.Telas[1].Nombre)
	assert.Equal(t, "Lino Natural", got.Telas[2].Nombre)
}

func TestCatalogListSentinelCategoryKeepsAll(t *testing.T) {
	q := NewCatalogQuery(&fakeFabricReader{items: catalogFixture()}, nil)

	got, err := q.List(context.Background(), CatalogParams{Category: "Todas"})
	require.NoError(t, err)
	assert.Len(t, got.Telas, 3)
}

func TestCatalogListSearchMatchesNameTypeColor(t *testing.T) {
	q := NewCatalogQuery(&fakeFabricReader{items: catalogFixture()}, nil)

	for _, term := range []string{"pima", "ALGODÓN", "blanco"} {
		got, err := q.List(context.Background(), CatalogParams{Search: term})
		require.NoError(t, err)
		require.Len(t, got.Telas, 1, "term %q", term)
		assert.Equal(t, "1", got.Telas[0].ID)
	}
}

func TestCatalogListCategoryIsCaseInsensitive(t *testing.T) {
	q := NewCatalogQuery(&fakeFabricReader{items: catalogFixture()}, nil)

	got, err := q.List(context.Background(), CatalogParams{Category: "denim"})
	require.NoError(t, err)
	require.Len(t, got.Telas, 1)
	assert.Equal(t, "2", got.Telas[0].ID)
}

func TestCatalogListSortKeys(t *testing.T) {
	q := NewCatalogQuery(&fakeFabricReader{items: catalogFixture()}, nil)

	cases := []struct {
		sortKey string
		wantIDs []string
	}{
		{SortFabricPriceDesc, []string{"3", "1", "2"}}, // stable: 1 before 2 at 18.5
		{SortFabricPriceAsc, []string{"1", "2", "3"}},
		{SortFabricStock, []string{"1", "2", "3"}},
		{SortFabricOrders, []string{"1", "2", "3"}},
		{"no_such_key", []string{"1", "2", "3"}}, // falls back to nombre
	}
	for _, tc := range cases {
		got, err := q.List(context.Background(), CatalogParams{Sort: tc.sortKey})
		require.NoError(t, err)
		ids := make([]string, 0, len(got.Telas))
		for _, row := range got.Telas {
			ids = append(ids, row.ID)
		}
		assert.Equal(t, tc.wantIDs, ids, "sort %q", tc.sortKey)
	}
}

func TestCatalogPipelineIsIdempotent(t *testing.T) {
	all := catalogFixture()

	once := sortFabrics(filterFabrics(all, "a", "Todas"), SortFabricPriceAsc)
	twice := sortFabrics(filterFabrics(once, "a", "Todas"), SortFabricPriceAsc)

	assert.Equal(t, once, twice)
}

func TestCatalogPipelineLeavesInputUntouched(t *testing.T) {
	all := catalogFixture()
	before := make([]fabdom.Fabric, len(all))
	copy(before, all)

	_ = sortFabrics(filterFabrics(all, "", ""), SortFabricStock)

	assert.Equal(t, before, all)
}

func TestCatalogListResolvesImageURL(t *testing.T) {
	q := NewCatalogQuery(&fakeFabricReader{items: catalogFixture()}, fakeImageResolver{})

	got, err := q.List(context.Background(), CatalogParams{Search: "pima"})
	require.NoError(t, err)
	require.Len(t, got.Telas, 1)
	assert.Equal(t, "https://storage.googleapis.com/texia-fabric-images/telas/pima.jpg", got.Telas[0].ImagenURL)
}

func TestCatalogListSurfacesFetchError(t *testing.T) {
	boom := errors.New("rpc error: unavailable")
	q := NewCatalogQuery(&fakeFabricReader{err: boom}, nil)

	_, err := q.List(context.Background(), CatalogParams{})
	assert.ErrorIs(t, err, boom)
}
