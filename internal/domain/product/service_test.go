package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/voice-shop/internal/pkg/apperr"
)

func ids(products []Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestListNoFilters(t *testing.T) {
	c := NewCatalog(DefaultProducts())
	assert.Equal(t, []string{"p-100", "p-101", "p-102"}, ids(c.List(ListRequest{})))
}

func TestListQueryMatchesNameOrDescription(t *testing.T) {
	c := NewCatalog(DefaultProducts())

	assert.Equal(t, []string{"p-102"}, ids(c.List(ListRequest{Query: "lamp"})))
	assert.Equal(t, []string{"p-102"}, ids(c.List(ListRequest{Query: "LAMP"})))
	// description only
	assert.Equal(t, []string{"p-101"}, ids(c.List(ListRequest{Query: "hot-swappable"})))
	assert.Empty(t, c.List(ListRequest{Query: "toaster"}))
}

func TestListFiltersCompose(t *testing.T) {
	c := NewCatalog(append(DefaultProducts(), Product{
		ID:       "p-200",
		Name:     "Lava Lamp",
		Category: "decor",
	}))

	assert.Equal(t, []string{"p-102", "p-200"}, ids(c.List(ListRequest{Query: "lamp"})))
	assert.Equal(t, []string{"p-102"}, ids(c.List(ListRequest{Query: "lamp", Category: "home"})))
	assert.Empty(t, c.List(ListRequest{Query: "keyboard", Category: "home"}))
}

func TestListCategoryIsExact(t *testing.T) {
	c := NewCatalog(DefaultProducts())
	assert.Empty(t, c.List(ListRequest{Category: "Home"}))
	assert.Equal(t, []string{"p-100"}, ids(c.List(ListRequest{Category: "audio"})))
}

func TestListReturnsCopy(t *testing.T) {
	c := NewCatalog(DefaultProducts())

	first := c.List(ListRequest{})
	first[0].Price = 1

	p, err := c.Get(first[0].ID)
	require.NoError(t, err)
	assert.Equal(t, int64(12900), p.Price)
}

func TestGet(t *testing.T) {
	c := NewCatalog(DefaultProducts())

	p, err := c.Get("p-101")
	require.NoError(t, err)
	assert.Equal(t, "Nimbus Keyboard", p.Name)
	assert.Equal(t, int64(9900), p.Price)

	_, err = c.Get("p-999")
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.True(t, apperr.IsNotFound(err))
	assert.False(t, c.Exists("p-999"))
}

func TestNewCatalogSkipsDuplicateIDs(t *testing.T) {
	c := NewCatalog([]Product{{ID: "a", Name: "first"}, {ID: "a", Name: "second"}})

	assert.Len(t, c.List(ListRequest{}), 1)
	p, err := c.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "first", p.Name)
}
