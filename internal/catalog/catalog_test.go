package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dompet-dev/dompet/internal/model"
)

func TestDefault_CoversEveryCategory(t *testing.T) {
	c := Default()
	require.Len(t, c.All(), len(model.Categories))

	for i, cat := range model.Categories {
		e, ok := c.Get(cat)
		require.True(t, ok, "missing entry for %s", cat)
		assert.NotEmpty(t, e.Name)
		assert.NotEmpty(t, e.Label)
		assert.NotEmpty(t, e.Icon)
		assert.Equal(t, cat, c.All()[i].Category, "display order")
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		cat   model.Category
		icon  string
		label string
	}{
		{model.CategoryFood, "🍔", "Makanan"},
		{model.CategoryTransport, "🚗", "Transportasi"},
		{model.CategoryBill, "📄", "Tagihan"},
		{model.CategoryShopping, "🛒", "Belanja"},
		{model.CategorySalary, "💰", "Gaji"},
		{model.CategoryOther, "📦", "Lainnya"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.icon, Icon(tt.cat))
		assert.Equal(t, tt.label, Label(tt.cat))
	}
}

func TestLookup_UnknownFallsBackToOther(t *testing.T) {
	e := Default().Lookup(model.Category("rent"))
	assert.Equal(t, model.CategoryOther, e.Category)
	assert.Equal(t, "📦", e.Icon)

	_, ok := Default().Get(model.Category("rent"))
	assert.False(t, ok)
}
