// Package catalog is the fixed lookup table of category display data.
package catalog

import "github.com/dompet-dev/dompet/internal/model"

// Entry is the display data for one category.
type Entry struct {
	Category model.Category
	Name     string // English button caption
	Label    string // transaction name given to keypad entries
	Icon     string
}

// Catalog provides lookup over category entries.
type Catalog struct {
	entries    []Entry
	byCategory map[model.Category]Entry
	fallback   Entry
}

// New creates a Catalog. Lookups of unknown categories return the entry for
// model.CategoryOther.
func New(entries []Entry) *Catalog {
	byCategory := make(map[model.Category]Entry, len(entries))
	for _, e := range entries {
		byCategory[e.Category] = e
	}
	fallback := byCategory[model.CategoryOther]
	return &Catalog{entries: entries, byCategory: byCategory, fallback: fallback}
}

var defaultCatalog = New([]Entry{
	{Category: model.CategoryFood, Name: "Food", Label: "Makanan", Icon: "🍔"},
	{Category: model.CategoryTransport, Name: "Transport", Label: "Transportasi", Icon: "🚗"},
	{Category: model.CategoryBill, Name: "Bill", Label: "Tagihan", Icon: "📄"},
	{Category: model.CategoryShopping, Name: "Shopping", Label: "Belanja", Icon: "🛒"},
	{Category: model.CategorySalary, Name: "Salary", Label: "Gaji", Icon: "💰"},
	{Category: model.CategoryOther, Name: "Other", Label: "Lainnya", Icon: "📦"},
})

// Default returns the built-in catalog covering every model.Category.
func Default() *Catalog {
	return defaultCatalog
}

// All returns all entries in display order.
func (c *Catalog) All() []Entry {
	return c.entries
}

// Get returns the entry for a category.
func (c *Catalog) Get(cat model.Category) (Entry, bool) {
	e, ok := c.byCategory[cat]
	return e, ok
}

// Lookup returns the entry for a category, or the "other" entry when the
// category is unknown.
func (c *Catalog) Lookup(cat model.Category) Entry {
	if e, ok := c.byCategory[cat]; ok {
		return e
	}
	return c.fallback
}

// Icon is shorthand for Default().Lookup(cat).Icon.
func Icon(cat model.Category) string {
	return defaultCatalog.Lookup(cat).Icon
}

// Label is shorthand for Default().Lookup(cat).Label.
func Label(cat model.Category) string {
	return defaultCatalog.Lookup(cat).Label
}
