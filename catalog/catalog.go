package catalog

import "liana/models"

// Category groups products for the shop filter bar.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

var categoryNames = []struct {
	id   string
	name string
}{
	{"all", "All Products"},
	{"roses", "Red Roses"},
	{"mixed", "Mixed Bouquets"},
	{"boxes", "Box Arrangements"},
	{"extras", "Extras"},
}

// All returns every product in catalog order.
func All() []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)
	return out
}

// ByID looks a product up by its catalog id.
func ByID(id string) (models.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// ByCategory returns products in the given category; "all" or "" returns
// everything.
func ByCategory(category string) []models.Product {
	if category == "" || category == "all" {
		return All()
	}
	var out []models.Product
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Featured returns the products highlighted on the home page.
func Featured() []models.Product {
	var out []models.Product
	for _, p := range products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// Related returns up to limit products sharing a category with id,
// excluding the product itself.
func Related(id string, limit int) []models.Product {
	p, ok := ByID(id)
	if !ok {
		return nil
	}
	var out []models.Product
	for _, q := range products {
		if q.Category == p.Category && q.ID != p.ID {
			out = append(out, q)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

// Categories returns the filter groups with live counts.
func Categories() []Category {
	out := make([]Category, 0, len(categoryNames))
	for _, c := range categoryNames {
		count := len(products)
		if c.id != "all" {
			count = len(ByCategory(c.id))
		}
		out = append(out, Category{ID: c.id, Name: c.name, Count: count})
	}
	return out
}
