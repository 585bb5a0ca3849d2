package catalog

import "testing"

func TestAllReturnsFullCatalog(t *testing.T) {
	all := All()
	if len(all) != 30 {
		t.Fatalf("expected 30 products, got %d", len(all))
	}

	// returned slice is a copy
	all[0].Name = "mutated"
	if All()[0].Name == "mutated" {
		t.Fatal("All must not expose the backing slice")
	}
}

func TestByID(t *testing.T) {
	p, ok := ByID("1")
	if !ok {
		t.Fatal("expected product 1")
	}
	if p.Name != "Classic Red Roses" || p.Price != 85000 {
		t.Fatalf("unexpected product: %+v", p)
	}

	if _, ok := ByID("999"); ok {
		t.Fatal("expected miss for unknown id")
	}
	if _, ok := ByID(""); ok {
		t.Fatal("expected miss for empty id")
	}
}

func TestByCategory(t *testing.T) {
	if got := len(ByCategory("")); got != 30 {
		t.Fatalf("empty category must return everything, got %d", got)
	}
	if got := len(ByCategory("all")); got != 30 {
		t.Fatalf("all must return everything, got %d", got)
	}

	roses := ByCategory("roses")
	if len(roses) == 0 {
		t.Fatal("expected roses in the catalog")
	}
	for _, p := range roses {
		if p.Category != "roses" {
			t.Fatalf("wrong category in result: %+v", p)
		}
	}

	if got := ByCategory("orchids"); got != nil {
		t.Fatalf("unknown category must be empty, got %v", got)
	}
}

func TestFeatured(t *testing.T) {
	featured := Featured()
	if len(featured) != 4 {
		t.Fatalf("expected 4 featured products, got %d", len(featured))
	}
	for _, p := range featured {
		if !p.Featured {
			t.Fatalf("non-featured product returned: %+v", p)
		}
	}
}

func TestRelated(t *testing.T) {
	rel := Related("1", 4)
	if len(rel) == 0 || len(rel) > 4 {
		t.Fatalf("expected 1..4 related products, got %d", len(rel))
	}
	base, _ := ByID("1")
	for _, p := range rel {
		if p.ID == "1" {
			t.Fatal("related must exclude the product itself")
		}
		if p.Category != base.Category {
			t.Fatalf("related product from wrong category: %+v", p)
		}
	}

	if got := Related("999", 4); got != nil {
		t.Fatalf("unknown id must yield nothing, got %v", got)
	}
}

func TestCategoriesCounts(t *testing.T) {
	cats := Categories()
	if len(cats) != 5 {
		t.Fatalf("expected 5 categories, got %d", len(cats))
	}
	if cats[0].ID != "all" || cats[0].Count != 30 {
		t.Fatalf("unexpected all bucket: %+v", cats[0])
	}

	sum := 0
	for _, c := range cats[1:] {
		if c.Count == 0 {
			t.Fatalf("empty category %s", c.ID)
		}
		sum += c.Count
	}
	if sum != 30 {
		t.Fatalf("category counts must partition the catalog, got %d", sum)
	}
}

func TestSalePricing(t *testing.T) {
	p, ok := ByID("26")
	if !ok {
		t.Fatal("expected product 26")
	}
	if !p.Sale || p.OriginalPrice == 0 {
		t.Fatalf("expected sale product with original price: %+v", p)
	}
	if p.OriginalPrice <= p.Price {
		t.Fatalf("original price must exceed sale price: %+v", p)
	}
}
