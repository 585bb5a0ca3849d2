package catalog

import (
	"net/http"

	"liana/models"
	"liana/utils"

	"github.com/julienschmidt/httprouter"
)

// GetProducts lists the catalog, optionally filtered by ?category= and
// ?featured=true.
func GetProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()

	items := ByCategory(q.Get("category"))
	if q.Get("featured") == "true" {
		filtered := make([]models.Product, 0, len(items))
		for _, p := range items {
			if p.Featured {
				filtered = append(filtered, p)
			}
		}
		items = filtered
	}
	if items == nil {
		items = []models.Product{}
	}

	utils.RespondWithJSON(w, http.StatusOK, items)
}

// GetProduct returns a single product by id.
func GetProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	product, ok := ByID(ps.ByName("id"))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, product)
}

// GetRelatedProducts returns up to four products in the same category.
func GetRelatedProducts(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if _, ok := ByID(ps.ByName("id")); !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}
	related := Related(ps.ByName("id"), 4)
	if related == nil {
		related = []models.Product{}
	}
	utils.RespondWithJSON(w, http.StatusOK, related)
}

// GetCategories returns the filter groups with counts.
func GetCategories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, Categories())
}
