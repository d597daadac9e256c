package handler

import (
	"net/http"

	"github.com/osse101/LootContainers_Go/internal/domain"
)

// ItemLister is the read side of the item catalog
type ItemLister interface {
	Sorted() []*domain.Item
}

// HandleListItems returns the catalog sorted by name
func HandleListItems(items ItemLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sorted := items.Sorted()
		respondJSON(w, http.StatusOK, DataResponse{Count: len(sorted), Data: sorted})
	}
}
