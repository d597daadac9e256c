package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/LootContainers_Go/internal/container"
	"github.com/osse101/LootContainers_Go/internal/domain"
)

// ContainerLister is the read side of the container registry
type ContainerLister interface {
	Find(name string) (container.Container, bool)
	Sorted() []container.Container
}

// ContainerView is the JSON form of a container and everything inside it
type ContainerView struct {
	container.Summary
	Kind     string          `json:"kind"`
	Items    []*domain.Item  `json:"items,omitempty"`
	Children []ContainerView `json:"children,omitempty"`
}

// NewContainerView builds the nested view of c
func NewContainerView(c container.Container) ContainerView {
	view := ContainerView{Summary: c.Summary()}
	switch v := c.(type) {
	case *container.Standard:
		view.Kind = KindStandard
		view.Items = v.Items()
	case *container.Multi:
		view.Kind = KindMulti
		for _, child := range v.Children() {
			view.Children = append(view.Children, NewContainerView(child))
		}
	}
	return view
}

// HandleListContainers returns the summary of every registered container
func HandleListContainers(containers ContainerLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sorted := containers.Sorted()
		summaries := make([]container.Summary, 0, len(sorted))
		for _, c := range sorted {
			summaries = append(summaries, c.Summary())
		}
		respondJSON(w, http.StatusOK, DataResponse{Count: len(summaries), Data: summaries})
	}
}

// HandleGetContainer returns one container with its contents, as a JSON tree
// or, with ?format=text, as the console listing.
func HandleGetContainer(containers ContainerLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, URLParamName)
		c, ok := containers.Find(name)
		if !ok {
			respondError(w, http.StatusNotFound, ErrMsgContainerNotFound)
			return
		}

		switch format := r.URL.Query().Get(QueryParamFormat); format {
		case "", FormatJSON:
			respondJSON(w, http.StatusOK, NewContainerView(c))
		case FormatText:
			respondText(w, http.StatusOK, c.ListContents(""))
		default:
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgUnknownFormat, format))
		}
	}
}
