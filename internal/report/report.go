// Package report renders the plain-text console output of a run.
package report

import (
	"fmt"
	"io"

	"github.com/osse101/LootContainers_Go/internal/container"
	"github.com/osse101/LootContainers_Go/internal/domain"
	"github.com/osse101/LootContainers_Go/internal/looting"
)

// ItemSource is the read side of the item catalog
type ItemSource interface {
	Len() int
	Sorted() []*domain.Item
}

// ContainerSource is the read side of the container registry
type ContainerSource interface {
	Len() int
	Sorted() []container.Container
}

// errWriter stops writing after the first failure and remembers it.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(line string) {
	ew.printf("%s\n", line)
}

// WriteInventory writes the start-of-run overview. Containers count as items
// in the first line, so the total includes them.
func WriteInventory(w io.Writer, items ItemSource, containers ContainerSource) error {
	ew := &errWriter{w: w}

	ew.printf(InitialisedFormat, items.Len()+containers.Len(), containers.Len())
	ew.println("")

	ew.println(HeadingItems)
	for _, item := range items.Sorted() {
		ew.println(item.String())
	}
	ew.println("")

	ew.println(HeadingContainers)
	for _, c := range containers.Sorted() {
		ew.println(c.Summary().String())
	}
	ew.println("")

	return ew.err
}

// WriteOutcomes writes one Success or Failure line per processed request.
func WriteOutcomes(w io.Writer, outcomes []looting.Outcome) error {
	ew := &errWriter{w: w}
	for _, o := range outcomes {
		ew.println(o.Message())
	}
	return ew.err
}

// Targets returns the containers the outcomes were looted into, once each, in
// the order they were first requested. Unknown names are left out.
func Targets(outcomes []looting.Outcome, containers container.Finder) []container.Container {
	seen := make(map[string]bool, len(outcomes))
	var targets []container.Container
	for _, o := range outcomes {
		name := o.Request.Container
		if seen[name] {
			continue
		}
		seen[name] = true
		if c, ok := containers.Find(name); ok {
			targets = append(targets, c)
		}
	}
	return targets
}

// WriteListings writes the full nested listing of each container, separated
// by blank lines.
func WriteListings(w io.Writer, roots []container.Container) error {
	ew := &errWriter{w: w}
	for i, c := range roots {
		if i > 0 {
			ew.println("")
		}
		ew.printf("%s", c.ListContents(""))
	}
	return ew.err
}
