package domain

import "fmt"

// Item is a catalog entry. Items are created once while the catalog loads and
// are shared by reference with every container that holds them.
type Item struct {
	Name   string `json:"name"`
	Weight int    `json:"weight"`
}

// String renders the item the way container listings show it.
func (i *Item) String() string {
	return fmt.Sprintf(ItemLineFormat, i.Name, i.Weight)
}
