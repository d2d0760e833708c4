package menu

import "strings"

// Registry indexes a menu tree by colon-joined item identifiers such as
// "file:recent:clear".
type Registry struct {
	root  *Menu
	items map[string]*Item
	ids   map[*Item]string
}

// BuildRegistry walks the tree under root and records every item.
func BuildRegistry(root *Menu) *Registry {
	r := &Registry{
		root:  root,
		items: make(map[string]*Item),
		ids:   make(map[*Item]string),
	}
	r.walk("", root, map[*Menu]bool{})
	return r
}

func (r *Registry) walk(prefix string, m *Menu, seen map[*Menu]bool) {
	if m == nil || seen[m] {
		return
	}
	seen[m] = true
	for _, it := range m.Items {
		if it == nil || it.ID == "" {
			continue
		}
		id := it.ID
		if prefix != "" {
			id = prefix + ":" + it.ID
		}
		if _, dup := r.items[id]; !dup {
			r.items[id] = it
			r.ids[it] = id
		}
		r.walk(id, it.Submenu, seen)
	}
}

// Root returns the registry root menu.
func (r *Registry) Root() *Menu {
	return r.root
}

// Find locates an item by ID.
func (r *Registry) Find(id string) (*Item, bool) {
	it, ok := r.items[id]
	return it, ok
}

// Menu resolves the container opened by id. "root" and "" name the root menu.
func (r *Registry) Menu(id string) (*Menu, bool) {
	if id == "" || id == "root" {
		return r.root, r.root != nil
	}
	it, ok := r.items[id]
	if !ok || it.Submenu == nil {
		return nil, false
	}
	return it.Submenu, true
}

// IDOf returns the full identifier of an item known to the registry.
func (r *Registry) IDOf(it *Item) string {
	return r.ids[it]
}

// Items visits every registered item in no particular order.
func (r *Registry) Items(fn func(id string, it *Item)) {
	for id, it := range r.items {
		fn(id, it)
	}
}

// Parent returns the identifier of the item that owns id, and id's final
// segment.
func Parent(id string) (string, string) {
	if id == "" {
		return "root", ""
	}
	if !strings.Contains(id, ":") {
		return "root", id
	}
	idx := strings.LastIndex(id, ":")
	return id[:idx], id[idx+1:]
}
