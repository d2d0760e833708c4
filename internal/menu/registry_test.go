package menu

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testTree() *Menu {
	recent := New("recent", "Recent", &Item{ID: "clear", Label: "Clear"})
	file := New("file", "File",
		&Item{ID: "open", Label: "Open"},
		&Item{ID: "recent", Label: "Recent", Submenu: recent},
	)
	return New("root", "",
		&Item{ID: "file", Label: "File", Submenu: file},
		&Item{ID: "quit", Label: "Quit"},
	)
}

func TestRegistryIndexesNestedItems(t *testing.T) {
	root := testTree()
	reg := BuildRegistry(root)

	var ids []string
	reg.Items(func(id string, _ *Item) { ids = append(ids, id) })
	sort.Strings(ids)
	want := []string{"file", "file:open", "file:recent", "file:recent:clear", "quit"}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}

	clear, ok := reg.Find("file:recent:clear")
	if !ok || clear.Label != "Clear" {
		t.Fatalf("expected to find clear item")
	}
	if reg.IDOf(clear) != "file:recent:clear" {
		t.Fatalf("unexpected reverse lookup %q", reg.IDOf(clear))
	}
}

func TestRegistryMenuLookup(t *testing.T) {
	root := testTree()
	reg := BuildRegistry(root)
	if m, ok := reg.Menu("root"); !ok || m != root {
		t.Fatalf("expected root lookup to return the root menu")
	}
	if m, ok := reg.Menu("file:recent"); !ok || m.ID != "recent" {
		t.Fatalf("expected recent submenu")
	}
	if _, ok := reg.Menu("quit"); ok {
		t.Fatalf("expected plain item to have no menu")
	}
	if _, ok := reg.Menu("nope"); ok {
		t.Fatalf("expected unknown id to fail")
	}
}

func TestRegistryToleratesCycles(t *testing.T) {
	loop := New("loop", "")
	loop.Items = []*Item{{ID: "again", Label: "Again", Submenu: loop}}
	reg := BuildRegistry(loop)
	if _, ok := reg.Find("again"); !ok {
		t.Fatalf("expected first level to be indexed")
	}
}

func TestParent(t *testing.T) {
	cases := []struct{ id, parent, key string }{
		{"", "root", ""},
		{"file", "root", "file"},
		{"file:recent:clear", "file:recent", "clear"},
	}
	for _, tc := range cases {
		p, k := Parent(tc.id)
		if p != tc.parent || k != tc.key {
			t.Fatalf("Parent(%q) = %q,%q want %q,%q", tc.id, p, k, tc.parent, tc.key)
		}
	}
}
