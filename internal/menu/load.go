package menu

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// fileMenu is the on-disk form of a menu definition.
type fileMenu struct {
	Title string     `yaml:"title"`
	Items []fileItem `yaml:"items"`
}

type fileItem struct {
	ID        string     `yaml:"id"`
	Label     string     `yaml:"label"`
	Title     string     `yaml:"title"`
	Shortcut  string     `yaml:"shortcut"`
	Type      string     `yaml:"type"`
	Checked   bool       `yaml:"checked"`
	Disabled  bool       `yaml:"disabled"`
	Hidden    bool       `yaml:"hidden"`
	StaysOpen bool       `yaml:"stay-open"`
	Value     string     `yaml:"value"`
	Items     []fileItem `yaml:"items"`
}

var itemFields = map[string]struct{}{
	"id": {}, "label": {}, "title": {}, "shortcut": {}, "type": {}, "checked": {},
	"disabled": {}, "hidden": {}, "stay-open": {}, "value": {}, "items": {},
}

// UnmarshalYAML accepts either a mapping or a bare scalar. A scalar of
// "---" or "separator" is a separator, any other scalar is a plain label.
func (fi *fileItem) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		switch strings.TrimSpace(node.Value) {
		case "---", "separator":
			*fi = fileItem{Type: "separator"}
		default:
			*fi = fileItem{Label: node.Value}
		}
		return nil
	}
	if node.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			if _, ok := itemFields[key.Value]; !ok {
				return fmt.Errorf("line %d: unknown field %q", key.Line, key.Value)
			}
		}
	}
	type plain fileItem
	var decoded plain
	if err := node.Decode(&decoded); err != nil {
		return err
	}
	*fi = fileItem(decoded)
	return nil
}

// LoadFile reads a YAML menu definition from disk.
func LoadFile(path string) (*Menu, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menu file: %w", err)
	}
	m, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Load decodes a YAML menu definition.
func Load(r io.Reader) (*Menu, error) {
	var doc fileMenu
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyMenu
		}
		return nil, fmt.Errorf("decode menu: %w", err)
	}
	root, err := buildMenu("root", doc.Title, doc.Items)
	if err != nil {
		return nil, err
	}
	if len(root.Visible()) == 0 {
		return nil, ErrEmptyMenu
	}
	return root, nil
}

func buildMenu(id, title string, entries []fileItem) (*Menu, error) {
	m := New(id, title)
	seen := make(map[string]int, len(entries))
	for i, entry := range entries {
		it, err := buildItem(entry, i)
		if err != nil {
			return nil, fmt.Errorf("%s item %d: %w", id, i+1, err)
		}
		seen[it.ID]++
		if n := seen[it.ID]; n > 1 {
			it.ID = fmt.Sprintf("%s-%d", it.ID, n)
		}
		m.Items = append(m.Items, it)
	}
	return m, nil
}

func buildItem(entry fileItem, pos int) (*Item, error) {
	kind, err := parseKind(entry.Type)
	if err != nil {
		return nil, err
	}
	it := &Item{
		ID:        strings.TrimSpace(entry.ID),
		Label:     entry.Label,
		Shortcut:  NormalizeKey(entry.Shortcut),
		Kind:      kind,
		Checked:   entry.Checked,
		Disabled:  entry.Disabled,
		Hidden:    entry.Hidden,
		StaysOpen: entry.StaysOpen,
		Value:     entry.Value,
	}
	if kind == KindSeparator {
		if len(entry.Items) > 0 {
			return nil, errors.New("separator cannot have items")
		}
		if it.ID == "" {
			it.ID = fmt.Sprintf("separator-%d", pos+1)
		}
		return it, nil
	}
	if strings.TrimSpace(it.Label) == "" {
		return nil, errors.New("label is required")
	}
	if it.ID == "" {
		it.ID = slug(it.DisplayLabel())
	}
	if it.ID == "" {
		it.ID = fmt.Sprintf("item-%d", pos+1)
	}
	if len(entry.Items) > 0 {
		if kind != KindNormal {
			return nil, fmt.Errorf("%s item %q cannot have a submenu", kind, it.ID)
		}
		title := entry.Title
		if title == "" {
			title = it.DisplayLabel()
		}
		sub, err := buildMenu(it.ID, title, entry.Items)
		if err != nil {
			return nil, err
		}
		it.Submenu = sub
	}
	return it, nil
}

func parseKind(value string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "normal", "item":
		return KindNormal, nil
	case "toggle", "check", "checkbox":
		return KindToggle, nil
	case "radio":
		return KindRadio, nil
	case "separator", "divider":
		return KindSeparator, nil
	default:
		return KindNormal, fmt.Errorf("unknown item type %q", value)
	}
}

// slug derives an identifier from a label: lower-cased, runs of non
// alphanumerics collapsed to '-'.
func slug(label string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(label) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if b.Len() > 0 && !dash {
			b.WriteRune('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
