package state

// MaxLevels bounds the nesting depth of a single menu session.
const MaxLevels = 20

// None marks a level with nothing selected.
const None = -1

// Cursor identifies the current selection: the deepest meaningful level and
// the index chosen there.
type Cursor struct {
	Level int
	Index int
}

// Path records which item is chosen at every nesting level of a session.
type Path struct {
	Indexes [MaxLevels]int
	Level   int
	dirty   [MaxLevels]bool
}

// NewPath returns a path with nothing selected at any level.
func NewPath() *Path {
	p := &Path{}
	p.Reset()
	return p
}

// Reset clears every level and the damage flags.
func (p *Path) Reset() {
	for i := range p.Indexes {
		p.Indexes[i] = None
		p.dirty[i] = false
	}
	p.Level = 0
}

// Index returns the selection at level, or None when level is out of range.
func (p *Path) Index(level int) int {
	if level < 0 || level >= MaxLevels {
		return None
	}
	return p.Indexes[level]
}

// Selected returns the index chosen at the current level.
func (p *Path) Selected() int {
	return p.Index(p.Level)
}

// Current returns the cursor used to detect selection changes between events.
func (p *Path) Current() Cursor {
	return Cursor{Level: p.Level, Index: p.Selected()}
}

// Set chooses index at level and makes level current. Every deeper entry is
// reset to None so a stale selection never outlives a shallower change.
func (p *Path) Set(level, index int) {
	if level < 0 || level >= MaxLevels {
		return
	}
	if index < None {
		index = None
	}
	if p.Indexes[level] != index {
		p.Indexes[level] = index
		p.dirty[level] = true
	}
	p.Level = level
	for d := level + 1; d < MaxLevels; d++ {
		if p.Indexes[d] != None {
			p.Indexes[d] = None
			p.dirty[d] = true
		}
	}
}

// Dirty reports whether the selection at level changed since the last
// TakeDirty.
func (p *Path) Dirty(level int) bool {
	if level < 0 || level >= MaxLevels {
		return false
	}
	return p.dirty[level]
}

// TakeDirty returns the damaged levels in ascending order and clears them.
func (p *Path) TakeDirty() []int {
	var levels []int
	for i, d := range p.dirty {
		if d {
			levels = append(levels, i)
			p.dirty[i] = false
		}
	}
	return levels
}
