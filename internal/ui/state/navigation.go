package state

// Levels exposes the item counts of the live levels to the navigation engine.
type Levels interface {
	Count(level int) int
	Selectable(level, index int) bool
}

// Advance moves the selection at level one interactive item in direction dir
// (+1 or -1). Disabled items and separators are skipped. When wrap is set the
// scan restarts once from the opposite end. Returns false and leaves the path
// untouched when nothing is found.
func (p *Path) Advance(items Levels, level, dir int, wrap bool) bool {
	if items == nil || level < 0 || level >= MaxLevels {
		return false
	}
	n := items.Count(level)
	if n <= 0 || dir == 0 {
		return false
	}
	if dir > 0 {
		dir = 1
	} else {
		dir = -1
	}
	i := p.Index(level)
	if i < 0 || i >= n {
		i = restart(dir, n)
	}
	for pass := 0; pass < 2; pass++ {
		for i += dir; i >= 0 && i < n; i += dir {
			if items.Selectable(level, i) {
				p.Set(level, i)
				return true
			}
		}
		if !wrap {
			break
		}
		i = restart(dir, n)
	}
	return false
}

func restart(dir, n int) int {
	if dir > 0 {
		return -1
	}
	return n
}

// First returns the first selectable index at level, or None.
func First(items Levels, level int) int {
	if items == nil {
		return None
	}
	n := items.Count(level)
	for i := 0; i < n; i++ {
		if items.Selectable(level, i) {
			return i
		}
	}
	return None
}
