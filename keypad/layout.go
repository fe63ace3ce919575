package keypad

import "fmt"

// Layout is an immutable pad: a rectangular grid of keys with a single gap.
type Layout struct {
	kind       Kind
	rows, cols int
	cells      [][]byte // GapChar marks the gap
	gap        Position
	index      map[byte]Position
	alphabet   string
}

var (
	numericLayout     = mustLayout(Numeric, []string{"789", "456", "123", "_0A"})
	directionalLayout = mustLayout(Directional, []string{"_^A", "<v>"})
)

// NumericLayout returns the shared 4×3 numeric pad.
func NumericLayout() *Layout { return numericLayout }

// DirectionalLayout returns the shared 2×3 directional pad.
func DirectionalLayout() *Layout { return directionalLayout }

// Of returns the shared layout for kind k.
// It panics on an unknown kind.
func Of(k Kind) *Layout {
	switch k {
	case Numeric:
		return numericLayout
	case Directional:
		return directionalLayout
	default:
		panic(fmt.Sprintf("keypad: unknown kind %d", k))
	}
}

// NewLayout builds a layout from rows read top to bottom, with GapChar
// marking the gap cell.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrGapCount or ErrDuplicateChar
// for malformed grids.
// Complexity: O(R×C).
func NewLayout(kind Kind, rows []string) (*Layout, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	l := &Layout{
		kind:  kind,
		rows:  h,
		cols:  w,
		cells: make([][]byte, h),
		index: make(map[byte]Position, h*w),
	}
	gaps := 0
	alphabet := make([]byte, 0, h*w)
	for r, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		l.cells[r] = []byte(row)
		for c := 0; c < w; c++ {
			ch := row[c]
			if ch == GapChar {
				gaps++
				l.gap = Position{r, c}
				continue
			}
			if _, dup := l.index[ch]; dup {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateChar, ch)
			}
			l.index[ch] = Position{r, c}
			alphabet = append(alphabet, ch)
		}
	}
	if gaps != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrGapCount, gaps)
	}
	if len(alphabet) == 0 {
		return nil, fmt.Errorf("%w: no keys besides the gap", ErrEmptyGrid)
	}
	l.alphabet = string(alphabet)

	return l, nil
}

func mustLayout(kind Kind, rows []string) *Layout {
	l, err := NewLayout(kind, rows)
	if err != nil {
		panic(err)
	}
	return l
}

// Kind reports which pad shape l describes.
func (l *Layout) Kind() Kind { return l.kind }

// Rows returns the pad height.
func (l *Layout) Rows() int { return l.rows }

// Cols returns the pad width.
func (l *Layout) Cols() int { return l.cols }

// Gap returns the position of the gap cell.
func (l *Layout) Gap() Position { return l.gap }

// Alphabet returns every key character in row-major order.
func (l *Layout) Alphabet() string { return l.alphabet }

// InBounds reports whether p lies within the pad dimensions.
func (l *Layout) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < l.rows && p.Col >= 0 && p.Col < l.cols
}

// IsGap reports whether p is the gap cell.
func (l *Layout) IsGap(p Position) bool { return p == l.gap }

// CharAt returns the key character at p. The boolean is false for the gap
// and for positions outside the pad.
func (l *Layout) CharAt(p Position) (byte, bool) {
	if !l.InBounds(p) || l.IsGap(p) {
		return 0, false
	}
	return l.cells[p.Row][p.Col], true
}

// PosOf returns the position of key ch. The boolean is false when ch is not
// on this pad.
func (l *Layout) PosOf(ch byte) (Position, bool) {
	p, ok := l.index[ch]
	return p, ok
}

// MustPosOf is PosOf for characters known to be on the pad.
// It panics otherwise.
func (l *Layout) MustPosOf(ch byte) Position {
	p, ok := l.index[ch]
	if !ok {
		panic(fmt.Sprintf("keypad: %q is not on the %s pad", ch, l.kind))
	}
	return p
}

// Contains reports whether ch labels a key on this pad.
func (l *Layout) Contains(ch byte) bool {
	_, ok := l.index[ch]
	return ok
}

// Connected reports whether every key can reach every other key using
// movement commands only, never crossing the gap.
// Time: O(R·C).
func (l *Layout) Connected() bool {
	if len(l.alphabet) == 0 {
		return true
	}
	start, ok := l.PosOf(l.alphabet[0])
	if !ok {
		return false
	}
	seen := map[Position]bool{start: true}
	queue := []Position{start}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, c := range Commands {
			if !c.IsMove() {
				continue
			}
			v, _, err := l.Apply(u, c)
			if err != nil || seen[v] {
				continue
			}
			seen[v] = true
			queue = append(queue, v)
		}
	}

	return len(seen) == len(l.index)
}
