package keyboard

import "sync"

// US QWERTY character rows, top to bottom. lower[i][j] and upper[i][j]
// are the two faces of the same physical key.
var qwertyLower = []string{
	"`1234567890-=",
	"qwertyuiop[]\\",
	"asdfghjkl;'",
	"zxcvbnm,./",
}

var qwertyUpper = []string{
	"~!@#$%^&*()_+",
	"QWERTYUIOP{}|",
	"ASDFGHJKL:\"",
	"ZXCVBNM<>?",
}

var (
	qwertyOnce   sync.Once
	qwertyLayout *rowLayout
)

// QWERTY returns the US QWERTY layout.
//
// The layout is built on first use and shared, read-only, by every caller
// afterwards, so one process pays the construction cost once no matter how
// many analyses run.
func QWERTY() Layout {
	qwertyOnce.Do(func() {
		qwertyLayout = newRowLayout("qwerty", qwertyLower, qwertyUpper)
	})

	return qwertyLayout
}

// rowLayout is a Layout assembled from parallel rows of key faces.
//
// Adjacency follows the physical stagger of a standard board: within a row
// keys link Left/Right; between rows, key (r,i) links LowerRight to
// (r+1,i) and LowerLeft to (r+1,i-1), with the Upper* links set
// reciprocally. The aggregate combo counts are derived from the generated
// geometry by directed run counting, so they stay consistent with whatever
// rows define the layout.
type rowLayout struct {
	name string
	keys map[rune]*Key

	keyCount   int
	diagTotal  int
	horizSizes map[int]int // exact length → directed sequence count
	horizTotal int
}

// newRowLayout builds the key grid, links adjacency, and precomputes the
// aggregate counts. lower and upper must have identical shape.
func newRowLayout(name string, lower, upper []string) *rowLayout {
	// 1) Create every key and index it by both faces.
	grid := make([][]*Key, len(lower))
	keys := make(map[rune]*Key)
	var all []*Key
	for r := range lower {
		lo := []rune(lower[r])
		up := []rune(upper[r])
		grid[r] = make([]*Key, len(lo))
		for i := range lo {
			k := NewKey(lo[i], up[i])
			grid[r][i] = k
			keys[lo[i]] = k
			keys[up[i]] = k
			all = append(all, k)
		}
	}

	// 2) Wire horizontal adjacency within each row.
	for _, row := range grid {
		for i, k := range row {
			if i > 0 {
				k.SetNeighbor(Left, row[i-1])
			}
			if i < len(row)-1 {
				k.SetNeighbor(Right, row[i+1])
			}
		}
	}

	// 3) Wire diagonal adjacency between consecutive rows per the stagger.
	for r := 0; r < len(grid)-1; r++ {
		cur, below := grid[r], grid[r+1]
		for i, k := range cur {
			if i < len(below) {
				k.SetNeighbor(LowerRight, below[i])
				below[i].SetNeighbor(UpperLeft, k)
			}
			if i > 0 && i-1 < len(below) {
				k.SetNeighbor(LowerLeft, below[i-1])
				below[i-1].SetNeighbor(UpperRight, k)
			}
		}
	}

	// 4) Derive the aggregate counts from the wired geometry.
	l := &rowLayout{
		name:       name,
		keys:       keys,
		keyCount:   len(all),
		horizSizes: make(map[int]int),
	}
	for _, k := range all {
		// Horizontal: bucket directed runs by exact length.
		for _, d := range [...]Direction{Left, Right} {
			for n, run := 2, k.Neighbor(d); run != nil; n, run = n+1, run.Neighbor(d) {
				if n >= 3 {
					l.horizSizes[n]++
					l.horizTotal++
				}
			}
		}
		// Diagonal: one undifferentiated total across all four directions.
		for _, d := range [...]Direction{UpperLeft, UpperRight, LowerLeft, LowerRight} {
			for n, run := 2, k.Neighbor(d); run != nil; n, run = n+1, run.Neighbor(d) {
				if n >= 3 {
					l.diagTotal++
				}
			}
		}
	}

	return l
}

// GenerateKeyboard returns the character→Key mapping.
func (l *rowLayout) GenerateKeyboard() map[rune]*Key { return l.keys }

// CharacterKeysCount returns the number of physical character keys.
func (l *rowLayout) CharacterKeysCount() int { return l.keyCount }

// DiagonalComboTotal returns the count of directed diagonal sequences
// of length ≥ 3.
func (l *rowLayout) DiagonalComboTotal() int { return l.diagTotal }

// HorizontalComboSize returns the count of directed horizontal sequences
// of exactly the given length.
func (l *rowLayout) HorizontalComboSize(length int) int { return l.horizSizes[length] }

// HorizontalComboTotal returns the count of directed horizontal sequences
// of length ≥ 3.
func (l *rowLayout) HorizontalComboTotal() int { return l.horizTotal }

// Name returns the layout identifier.
func (l *rowLayout) Name() string { return l.name }
