package analysis

import (
	"sort"
	"strings"

	"github.com/SeamusWaldron/cubevision"
)

// Pattern is a subsequence that repeats within a move sequence, such as
// a trigger the solution uses more than once.
type Pattern struct {
	Length    int      `json:"length"`
	Moves     []string `json:"moves"`
	Count     int      `json:"count"`
	Positions []int    `json:"positions,omitempty"`
}

// Notation returns the pattern's moves as one space-separated string.
func (p Pattern) Notation() string {
	return strings.Join(p.Moves, " ")
}

// PatternReport groups the repeated patterns of a sequence by length.
type PatternReport struct {
	ByLength map[int][]Pattern `json:"by_length"`
}

// Top returns the most frequent pattern of any mined length, preferring
// longer patterns on equal counts. The second result is false when
// nothing repeated.
func (r *PatternReport) Top() (Pattern, bool) {
	var best Pattern
	found := false
	for length := range r.ByLength {
		for _, p := range r.ByLength[length] {
			if !found || p.Count > best.Count ||
				(p.Count == best.Count && p.Length > best.Length) {
				best = p
				found = true
			}
		}
	}
	return best, found
}

// moveToken packs a move into one byte for hashing. Face takes the high
// bits, then the turn index, then the wide flag.
func moveToken(m cubevision.Move) uint8 {
	t := uint8(m.Face) * 6
	switch m.Turn {
	case cubevision.CCW:
		t += 2
	case cubevision.Double:
		t += 4
	}
	if m.Wide {
		t++
	}
	return t
}

// tokenMove is the inverse of moveToken.
func tokenMove(t uint8) cubevision.Move {
	m := cubevision.Move{Face: cubevision.Face(t / 6), Turn: cubevision.CW}
	switch (t % 6) / 2 {
	case 1:
		m.Turn = cubevision.CCW
	case 2:
		m.Turn = cubevision.Double
	}
	m.Wide = t%2 == 1
	return m
}

// rollingHash is a Rabin-Karp hash over a fixed-size token window.
type rollingHash struct {
	base   uint64
	hash   uint64
	pow    uint64 // base^(n-1), for removing the oldest token
	window []uint8
	n      int
}

func newRollingHash(n int) *rollingHash {
	rh := &rollingHash{
		base:   31,
		n:      n,
		window: make([]uint8, 0, n),
	}
	rh.pow = 1
	for i := 0; i < n-1; i++ {
		rh.pow *= rh.base
	}
	return rh
}

// roll pushes a token, evicting the oldest once the window is full.
func (rh *rollingHash) roll(token uint8) {
	if len(rh.window) < rh.n {
		rh.window = append(rh.window, token)
		rh.hash = rh.hash*rh.base + uint64(token)
		return
	}

	old := rh.window[0]
	rh.hash = (rh.hash-uint64(old)*rh.pow)*rh.base + uint64(token)

	copy(rh.window, rh.window[1:])
	rh.window[rh.n-1] = token
}

func (rh *rollingHash) ready() bool {
	return len(rh.window) == rh.n
}

func (rh *rollingHash) snapshot() []uint8 {
	out := make([]uint8, len(rh.window))
	copy(out, rh.window)
	return out
}

// patternEntry tracks one candidate pattern during mining.
type patternEntry struct {
	tokens    []uint8
	count     int
	positions []int
}

// MinePatterns finds the topK most frequent subsequences for each
// length in [minLen, maxLen]. Only subsequences that occur at least
// twice are reported; position lists are capped at ten entries.
func MinePatterns(moves []cubevision.Move, minLen, maxLen, topK int) *PatternReport {
	report := &PatternReport{ByLength: make(map[int][]Pattern)}

	if len(moves) < minLen || minLen < 1 {
		return report
	}

	tokens := make([]uint8, len(moves))
	for i, m := range moves {
		tokens[i] = moveToken(m)
	}

	for n := minLen; n <= maxLen && n <= len(moves); n++ {
		if patterns := minePatternsOfLength(tokens, n, topK); len(patterns) > 0 {
			report.ByLength[n] = patterns
		}
	}

	return report
}

func minePatternsOfLength(tokens []uint8, n, topK int) []Pattern {
	counts := make(map[uint64]*patternEntry)
	rh := newRollingHash(n)

	for i, token := range tokens {
		rh.roll(token)
		if !rh.ready() {
			continue
		}

		start := i - n + 1
		hash := rh.hash

		if entry, ok := counts[hash]; ok {
			// Re-check the window so a hash collision cannot merge two
			// different patterns.
			if tokensEqual(entry.tokens, rh.window) {
				entry.count++
				if len(entry.positions) < 10 {
					entry.positions = append(entry.positions, start)
				}
			}
			continue
		}

		counts[hash] = &patternEntry{
			tokens:    rh.snapshot(),
			count:     1,
			positions: []int{start},
		}
	}

	entries := make([]*patternEntry, 0, len(counts))
	for _, entry := range counts {
		if entry.count >= 2 {
			entries = append(entries, entry)
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		// Equal counts order by first appearance to stay deterministic.
		return entries[i].positions[0] < entries[j].positions[0]
	})

	if len(entries) > topK {
		entries = entries[:topK]
	}

	patterns := make([]Pattern, len(entries))
	for i, entry := range entries {
		moves := make([]string, len(entry.tokens))
		for j, token := range entry.tokens {
			moves[j] = tokenMove(token).Notation()
		}
		patterns[i] = Pattern{
			Length:    n,
			Moves:     moves,
			Count:     entry.count,
			Positions: entry.positions,
		}
	}

	return patterns
}

func tokensEqual(a, b []uint8) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
