// Package analysis computes statistics over move sequences.
package analysis

import (
	"github.com/SeamusWaldron/cubevision"
)

// SequenceSummary describes a move sequence in the usual cubing
// metrics.
type SequenceSummary struct {
	Moves           int            `json:"moves"`
	QuarterTurns    int            `json:"quarter_turns"`
	HalfTurns       int            `json:"half_turns"`
	WideMoves       int            `json:"wide_moves"`
	QTM             int            `json:"qtm"`
	CompressedMoves int            `json:"compressed_moves"`
	Efficiency      float64        `json:"efficiency"`
	FaceCounts      map[string]int `json:"face_counts"`
	MostUsedFace    string         `json:"most_used_face,omitempty"`
	NetFaceTurns    map[string]int `json:"net_face_turns"`
}

// Summarize computes the summary of a move sequence. Moves counts in
// the half-turn metric (every turn is one move); QTM weighs half turns
// double. Efficiency compares the compressed length against the raw
// length, so 1.0 means no adjacent move ever merged or cancelled.
func Summarize(moves []cubevision.Move) *SequenceSummary {
	s := &SequenceSummary{
		Moves:        len(moves),
		FaceCounts:   make(map[string]int),
		NetFaceTurns: make(map[string]int),
	}

	net := make(map[cubevision.Face]int)
	for _, m := range moves {
		s.FaceCounts[m.Face.String()]++
		net[m.Face] += int(m.Turn)

		if m.Wide {
			s.WideMoves++
		}
		switch m.Turn {
		case cubevision.Double:
			s.HalfTurns++
			s.QTM += 2
		default:
			s.QuarterTurns++
			s.QTM++
		}
	}

	s.CompressedMoves = len(cubevision.CompressMoves(moves))
	if s.Moves > 0 {
		s.Efficiency = float64(s.CompressedMoves) / float64(s.Moves)
	}

	// Iterate in face order so ties resolve deterministically.
	most := 0
	for _, f := range cubevision.Faces {
		letter := f.String()
		if count := s.FaceCounts[letter]; count > most {
			most = count
			s.MostUsedFace = letter
		}
		if turns := ((net[f] % 4) + 4) % 4; turns != 0 {
			s.NetFaceTurns[letter] = turns
		}
	}

	return s
}
