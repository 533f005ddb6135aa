// Package scanfile reads and writes captured cube scans as JSON.
//
// A scan file carries the six faces in capture order U, R, F, D, L, B.
// Each face lists its detected squares with pixel positions; a square's
// color is either a label ("white", "W") or a raw RGB triple that is
// classified on load. Square order within a face does not matter.
package scanfile

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/SeamusWaldron/cubevision"
)

// Scan is one captured cube: six facelet grids plus capture metadata.
type Scan struct {
	CapturedAt time.Time
	Note       string
	Grids      [6]cubevision.FaceletGrid
}

type fileFormat struct {
	CapturedAt string     `json:"captured_at,omitempty"`
	Note       string     `json:"note,omitempty"`
	Faces      []fileFace `json:"faces"`
}

type fileFace struct {
	Face    string       `json:"face,omitempty"`
	Squares []fileSquare `json:"squares"`
}

type fileSquare struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Color string  `json:"color,omitempty"`
	RGB   []uint8 `json:"rgb,omitempty"`
}

// Load reads and parses a scan file. The classifier is only required
// when the file carries raw RGB squares.
func Load(path string, classifier cubevision.ColorClassifier) (*Scan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scanfile: %w", err)
	}
	return Parse(data, classifier)
}

// Parse decodes scan JSON. Faces must appear in capture order; an
// optional per-face letter is checked against its slot to catch
// hand-edited files with reordered faces.
func Parse(data []byte, classifier cubevision.ColorClassifier) (*Scan, error) {
	var file fileFormat
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("scanfile: %w", err)
	}

	if len(file.Faces) != 6 {
		return nil, fmt.Errorf("%w: scan file has %d faces, want 6 in capture order",
			cubevision.ErrMalformedScan, len(file.Faces))
	}

	scan := &Scan{Note: file.Note}

	if file.CapturedAt != "" {
		ts, err := time.Parse(time.RFC3339, file.CapturedAt)
		if err != nil {
			return nil, fmt.Errorf("scanfile: captured_at: %w", err)
		}
		scan.CapturedAt = ts
	}

	for i, face := range file.Faces {
		slot := cubevision.Face(i)
		if face.Face != "" {
			labeled, ok := cubevision.ParseFace(face.Face)
			if !ok {
				return nil, fmt.Errorf("scanfile: face %d: unknown face %q", i, face.Face)
			}
			if labeled != slot {
				return nil, fmt.Errorf("scanfile: face %d labeled %s, capture order expects %s",
					i, labeled, slot)
			}
		}

		grid := make(cubevision.FaceletGrid, 0, len(face.Squares))
		for j, sq := range face.Squares {
			label, err := squareColor(sq, classifier)
			if err != nil {
				return nil, fmt.Errorf("scanfile: %s capture square %d: %w", slot, j, err)
			}
			grid = append(grid, cubevision.FaceletSquare{Color: label, X: sq.X, Y: sq.Y})
		}
		scan.Grids[i] = grid
	}

	return scan, nil
}

// Marshal renders a scan back into the capture file format. Colors are
// written as letters and every face carries its letter.
func Marshal(s *Scan) ([]byte, error) {
	out := fileFormat{Note: s.Note, Faces: make([]fileFace, 0, len(s.Grids))}
	if !s.CapturedAt.IsZero() {
		out.CapturedAt = s.CapturedAt.UTC().Format(time.RFC3339)
	}

	for i, grid := range s.Grids {
		face := fileFace{
			Face:    cubevision.Face(i).String(),
			Squares: make([]fileSquare, 0, len(grid)),
		}
		for _, sq := range grid {
			face.Squares = append(face.Squares, fileSquare{X: sq.X, Y: sq.Y, Color: sq.Color.String()})
		}
		out.Faces = append(out.Faces, face)
	}

	return json.MarshalIndent(out, "", "  ")
}

// FromModel renders a cube model as a synthetic capture, squares laid
// out on a 3x3 lattice. Used to regenerate capture files from logged
// notation.
func FromModel(m *cubevision.CubeModel, capturedAt time.Time, note string) *Scan {
	scan := &Scan{CapturedAt: capturedAt, Note: note}

	for i := range scan.Grids {
		colors := m.FaceColors(cubevision.Face(i))
		grid := make(cubevision.FaceletGrid, 0, len(colors))
		for idx, c := range colors {
			grid = append(grid, cubevision.FaceletSquare{
				Color: c,
				X:     float64((idx%3)*40 + 20),
				Y:     float64((idx/3)*40 + 20),
			})
		}
		scan.Grids[i] = grid
	}

	return scan
}

func squareColor(sq fileSquare, classifier cubevision.ColorClassifier) (cubevision.ColorLabel, error) {
	switch {
	case sq.Color != "" && sq.RGB != nil:
		return cubevision.ColorNone, fmt.Errorf("both color and rgb set")
	case sq.Color != "":
		label, ok := cubevision.ParseColorLabel(sq.Color)
		if !ok {
			return cubevision.ColorNone, fmt.Errorf("unknown color %q", sq.Color)
		}
		return label, nil
	case sq.RGB != nil:
		if len(sq.RGB) != 3 {
			return cubevision.ColorNone, fmt.Errorf("rgb needs 3 components, got %d", len(sq.RGB))
		}
		if classifier == nil {
			return cubevision.ColorNone, fmt.Errorf("rgb square but no classifier configured")
		}
		px := color.RGBA{R: sq.RGB[0], G: sq.RGB[1], B: sq.RGB[2], A: 255}
		return classifier.Classify([]color.RGBA{px})
	default:
		return cubevision.ColorNone, fmt.Errorf("square has neither color nor rgb")
	}
}
