package cubevision

import (
	"fmt"
	"image/color"
)

// ColorClassifier labels the sticker color of one facelet square from
// the pixels sampled around its center. Implementations live outside
// the core; the classify package ships a nearest-reference-color one.
type ColorClassifier interface {
	Classify(neighborhood []color.RGBA) (ColorLabel, error)
}

// DetectedSquare is one facelet square as square detection reports it:
// a position in the capture image plus the sampled pixel neighborhood.
type DetectedSquare struct {
	X, Y   float64
	Pixels []color.RGBA
}

// ClassifySquares labels every detected square, calling the classifier
// once per square, and assembles the face's FaceletGrid. The grid comes
// back in detection order; Canonical puts it in reading order.
func ClassifySquares(c ColorClassifier, squares []DetectedSquare) (FaceletGrid, error) {
	grid := make(FaceletGrid, 0, len(squares))
	for i, sq := range squares {
		label, err := c.Classify(sq.Pixels)
		if err != nil {
			return nil, fmt.Errorf("square %d at (%.0f,%.0f): %w", i, sq.X, sq.Y, err)
		}
		grid = append(grid, FaceletSquare{Color: label, X: sq.X, Y: sq.Y})
	}
	return grid, nil
}
