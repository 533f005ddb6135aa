package cubevision

import (
	"errors"
	"image/color"
	"testing"
)

// channelClassifier labels squares by their first pixel's dominant
// channel. Good enough to exercise the plumbing.
type channelClassifier struct{}

func (channelClassifier) Classify(px []color.RGBA) (ColorLabel, error) {
	if len(px) == 0 {
		return ColorNone, errors.New("empty neighborhood")
	}
	p := px[0]
	switch {
	case p.R > 200 && p.G > 200 && p.B > 200:
		return White, nil
	case p.R > 200 && p.G > 200:
		return Yellow, nil
	case p.R > 200:
		return Red, nil
	case p.G > 200:
		return Green, nil
	case p.B > 200:
		return Blue, nil
	default:
		return Orange, nil
	}
}

func TestClassifySquares(t *testing.T) {
	squares := []DetectedSquare{
		{X: 20, Y: 30, Pixels: []color.RGBA{{R: 255, G: 255, B: 255, A: 255}}},
		{X: 60, Y: 30, Pixels: []color.RGBA{{R: 255, A: 255}}},
		{X: 100, Y: 30, Pixels: []color.RGBA{{G: 255, A: 255}}},
	}

	grid, err := ClassifySquares(channelClassifier{}, squares)
	if err != nil {
		t.Fatalf("ClassifySquares failed: %v", err)
	}

	want := []ColorLabel{White, Red, Green}
	for i, sq := range grid {
		if sq.Color != want[i] {
			t.Errorf("square %d: got %s, want %s", i, sq.Color, want[i])
		}
		if sq.X != squares[i].X || sq.Y != squares[i].Y {
			t.Errorf("square %d: position not carried over", i)
		}
	}
}

func TestClassifySquaresPropagatesFailure(t *testing.T) {
	squares := []DetectedSquare{
		{X: 20, Y: 30, Pixels: []color.RGBA{{R: 255, A: 255}}},
		{X: 60, Y: 30}, // no pixels sampled
	}

	_, err := ClassifySquares(channelClassifier{}, squares)
	if err == nil {
		t.Fatal("expected classification failure")
	}
}
