// Package classify labels sticker colors by nearest reference color.
//
// The classifier is deliberately naive: it averages the sampled pixel
// neighborhood and picks the palette entry with the smallest CIE-Lab
// distance. Lighting-robust classification is out of scope; recalibrate
// the palette instead when a camera reads the stickers differently.
package classify

import (
	"errors"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/SeamusWaldron/cubevision"
)

// Reference pairs a color label with the sticker color it should read
// as under the capture lighting.
type Reference struct {
	Label cubevision.ColorLabel
	Color colorful.Color
}

// DefaultPalette returns references for a standard Western color scheme
// cube under neutral lighting.
func DefaultPalette() []Reference {
	return []Reference{
		{cubevision.White, mustHex("#ffffff")},
		{cubevision.Yellow, mustHex("#ffd500")},
		{cubevision.Green, mustHex("#009b48")},
		{cubevision.Blue, mustHex("#0046ad")},
		{cubevision.Red, mustHex("#b71234")},
		{cubevision.Orange, mustHex("#ff5800")},
	}
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Nearest implements cubevision.ColorClassifier against a reference
// palette.
type Nearest struct {
	refs []Reference
}

var _ cubevision.ColorClassifier = (*Nearest)(nil)

// New builds a classifier. With no references it uses DefaultPalette.
func New(refs ...Reference) *Nearest {
	if len(refs) == 0 {
		refs = DefaultPalette()
	}
	return &Nearest{refs: refs}
}

// Classify averages the neighborhood and returns the label of the
// closest reference color in CIE-Lab space.
func (n *Nearest) Classify(neighborhood []color.RGBA) (cubevision.ColorLabel, error) {
	if len(neighborhood) == 0 {
		return cubevision.ColorNone, errors.New("classify: empty pixel neighborhood")
	}

	var r, g, b float64
	for _, p := range neighborhood {
		r += float64(p.R)
		g += float64(p.G)
		b += float64(p.B)
	}
	total := float64(len(neighborhood)) * 255
	avg := colorful.Color{R: r / total, G: g / total, B: b / total}

	best := n.refs[0].Label
	bestDist := avg.DistanceLab(n.refs[0].Color)
	for _, ref := range n.refs[1:] {
		if d := avg.DistanceLab(ref.Color); d < bestDist {
			best, bestDist = ref.Label, d
		}
	}
	return best, nil
}
