package cubevision

import "strings"

// ColorLabel identifies a sticker color as produced by a color classifier.
// The six values cover a standard cube; ColorNone marks interior cubie
// faces that carry no sticker.
type ColorLabel byte

const (
	White  ColorLabel = 0
	Yellow ColorLabel = 1
	Green  ColorLabel = 2
	Blue   ColorLabel = 3
	Red    ColorLabel = 4
	Orange ColorLabel = 5

	// ColorNone marks an interior cubie face with no sticker.
	ColorNone ColorLabel = 0xFF
)

// Labels lists the six sticker colors in enum order.
var Labels = [6]ColorLabel{White, Yellow, Green, Blue, Red, Orange}

func (c ColorLabel) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "."
	}
}

// Name returns the lowercase color name.
func (c ColorLabel) Name() string {
	switch c {
	case White:
		return "white"
	case Yellow:
		return "yellow"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Red:
		return "red"
	case Orange:
		return "orange"
	default:
		return "none"
	}
}

// ParseColorLabel parses a color from its name or single-letter form.
// Accepts "white"/"W"/"w" and so on for all six colors.
func ParseColorLabel(s string) (ColorLabel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return White, true
	case "yellow", "y":
		return Yellow, true
	case "green", "g":
		return Green, true
	case "blue", "b":
		return Blue, true
	case "red", "r":
		return Red, true
	case "orange", "o":
		return Orange, true
	default:
		return ColorNone, false
	}
}
