package display

import (
	"errors"

	"github.com/BrandonKowalski/onboard/pkg/onboard/internal"
	"github.com/veandco/go-sdl2/ttf"
)

// FontSizes are point sizes for the three text styles.
type FontSizes struct {
	Large  int
	Medium int
	Small  int
}

var DefaultFontSizes = FontSizes{
	Large:  44,
	Medium: 28,
	Small:  20,
}

// Fonts holds the opened fonts. A font that failed to load is nil and text
// drawn with it is skipped.
var Fonts struct {
	LargeFont  *ttf.Font
	MediumFont *ttf.Font
	SmallFont  *ttf.Font
}

func initFonts(path string, sizes FontSizes) {
	if path == "" {
		internal.AssertionFailure("display.fonts", errors.New("no font configured"))
		return
	}

	Fonts.LargeFont = openFont(path, sizes.Large)
	Fonts.MediumFont = openFont(path, sizes.Medium)
	Fonts.SmallFont = openFont(path, sizes.Small)
}

func openFont(path string, size int) *ttf.Font {
	font, err := ttf.OpenFont(path, size)
	if err != nil {
		internal.AssertionFailure("display.fonts", err, "path", path, "size", size)
		return nil
	}
	return font
}

func closeFonts() {
	for _, f := range []**ttf.Font{&Fonts.LargeFont, &Fonts.MediumFont, &Fonts.SmallFont} {
		if *f != nil {
			(*f).Close()
			*f = nil
		}
	}
}
