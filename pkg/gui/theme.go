package gui

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
)

// Terminal safe color palette is available here
// Themes should be limited to the colors defined in this reference
// https://upload.wikimedia.org/wikipedia/commons/1/15/Xterm_256color_chart.svg

var ErrNoTheme = errors.New("theme: no theme found")

// Theme is used for dynamically coloring the UI
type Theme struct {
	Name         string      `json:"name"`
	SquareDark   tcell.Color `json:"squareDark"`
	SquareLight  tcell.Color `json:"squareLight"`
	SquareHigh   tcell.Color `json:"squareHigh"`
	SquareDrag   tcell.Color `json:"squareDrag"`
	SquareCursor tcell.Color `json:"squareCursor"`
	SquareCheck  tcell.Color `json:"squareCheck"`
	White        tcell.Color `json:"white"`
	Black        tcell.Color `json:"black"`
	Rank         tcell.Color `json:"rank"`
	File         tcell.Color `json:"file"`
	Header       tcell.Color `json:"header"`
	MoveBox      tcell.Color `json:"moveBox"`
	ToastFg      tcell.Color `json:"toastFg"`
	ToastBg      tcell.Color `json:"toastBg"`
	ToastWarnBg  tcell.Color `json:"toastWarnBg"`
}

// ThemeHex is the JSON form of a Theme
type ThemeHex struct {
	Name         string `json:"name"`
	SquareDark   string `json:"squareDark"`
	SquareLight  string `json:"squareLight"`
	SquareHigh   string `json:"squareHigh"`
	SquareDrag   string `json:"squareDrag"`
	SquareCursor string `json:"squareCursor"`
	SquareCheck  string `json:"squareCheck"`
	White        string `json:"white"`
	Black        string `json:"black"`
	Rank         string `json:"rank"`
	File         string `json:"file"`
	Header       string `json:"header"`
	MoveBox      string `json:"moveBox"`
	ToastFg      string `json:"toastFg"`
	ToastBg      string `json:"toastBg"`
	ToastWarnBg  string `json:"toastWarnBg"`
}

// fmtHex returns a one character hex for the ColorDefault
// and otherwise it returns a standard hex. This is useful
// because it allows ColorDefault to be imported from the config
// and parsed properly rather than being interpreted as black
func fmtHex(v int32) string {
	if v == -1 {
		return "#0"
	}
	return fmt.Sprintf("#%06x", v)
}

// Hex converts a Theme to a ThemeHex
func (t Theme) Hex() ThemeHex {
	return ThemeHex{
		t.Name,
		fmtHex(t.SquareDark.Hex()),
		fmtHex(t.SquareLight.Hex()),
		fmtHex(t.SquareHigh.Hex()),
		fmtHex(t.SquareDrag.Hex()),
		fmtHex(t.SquareCursor.Hex()),
		fmtHex(t.SquareCheck.Hex()),
		fmtHex(t.White.Hex()),
		fmtHex(t.Black.Hex()),
		fmtHex(t.Rank.Hex()),
		fmtHex(t.File.Hex()),
		fmtHex(t.Header.Hex()),
		fmtHex(t.MoveBox.Hex()),
		fmtHex(t.ToastFg.Hex()),
		fmtHex(t.ToastBg.Hex()),
		fmtHex(t.ToastWarnBg.Hex()),
	}
}

// Theme converts a ThemeHex to a Theme
func (t ThemeHex) Theme() Theme {
	return Theme{
		t.Name,
		tcell.GetColor(t.SquareDark),
		tcell.GetColor(t.SquareLight),
		tcell.GetColor(t.SquareHigh),
		tcell.GetColor(t.SquareDrag),
		tcell.GetColor(t.SquareCursor),
		tcell.GetColor(t.SquareCheck),
		tcell.GetColor(t.White),
		tcell.GetColor(t.Black),
		tcell.GetColor(t.Rank),
		tcell.GetColor(t.File),
		tcell.GetColor(t.Header),
		tcell.GetColor(t.MoveBox),
		tcell.GetColor(t.ToastFg),
		tcell.GetColor(t.ToastBg),
		tcell.GetColor(t.ToastWarnBg),
	}
}

// ImportThemes returns a converted Theme from a slice of ThemeHex
// entities if its name matches the want argument
func ImportThemes(want string, themes []ThemeHex) (Theme, error) {
	for _, t := range themes {
		if t.Name == want {
			return t.Theme(), nil
		}
	}

	return Theme{}, ErrNoTheme
}

// LoadThemes reads a JSON array of ThemeHex from path
func LoadThemes(path string) ([]ThemeHex, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read themes: %w", err)
	}
	var themes []ThemeHex
	if err := json.Unmarshal(data, &themes); err != nil {
		return nil, fmt.Errorf("decode themes %s: %w", path, err)
	}
	return themes, nil
}

// FindTheme looks want up in the themes file at path first (override) and
// then in the built-in themes
func FindTheme(want, path string) (Theme, error) {
	if path != "" {
		themes, err := LoadThemes(path)
		if err != nil {
			return Theme{}, err
		}
		if t, err := ImportThemes(want, themes); err == nil {
			return t, nil
		}
	}
	for _, t := range BuiltinThemes {
		if t.Name == want {
			return t, nil
		}
	}
	return Theme{}, fmt.Errorf("%w: %s", ErrNoTheme, want)
}

// ThemeBasic is the default theme
var ThemeBasic = Theme{
	"basic",                     // Name
	tcell.NewHexColor(0x779556), // SquareDark
	tcell.NewHexColor(0xebecd0), // SquareLight
	tcell.Color186,              // SquareHigh
	tcell.Color223,              // SquareDrag
	tcell.Color117,              // SquareCursor
	tcell.NewHexColor(0xff6b6b), // SquareCheck
	tcell.Color232,              // White
	tcell.Color232,              // Black
	tcell.Color247,              // Rank
	tcell.Color247,              // File
	tcell.ColorDefault,          // Header
	tcell.ColorDefault,          // MoveBox
	tcell.ColorWhite,            // ToastFg
	tcell.NewHexColor(0x4caf50), // ToastBg
	tcell.NewHexColor(0xff6b6b), // ToastWarnBg
}

// ThemeClassic uses the xterm palette only
var ThemeClassic = Theme{
	"classic",          // Name
	tcell.Color188,     // SquareDark
	tcell.Color230,     // SquareLight
	tcell.Color226,     // SquareHigh
	tcell.Color223,     // SquareDrag
	tcell.Color45,      // SquareCursor
	tcell.Color218,     // SquareCheck
	tcell.Color232,     // White
	tcell.Color232,     // Black
	tcell.Color247,     // Rank
	tcell.Color247,     // File
	tcell.Color160,     // Header
	tcell.ColorDefault, // MoveBox
	tcell.Color232,     // ToastFg
	tcell.Color122,     // ToastBg
	tcell.Color167,     // ToastWarnBg
}

var BuiltinThemes = []Theme{ThemeBasic, ThemeClassic}
