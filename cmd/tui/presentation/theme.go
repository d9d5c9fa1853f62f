package presentation

import (
	"fmt"

	"github.com/awesome-gocui/gocui"

	"github.com/lumensyntax-org/truthgit-desktop/cmd/tui/types"
)

// DefaultTheme is the built-in color scheme.
var DefaultTheme = types.Theme{
	Prompt:        "#a6e3a1",
	Error:         "#f38ba8",
	Warning:       "#f9e2af",
	Success:       "#a6e3a1",
	Muted:         "#6c7086",
	BorderDefault: "#45475a",
	BorderFocused: "#89b4fa",
	TitleDefault:  "#6c7086",
	TitleFocused:  "#89b4fa",
}

// GetThemeColor converts a hex color string to a gocui attribute.
func GetThemeColor(hexColor string) gocui.Attribute {
	return gocui.GetColor(hexColor)
}

// ConvertColorToAnsi converts a hex color to a true color ANSI escape
// sequence for inline text styling.
func ConvertColorToAnsi(hexColor string) string {
	if len(hexColor) == 7 && hexColor[0] == '#' {
		r, g, b := hexToRGB(hexColor)
		return fmt.Sprintf("\033[38;2;%d;%d;%dm", r, g, b)
	}
	return ""
}

func hexToRGB(hex string) (int, int, int) {
	var r, g, b int
	fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	return r, g, b
}
