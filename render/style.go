package render

import "github.com/gdamore/tcell/v2"

// Palette shared by scenes and the overlay
var (
	StyleDefault  = tcell.StyleDefault
	StyleGround   = tcell.StyleDefault.Foreground(tcell.ColorDarkGreen)
	StyleShadow   = tcell.StyleDefault.Foreground(tcell.ColorGray).Dim(true)
	StyleContact  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	StyleRay      = tcell.StyleDefault.Foreground(tcell.ColorDarkCyan)
	StyleHit      = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	StyleJoint    = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	StyleStatic   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	StyleSleeping = tcell.StyleDefault.Foreground(tcell.ColorSteelBlue)

	StylePane      = tcell.StyleDefault.Background(tcell.NewRGBColor(18, 18, 24))
	StylePaneTitle = StylePane.Foreground(tcell.ColorMediumPurple).Bold(true)
	StylePaneLabel = StylePane.Foreground(tcell.ColorGray)
	StylePaneValue = StylePane.Foreground(tcell.ColorWhite)
	StylePaneOn    = StylePane.Foreground(tcell.ColorGreen)
	StylePaneOff   = StylePane.Foreground(tcell.ColorIndianRed)
	StylePaneMark  = StylePane.Foreground(tcell.ColorYellow).Bold(true)
)

// BodyColors cycles per body index so neighbours stay distinguishable
var BodyColors = []tcell.Color{
	tcell.ColorOrange,
	tcell.ColorDodgerBlue,
	tcell.ColorLimeGreen,
	tcell.ColorHotPink,
	tcell.ColorGold,
	tcell.ColorTurquoise,
}

// BodyStyle returns the palette style for body i
func BodyStyle(i int) tcell.Style {
	return tcell.StyleDefault.Foreground(BodyColors[i%len(BodyColors)])
}
