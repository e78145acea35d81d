package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// MemeTheme is a dark, compact theme: the photo is the focus and the chrome
// around it stays quiet.
type MemeTheme struct{}

// NewMemeTheme creates the meme editor theme
func NewMemeTheme() fyne.Theme {
	return &MemeTheme{}
}

// Color returns theme colors
func (t *MemeTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 255, G: 193, B: 7, A: 255} // Amber, like the caption stroke highlights
	case theme.ColorNameBackground:
		return color.RGBA{R: 18, G: 18, B: 18, A: 255}
	case theme.ColorNameForeground:
		return color.RGBA{R: 245, G: 245, B: 245, A: 255}
	case theme.ColorNameInputBackground:
		return color.RGBA{R: 34, G: 34, B: 34, A: 255}
	case theme.ColorNameButton:
		return color.RGBA{R: 40, G: 40, B: 40, A: 255}
	}

	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *MemeTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *MemeTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *MemeTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameText:
		return 15 // Caption entries read better slightly larger
	case theme.SizeNameHeadingText:
		return 18
	case theme.SizeNameInputRadius:
		return 3
	case theme.SizeNameSelectionRadius:
		return 2
	}

	return theme.DefaultTheme().Size(name)
}
