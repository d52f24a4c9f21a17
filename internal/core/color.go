package core

// Color names a palette entry for a screen cell. The platform maps each
// entry to a terminal style; games never see escape codes.
type Color uint8

// General purpose colors.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
	ColorGold
)

// Tile colors, one per power of two up to 2048 and a shared one above.
const (
	ColorTileEmpty Color = iota + 32
	ColorTile2
	ColorTile4
	ColorTile8
	ColorTile16
	ColorTile32
	ColorTile64
	ColorTile128
	ColorTile256
	ColorTile512
	ColorTile1024
	ColorTile2048
	ColorTileSuper
)

// TileColor returns the palette entry for a tile value (0 for empty).
func TileColor(value int) Color {
	if value <= 0 {
		return ColorTileEmpty
	}
	c := ColorTile2
	for v := 2; v < value; v *= 2 {
		c++
		if c == ColorTileSuper {
			break
		}
	}
	return c
}
