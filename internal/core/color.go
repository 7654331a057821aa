package core

// Color names the palette role of a screen cell.
// The platform layer maps each role to a concrete terminal color taken from
// the game configuration, so games never deal with RGB values directly.
type Color uint8

const (
	ColorDefault Color = iota
	ColorBackground
	ColorPlayer
	ColorWall
	ColorEnemy
	ColorText
	ColorAccent
)

// String returns the palette key for the color role.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorBackground:
		return "background"
	case ColorPlayer:
		return "player"
	case ColorWall:
		return "wall"
	case ColorEnemy:
		return "enemy"
	case ColorText:
		return "text"
	case ColorAccent:
		return "accent"
	default:
		return "unknown"
	}
}
