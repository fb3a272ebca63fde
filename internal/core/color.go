package core

// Color represents a foreground color for a screen cell.
// Frontends map it onto their own palette.
type Color uint8

const (
	ColorDefault Color = iota
	ColorSky
	ColorPipe
	ColorPipeEdge
	ColorGround
	ColorGrass
	ColorBird
	ColorBeak
	ColorText
	ColorAccent
	ColorDim
)
