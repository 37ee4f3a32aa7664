package game

import "image/color"

// Default grid for the windowed build: 30x20 tiles of 22px (660x440 window).
const (
	DefaultTileSize        = 22
	DefaultTilesHorizontal = 30
	DefaultTilesVertical   = 20
)

// WindowTitle is the caption of the game window.
const WindowTitle = "Robotina"

// TPS caps the update rate. Nothing in the session depends on it.
const TPS = 60

// Start button geometry, centred on the window.
const (
	startButtonWidth  = 100
	startButtonHeight = 50
	startButtonLabel  = "Start"
	startLabelSize    = 24
)

// reportLogLines is how many trailing log entries the debug report includes.
const reportLogLines = 20

var (
	backgroundColor  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	checkerColor     = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	agentColor       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	startButtonColor = color.RGBA{R: 51, G: 153, B: 255, A: 255}
	startLabelColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)
