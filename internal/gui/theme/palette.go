package theme

import rl "github.com/gen2brain/raylib-go/raylib"

// Homestead palette: dark loam background, pine panels, harvest accents.
var (
	BG            = rl.NewColor(0x17, 0x1B, 0x16, 255) // #171B16
	Panel         = rl.NewColor(0x20, 0x27, 0x1F, 255) // #20271F
	PanelRaised   = rl.NewColor(0x28, 0x31, 0x26, 255) // #283126
	Border        = rl.NewColor(0x3A, 0x47, 0x36, 255) // #3A4736
	Divider       = rl.NewColor(0x2C, 0x35, 0x2A, 255)
	TextPrimary   = rl.NewColor(0xEC, 0xE6, 0xD6, 255) // #ECE6D6
	TextSecondary = rl.NewColor(0xB0, 0xB5, 0xA2, 255)
	TextMuted     = rl.NewColor(0x80, 0x87, 0x77, 255)
	AccentHarvest = rl.NewColor(0xE0, 0xA4, 0x3A, 255) // #E0A43A
	AccentPine    = rl.NewColor(0x4E, 0x8A, 0x52, 255) // #4E8A52
	Gold          = rl.NewColor(0xF2, 0xC9, 0x4C, 255)
	Danger        = rl.NewColor(0xB8, 0x4A, 0x3A, 255)
	DisabledPanel = rl.NewColor(0x1A, 0x1F, 0x19, 255)
	DisabledText  = TextMuted
)

type Typography struct {
	Title      int32
	Header     int32
	Body       int32
	Small      int32
	LineFactor float32
}

var Type = Typography{
	Title:      30,
	Header:     22,
	Body:       19,
	Small:      16,
	LineFactor: 1.4,
}

// LineHeight is the vertical advance for one line of text at size.
func LineHeight(size int32) int32 {
	return int32(float32(size) * Type.LineFactor)
}
