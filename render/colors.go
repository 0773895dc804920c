package render

import "github.com/gdamore/tcell/v2"

// Palette
var (
	RgbWhite   = tcell.NewRGBColor(240, 240, 240)
	RgbBlack   = tcell.NewRGBColor(20, 20, 20)
	RgbRed     = tcell.NewRGBColor(220, 80, 80)
	RgbGreen   = tcell.NewRGBColor(80, 220, 120)
	RgbBlue    = tcell.NewRGBColor(80, 140, 220)
	RgbYellow  = tcell.NewRGBColor(230, 210, 80)
	RgbMagenta = tcell.NewRGBColor(220, 100, 200)
	RgbCyan    = tcell.NewRGBColor(80, 220, 220)
	RgbOrange  = tcell.NewRGBColor(255, 140, 0)
	RgbPurple  = tcell.NewRGBColor(160, 120, 220)
	RgbSilver  = tcell.NewRGBColor(200, 200, 220)

	// Terminal area outside the playfield
	RgbBorder = tcell.NewRGBColor(0, 0, 0)
)

// Entity colors
var (
	RgbPlayer           = RgbGreen
	RgbPlayerBlink      = tcell.NewRGBColor(60, 120, 60)
	RgbPlayerInvincible = tcell.NewRGBColor(120, 220, 255)
	RgbZigZag           = RgbBlue
	RgbCharger          = RgbRed
	RgbTank             = tcell.NewRGBColor(120, 200, 120)
	RgbBoss             = tcell.NewRGBColor(200, 120, 60)
	RgbPlayerBullet     = RgbWhite
	RgbReflectBullet    = RgbSilver
	RgbEnemyBullet      = RgbYellow
	RgbExplosiveBullet  = RgbOrange
	RgbDebugOutline     = RgbRed
	RgbText             = RgbWhite
)

// BellColors is indexed by bell effect: SPREAD, RAPID, SCORE, SHIELD, INVINCIBLE, REFLECT
var BellColors = [...]tcell.Color{RgbYellow, RgbMagenta, RgbCyan, RgbOrange, RgbPurple, RgbSilver}
