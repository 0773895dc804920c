package parameter

// HUD Labels
const (
	LabelGameOver   = "GAME OVER - R to Retry"
	LabelClear      = "CLEAR! - R to Retry"
	LabelFinalScore = "FINAL SCORE %d"
	LabelScore      = "SCORE %d"
	LabelLives      = "LIFE %d"
	LabelBellRate   = "BELL %d%%"
	LabelBossHP     = "BOSS %d"
)

// Power-up Labels
const (
	LabelSpread     = "SPREAD"
	LabelRapid      = "RAPID"
	LabelMult       = "X%d"
	LabelReflect    = "REFLECT"
	LabelShield     = "SHIELD %d"
	LabelCharges    = "INV %d (M)"
	LabelInvincible = "INVINCIBLE"
)
