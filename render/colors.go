package render

// Palette
var (
	RgbBackground = RGB{26, 27, 38}  // Tokyo Night background
	RgbHUDBg      = RGB{36, 40, 59}  // HUD and status rows
	RgbText       = RGB{192, 202, 245}
	RgbTextDim    = RGB{86, 95, 137}

	// Player
	RgbPlayerBody  = RGB{255, 182, 193} // Light pink
	RgbPlayerHit   = RGB{255, 0, 0}     // Full-intensity damage flash
	RgbPlayerEye   = RGB{255, 255, 255}
	RgbPlayerPupil = RGB{0, 0, 0}
	RgbInvincible  = RGB{0, 123, 255} // Blue outline
	RgbSoul        = RGB{204, 204, 204}
	RgbSoulEye     = RGB{136, 136, 136}

	// Entities
	RgbObstacle  = RGB{139, 69, 19} // Saddle brown
	RgbHealBg    = RGB{255, 255, 255}
	RgbHealCross = RGB{76, 175, 80} // Material green

	// HUD
	RgbHeart       = RGB{255, 64, 96}
	RgbHeartBroken = RGB{90, 30, 40}
	RgbScore       = RGB{255, 255, 255}
	RgbMuted       = RGB{247, 118, 142}

	// Cooldown bar
	RgbCooldownRolling = RGB{255, 165, 0}
	RgbCooldownCooling = RGB{122, 162, 247}
	RgbCooldownReady   = RGB{158, 206, 106}
	RgbCooldownTrack   = RGB{52, 59, 88}

	// Labels
	RgbMissLabel  = RGB{255, 255, 255}
	RgbComboLabel = RGB{255, 215, 0} // Gold

	// Panels
	RgbPanelBg     = RGB{22, 22, 30}
	RgbPanelBorder = RGB{122, 162, 247}
	RgbPanelTitle  = RGB{247, 118, 142}
	RgbNewBest     = RGB{255, 215, 0}
)
