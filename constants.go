package main

import "time"

const (
	// Simulation cadence. The main tick runs game logic; projectile
	// motion integrates on its own faster timer so perceived flight
	// stays smooth independent of AI-tick cost.
	tickInterval             = time.Second / 60
	projectileMotionInterval = 16 * time.Millisecond

	gravity = 1400.0 // px/s^2, shared by enemies, drops, vendor

	// Enemy AI.
	enemyVisibilityRange = 400.0
	enemyMeleeRange      = 80.0
	meleeCooldown        = 600 * time.Millisecond
	meleeWindup          = 250 * time.Millisecond
	meleeRecover         = 350 * time.Millisecond
	casterMinRange       = 200.0
	casterMaxRange       = 400.0
	casterCooldown       = 2 * time.Second
	fireballSpeed        = 420.0
	arrowSpeed           = 760.0

	projectileHitRadius = 32.0
	projectileLifetime  = 3 * time.Second

	// World drops.
	dropPickRadius     = 48.0
	dropNoPickupDelay  = 1500 * time.Millisecond
	deathDropNoPickup  = 3 * time.Second
	dropCleanupTTL     = 5 * time.Minute
	dropScatterSpeed   = 120.0

	autosaveInterval = time.Minute

	// Connection health: ping every 30s; two missed pongs terminates.
	pingPeriod     = 30 * time.Second
	pongWait       = 2*pingPeriod + 5*time.Second
	writeWait      = 10 * time.Second
	maxMessageSize = 8192
)

// enemyBaseSpeed is the level-independent part of an enemy's movement
// speed; the effective speed is baseSpeed + level*6.
func enemyBaseSpeed(enemyType string) float64 {
	switch enemyType {
	case "elite":
		return 55
	case "boss":
		return 35
	case "spellcaster":
		return 30
	case "wisp", "shadowwisp":
		return 70
	default:
		return 45
	}
}
