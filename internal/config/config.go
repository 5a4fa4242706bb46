package config

import "math"

const (
	Title = "Lissajous Curve Table"

	WindowWidth  = 700
	WindowHeight = 700

	// Grid parameters
	CellSize        = 80
	AngleStep       = math.Pi / 400
	MarkerRadius    = 3
	HighlightRadius = 2
	LineWidth       = 1
	GuideAlpha      = 0.2

	// Frame pacing, 0 means uncapped
	TargetFPS = 0

	// Revolution chime
	ChimeSampleRate = 44100
	ChimeFrequency  = 440.0
	ChimeDuration   = 0.25 // seconds
	ChimeVolume     = -1.5 // beep/effects exponent, base 2
)
