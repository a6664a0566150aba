package config

const (
	WindowWidth  = 1024
	WindowHeight = 640
	WindowTitle  = "Holiday Scene - Space: music, O: choose track, Esc/Q: quit"

	// Updates per second in window mode; also the export frame rate.
	TPS = 60

	// Button dimensions
	ButtonWidth  = 120
	ButtonHeight = 32
	ButtonX      = 20
	ButtonY      = 36

	// Snow
	FlakeCount     = 120
	FlakeMinRadius = 1.0
	FlakeMaxRadius = 3.0
	FlakeMinSpeed  = 0.3
	FlakeMaxSpeed  = 1.5
	FlakeResetY    = -5.0

	// Hanging lights
	LightCount         = 30
	LightBaseY         = 40.0
	LightSag           = 35.0
	LightRadius        = 6.0
	LightDrop          = 10.0
	LightSwayAmplitude = 3.0
	LightSwayRate      = 0.02
	LightMinSpeed      = 0.05
	LightMaxSpeed      = 0.10
	LightStringWidth   = 3.0
	LightHaloWidth     = 10.0
	LightHaloGap       = 4.0

	// Backdrop
	SnowLine    = 0.75
	StarCount   = 80
	StarStrideX = 77
	StarStrideY = 43
	StarDrift   = 0.4
	StarTop     = 20.0
	StarSize    = 1.3

	// Figures stand this far above the snow line before their own offset.
	FigureBaseline = 20.0

	// Music
	FadeInSeconds  = 1.5
	FadeFloor      = -5.0
	VolumeBase     = 2.0
	LevelRingSize  = 4096
	LevelWindow    = 1024
	SpeakerLatency = 20 // buffer is 1/SpeakerLatency of a second
)
