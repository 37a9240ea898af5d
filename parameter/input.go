package parameter

// Key Event Queue
const (
	// KeyQueueSize is the default ring buffer capacity
	KeyQueueSize = 16

	// HoldFrames is the number of frame ticks between a holdable key press and its synthesized release
	HoldFrames = 2

	// TerminalEventBuffer is the channel depth between the raw input reader and its consumer
	TerminalEventBuffer = 256
)

// Audio Feedback
const (
	// ClickSampleRate is the speaker sample rate in Hz
	ClickSampleRate = 44100

	// ClickPressHz is the tone played for a press event
	ClickPressHz = 880

	// ClickReleaseHz is the tone played for a release event
	ClickReleaseHz = 440

	// ClickDurationMs is the length of one click
	ClickDurationMs = 30

	// ClickBufferMs is the speaker buffer length
	ClickBufferMs = 100
)
