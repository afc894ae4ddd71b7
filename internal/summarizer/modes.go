package summarizer

import (
	"fmt"
	"time"
)

// Mode selects which credential and quota the client runs against. The
// summarization logic is identical in both modes.
type Mode string

const (
	ModeFree Mode = "free"
	ModePaid Mode = "paid"
)

type modeConfig struct {
	model       string
	pacing      time.Duration
	displayName string
	envKey      string
}

var modeConfigs = map[Mode]modeConfig{
	ModeFree: {
		model:       "gemini-2.5-flash-lite",
		pacing:      4 * time.Second,
		displayName: "free tier (daily quota)",
		envKey:      "GEMINI_API_KEY_FREE",
	},
	ModePaid: {
		model:       "gemini-2.5-flash",
		pacing:      200 * time.Millisecond,
		displayName: "paid tier",
		envKey:      "GEMINI_API_KEY_PAID",
	},
}

// ParseMode validates a mode string from config.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if _, ok := modeConfigs[m]; !ok {
		return "", fmt.Errorf("unsupported api mode %q", s)
	}
	return m, nil
}

// EnvKey returns the environment variable holding the API key for the mode.
func (m Mode) EnvKey() string {
	return modeConfigs[m].envKey
}

// DisplayName returns a human-readable label for the mode.
func (m Mode) DisplayName() string {
	return modeConfigs[m].displayName
}

// Model returns the Gemini model the mode runs against.
func (m Mode) Model() string {
	return modeConfigs[m].model
}
