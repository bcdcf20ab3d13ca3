package model

// Preferences is everything the converter remembers between runs.
// Only the dark-mode flag is persisted.
type Preferences struct {
	DarkMode bool `json:"darkMode"`
}
