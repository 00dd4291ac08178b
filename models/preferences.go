package models

// Theme is the display theme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Preferences are the per-client display settings.
type Preferences struct {
	Theme    Theme    `json:"theme"`
	Language Language `json:"language"`
}

// UpdatePreferencesRequest is the body of PUT /api/preferences.
type UpdatePreferencesRequest struct {
	Theme    *string `json:"theme"`
	Language *string `json:"language"`
}
