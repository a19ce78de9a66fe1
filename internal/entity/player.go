package entity

import "strings"

// Player describes one side of a match: a unique name and the color it plays.
type Player struct {
	Name  string `json:"name"`
	Color Marble `json:"color"`
}

// ParseColor - maps a config token to a marble color. Unknown tokens are returned as is and fail game construction.
func ParseColor(s string) Marble {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "w", "white":
		return White
	case "b", "black":
		return Black
	default:
		return Marble(s)
	}
}
