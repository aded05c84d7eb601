package utils

import "strings"

const DefaultMovieIcon = "🎬"

var movieIcons = map[string]string{
	"the prison escape":         "🔒",
	"the family boss":           "👔",
	"the masked hero":           "🦇",
	"urban stories":             "🌆",
	"life journey":              "🏃",
	"dream heist":               "💭",
	"the virtual world":         "🕶️",
	"the wise guys":             "🤵",
	"the quest for the ring":    "💍",
	"space wars: the beginning": "🚀",
	"the factory owner":         "🏭",
	"underground club":          "👊",
}

// MovieIcon returns the display symbol for a title, matched case-insensitively.
func MovieIcon(title string) string {
	if icon, ok := movieIcons[strings.ToLower(title)]; ok {
		return icon
	}
	return DefaultMovieIcon
}
