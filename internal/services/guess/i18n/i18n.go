// Package i18n registers the player-facing copy of the guessing game with
// golang.org/x/text and resolves the printer for a locale.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys. Keys are the catalog identifiers, not display text.
const (
	BannerKey       = "guess.banner"
	SecretKey       = "guess.secret"
	PromptKey       = "guess.prompt"
	EchoKey         = "guess.echo"
	InvalidInputKey = "guess.invalid_input"
	TooSmallKey     = "guess.too_small"
	TooBigKey       = "guess.too_big"
	WinKey          = "guess.win"
)

var supportedTags = []language.Tag{
	language.English,
	language.MustParse("pt-BR"),
}

var tagMatcher = language.NewMatcher(supportedTags)

// Localizer is the minimal message-printer contract the game renders with.
// *message.Printer satisfies it.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// Default returns the default language tag.
func Default() language.Tag {
	return language.English
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// ParseTag resolves value to the closest supported tag. Empty, malformed or
// unmatched values resolve to Default and report false.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Default(), false
	}
	parsed, err := language.Parse(value)
	if err != nil {
		return Default(), false
	}
	_, index, confidence := tagMatcher.Match(parsed)
	if confidence == language.No {
		return Default(), false
	}
	return supportedTags[index], true
}
