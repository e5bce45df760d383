package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	message.SetString(lang, BannerKey, "Guess the number!")
	message.SetString(lang, SecretKey, "The secret number is: %s")
	message.SetString(lang, PromptKey, "Please input your guess. %s ~ %s")
	message.SetString(lang, EchoKey, "You guessed: %s")
	message.SetString(lang, InvalidInputKey, "! input number")
	message.SetString(lang, TooSmallKey, "Too small!")
	message.SetString(lang, TooBigKey, "Too big!")
	message.SetString(lang, WinKey, "You win!")
}
