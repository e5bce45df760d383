package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.MustParse("pt-BR")

	message.SetString(lang, BannerKey, "Adivinhe o número!")
	message.SetString(lang, SecretKey, "O número secreto é: %s")
	message.SetString(lang, PromptKey, "Digite seu palpite. %s ~ %s")
	message.SetString(lang, EchoKey, "Você chutou: %s")
	message.SetString(lang, InvalidInputKey, "! digite um número")
	message.SetString(lang, TooSmallKey, "Muito pequeno!")
	message.SetString(lang, TooBigKey, "Muito grande!")
	message.SetString(lang, WinKey, "Você venceu!")
}
