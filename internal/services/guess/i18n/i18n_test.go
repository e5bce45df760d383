package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestEnglishCatalog(t *testing.T) {
	p := Printer(language.English)

	tcs := []struct {
		key  string
		args []any
		want string
	}{
		{key: BannerKey, want: "Guess the number!"},
		{key: SecretKey, args: []any{"42"}, want: "The secret number is: 42"},
		{key: PromptKey, args: []any{"1", "100"}, want: "Please input your guess. 1 ~ 100"},
		{key: EchoKey, args: []any{"7"}, want: "You guessed: 7"},
		{key: InvalidInputKey, want: "! input number"},
		{key: TooSmallKey, want: "Too small!"},
		{key: TooBigKey, want: "Too big!"},
		{key: WinKey, want: "You win!"},
	}
	for _, tc := range tcs {
		if got := p.Sprintf(tc.key, tc.args...); got != tc.want {
			t.Fatalf("Sprintf(%q) = %q, want %q", tc.key, got, tc.want)
		}
	}
}

func TestPortugueseCatalog(t *testing.T) {
	p := Printer(language.MustParse("pt-BR"))

	if got := p.Sprintf(TooBigKey); got != "Muito grande!" {
		t.Fatalf("too big = %q, want %q", got, "Muito grande!")
	}
	if got := p.Sprintf(PromptKey, "1", "100"); got != "Digite seu palpite. 1 ~ 100" {
		t.Fatalf("prompt = %q", got)
	}
}

func TestParseTag(t *testing.T) {
	tcs := []struct {
		value  string
		want   language.Tag
		wantOK bool
	}{
		{value: "en", want: language.English, wantOK: true},
		{value: " pt-BR ", want: language.MustParse("pt-BR"), wantOK: true},
		{value: "", want: language.English, wantOK: false},
		{value: "not a tag!", want: language.English, wantOK: false},
	}
	for _, tc := range tcs {
		got, ok := ParseTag(tc.value)
		if ok != tc.wantOK {
			t.Fatalf("ParseTag(%q) ok = %v, want %v", tc.value, ok, tc.wantOK)
		}
		if got != tc.want {
			t.Fatalf("ParseTag(%q) = %v, want %v", tc.value, got, tc.want)
		}
	}
}

func TestSupportedReturnsCopy(t *testing.T) {
	tags := Supported()
	if len(tags) != 2 {
		t.Fatalf("expected 2 supported tags, got %d", len(tags))
	}
	tags[0] = language.Japanese
	if Supported()[0] != language.English {
		t.Fatal("expected Supported to return a copy")
	}
}
