package handler

import (
	"net/http"

	"golang.org/x/text/language"

	"github.com/osse101/CoffeeGarden_Go/internal/domain"
)

// supportedLanguages lists the catalog display-name locales, default first
var supportedLanguages = []language.Tag{
	language.English,
	language.SimplifiedChinese,
	language.TraditionalChinese,
}

var languageMatcher = language.NewMatcher(supportedLanguages)

// negotiateLanguage picks the display locale for a request from its
// Accept-Language header and an optional lang query override.
func negotiateLanguage(r *http.Request) language.Tag {
	tag, _ := language.MatchStrings(languageMatcher, r.URL.Query().Get("lang"), r.Header.Get(HeaderAcceptLanguage))
	base, _ := tag.Base()
	script, _ := tag.Script()
	for _, s := range supportedLanguages {
		sb, _ := s.Base()
		ss, _ := s.Script()
		if sb == base && ss == script {
			return s
		}
	}
	return language.English
}

// displayName returns the variety's name in tag, falling back to English,
// then to the catalog key.
func displayName(v domain.Variety, tag language.Tag) string {
	if name, ok := v.DisplayNames[tag.String()]; ok {
		return name
	}
	if name, ok := v.DisplayNames[language.English.String()]; ok {
		return name
	}
	return v.Name
}
