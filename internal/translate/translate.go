// Package translate formats diagnostic messages for the locale of the user.
package translate

import (
	"github.com/jeandeaual/go-locale"
	"golang.org/x/text/message"
)

const fallbackLocale = "en-US"

var printer = newPrinter()

func newPrinter() *message.Printer {
	locales, err := locale.GetLocales()
	if err != nil || len(locales) == 0 {
		locales = []string{fallbackLocale}
	}
	return message.NewPrinter(message.MatchLanguage(locales...))
}

// From formats an en-US Sprintf() format and its arguments in the language of the user.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
