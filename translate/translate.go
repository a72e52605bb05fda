package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

func init() {
	tags, err := userLanguages()
	if err != nil {
		log.Printf("sim8086: locale: %v", err)
	}
	if len(tags) != 0 {
		printer = message.NewPrinter(tags[0])
	}
}

// userLanguages returns the parsable locales of the user, in preference
// order.
func userLanguages() (tags []language.Tag, err error) {
	locales, err := locale.GetLocales()
	for _, name := range locales {
		tag, perr := language.Parse(name)
		if perr != nil {
			continue
		}
		tags = append(tags, tag)
	}
	return
}

// SetLanguage selects the language of messages by BCP 47 name, ie 'de-CH'.
// An empty name keeps the language of the user's locale.
func SetLanguage(name string) (err error) {
	if len(name) == 0 {
		return
	}

	tag, err := language.Parse(name)
	if err != nil {
		return
	}

	printer = message.NewPrinter(tag)
	return
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
