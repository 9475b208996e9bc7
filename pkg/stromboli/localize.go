package stromboli

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/stromboli/pkg/stromboli/internal"
)

// NewBundle creates a message bundle for menu label translation with TOML
// message files registered. The default language is used when a message has
// no translation for the requested languages.
func NewBundle(defaultLang string, messageFiles ...string) (*i18n.Bundle, error) {
	tag, err := language.Parse(defaultLang)
	if err != nil {
		return nil, fmt.Errorf("stromboli: parse language %q: %w", defaultLang, err)
	}

	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range messageFiles {
		if _, err := bundle.LoadMessageFile(file); err != nil {
			return nil, fmt.Errorf("stromboli: load message file %q: %w", file, err)
		}
	}

	return bundle, nil
}

// LocalizeItems returns a copy of items with each label translated through
// the localizer. Only items carrying a MessageID are touched; their current
// label doubles as the fallback when no translation exists. Dividers are
// skipped. The input list is never mutated.
func LocalizeItems(localizer *i18n.Localizer, items []MenuItem) []MenuItem {
	localized := append([]MenuItem(nil), items...)

	for i := range localized {
		if localized[i].IsDivider() || localized[i].MessageID == "" {
			continue
		}

		label, err := localizer.Localize(&i18n.LocalizeConfig{
			MessageID: localized[i].MessageID,
			DefaultMessage: &i18n.Message{
				ID:    localized[i].MessageID,
				Other: localized[i].Label,
			},
		})
		if err != nil {
			internal.GetLogger().Debug("menu label localization failed",
				"message_id", localized[i].MessageID, "error", err)
			continue
		}

		localized[i].Label = label
	}

	return localized
}
