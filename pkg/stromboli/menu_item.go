package stromboli

import "github.com/BrandonKowalski/stromboli/pkg/stromboli/constants"

// MenuItem represents a single item in a context menu.
type MenuItem struct {
	Name         string      // Unique identifier within a menu list, the equality key for selection matching
	Label        string      // Display text for the item
	Divider      bool        // Whether this item is a visual separator rather than a real entry
	MessageID    string      // Translation message ID for the label (see LocalizeItems)
	IconFilename string      // Path to an SVG icon displayed next to the label
	Metadata     interface{} // Application-specific data attached to the item
}

// IsDivider returns whether the item is a separator. The Divider flag alone
// decides this: a real item that happens to reuse the divider's name is
// still a real item.
func (m MenuItem) IsDivider() bool {
	return m.Divider
}

// SelectionDivider returns the synthetic item inserted between selected and
// unselected entries by reordering. It carries no selection meaning and
// never matches a real item.
func SelectionDivider() MenuItem {
	return MenuItem{
		Name:    constants.SelectionDividerName,
		Divider: true,
	}
}
