package stromboli

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/stromboli/pkg/stromboli/internal"
)

// MenuDefinition is a context menu described in a TOML file: the item list
// plus the controller feature flags. Element handles cannot come from a
// file, so Settings leaves them for the host to fill in.
//
// Example:
//
//	[menu]
//	use_fixed_style = true
//	use_reorder_by_selection = true
//	margin = 6
//
//	[[items]]
//	name = "copy"
//	label = "Copy"
//	icon = "icons/copy.svg"
//	message_id = "menu_copy"
type MenuDefinition struct {
	Menu  MenuFlags        `toml:"menu"`
	Items []ItemDefinition `toml:"items"`
}

// MenuFlags holds the controller feature flags of a menu definition.
type MenuFlags struct {
	UseFixedStyle         bool  `toml:"use_fixed_style"`
	UseReorderBySelection bool  `toml:"use_reorder_by_selection"`
	Margin                int32 `toml:"margin"`
}

// ItemDefinition is one menu item entry in a menu definition file.
type ItemDefinition struct {
	Name      string `toml:"name"`
	Label     string `toml:"label"`
	Icon      string `toml:"icon"`
	MessageID string `toml:"message_id"`
}

// LoadMenuDefinition reads and parses a TOML menu definition file.
func LoadMenuDefinition(path string) (*MenuDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("stromboli: read menu definition: %w", err)
	}
	return ParseMenuDefinition(data)
}

// ParseMenuDefinition parses a TOML menu definition and validates its item
// list: every item needs a non-empty name, names must be unique, and the
// selection divider name is reserved.
func ParseMenuDefinition(data []byte) (*MenuDefinition, error) {
	var def MenuDefinition
	if err := toml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("stromboli: parse menu definition: %w", err)
	}

	seen := make(map[string]struct{}, len(def.Items))
	for i, item := range def.Items {
		if item.Name == "" {
			return nil, NewConfigurationError("Items",
				fmt.Errorf("item %d: %w", i, errors.New("name must not be empty")))
		}
		if item.Name == SelectionDivider().Name {
			return nil, NewConfigurationError("Items",
				fmt.Errorf("item %d: name %q is reserved for the selection divider", i, item.Name))
		}
		if _, dup := seen[item.Name]; dup {
			return nil, NewConfigurationError("Items",
				fmt.Errorf("item %d: duplicate name %q", i, item.Name))
		}
		seen[item.Name] = struct{}{}
	}

	return &def, nil
}

// Settings converts the definition into controller settings. The host must
// still supply TargetElement and MenuElement before calling NewContextMenu.
func (d *MenuDefinition) Settings() ContextMenuSettings {
	items := make([]MenuItem, 0, len(d.Items))
	for _, item := range d.Items {
		items = append(items, MenuItem{
			Name:         item.Name,
			Label:        item.Label,
			IconFilename: item.Icon,
			MessageID:    item.MessageID,
		})
	}

	settings := ContextMenuSettings{
		Items:                 items,
		UseFixedStyle:         d.Menu.UseFixedStyle,
		UseReorderBySelection: d.Menu.UseReorderBySelection,
	}

	if d.Menu.Margin > 0 {
		margin := internal.UniformPadding(d.Menu.Margin)
		settings.Margin = &margin
	}

	return settings
}
