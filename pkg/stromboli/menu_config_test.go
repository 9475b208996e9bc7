package stromboli

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleDefinition = `
[menu]
use_fixed_style = true
use_reorder_by_selection = true
margin = 8

[[items]]
name = "copy"
label = "Copy"
icon = "icons/copy.svg"
message_id = "menu_copy"

[[items]]
name = "paste"
label = "Paste"

[[items]]
name = "delete"
label = "Delete"
`

func TestParseMenuDefinition(t *testing.T) {
	def, err := ParseMenuDefinition([]byte(sampleDefinition))
	if err != nil {
		t.Fatalf("ParseMenuDefinition: %v", err)
	}

	if !def.Menu.UseFixedStyle || !def.Menu.UseReorderBySelection {
		t.Errorf("flags = %+v, want both enabled", def.Menu)
	}
	if def.Menu.Margin != 8 {
		t.Errorf("margin = %d, want 8", def.Menu.Margin)
	}
	if len(def.Items) != 3 {
		t.Fatalf("items = %d, want 3", len(def.Items))
	}
	if def.Items[0].Icon != "icons/copy.svg" || def.Items[0].MessageID != "menu_copy" {
		t.Errorf("first item = %+v", def.Items[0])
	}
}

func TestParseMenuDefinitionRejectsBadItems(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{
			name: "empty name",
			toml: "[[items]]\nlabel = \"Nameless\"\n",
		},
		{
			name: "duplicate name",
			toml: "[[items]]\nname = \"copy\"\n\n[[items]]\nname = \"copy\"\n",
		},
		{
			name: "reserved divider name",
			toml: "[[items]]\nname = \"selection-divider\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMenuDefinition([]byte(tt.toml))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !IsConfigurationError(err) {
				t.Errorf("error %v is not a ConfigurationError", err)
			}
		})
	}
}

func TestParseMenuDefinitionRejectsInvalidTOML(t *testing.T) {
	_, err := ParseMenuDefinition([]byte("[[items]\nname ="))
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if IsConfigurationError(err) {
		t.Error("syntax errors should not be reported as configuration errors")
	}
}

func TestLoadMenuDefinition(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.toml")
	if err := os.WriteFile(path, []byte(sampleDefinition), 0644); err != nil {
		t.Fatal(err)
	}

	def, err := LoadMenuDefinition(path)
	if err != nil {
		t.Fatalf("LoadMenuDefinition: %v", err)
	}
	if len(def.Items) != 3 {
		t.Errorf("items = %d, want 3", len(def.Items))
	}
}

func TestLoadMenuDefinitionMissingFile(t *testing.T) {
	_, err := LoadMenuDefinition(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestMenuDefinitionSettings(t *testing.T) {
	def, err := ParseMenuDefinition([]byte(sampleDefinition))
	if err != nil {
		t.Fatal(err)
	}

	settings := def.Settings()
	settings.TargetElement = staticElement("target", 0, 0, 10, 10, false)
	settings.MenuElement = staticElement("menu", 0, 0, 10, 10, true)

	menu, err := NewContextMenu(settings)
	if err != nil {
		t.Fatalf("NewContextMenu from definition: %v", err)
	}

	if got := joinNames(menu.Items()); got != "copy,paste,delete" {
		t.Errorf("items = %q", got)
	}

	// Margin from the definition flows into position derivation
	style := menu.FixedMenuStyle()
	if style.Left != 8 || style.Top != 18 {
		t.Errorf("style = (left %d, top %d), want (8, 18)", style.Left, style.Top)
	}
}
