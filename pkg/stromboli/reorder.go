package stromboli

// ReorderMenuBySelection reorders the configured menu item list against the
// given selection: selected items first, one selection divider, then the
// remaining items. Relative order inside both groups is always the
// configured order, never the order of the selection.
//
// An empty selection, or one matching nothing, returns the configured order
// with no divider. Selection entries naming items not in the configured
// list contribute nothing. The configured list is never mutated; every call
// returns a fresh slice.
func (c *ContextMenu) ReorderMenuBySelection(selectedItems []MenuItem) []MenuItem {
	return ReorderBySelection(c.items, selectedItems)
}

// ReorderBySelection is the pure reordering function behind
// ContextMenu.ReorderMenuBySelection, usable without a controller.
// Matching is by item Name only; divider entries never match.
func ReorderBySelection(items, selectedItems []MenuItem) []MenuItem {
	selectedNames := make(map[string]struct{}, len(selectedItems))
	for _, item := range selectedItems {
		if item.IsDivider() || item.Name == "" {
			continue
		}
		selectedNames[item.Name] = struct{}{}
	}

	selected := make([]MenuItem, 0, len(selectedNames))
	unselected := make([]MenuItem, 0, len(items))

	for _, item := range items {
		if _, ok := selectedNames[item.Name]; ok && !item.IsDivider() {
			selected = append(selected, item)
		} else {
			unselected = append(unselected, item)
		}
	}

	if len(selected) == 0 {
		return unselected
	}

	reordered := make([]MenuItem, 0, len(items)+1)
	reordered = append(reordered, selected...)
	reordered = append(reordered, SelectionDivider())
	return append(reordered, unselected...)
}
