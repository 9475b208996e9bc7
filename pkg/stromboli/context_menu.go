package stromboli

import (
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/stromboli/pkg/stromboli/constants"
	"github.com/BrandonKowalski/stromboli/pkg/stromboli/focus"
	"github.com/BrandonKowalski/stromboli/pkg/stromboli/internal"
)

// ContextMenuSettings configures a context-menu controller.
// TargetElement and MenuElement are required; everything else is optional.
type ContextMenuSettings struct {
	// TargetElement is the interactive element the menu is anchored to.
	TargetElement Element
	// MenuElement is the menu container that receives focus.
	MenuElement Element
	// Visible optionally supplies the visibility flag. Passing a flag that
	// is also held by the host (or by a sibling controller) shares visibility
	// state; nil creates a fresh flag starting hidden.
	Visible *atomic.Bool
	// Items is the configured menu item list. Required when
	// UseReorderBySelection is enabled.
	Items []MenuItem
	// UseFixedStyle enables deriving a fixed screen position from the
	// target's geometry. When false the menu stays in normal layout flow
	// and FixedMenuStyle returns nil.
	UseFixedStyle bool
	// UseReorderBySelection enables selection-aware reordering of Items.
	UseReorderBySelection bool
	// Margin is the gap between the target's bounds and the menu position
	// (default: uniform constants.DefaultMenuMargin).
	Margin *internal.Padding
	// Viewport optionally clamps the derived position so the menu anchor
	// stays on-screen.
	Viewport *sdl.Rect
	// FocusStack optionally supplies a shared focus stack so sibling
	// controllers agree on the active element; nil creates a fresh one.
	FocusStack *focus.Stack
}

// ContextMenu is the behavioral controller for a context-menu widget.
// It owns when the menu is shown, where it is positioned, and where
// keyboard focus goes; rendering and event wiring stay with the host.
//
// All methods are synchronous and run on the host's UI goroutine. State
// changes become visible in the rendered UI on the host's next frame.
type ContextMenu struct {
	target    Element
	menu      Element
	visible   *atomic.Bool
	items     []MenuItem
	fixed     bool
	reorder   bool
	margin    internal.Padding
	viewport  *sdl.Rect
	focusStack *focus.Stack
}

// NewContextMenu validates settings and creates a controller.
// Validation is fail-fast: a missing target or menu element, or a missing
// item list while UseReorderBySelection is set, returns a
// *ConfigurationError and no controller.
func NewContextMenu(settings ContextMenuSettings) (*ContextMenu, error) {
	if settings.TargetElement == nil {
		return nil, NewConfigurationError("TargetElement", ErrMissingTarget)
	}
	if settings.MenuElement == nil {
		return nil, NewConfigurationError("MenuElement", ErrMissingMenu)
	}
	if settings.UseReorderBySelection && len(settings.Items) == 0 {
		return nil, NewConfigurationError("Items", ErrMissingItems)
	}

	visible := settings.Visible
	if visible == nil {
		visible = atomic.NewBool(false)
	}

	margin := internal.UniformPadding(constants.DefaultMenuMargin)
	if settings.Margin != nil {
		margin = *settings.Margin
	}

	stack := settings.FocusStack
	if stack == nil {
		stack = focus.NewStack()
	}

	var viewport *sdl.Rect
	if settings.Viewport != nil {
		v := *settings.Viewport
		viewport = &v
	}

	c := &ContextMenu{
		target:    settings.TargetElement,
		menu:      settings.MenuElement,
		visible:   visible,
		items:     append([]MenuItem(nil), settings.Items...),
		fixed:     settings.UseFixedStyle,
		reorder:   settings.UseReorderBySelection,
		margin:    margin,
		viewport:  viewport,
		focusStack: stack,
	}

	return c, nil
}

// VisibleMenu returns whether the menu should currently be displayed.
// This flag is the single source of truth for menu visibility; the
// controller never inspects the widget tree to decide it.
func (c *ContextMenu) VisibleMenu() bool {
	return c.visible.Load()
}

// ShowContextMenu marks the menu visible. Idempotent.
func (c *ContextMenu) ShowContextMenu() {
	c.visible.Store(true)
}

// HideContextMenu marks the menu hidden. Idempotent.
func (c *ContextMenu) HideContextMenu() {
	c.visible.Store(false)
}

// FixedMenuStyle derives the menu's fixed screen position from the target
// element's current bounds: the menu anchors below the target's bottom-left
// corner, offset by the configured margin and clamped into the viewport
// when one was supplied.
//
// Returns nil when UseFixedStyle is disabled. While the target is not
// mounted the neutral zero style is returned instead of failing. The
// position is recomputed from current geometry on every call, so hosts
// should re-query after anything that can move the target.
func (c *ContextMenu) FixedMenuStyle() *FixedStyle {
	if !c.fixed {
		return nil
	}

	node := c.target.Resolve()
	if node == nil {
		return &FixedStyle{}
	}

	bounds := node.Bounds()
	left := bounds.X + c.margin.Left
	top := bounds.Y + bounds.H + c.margin.Top

	if c.viewport != nil {
		left, top = internal.ClampPoint(left, top, *c.viewport)
	}

	return &FixedStyle{Top: top, Left: left}
}

// FocusOnContextMenu moves keyboard focus to the menu element and records
// it as the active element on the focus stack. If the menu is not mounted
// (typically because it is not visible yet) or refuses focus, this is a
// no-op: mount timing is an expected transient state, not an error.
//
// Visibility is not changed here; callers show the menu before or as part
// of focusing it.
func (c *ContextMenu) FocusOnContextMenu() {
	node := c.menu.Resolve()
	if node == nil {
		internal.GetLogger().Debug("focus requested before menu mounted")
		return
	}
	if !node.Focus() {
		return
	}
	c.focusStack.Push(node.ID())
}

// FocusStack returns the controller's focus stack. Hosts query its Current
// value as the active element and pop it when the menu is dismissed.
func (c *ContextMenu) FocusStack() *focus.Stack {
	return c.focusStack
}

// Items returns a copy of the configured menu item list.
func (c *ContextMenu) Items() []MenuItem {
	return append([]MenuItem(nil), c.items...)
}
