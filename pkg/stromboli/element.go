package stromboli

import "github.com/veandco/go-sdl2/sdl"

// Node is a mounted UI element the controller can query. Implementations
// are owned by the host's widget tree; the controller only reads geometry
// and requests focus through them.
type Node interface {
	// ID returns the element's identifier, used for focus tracking.
	ID() string
	// Bounds returns the element's current on-screen rectangle.
	Bounds() sdl.Rect
	// Focus asks the element to take keyboard input.
	// Returns false if the element is not focusable.
	Focus() bool
}

// Element is a non-owned handle to a node in the host's widget tree.
// Resolve returns nil while the element is not mounted; the controller
// treats that as an expected transient state, never an error.
type Element interface {
	Resolve() Node
}

// ElementFunc adapts a lookup function to the Element interface.
type ElementFunc func() Node

func (f ElementFunc) Resolve() Node {
	return f()
}

// NodeRef is a mutable element handle the host fills in when its UI mounts
// and clears when it unmounts. The zero value resolves to nothing.
type NodeRef struct {
	node Node
}

// Bind points the handle at a mounted node.
func (r *NodeRef) Bind(node Node) {
	r.node = node
}

// Clear detaches the handle from its node.
func (r *NodeRef) Clear() {
	r.node = nil
}

func (r *NodeRef) Resolve() Node {
	return r.node
}

// RegionNode is a basic Node describing a rectangular widget region.
// Hosts rendering with SDL can use it directly; richer widget systems
// implement Node themselves.
type RegionNode struct {
	NodeID    string
	Rect      sdl.Rect
	Focusable bool
	OnFocus   func() // Invoked when focus lands on the region, may be nil
}

func (n *RegionNode) ID() string {
	return n.NodeID
}

func (n *RegionNode) Bounds() sdl.Rect {
	return n.Rect
}

func (n *RegionNode) Focus() bool {
	if !n.Focusable {
		return false
	}
	if n.OnFocus != nil {
		n.OnFocus()
	}
	return true
}
