// Package focus tracks keyboard focus ownership as an explicit stack of
// element IDs.
//
// Hosts that open layered UI (a context menu over a list, a dialog over the
// menu) push the newly focused element's ID when it takes input and pop it
// when the layer is dismissed, returning focus to whatever was underneath.
// The stack is the host's "active element" query: Current answers which
// element should receive key events right now.
//
// # Basic Usage
//
//	stack := focus.NewStack()
//
//	// Context menu opens and takes focus
//	stack.Push("file-context-menu")
//
//	// Route key events
//	if stack.Current() == "file-context-menu" {
//	    // menu handles the key
//	}
//
//	// Menu dismissed
//	stack.Pop()
//
// Pushing the ID that is already on top is a no-op, so repeated focus calls
// (e.g. from a held key) do not grow the stack. Remove deletes an ID from
// anywhere in the stack for elements that are unmounted while buried under
// another layer.
//
// The zero notion of focus is the empty stack: Current returns "" and the
// host falls back to its own default focus handling.
package focus
