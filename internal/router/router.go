// Package router keeps the stack of screens and applies navigation
// messages to it. The bottom screen is never removed.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/soroban/internal/screen"
)

// Navigation messages. Screens return them from commands; the router
// handles them before anything reaches the active screen.
type (
	// PushScreenMsg opens Screen on top of the current one.
	PushScreenMsg struct{ Screen screen.Screen }

	// PopScreenMsg closes the top screen and resumes the one below.
	PopScreenMsg struct{}

	// ReplaceScreenMsg closes the top screen and opens Screen in its place,
	// so going back skips the replaced screen.
	ReplaceScreenMsg struct{ Screen screen.Screen }

	// PopToRootMsg closes everything above the bottom screen.
	PopToRootMsg struct{}
)

// Router is a stack of screens. Screens leaving the stack are closed if
// they implement screen.Closer; a screen uncovered by a pop is resumed if
// it implements screen.Resumer.
type Router struct {
	stack []screen.Screen
}

// New creates a router whose bottom screen is root.
func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

// Push opens s and returns its Init command.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop closes the top screen. It does nothing when only the root is left.
func (r *Router) Pop() tea.Cmd {
	return r.drop(1)
}

// PopToRoot closes every screen above the root.
func (r *Router) PopToRoot() tea.Cmd {
	return r.drop(len(r.stack) - 1)
}

// Replace closes the top screen and opens s in its slot.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	if top := len(r.stack) - 1; top >= 0 {
		closeScreen(r.stack[top])
		r.stack[top] = s
	} else {
		r.stack = append(r.stack, s)
	}
	return s.Init()
}

// drop closes the n topmost screens, keeping the root, and resumes the
// new top.
func (r *Router) drop(n int) tea.Cmd {
	n = min(n, len(r.stack)-1)
	if n <= 0 {
		return nil
	}
	keep := len(r.stack) - n
	for i := len(r.stack) - 1; i >= keep; i-- {
		closeScreen(r.stack[i])
		r.stack[i] = nil
	}
	r.stack = r.stack[:keep]

	if s, ok := r.Active().(screen.Resumer); ok {
		return s.Resume()
	}
	return nil
}

// Active returns the top screen, or nil for an empty router.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Depth is the number of screens on the stack.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Update applies navigation messages and forwards everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	case PopToRootMsg:
		return r.PopToRoot()
	}

	if len(r.stack) == 0 {
		return nil
	}
	top := len(r.stack) - 1
	next, cmd := r.stack[top].Update(msg)
	r.stack[top] = next
	return cmd
}

// View renders the active screen into the content area.
func (r *Router) View(width, height int) string {
	if s := r.Active(); s != nil {
		return s.View(width, height)
	}
	return ""
}

func closeScreen(s screen.Screen) {
	if c, ok := s.(screen.Closer); ok {
		c.Close()
	}
}
