package tui

import (
	"slices"

	"github.com/google/uuid"

	"github.com/idilsaglam/labeler/internal/controller"
)

// control is one selectable group button. Activation looks the handle up in
// the store; nothing about the group is captured here beyond its label.
type control struct {
	id    uuid.UUID
	label string
}

// Board is the TUI's side of the controller's UI collaborator. It is shared
// by pointer so that every copy of the bubbletea model sees the same state.
type Board struct {
	frame    controller.Frame
	controls []control
	notice   *controller.Notice
}

func NewBoard() *Board { return &Board{} }

// Seed creates one control per group already in the frame.
func (b *Board) Seed(f controller.Frame) {
	b.controls = b.controls[:0]
	for _, g := range f.Groups {
		b.controls = append(b.controls, control{id: g.ID, label: buttonLabel(g.Name)})
	}
	b.frame = f
}

func (b *Board) Notify(n controller.Notice) { b.notice = &n }

func (b *Board) GroupAdded(g controller.GroupState) {
	b.controls = append(b.controls, control{id: g.ID, label: buttonLabel(g.Name)})
}

func (b *Board) GroupRemoved(g controller.GroupState) {
	b.controls = slices.DeleteFunc(b.controls, func(c control) bool { return c.id == g.ID })
}

func (b *Board) Refresh(f controller.Frame) { b.frame = f }

func (b *Board) clearNotice() { b.notice = nil }

// isCurrent reports whether the control's group holds the current item.
func (b *Board) isCurrent(id uuid.UUID) bool {
	for _, g := range b.frame.Groups {
		if g.ID == id {
			return g.Current
		}
	}
	return false
}

func (b *Board) members(id uuid.UUID) int {
	for _, g := range b.frame.Groups {
		if g.ID == id {
			return g.Members
		}
	}
	return 0
}
