package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/idilsaglam/labeler/internal/labels"
	"github.com/idilsaglam/labeler/internal/model"
)

// Level separates plain notices from hard failures.
type Level int

const (
	LevelInfo Level = iota
	LevelError
)

// Notice is a message the UI shows to the user.
type Notice struct {
	Level Level
	Text  string
}

// GroupState is one selectable group control as the view should draw it.
type GroupState struct {
	ID      uuid.UUID
	Name    string
	Members int
	Current bool // the current item belongs to this group
}

// Frame is everything the view needs to draw after an action.
type Frame struct {
	Empty     bool
	Index     int
	Total     int
	Labeled   int
	ItemName  string
	ItemGroup string
	Groups    []GroupState
}

// UI is the display collaborator.
type UI interface {
	Notify(Notice)
	GroupAdded(GroupState)
	GroupRemoved(GroupState)
	Refresh(Frame)
}

// Sink persists exported records.
type Sink interface {
	Write(ctx context.Context, records []model.Record) (model.Receipt, error)
}

// Controller sequences user actions against one cursor and the label store.
// Labeling failures become notices and never end the session.
type Controller struct {
	store  *labels.Store
	ui     UI
	sink   Sink
	log    *zap.Logger
	cursor int
}

func New(store *labels.Store, ui UI, sink Sink, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{store: store, ui: ui, sink: sink, log: log}
}

func (c *Controller) Cursor() int { return c.cursor }

func (c *Controller) Store() *labels.Store { return c.store }

// Refresh pushes the current frame to the UI.
func (c *Controller) Refresh() { c.ui.Refresh(c.Frame()) }

// Frame describes the current item and marks its group as current.
func (c *Controller) Frame() Frame {
	f := Frame{
		Total:   c.store.ItemCount(),
		Labeled: c.store.Labeled(),
		Index:   c.cursor,
	}
	it, err := c.store.ItemAt(c.cursor)
	if err != nil {
		f.Empty = true
	} else {
		f.ItemName, f.ItemGroup = it.Name, it.Group
	}
	for _, g := range c.store.Groups() {
		f.Groups = append(f.Groups, GroupState{
			ID:      g.ID,
			Name:    g.Name,
			Members: g.Members,
			Current: !f.Empty && g.Name == f.ItemGroup,
		})
	}
	return f
}

// Next moves the cursor forward, wrapping at the end.
func (c *Controller) Next() error { return c.step(1) }

// Prev moves the cursor back, wrapping at the start.
func (c *Controller) Prev() error { return c.step(-1) }

func (c *Controller) step(delta int) error {
	n := c.store.ItemCount()
	if n == 0 {
		c.notifyInfo("There are no items to label.")
		return labels.ErrEmptyStore
	}
	c.cursor = ((c.cursor+delta)%n + n) % n
	c.log.Debug("cursor moved", zap.Int("index", c.cursor), zap.Int("total", n))
	c.Refresh()
	return nil
}

// AssignCurrentTo labels the current item and advances to the next one.
func (c *Controller) AssignCurrentTo(group string) error {
	group = labels.CleanName(group)
	if c.store.ItemCount() == 0 {
		c.notifyInfo("There are no items to label.")
		return labels.ErrEmptyStore
	}
	if err := c.store.Reassign(c.cursor, group); err != nil {
		c.log.Info("assign rejected", zap.String("group", group), zap.Error(err))
		c.notifyMissing(group, false)
		return err
	}
	c.log.Debug("item assigned", zap.Int("index", c.cursor), zap.String("group", group))
	return c.step(1)
}

// AssignHandle resolves a group control's handle at activation time and
// assigns the current item to it.
func (c *Controller) AssignHandle(id uuid.UUID) error {
	name, err := c.store.GroupByID(id)
	if err != nil {
		c.log.Info("stale group handle", zap.Stringer("id", id))
		c.notifyInfo("Category does not exist!")
		return err
	}
	return c.AssignCurrentTo(name)
}

// RequestNewGroup creates a group and asks the UI for a new control.
func (c *Controller) RequestNewGroup(name string) error {
	name = labels.CleanName(name)
	if err := c.store.CreateGroup(name); err != nil {
		switch {
		case errors.Is(err, labels.ErrDuplicateGroup):
			c.notifyInfo("Category already exists!")
		default:
			c.notifyInfo("Category name cannot be empty!")
		}
		c.log.Info("create group rejected", zap.String("group", name), zap.Error(err))
		return err
	}
	id, _ := c.store.GroupID(name)
	c.log.Debug("group created", zap.String("group", name), zap.Stringer("id", id))
	c.ui.GroupAdded(GroupState{ID: id, Name: name})
	c.Refresh()
	return nil
}

// RequestDeleteGroup removes a group and its control. Members fall back to
// the sentinel group.
func (c *Controller) RequestDeleteGroup(name string) error {
	name = labels.CleanName(name)
	id, _ := c.store.GroupID(name)
	if err := c.store.DeleteGroup(name); err != nil {
		c.log.Info("delete group rejected", zap.String("group", name), zap.Error(err))
		c.notifyMissing(name, true)
		return err
	}
	c.log.Debug("group deleted", zap.String("group", name))
	c.ui.GroupRemoved(GroupState{ID: id, Name: name})
	c.Refresh()
	return nil
}

// RequestExport hands every record to the sink. A sink failure is the one
// error the caller should treat as hard.
func (c *Controller) RequestExport(ctx context.Context) error {
	records := c.store.ExportAll()
	receipt, err := c.sink.Write(ctx, records)
	if err != nil {
		c.log.Error("export failed", zap.Int("records", len(records)), zap.Error(err))
		c.ui.Notify(Notice{Level: LevelError, Text: "Export failed: " + err.Error()})
		return fmt.Errorf("export: %w", err)
	}
	c.log.Info("export written",
		zap.String("location", receipt.Location),
		zap.Int("records", len(records)),
		zap.Int64("bytes", receipt.Bytes))
	c.notifyInfo(fmt.Sprintf("Data saved successfully! (%s, %s)",
		receipt.Location, humanize.Bytes(uint64(receipt.Bytes))))
	return nil
}

func (c *Controller) notifyInfo(text string) {
	c.ui.Notify(Notice{Level: LevelInfo, Text: text})
}

func (c *Controller) notifyMissing(name string, deleting bool) {
	if deleting && name == model.Sentinel {
		c.notifyInfo(fmt.Sprintf("Category %q cannot be deleted!", name))
		return
	}
	text := "Category does not exist!"
	if alt, ok := c.store.Closest(name); ok && !(deleting && alt == model.Sentinel) {
		text += fmt.Sprintf(" Did you mean %q?", alt)
	}
	c.notifyInfo(text)
}
