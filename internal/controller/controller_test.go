package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/idilsaglam/labeler/internal/labels"
	"github.com/idilsaglam/labeler/internal/model"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type recordingUI struct {
	notices []Notice
	added   []GroupState
	removed []GroupState
	frames  []Frame
}

func (r *recordingUI) Notify(n Notice)          { r.notices = append(r.notices, n) }
func (r *recordingUI) GroupAdded(g GroupState)   { r.added = append(r.added, g) }
func (r *recordingUI) GroupRemoved(g GroupState) { r.removed = append(r.removed, g) }
func (r *recordingUI) Refresh(f Frame)           { r.frames = append(r.frames, f) }

func (r *recordingUI) lastNotice(t *testing.T) Notice {
	t.Helper()
	require.NotEmpty(t, r.notices)
	return r.notices[len(r.notices)-1]
}

func (r *recordingUI) lastFrame(t *testing.T) Frame {
	t.Helper()
	require.NotEmpty(t, r.frames)
	return r.frames[len(r.frames)-1]
}

type memSink struct {
	got []model.Record
	err error
}

func (m *memSink) Write(_ context.Context, records []model.Record) (model.Receipt, error) {
	if m.err != nil {
		return model.Receipt{}, m.err
	}
	m.got = append([]model.Record(nil), records...)
	return model.Receipt{Location: "mem", Bytes: int64(len(records))}, nil
}

func newTestController(t *testing.T, items ...string) (*Controller, *recordingUI, *memSink) {
	t.Helper()
	ui := &recordingUI{}
	sink := &memSink{}
	c := New(labels.FromNames(items), ui, sink, zaptest.NewLogger(t))
	return c, ui, sink
}

func TestNextWrapsAround(t *testing.T) {
	c, _, _ := newTestController(t, "A", "B", "C")
	for i := 0; i < 3; i++ {
		require.NoError(t, c.Next())
	}
	assert.Equal(t, 0, c.Cursor())
}

func TestPrevFromZeroGoesToLast(t *testing.T) {
	c, ui, _ := newTestController(t, "A", "B", "C")
	require.NoError(t, c.Prev())
	assert.Equal(t, 2, c.Cursor())
	assert.Equal(t, "C", ui.lastFrame(t).ItemName)
}

func TestNavigationOnEmptyStore(t *testing.T) {
	c, ui, _ := newTestController(t)
	require.ErrorIs(t, c.Next(), labels.ErrEmptyStore)
	require.ErrorIs(t, c.Prev(), labels.ErrEmptyStore)
	require.ErrorIs(t, c.AssignCurrentTo(model.Sentinel), labels.ErrEmptyStore)
	assert.Equal(t, 0, c.Cursor())
	assert.Len(t, ui.notices, 3)

	f := c.Frame()
	assert.True(t, f.Empty)
	require.Len(t, f.Groups, 1)
	assert.False(t, f.Groups[0].Current)
}

func TestAssignAdvancesAndWraps(t *testing.T) {
	c, ui, _ := newTestController(t, "A", "B", "C")
	require.NoError(t, c.RequestNewGroup("fruit"))
	require.NoError(t, c.Prev())
	require.Equal(t, 2, c.Cursor())

	require.NoError(t, c.AssignCurrentTo("fruit"))
	assert.Equal(t, 0, c.Cursor())

	got, err := c.Store().MembersOf("fruit")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "C", got[0].Name)
	assert.Equal(t, "A", ui.lastFrame(t).ItemName)
}

func TestAssignUnknownGroupIsANotice(t *testing.T) {
	c, ui, _ := newTestController(t, "A", "B")
	require.NoError(t, c.RequestNewGroup("fruit"))

	err := c.AssignCurrentTo("fruti")
	require.ErrorIs(t, err, labels.ErrInvalidGroup)
	assert.Equal(t, 0, c.Cursor(), "cursor must not move on failure")
	n := ui.lastNotice(t)
	assert.Equal(t, LevelInfo, n.Level)
	assert.Equal(t, `Category does not exist! Did you mean "fruit"?`, n.Text)
}

func TestAssignHandleResolvesAtActivation(t *testing.T) {
	c, ui, _ := newTestController(t, "A", "B")
	require.NoError(t, c.RequestNewGroup("cars"))
	require.Len(t, ui.added, 1)
	handle := ui.added[0].ID

	require.NoError(t, c.AssignHandle(handle))
	it, err := c.Store().ItemAt(0)
	require.NoError(t, err)
	assert.Equal(t, "cars", it.Group)

	require.NoError(t, c.RequestDeleteGroup("cars"))
	require.ErrorIs(t, c.AssignHandle(handle), labels.ErrInvalidGroup)
	assert.Equal(t, "Category does not exist!", ui.lastNotice(t).Text)
}

func TestRequestNewGroupDuplicate(t *testing.T) {
	c, ui, _ := newTestController(t, "A")
	require.NoError(t, c.RequestNewGroup("fruit"))
	err := c.RequestNewGroup("fruit")
	require.ErrorIs(t, err, labels.ErrDuplicateGroup)

	assert.Equal(t, "Category already exists!", ui.lastNotice(t).Text)
	assert.Len(t, ui.added, 1)
	assert.Equal(t, []string{model.Sentinel, "fruit"}, c.Store().GroupNames())
}

func TestGroupRequestsTrimNames(t *testing.T) {
	c, ui, _ := newTestController(t, "A")
	require.NoError(t, c.RequestNewGroup(" fruit "))
	require.Len(t, ui.added, 1)
	assert.Equal(t, "fruit", ui.added[0].Name)

	require.ErrorIs(t, c.RequestNewGroup("fruit"), labels.ErrDuplicateGroup)
	require.NoError(t, c.RequestDeleteGroup("fruit "))
	require.Len(t, ui.removed, 1)
	assert.Equal(t, ui.added[0].ID, ui.removed[0].ID)
	assert.Equal(t, []string{model.Sentinel}, c.Store().GroupNames())
}

func TestRequestDeleteGroup(t *testing.T) {
	c, ui, _ := newTestController(t, "A", "B")
	require.NoError(t, c.RequestNewGroup("fruit"))
	require.NoError(t, c.AssignCurrentTo("fruit"))
	require.NoError(t, c.Prev())
	require.Equal(t, "fruit", ui.lastFrame(t).ItemGroup)

	require.NoError(t, c.RequestDeleteGroup("fruit"))
	require.Len(t, ui.removed, 1)
	assert.Equal(t, "fruit", ui.removed[0].Name)
	assert.Equal(t, ui.added[0].ID, ui.removed[0].ID)

	f := ui.lastFrame(t)
	assert.Equal(t, model.Sentinel, f.ItemGroup)
	require.Len(t, f.Groups, 1)
	assert.True(t, f.Groups[0].Current)
}

func TestRequestDeleteGroupFailures(t *testing.T) {
	c, ui, _ := newTestController(t, "A")

	require.ErrorIs(t, c.RequestDeleteGroup(model.Sentinel), labels.ErrInvalidGroup)
	assert.Equal(t, `Category "Not specified" cannot be deleted!`, ui.lastNotice(t).Text)

	require.ErrorIs(t, c.RequestDeleteGroup("ghost"), labels.ErrInvalidGroup)
	assert.Equal(t, "Category does not exist!", ui.lastNotice(t).Text)
	assert.Empty(t, ui.removed)
}

func TestFrameMarksCurrentGroup(t *testing.T) {
	c, _, _ := newTestController(t, "Apple", "Pan")
	require.NoError(t, c.RequestNewGroup("fruit"))
	require.NoError(t, c.RequestNewGroup("kitchen"))
	require.NoError(t, c.AssignCurrentTo("fruit"))
	require.NoError(t, c.Prev())

	f := c.Frame()
	assert.Equal(t, "Apple", f.ItemName)
	assert.Equal(t, 2, f.Total)
	assert.Equal(t, 1, f.Labeled)
	current := 0
	for _, g := range f.Groups {
		if g.Current {
			current++
			assert.Equal(t, "fruit", g.Name)
		}
	}
	assert.Equal(t, 1, current)
}

func TestRequestExport(t *testing.T) {
	c, ui, sink := newTestController(t, "A", "B")
	require.NoError(t, c.RequestNewGroup("fruit"))
	require.NoError(t, c.AssignCurrentTo("fruit"))

	require.NoError(t, c.RequestExport(context.Background()))
	assert.Equal(t, []model.Record{
		{Name: "A", Group: "fruit"},
		{Name: "B", Group: model.Sentinel},
	}, sink.got)
	assert.Contains(t, ui.lastNotice(t).Text, "Data saved successfully!")
}

func TestRequestExportFailureIsHard(t *testing.T) {
	c, ui, sink := newTestController(t, "A")
	sink.err = errors.New("disk full")

	err := c.RequestExport(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, sink.err)
	n := ui.lastNotice(t)
	assert.Equal(t, LevelError, n.Level)
	assert.Contains(t, n.Text, "disk full")
}
