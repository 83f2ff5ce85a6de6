package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/idilsaglam/labeler/internal/controller"
	"github.com/idilsaglam/labeler/internal/labels"
	"github.com/idilsaglam/labeler/internal/model"
	"github.com/idilsaglam/labeler/internal/store/filestore"
	"github.com/idilsaglam/labeler/internal/ui"
)

func init() { ui.SetColorForcing(false, true) }

type harness struct {
	sess    Session
	console *Console
	out     *bytes.Buffer
	errOut  *bytes.Buffer
	path    string
}

func newHarness(t *testing.T, items ...string) *harness {
	t.Helper()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	console := NewConsole(out, errOut, false)
	path := filepath.Join(t.TempDir(), "labels.json")
	log := zaptest.NewLogger(t)
	ctrl := controller.New(labels.FromNames(items), console, filestore.New(path, filestore.JSON), log)
	return &harness{
		sess:    Session{Ctrl: ctrl, Out: out, Err: errOut, Log: log},
		console: console,
		out:     out,
		errOut:  errOut,
		path:    path,
	}
}

func (h *harness) exported(t *testing.T) []model.Record {
	t.Helper()
	b, err := os.ReadFile(h.path)
	require.NoError(t, err)
	got, err := filestore.JSON.Decode(b)
	require.NoError(t, err)
	return got
}

func TestRunScriptLabelsAndExports(t *testing.T) {
	h := newHarness(t, "Apple", "Pan", "Banana")
	script := `
# fruit first
new fruit
new kitchen utensils
assign fruit
assign kitchen utensils
assign fruit
export
`
	code := h.sess.RunScript(context.Background(), strings.NewReader(script))
	require.Equal(t, ExitOK, code, h.errOut.String())

	assert.Equal(t, []model.Record{
		{Name: "Apple", Group: "fruit"},
		{Name: "Pan", Group: "kitchen utensils"},
		{Name: "Banana", Group: "fruit"},
	}, h.exported(t))
	assert.Contains(t, h.out.String(), "Data saved successfully!")
	assert.Equal(t, 0, h.sess.Ctrl.Cursor())
}

func TestRunScriptRecoverableFailuresContinue(t *testing.T) {
	h := newHarness(t, "A", "B")
	script := "new fruit\nnew fruit\ndelete ghost\nassign nope\nassign fruit\nexport\n"
	code := h.sess.RunScript(context.Background(), strings.NewReader(script))
	require.Equal(t, ExitOK, code)

	out := h.out.String()
	assert.Contains(t, out, "Category already exists!")
	assert.Contains(t, out, "Category does not exist!")
	assert.Equal(t, []model.Record{
		{Name: "A", Group: "fruit"},
		{Name: "B", Group: model.Sentinel},
	}, h.exported(t))
}

func TestRunScriptDeleteReturnsItemsToSentinel(t *testing.T) {
	h := newHarness(t, "A", "B")
	script := "new fruit\nassign fruit\nassign fruit\ndelete fruit\nexport\n"
	require.Equal(t, ExitOK, h.sess.RunScript(context.Background(), strings.NewReader(script)))
	for _, r := range h.exported(t) {
		assert.Equal(t, model.Sentinel, r.Group)
	}
	assert.Equal(t, []string{model.Sentinel}, h.sess.Ctrl.Store().GroupNames())
}

func TestRunScriptUsageErrors(t *testing.T) {
	for _, script := range []string{"dance\n", "assign\n", "new   \n", "export now\n"} {
		h := newHarness(t, "A")
		code := h.sess.RunScript(context.Background(), strings.NewReader(script))
		assert.Equal(t, ExitUsage, code, "script %q", script)
		assert.Contains(t, h.errOut.String(), "line 1")
	}
}

func TestRunScriptExportFailureIsHard(t *testing.T) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	console := NewConsole(out, errOut, false)
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	sink := filestore.New(filepath.Join(blocker, "labels.json"), filestore.JSON)
	sess := Session{Ctrl: controller.New(labels.FromNames([]string{"A"}), console, sink, nil), Out: out, Err: errOut}

	code := sess.RunScript(context.Background(), strings.NewReader("export\nnext\n"))
	assert.Equal(t, ExitFail, code)
	assert.Contains(t, errOut.String(), "Export failed")
}

func TestRunScriptEmptyStore(t *testing.T) {
	h := newHarness(t)
	code := h.sess.RunScript(context.Background(), strings.NewReader("next\nprev\nassign x\nshow\nexport\n"))
	require.Equal(t, ExitOK, code)
	assert.Contains(t, h.out.String(), "There are no items to label.")
	assert.Contains(t, h.out.String(), "no items")
	assert.Empty(t, h.exported(t))
}

func TestConsoleEchoesFrames(t *testing.T) {
	out := &bytes.Buffer{}
	console := NewConsole(out, out, true)
	ctrl := controller.New(labels.FromNames([]string{"A", "B"}), console, nil, nil)
	require.NoError(t, ctrl.Next())
	assert.Contains(t, out.String(), "[2/2] B")
	assert.Equal(t, "B", console.Last().ItemName)
}
