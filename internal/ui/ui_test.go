package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/idilsaglam/labeler/internal/controller"
)

func init() { SetColorForcing(false, true) }

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "█████░░░░░  50%", ProgressBar(1, 2, 10))
	assert.Equal(t, "░░░░░   0%", ProgressBar(0, 0, 1))
}

func TestPanelPadsToWidestLine(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")
	var buf bytes.Buffer
	Panel(&buf, []string{"ab", "abcd"})
	assert.Equal(t, "+------+\n| ab   |\n| abcd |\n+------+\n", buf.String())
}

func TestSummaryListsGroups(t *testing.T) {
	var buf bytes.Buffer
	Summary(&buf, controller.Frame{
		Total:   3,
		Labeled: 1,
		Groups: []controller.GroupState{
			{Name: "Not specified", Members: 2},
			{Name: "fruit", Members: 1},
		},
	})
	out := buf.String()
	assert.Contains(t, out, "Total 3")
	assert.Contains(t, out, "fruit")
	assert.Contains(t, out, "Not specified")
	assert.Equal(t, 1, strings.Count(out, " 33%"))
}

func TestItemCard(t *testing.T) {
	card := ItemCard(controller.Frame{
		Index: 1, Total: 4, ItemName: "GPU", ItemGroup: "hardware",
		Groups: []controller.GroupState{{Name: "Not specified"}, {Name: "hardware", Current: true}},
	})
	assert.Contains(t, card, "[2/4] GPU")
	assert.Contains(t, card, "Group: hardware")
	assert.Equal(t, "no items", ItemCard(controller.Frame{Empty: true}))
}

func TestSetColorModeIgnoresCase(t *testing.T) {
	t.Cleanup(func() { SetColorForcing(false, true) })

	SetColorMode("ALWAYS")
	assert.Equal(t, fgRed+"x"+reset, C(fgRed, "x"))

	SetColorMode(" Never ")
	assert.Equal(t, "x", C(fgRed, "x"))
}

func TestTablePadsShortRowsAndAligns(t *testing.T) {
	out := Table([]string{"Group", "Items"}, [][]string{{"fruit", "12"}, {"tools"}}, []Align{AlignLeft, AlignRight})
	assert.Contains(t, out, "fruit")
	assert.Contains(t, out, "tools")
	assert.Contains(t, out, "   12 |")
	assert.Empty(t, Table(nil, [][]string{{"x"}}, nil))
}
