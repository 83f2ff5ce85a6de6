package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/idilsaglam/labeler/internal/controller"
)

// Summary prints the end-of-session panel: progress plus one row per group.
func Summary(w io.Writer, f controller.Frame) {
	t := Current()
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		C(t.Title, "Labels"),
		C(t.Success, t.SymLabeled), f.Labeled,
		C(t.Pending, t.SymUnlabeled), f.Total-f.Labeled,
		C(t.Accent, "Total"), f.Total,
	)
	lines := []string{
		header,
		C(t.Muted, ProgressBar(f.Labeled, f.Total, 28)),
	}
	if f.Total == 0 {
		lines = append(lines, "", C(t.Muted, "no items"))
	}
	Panel(w, lines)

	rows := make([][]string, 0, len(f.Groups))
	for _, g := range f.Groups {
		rows = append(rows, []string{g.Name, strconv.Itoa(g.Members)})
	}
	fmt.Fprintln(w, Table([]string{"Group", "Items"}, rows, []Align{AlignLeft, AlignRight}))
}

// ItemCard renders the current item the way the console shows it after
// each action: name, group and position.
func ItemCard(f controller.Frame) string {
	t := Current()
	if f.Empty {
		return C(t.Muted, "no items")
	}
	var groups []string
	for _, g := range f.Groups {
		if g.Current {
			groups = append(groups, C(t.Highlight, " "+g.Name+" "))
		} else {
			groups = append(groups, C(t.Muted, g.Name))
		}
	}
	return fmt.Sprintf("%s %s  %s\n%s",
		C(t.Muted, fmt.Sprintf("[%d/%d]", f.Index+1, f.Total)),
		C(t.Title, f.ItemName),
		C(t.Accent, "Group: "+f.ItemGroup),
		strings.Join(groups, "  "))
}
