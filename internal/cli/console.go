package cli

import (
	"fmt"
	"io"

	"github.com/idilsaglam/labeler/internal/controller"
	"github.com/idilsaglam/labeler/internal/ui"
)

// Console is the line-oriented UI collaborator used by script mode.
type Console struct {
	out, err io.Writer
	echo     bool // print the item card after every refresh
	last     controller.Frame
}

func NewConsole(out, errOut io.Writer, echo bool) *Console {
	return &Console{out: out, err: errOut, echo: echo}
}

func (c *Console) Notify(n controller.Notice) {
	if n.Level == controller.LevelError {
		ui.Fail(c.err, n.Text)
		return
	}
	ui.Info(c.out, n.Text)
}

func (c *Console) GroupAdded(g controller.GroupState) {
	ui.OK(c.out, fmt.Sprintf("group %q added", g.Name))
}

func (c *Console) GroupRemoved(g controller.GroupState) {
	ui.OK(c.out, fmt.Sprintf("group %q removed", g.Name))
}

func (c *Console) Refresh(f controller.Frame) {
	c.last = f
	if c.echo {
		fmt.Fprintln(c.out, ui.ItemCard(f))
	}
}

// Last returns the most recent frame pushed by the controller.
func (c *Console) Last() controller.Frame { return c.last }
