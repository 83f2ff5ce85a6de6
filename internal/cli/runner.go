package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/idilsaglam/labeler/internal/controller"
	"github.com/idilsaglam/labeler/internal/ui"
)

// Exit codes shared by Exec and RunScript.
const (
	ExitOK    = 0
	ExitFail  = 1 // export could not be written
	ExitUsage = 2
)

// Session bundles what the dispatcher needs.
type Session struct {
	Ctrl *controller.Controller
	Out  io.Writer
	Err  io.Writer
	Log  *zap.Logger
}

// Exec dispatches one action and returns an exit code. Labeling failures are
// already shown as notices by the controller, so they count as success here.
func (s Session) Exec(ctx context.Context, args []string) int {
	if len(args) == 0 {
		return ExitOK
	}
	cmd, a := strings.ToLower(args[0]), args[1:]
	name := strings.TrimSpace(strings.Join(a, " "))

	switch cmd {
	case "help":
		PrintHelp(s.Out)
		return ExitOK

	case "next", "n", ">>":
		_ = s.Ctrl.Next()
		return ExitOK

	case "prev", "p", "<<":
		_ = s.Ctrl.Prev()
		return ExitOK

	case "show":
		fmt.Fprintln(s.Out, ui.ItemCard(s.Ctrl.Frame()))
		return ExitOK

	case "assign", "set":
		if name == "" {
			ui.Fail(s.Err, "usage: assign <group...>")
			return ExitUsage
		}
		_ = s.Ctrl.AssignCurrentTo(name)
		return ExitOK

	case "new", "add", "+":
		if name == "" {
			ui.Fail(s.Err, "usage: new <group...>")
			return ExitUsage
		}
		_ = s.Ctrl.RequestNewGroup(name)
		return ExitOK

	case "delete", "del", "rm", "-":
		if name == "" {
			ui.Fail(s.Err, "usage: delete <group...>")
			return ExitUsage
		}
		_ = s.Ctrl.RequestDeleteGroup(name)
		return ExitOK

	case "export", "e":
		if len(a) != 0 {
			ui.Fail(s.Err, "usage: export")
			return ExitUsage
		}
		if err := s.Ctrl.RequestExport(ctx); err != nil {
			return ExitFail
		}
		return ExitOK
	}

	ui.Fail(s.Err, "unknown action: "+cmd)
	return ExitUsage
}

// RunScript executes one action per line. Blank lines and lines starting
// with # are skipped. It stops at the first usage error or failed export.
func (s Session) RunScript(ctx context.Context, r io.Reader) int {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := ctx.Err(); err != nil {
			ui.Fail(s.Err, "interrupted: "+err.Error())
			return ExitFail
		}
		s.logger().Debug("script action", zap.Int("line", line), zap.String("action", text))
		if code := s.Exec(ctx, strings.Fields(text)); code != ExitOK {
			if code == ExitUsage {
				fmt.Fprintln(s.Err, ui.C("\033[90m", fmt.Sprintf("Hint: line %d: %s", line, text)))
			}
			return code
		}
	}
	if err := sc.Err(); err != nil && !errors.Is(err, io.EOF) {
		ui.Fail(s.Err, "read script: "+err.Error())
		return ExitFail
	}
	return ExitOK
}

func (s Session) logger() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `Script actions (one per line, # starts a comment):

  next | prev          Move to the next / previous item (wraps around)
  assign <group...>    Label the current item and move to the next one
  new <group...>       Create a group
  delete <group...>    Delete a group; its items go back to "Not specified"
  export               Write all items and their groups to the export sink
  show                 Print the current item

Example:
  new fruit
  assign fruit
  next
  export
`)
}
