package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/labeler/internal/cli"
	"github.com/idilsaglam/labeler/internal/logging"
	"github.com/idilsaglam/labeler/internal/ui"
)

func (a *app) newScriptCmd() *cobra.Command {
	var echo, quiet bool
	cmd := &cobra.Command{
		Use:   "script [file|-]",
		Short: "Label items headlessly from an action script",
		Long: `Reads one action per line and runs it against a fresh session.

` + "Actions: next, prev, assign <group>, new <group>, delete <group>, export, show." + `

Exit status is 0 on success, 1 when the export could not be written and 2 on
a malformed script line.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := logging.New(a.cfg.Log.Level, a.cfg.Log.File)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			var r io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}

			out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
			console := cli.NewConsole(out, errOut, echo)
			ctrl, err := a.session(console, log)
			if err != nil {
				return err
			}
			sess := cli.Session{Ctrl: ctrl, Out: out, Err: errOut, Log: log}
			code := sess.RunScript(cmd.Context(), r)
			if !quiet {
				ui.Summary(out, ctrl.Frame())
			}
			if code != cli.ExitOK {
				return &exitError{code: code}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&echo, "echo", false, "print the current item after every action")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "skip the end-of-session summary")
	return cmd
}
