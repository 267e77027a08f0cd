package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dshills/viewprofile/internal/logging"
	"github.com/dshills/viewprofile/internal/profile"
	"github.com/dshills/viewprofile/internal/session"
)

// Replaced in tests.
var (
	newScreen  = tcell.NewScreen
	isTerminal = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
)

func newRunCmd(o *options) *cobra.Command {
	var logFile string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start an interactive terminal session",
		Long: "Show a demo panel in the terminal and dispatch key and mouse input through " +
			"the active profile. Escape quits, Tab switches profile and F1-F12 select a mode.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal() {
				return errors.New("run needs an interactive terminal")
			}

			// The screen owns the terminal, so logs go to a file or nowhere.
			var logOut io.Writer = io.Discard
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return fmt.Errorf("open log file: %w", err)
				}
				defer f.Close()
				logOut = f
			}

			ctx, err := o.setup(cmd, func(lc *logging.Config) {
				lc.Output = logOut
			})
			if err != nil {
				return err
			}
			return o.run(logging.WithComponent(ctx, "session"))
		},
	}

	cmd.Flags().String("view", "", "view type: ortho, lightbox, timeseries, histogram, powerspectrum or scene3d")
	cmd.Flags().String("profile", "", "profile to activate (default: the view's first profile)")
	cmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file")
	return cmd
}

func (o *options) run(ctx context.Context) error {
	s := o.settings
	log := logging.FromContext(ctx)

	cfg, err := o.tables(ctx)
	if err != nil {
		return err
	}

	view := s.View()
	panel, err := session.NewPanel(view, session.Size{
		Width:  s.Session.Width,
		Height: s.Session.Height,
		Depth:  s.Session.Depth,
	})
	if err != nil {
		return err
	}

	mgr := profile.NewManager(cfg, panel)
	if s.Session.Profile != "" {
		err = mgr.Activate(ctx, s.Session.Profile)
	} else {
		err = mgr.ActivateDefault(ctx)
	}
	if err != nil {
		return err
	}
	defer mgr.Close()

	screen, err := newScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.EnableFocus()

	log.Info().
		Str("view", view.String()).
		Str("profile", mgr.Name()).
		Msg("session started")

	err = session.New(ctx, screen, mgr).Run(ctx)
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	log.Info().Err(err).Msg("session ended")
	return err
}
