package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/iw2rmb/lineinput"
	"github.com/iw2rmb/lineinput/editor"
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfg demoConfig

	root := &cobra.Command{
		Use:           "lineinput-demo",
		Short:         "Edit lines with history, completion and a kill ring",
		Version:       lineinput.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cfg, err = loadConfig(v, cmd)
			return err
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cfg, func(s *session) error { return runTea(cmd.Context(), s) })
		},
	}
	registerFlags(root)

	root.AddCommand(&cobra.Command{
		Use:   "tcell",
		Short: "Run the input line on a tcell screen instead of Bubble Tea",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cfg, func(s *session) error { return runTcell(cmd.Context(), s) })
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "history",
		Short: "Print the stored history list",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newSession(cfg, io.Discard)
			if err != nil {
				return err
			}
			entries, err := s.store.Load(cfg.HistoryName)
			if err != nil {
				return err
			}
			for _, e := range entries {
				fmt.Fprintln(cmd.OutOrStdout(), e)
			}
			return nil
		},
	})
	return root
}

// withSession checks the terminal, opens the log and runs fn.
func withSession(cfg demoConfig, fn func(*session) error) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("not running in a terminal")
	}

	var logOut io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "lineinput-demo")
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		logOut = f
	}

	s, err := newSession(cfg, logOut)
	if err != nil {
		return err
	}
	return fn(s)
}

func runTea(ctx context.Context, s *session) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(newApp(s), tea.WithContext(ctx), tea.WithMouseCellMotion())
	if s.cfg.Keymap != "" {
		err := editor.WatchKeyMap(ctx, s.cfg.Keymap, func(km editor.KeyMap, err error) {
			p.Send(editor.KeyMapChangedMsg{KeyMap: km, Err: err})
		})
		if err != nil {
			s.logger.Printf("keymap watch: %v", err)
		}
	}
	_, err := p.Run()
	return err
}
