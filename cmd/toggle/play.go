// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"time"

	"cogentcore.org/toggle/animate"
	"cogentcore.org/toggle/base/errors"
	"cogentcore.org/toggle/events"
	"cogentcore.org/toggle/script"
	"cogentcore.org/toggle/system"
	"cogentcore.org/toggle/termview"
	"cogentcore.org/toggle/toggle"
	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"golang.org/x/image/font/basicfont"
)

type playOptions struct {
	script   string
	config   string
	width    int
	trace    bool
	watch    bool
	realtime bool
}

func newPlayCmd() *cobra.Command {
	o := &playOptions{}
	cmd := &cobra.Command{
		Use:   "play <script.yaml>",
		Short: "Play a gesture script and draw each frame of the switch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			if err := o.expand(args[0]); err != nil {
				return err
			}
			if o.watch {
				return o.watchFiles(ctx, cmd.OutOrStdout())
			}
			return o.play(ctx, cmd.OutOrStdout())
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&o.config, "config", "c", "", "TOML configuration file of the switch")
	fs.IntVarP(&o.width, "width", "w", termview.DefaultWidth, "number of cells of the track")
	fs.BoolVar(&o.trace, "trace", false, "print the state after each step")
	fs.BoolVar(&o.watch, "watch", false, "play again whenever the script or configuration changes")
	fs.BoolVar(&o.realtime, "realtime", false, "play in real time instead of virtual time")
	return cmd
}

// expand sets the script path and expands a leading ~ in the file paths.
func (o *playOptions) expand(script string) error {
	var err error
	if o.script, err = homedir.Expand(script); err != nil {
		return errors.Wrap(err)
	}
	if o.config, err = homedir.Expand(o.config); err != nil {
		return errors.Wrap(err)
	}
	return nil
}

// play plays the script once.
func (o *playOptions) play(ctx context.Context, w io.Writer) error {
	cfg := toggle.DefaultConfig()
	if o.config != "" {
		var err error
		cfg, err = toggle.OpenConfig(o.config)
		if err != nil {
			return err
		}
	}
	s, err := script.Open(o.script)
	if err != nil {
		return err
	}
	sw := toggle.New(cfg).SetLayout(toggle.Measure(basicfont.Face7x13, cfg))
	view := termview.New(sw, w)
	view.Width = o.width
	fmt.Fprintf(w, "%s\n", s.Name)
	if o.realtime {
		return playRealtime(ctx, sw, view, s)
	}

	p := script.NewPlayer(sw)
	p.Frame = func(at time.Duration) {
		errors.Log1(view.Paint())
	}
	err = p.Play(s)
	if o.trace {
		for _, r := range p.Trace {
			fmt.Fprintln(w, r)
		}
	}
	slog.Info("toggle: played", "script", s.Name, "steps", len(p.Trace), "elapsed", p.Elapsed(), "frames", view.Paints)
	return err
}

// playRealtime plays the script on a [system.Loop], sending pointer
// events at the times of the script and painting at most once per frame.
func playRealtime(ctx context.Context, sw *toggle.Switch, view *termview.View, s *script.Script) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lp := system.NewLoop(func(ev events.Event) {
		sw.HandleEvent(ev)
	})
	sw.Attach(lp)
	iv := time.Duration(sw.Config.FrameInterval)
	if iv <= 0 {
		iv = animate.DefaultInterval
	}
	var paint func()
	paint = func() {
		errors.Log1(view.Paint())
		lp.AfterFunc(iv, paint)
	}

	go func() {
		defer cancel()
		lp.RunOnMain(paint)
		for i := range s.Steps {
			st := &s.Steps[i]
			select {
			case <-time.After(time.Duration(st.After)):
			case <-ctx.Done():
				return
			}
			act := errors.Must1(st.Action()) // validated when read
			if pe := st.PointerEvent(act, lp.Now()); pe != nil {
				lp.Send(pe)
				continue
			}
			lp.RunOnMain(func() {
				script.Apply(sw, st, act, lp.Now())
			})
		}
		for {
			busy := true
			lp.RunOnMain(func() {
				busy = sw.IsAnimating()
			})
			if !busy || ctx.Err() != nil {
				break
			}
			time.Sleep(iv)
		}
		lp.RunOnMain(func() {
			errors.Log1(view.Paint())
		})
	}()

	err := lp.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// watchFiles plays the script, and plays it again each time the script
// or the configuration file is written, until the context is canceled.
func (o *playOptions) watchFiles(ctx context.Context, w io.Writer) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err)
	}
	defer watcher.Close()

	// editors often replace files, so the directories are watched
	files := []string{filepath.Clean(o.script)}
	if o.config != "" {
		files = append(files, filepath.Clean(o.config))
	}
	for _, f := range files {
		if err := watcher.Add(filepath.Dir(f)); err != nil {
			return errors.Wrap(err)
		}
	}

	lp := system.NewLoop(nil)
	replay := func() {
		if err := o.play(ctx, w); err != nil {
			slog.Error("toggle: play failed", "err", err)
		}
	}
	go func() {
		lp.RunOnMain(replay)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				if !slices.Contains(files, filepath.Clean(ev.Name)) {
					continue
				}
				slog.Info("toggle: file changed", "file", ev.Name)
				lp.RunOnMain(replay)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Warn("toggle: watch error", "err", err)
			}
		}
	}()

	err = lp.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
