package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/gogpu/motion"
)

var watchCmd = &cobra.Command{
	Use:   "watch <scene>",
	Short: "Reprint the layer tree whenever the scene file changes",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

const watchDebounce = 100 * time.Millisecond

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watchScene(ctx, args[0], cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// watchScene prints the tree of path, then reprints it after every change
// until ctx is done. Load errors are reported to errOut and watching
// continues.
func watchScene(ctx context.Context, path string, out, errOut io.Writer) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	// Editors replace files on save, so watch the directory.
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return err
	}

	reload := func() {
		root, err := loadScene(abs)
		if err != nil {
			fmt.Fprintln(errOut, "motion:", err)
			return
		}
		defer root.Release()
		printTree(out, root)
	}
	reload()

	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				fire = time.After(watchDebounce)
			}
		case <-fire:
			fire = nil
			motion.Logger().Debug("scene changed", "path", abs)
			reload()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(errOut, "motion: watch:", err)
		}
	}
}
