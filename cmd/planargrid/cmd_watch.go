package main

import (
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/planargrid/planargrid/diagram"
	"github.com/planargrid/planargrid/loader"
	"github.com/planargrid/planargrid/parser"
)

// runWatch re-runs the full pipeline against args[0] every time the file
// changes, debouncing bursts of writes (editors routinely emit several
// events for one save) into a single re-run.
func runWatch(cmd *cobra.Command, args []string) error {
	path := args[0]

	if err := renderOnce(cmd, path); err != nil {
		log.Printf("planargrid: initial run failed: %v", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}

	debounce := time.Duration(watchDelay) * time.Millisecond
	var timer *time.Timer
	fire := make(chan struct{}, 1)

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != filepath.Clean(path) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})

		case <-fire:
			if err := renderOnce(cmd, path); err != nil {
				log.Printf("planargrid: run failed: %v", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("planargrid: watch error: %v", err)
		}
	}
}

func renderOnce(cmd *cobra.Command, path string) error {
	lines, err := loader.File(path)
	if err != nil {
		return err
	}

	return renderDiagram(cmd, diagram.Build(parser.Parse(lines)))
}
