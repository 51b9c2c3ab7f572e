package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Args:  cobra.ExactArgs(1),
	Short: "Re-submits the source file to the relay every time it changes",
	Run:   watchCmdRun,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.PersistentFlags().StringP("output", "o", "", "Path of the page written on each rebuild (defaults to <file>.html)")
}

func watchCmdRun(cmd *cobra.Command, args []string) {
	filename := args[0]

	out := cmd.Flag("output").Value.String()
	if out == "" {
		out = strings.TrimSuffix(filename, filepath.Ext(filename)) + ".html"
	}

	rebuild := func() {
		page, err := submitFile(cmd, filename)
		if err != nil {
			log.Errorf("rebuild failed: %v", err)
			return
		}

		if err := os.WriteFile(out, []byte(page), 0o644); err != nil {
			log.Errorf("failed to write output file %s: %v", out, err)
			return
		}

		log.Infof("Wrote %s", out)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		cmd.PrintErrf("failed to create file watcher: %v\n", err)
		return
	}
	defer watcher.Close()

	if err := watcher.Add(filename); err != nil {
		cmd.PrintErrf("failed to watch %s: %v\n", filename, err)
		return
	}

	rebuild()
	log.Infof("Watching %s...", filename)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}

			if event.Op&fsnotify.Write == fsnotify.Write {
				log.Debugf("%s changed", event.Name)
				rebuild()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}

			log.Errorf("watcher error: %v", err)
		case <-cmd.Context().Done():
			return
		}
	}
}
