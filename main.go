package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/roster/internal/app"
	"github.com/atomicstack/roster/internal/config"
	"github.com/atomicstack/roster/internal/logging"
	"github.com/atomicstack/roster/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	cfg := config.MustLoad()
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)

	events.App.Start(newStartupInfo(cfg, os.Stdin, os.Stdout, os.Stderr))

	err := app.Run(cfg.App)
	events.App.Exit(err)
	if err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startupInfo is the app.start trace payload: where the roster lives, how it
// will be drawn, and what the process was started with.
type startupInfo struct {
	Argv       []string          `json:"argv"`
	Flags      map[string]string `json:"flags"`
	Storage    storageInfo       `json:"storage"`
	Display    displayInfo       `json:"display"`
	Streams    []streamInfo      `json:"streams"`
	Executable string            `json:"executable,omitempty"`
	Cwd        string            `json:"cwd,omitempty"`
	LogFile    string            `json:"log_file"`
}

type storageInfo struct {
	Backend  string `json:"backend"`
	Location string `json:"location"`
	Slot     string `json:"slot"`
	IDs      string `json:"ids"`
}

// displayInfo reports the layout size the UI starts with. SizeSource is
// "flags" when both dimensions are pinned, the first terminal stream the size
// was read from otherwise, or "resize" when nothing is known until the first
// window size event.
type displayInfo struct {
	Dark       bool   `json:"dark"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	SizeSource string `json:"size_source"`
	Footer     bool   `json:"footer"`
	Verbose    bool   `json:"verbose"`
}

type streamInfo struct {
	Name   string `json:"name"`
	TTY    bool   `json:"tty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Error  string `json:"error,omitempty"`
}

func newStartupInfo(cfg config.Config, stdin, stdout, stderr *os.File) startupInfo {
	streams := []streamInfo{
		probeStream("stdin", stdin),
		probeStream("stdout", stdout),
		probeStream("stderr", stderr),
	}
	info := startupInfo{
		Argv:  cfg.Args,
		Flags: cfg.Flags,
		Storage: storageInfo{
			Backend:  string(cfg.App.Backend),
			Location: cfg.App.SlotLocation(),
			Slot:     cfg.App.Slot,
			IDs:      string(cfg.App.IDs),
		},
		Display: layoutSize(cfg.App, streams),
		Streams: streams,
		LogFile: cfg.Logging.FilePath,
	}
	if exe, err := os.Executable(); err == nil {
		info.Executable = exe
	}
	if cwd, err := os.Getwd(); err == nil {
		info.Cwd = cwd
	}
	return info
}

// layoutSize fills in unpinned dimensions from the first stream that is a
// terminal.
func layoutSize(cfg app.Config, streams []streamInfo) displayInfo {
	d := displayInfo{
		Dark:       cfg.Dark,
		Width:      cfg.Width,
		Height:     cfg.Height,
		SizeSource: "flags",
		Footer:     cfg.ShowFooter,
		Verbose:    cfg.Verbose,
	}
	if d.Width > 0 && d.Height > 0 {
		return d
	}
	d.SizeSource = "resize"
	for _, s := range streams {
		if !s.TTY || s.Width <= 0 || s.Height <= 0 {
			continue
		}
		if d.Width <= 0 {
			d.Width = s.Width
		}
		if d.Height <= 0 {
			d.Height = s.Height
		}
		d.SizeSource = s.Name
		break
	}
	return d
}

func probeStream(name string, f *os.File) streamInfo {
	s := streamInfo{Name: name}
	if f == nil {
		s.Error = "not open"
		return s
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return s
	}
	s.TTY = true
	width, height, err := term.GetSize(fd)
	if err != nil {
		s.Error = err.Error()
		return s
	}
	s.Width, s.Height = width, height
	return s
}
