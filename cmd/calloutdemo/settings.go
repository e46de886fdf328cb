package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/assassindesign/callout"
)

type Settings struct {
	ArrowSize float64 `json:"arrowSize"`
	Theme     string  `json:"theme"`
	Vsync     bool    `json:"vsync"`
}

var (
	gs            = Settings{ArrowSize: 16, Vsync: true}
	settingsDirty bool
)

func loadSettings() bool {
	path := filepath.Join(baseDir, "settings.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return false
	}
	if s.ArrowSize <= 0 {
		s.ArrowSize = 16
	}
	gs = s
	return true
}

func applySettings() {
	ebiten.SetVsyncEnabled(gs.Vsync)
	switch gs.Theme {
	case "dark":
		callout.SetTheme(callout.DarkTheme())
	case "light":
		callout.SetTheme(callout.LightTheme())
	default:
		// Empty or unknown: the library follows the OS appearance.
	}
}

func saveSettings() {
	if !settingsDirty {
		return
	}
	path := filepath.Join(baseDir, "settings.json")
	data, err := json.MarshalIndent(gs, "", "  ")
	if err != nil {
		logError("marshal settings: %v", err)
		return
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		logError("write settings: %v", err)
		return
	}
	settingsDirty = false
}
