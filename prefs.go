package main

import (
	"encoding/json"
	"os"
	"path/filepath"
)

type prefs struct {
	Theme    int  `json:"theme"`
	SeenHelp bool `json:"seenHelp"`
}

func configDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	base := filepath.Join(dir, "go-fruitbox")
	_ = os.MkdirAll(base, 0o755)
	return base
}

func prefsFilePath() string {
	return filepath.Join(configDir(), "prefs.json")
}

func loadPrefs(path string) prefs {
	data, err := os.ReadFile(path)
	if err != nil {
		return prefs{}
	}
	var out prefs
	if err := json.Unmarshal(data, &out); err != nil {
		return prefs{}
	}
	if out.Theme < 0 || out.Theme >= len(themes) {
		out.Theme = 0
	}
	return out
}

func savePrefs(path string, p prefs) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
