package main

import (
	"fmt"
	"os"
	"strings"
)

// uiMode выбирает, рисовать ли прогресс сборки каталога.
type uiMode uint8

const (
	uiModeAuto uiMode = iota
	uiModeOn
	uiModeOff
)

var uiModeNames = [...]string{uiModeAuto: "auto", uiModeOn: "on", uiModeOff: "off"}

func (m uiMode) String() string { return uiModeNames[m] }

func readUIMode(value string) (uiMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "auto":
		return uiModeAuto, nil
	case "on", "always":
		return uiModeOn, nil
	case "off", "never":
		return uiModeOff, nil
	}
	return uiModeAuto, fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
}

// shouldUseTUI: the progress view renders on stderr, so auto mode checks
// that stream. Dumb terminals and CI logs get plain output.
func shouldUseTUI(mode uiMode) bool {
	switch mode {
	case uiModeOn:
		return true
	case uiModeOff:
		return false
	}
	if os.Getenv("TERM") == "dumb" || os.Getenv("CI") != "" {
		return false
	}
	return isTerminal(os.Stderr)
}
