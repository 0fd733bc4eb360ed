package main

import (
	"fmt"
	"os"
	"strings"
)

// autoSwitch is the value of the --color and --ui flags.
type autoSwitch uint8

const (
	switchAuto autoSwitch = iota
	switchOn
	switchOff
)

func parseAutoSwitch(flag, value string) (autoSwitch, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "auto":
		return switchAuto, nil
	case "on", "always":
		return switchOn, nil
	case "off", "never":
		return switchOff, nil
	}
	return switchAuto, fmt.Errorf("invalid --%s value %q (expected auto|on|off)", flag, value)
}

// resolve settles auto by asking detect; on and off ignore it.
func (s autoSwitch) resolve(detect func() bool) bool {
	switch s {
	case switchOn:
		return true
	case switchOff:
		return false
	}
	return detect()
}

// interactive holds when both ends of the session are terminals.
func interactive() bool {
	return isTerminal(os.Stdout) && isTerminal(os.Stdin)
}
