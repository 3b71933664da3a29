package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

const (
	colorGreen  = "\033[0;32m"
	colorRed    = "\033[0;31m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
	colorReset  = "\033[0m"
)

// noColor honors the NO_COLOR convention for plain terminal output.
var noColor = os.Getenv("NO_COLOR") != ""

func printTagged(color, tag, format string, a ...interface{}) {
	if noColor {
		fmt.Printf(tag+" "+format+"\n", a...)
		return
	}
	fmt.Printf(color+tag+" "+format+colorReset+"\n", a...)
}

func PrintInfo(format string, a ...interface{}) {
	printTagged(colorBlue, "ℹ", format, a...)
}

func PrintSuccess(format string, a ...interface{}) {
	printTagged(colorGreen, "✓", format, a...)
}

func PrintWarning(format string, a ...interface{}) {
	printTagged(colorYellow, "⚠", format, a...)
}

func PrintError(format string, a ...interface{}) {
	printTagged(colorRed, "✗", format, a...)
}

func PrintHeader(title string) {
	if noColor {
		fmt.Printf("\n=== %s ===\n", title)
		return
	}
	fmt.Printf("\n"+colorYellow+"=== %s ==="+colorReset+"\n", title)
}

// validateCommandArgs rejects argument values that could split or chain
// commands if an argument ever reaches a shell-executing process. The
// devtool only shells out to docker and go, so the strict list costs
// nothing.
func validateCommandArgs(inputs ...string) error {
	blocked := []string{"|", "`", "$(", "&&", "||", ">", "<", "\x00"}
	for _, s := range inputs {
		if strings.ContainsAny(s, "\n\r") {
			return fmt.Errorf("rejected command argument: embedded newline")
		}
		for _, p := range blocked {
			if strings.Contains(s, p) {
				return fmt.Errorf("rejected command argument: %q in %q", p, s)
			}
		}
	}
	return nil
}

// getCommandOutput runs a command and returns its trimmed stdout.
func getCommandOutput(name string, args ...string) (string, error) {
	if err := validateCommandArgs(append([]string{name}, args...)...); err != nil {
		return "", err
	}
	// #nosec G204 - arguments validated above
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// runCommand runs a command silently.
func runCommand(name string, args ...string) error {
	if err := validateCommandArgs(append([]string{name}, args...)...); err != nil {
		return err
	}
	// #nosec G204 - arguments validated above
	return exec.Command(name, args...).Run()
}

// runCommandVerbose runs a command with output piped to the terminal.
func runCommandVerbose(name string, args ...string) error {
	if err := validateCommandArgs(append([]string{name}, args...)...); err != nil {
		return err
	}
	// #nosec G204 - arguments validated above
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
