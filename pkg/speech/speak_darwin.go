package speech

import (
	"fmt"
	"os/exec"
)

// say's default rate is roughly 175 words per minute.
const baseWordsPerMinute = 175

func speechCommand(text, locale string, rate, _ float64) *exec.Cmd {
	args := []string{"-r", fmt.Sprintf("%d", int(baseWordsPerMinute*rate))}
	if locale == "bn" {
		args = append(args, "-v", "Piya")
	}
	args = append(args, text)
	return exec.Command("say", args...)
}
