package speech

import (
	"fmt"
	"os/exec"
	"strings"
)

// SAPI rates run from -10 to 10 with 0 as normal speed; pitch is not
// scriptable through SpeechSynthesizer and is ignored.
func speechCommand(text, _ string, rate, _ float64) *exec.Cmd {
	sapiRate := int((rate - 1) * 10)
	if sapiRate > 10 {
		sapiRate = 10
	}
	if sapiRate < -10 {
		sapiRate = -10
	}

	escaped := strings.ReplaceAll(text, "'", "''")
	script := fmt.Sprintf(
		"Add-Type -AssemblyName System.Speech; $s = New-Object System.Speech.Synthesis.SpeechSynthesizer; $s.Rate = %d; $s.Speak('%s')",
		sapiRate, escaped)
	return exec.Command("powershell", "-NoProfile", "-Command", script)
}
