package speech

import (
	"fmt"
	"os/exec"
)

const (
	baseWordsPerMinute = 175
	basePitch          = 50
)

func speechCommand(text, locale string, rate, pitch float64) *exec.Cmd {
	bin, err := exec.LookPath("espeak-ng")
	if err != nil {
		bin, err = exec.LookPath("espeak")
		if err != nil {
			return nil
		}
	}

	voice := "en"
	if locale == "bn" {
		voice = "bn"
	}
	p := int(basePitch * pitch)
	if p > 99 {
		p = 99
	}
	return exec.Command(bin,
		"-v", voice,
		"-s", fmt.Sprintf("%d", int(baseWordsPerMinute*rate)),
		"-p", fmt.Sprintf("%d", p),
		text)
}
