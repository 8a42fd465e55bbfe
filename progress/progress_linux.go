package progress

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/sethgrid/curse"
)

func displayLoop() {
	term, _ := curse.New()
	for bar := range updates {
		width, _, _ := curse.GetScreenDimensions()
		if term != nil {
			term.EraseCurrentLine()
		}

		bar.display(width)
		if bar.finished {
			fmt.Println()
		}
	}

	loopDone.Done()
}

func (p *ProgressBar) display(width int) {
	// Save some color functions.
	yellow := color.New(color.FgYellow, color.Bold).SprintFunc()
	green := color.New(color.FgGreen, color.Bold).SprintFunc()

	nameColor := yellow
	info := fmt.Sprintf(" %3.0f%%", p.PercentComplete())
	if p.finished {
		nameColor = green
		info = " [done]" + info
	}

	tail := ""
	if p.suffix != "" {
		tail = " " + p.suffix
	}

	// Fill whatever width is left with the bar itself.
	prefix := " ["
	suffix := "]"
	bar := ""
	barLength := width - len(p.name) - len(info) - len(prefix) - len(suffix) - len(tail)
	for i := 0; i < barLength; i++ {
		percentComplete := (float64(i) / float64(barLength)) * 100
		if percentComplete < p.PercentComplete() {
			bar += "="
		} else {
			bar += " "
		}
	}

	bar = strings.Replace(bar, "= ", "=>", 1)

	fmt.Print("\r" + nameColor(p.name) + info + prefix + bar + suffix + tail)
}
