package progress

import (
	"fmt"
	"sync"
)

var (
	updates  = make(chan *ProgressBar)
	loopDone = &sync.WaitGroup{}

	disabled  = false
	useSimple = false
	started   = false
)

// ProgressBar tracks one batch of operations. The check command uses one
// bar per specifier file, spanning that file's input list.
type ProgressBar struct {
	totalOps    int        // The total number of operations in the progress bar.
	completeOps int        // The number of completed operations.
	name        string     // The name of the progress bar.
	suffix      string     // A suffix shown after the bar (e.g. the current file).
	finished    bool       // True if this progress bar has finished.
	lock        sync.Mutex // A lock to ensure access to a progress bar is atomic.
}

// Add a progress bar and return a pointer to it.
func AddBar(ops int, name string) *ProgressBar {
	return &ProgressBar{
		totalOps: ops,
		name:     name,
	}
}

// Increment the number of operations completed. This will cap the progress
// bar at whatever the maximum is.
func (p *ProgressBar) Increment() {
	p.lock.Lock()
	p.completeOps++
	if p.completeOps > p.totalOps {
		p.completeOps = p.totalOps
	}
	p.lock.Unlock()

	if started {
		updates <- p
	}
}

func (p *ProgressBar) SetSuffix(newSuffix string) {
	p.lock.Lock()
	p.suffix = newSuffix
	p.lock.Unlock()

	if started {
		updates <- p
	}
}

func (p *ProgressBar) Finish() {
	p.lock.Lock()
	p.finished = true
	p.completeOps = p.totalOps
	p.lock.Unlock()

	if started {
		updates <- p
	}
}

// Return the percentage complete in the range [0, 100].
func (p *ProgressBar) PercentComplete() float64 {
	if p.totalOps == 0 {
		return 100.0
	}

	return (float64(p.completeOps) / float64(p.totalOps)) * 100.0
}

// Start launches the display goroutine. Does nothing when the display has
// been disabled (e.g. when raw logs are shown instead).
func Start() {
	if disabled || started {
		return
	}

	started = true
	loopDone.Add(1)
	if useSimple {
		go simpleLoop()
	} else {
		go displayLoop()
	}
}

// Finish stops the display goroutine and waits for it to drain.
func Finish() {
	if !started {
		return
	}

	close(updates)
	loopDone.Wait()
	started = false
	updates = make(chan *ProgressBar)
}

func Disable() {
	disabled = true
}

func UseSimple() {
	useSimple = true
}

// simpleLoop prints a plain line whenever a bar crosses a 10% boundary.
// Reliable on any terminal.
func simpleLoop() {
	lastDecile := make(map[*ProgressBar]int)
	for bar := range updates {
		decile := int(bar.PercentComplete()) / 10
		if decile != lastDecile[bar] || bar.finished {
			lastDecile[bar] = decile
			fmt.Printf("%s: %3.0f%%\n", bar.name, bar.PercentComplete())
		}
	}

	loopDone.Done()
}
