package progress

// The Windows console has no reliable cursor control, so fall back to the
// simple line-based display.
func displayLoop() {
	simpleLoop()
}
