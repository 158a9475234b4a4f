//go:build !js

package game

import "os"

// detectCapabilities reports desktop input. Setting ATRYBUTE_MOBILE_EMULATE=1
// enables the touch joystick for local testing.
func detectCapabilities() Capabilities {
	if os.Getenv("ATRYBUTE_MOBILE_EMULATE") == "1" {
		return Capabilities{Touch: true}
	}
	return Capabilities{}
}

// newHostModal returns nil; desktop builds use the overlay modal
func newHostModal(queue *EventQueue) Modal {
	return nil
}

// startOrientation is a no-op without a device orientation API
func startOrientation(queue *EventQueue, caps Capabilities) func() {
	return func() {}
}
