package domain

// ControllerInfo describes whether a game controller is connected. Label is
// the device name when known.
type ControllerInfo struct {
	Connected bool
	Label     string
}
