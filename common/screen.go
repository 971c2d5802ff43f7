package common

// Logical screen size; the window scales to fit.
const (
	BaseWidth  = 1280
	BaseHeight = 720
)
