package component

import "github.com/jakecoffman/cp"

// GroundProbe records the last probe region and its result for debug
// drawing.
type GroundProbe struct {
	Box cp.BB
	Hit bool
}

var GroundProbeComponent = NewComponent[GroundProbe]()
