package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

type SolidTag struct{}

var SolidTagComponent = NewComponent[SolidTag]()
