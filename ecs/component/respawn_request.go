package component

// RespawnRequest is a marker asking the respawn system to put the entity
// back on its spawn point with a fresh motion state.
type RespawnRequest struct{}

var RespawnRequestComponent = NewComponent[RespawnRequest]()
