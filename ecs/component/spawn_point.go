package component

type SpawnPoint struct {
	X float64
	Y float64
}

var SpawnPointComponent = NewComponent[SpawnPoint]()
