package component

// StaticTile marks a floor tile that never moves after spawning.
type StaticTile struct{}

var StaticTileComponent = NewComponent[StaticTile]()
