package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the contract the frame loop drives each tick. Step returns
// an error when the compute backend fails; such failures are fatal.
type Sim interface {
	Size() Size
	Reset(seed int64)
	SetAlive(x, y int)
	Step() error
	Cells() []uint8
}
