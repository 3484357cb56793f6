package params

const (
	// SecParam is the bit strength targeted by the library.
	SecParam = 256
	SecBytes = SecParam / 8
)
