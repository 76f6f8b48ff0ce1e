package engine

// Parameter names reported through InvalidSizeError.
const (
	ParamBinSize = "bin_size"
	ParamFactor  = "factor"
	ParamRange   = "range"
	ParamShape   = "shape"
	ParamOffsetX = "x_offset"
	ParamOffsetY = "y_offset"
	ParamBuffer  = "buffer"
)

// Parallel rendering constants
const (
	// Below this many columns per worker the goroutine overhead outweighs the
	// work, so the pool is shrunk.
	minColumnsPerWorker = 64

	// Upper bound on workers regardless of GOMAXPROCS.
	maxWorkers = 64
)
