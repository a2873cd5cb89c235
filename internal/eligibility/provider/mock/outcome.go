package mock

// outcome is the simulated terminal classification for a seed.
type outcome int

const (
	outcomeActive outcome = iota
	outcomeInactive
	outcomeNotFound
	outcomeUnavailable
)

// classify partitions disjoint bit ranges of the seed into independent draws
// so the error, inactivity, and relationship rolls stay uncorrelated.
//
// Bits 8-17 drive the error roll (per mille): [0,30) not found, [30,50)
// service unavailable, otherwise no error. Bits 16-22 drive the inactivity
// roll (percent): [0,5) inactive. The error check runs first, so an error
// classification always wins over an inactive one for the same seed.
func classify(seed uint32) outcome {
	errorRoll := (seed >> 8) % 1000
	switch {
	case errorRoll < 30:
		return outcomeNotFound
	case errorRoll < 50:
		return outcomeUnavailable
	}

	if (seed>>16)%100 < 5 {
		return outcomeInactive
	}
	return outcomeActive
}

// errorMessage picks a deterministic message from the pool for the failure class.
func errorMessage(o outcome, seed uint32) string {
	switch o {
	case outcomeNotFound:
		return pick(notFoundMessages, seed, offsetErrorMessage)
	case outcomeUnavailable:
		return pick(unavailableMessages, seed, offsetErrorMessage)
	default:
		return ""
	}
}
