package transforms

// A Transform advances the state of an escape-time recurrence by one step,
// in place.
type Transform interface {
	Next(z *Complex) *Complex
}
