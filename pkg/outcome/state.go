package outcome

// state is the closed discriminant shared by all outcome types. Exactly one
// tag is active per instance, fixed at construction. Comparison is always by
// tag, never by payload inspection.
type state uint8

const (
	stateFail state = iota
	stateSuccess
	stateNone // Maybe only
)
