package series

import "fmt"

// EventRef selects which event of a series to fetch: either the most recent
// published event or a specific event number. The zero value refers to the
// latest event, so a plain integer sentinel never reaches the fetch boundary.
type EventRef struct {
	number int
	known  bool
}

// LatestEvent refers to the most recent published event of a series.
func LatestEvent() EventRef {
	return EventRef{}
}

// EventNumber refers to one specific event by its sequential number.
func EventNumber(n int) EventRef {
	return EventRef{number: n, known: true}
}

// IsLatest reports whether the reference means "most recent published event".
func (r EventRef) IsLatest() bool {
	return !r.known
}

// Number returns the referenced event number. It is only meaningful when
// IsLatest is false.
func (r EventRef) Number() int {
	return r.number
}

// String renders the reference for logs and error messages.
func (r EventRef) String() string {
	if r.IsLatest() {
		return "latest"
	}
	return fmt.Sprintf("#%d", r.number)
}
