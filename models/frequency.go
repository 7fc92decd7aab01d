package models

// Frequency is how often a habit repeats. The set is closed: daily, weekly
// and monthly are the only valid values.
type Frequency string

const (
	Daily   Frequency = "daily"
	Weekly  Frequency = "weekly"
	Monthly Frequency = "monthly"
)

// frequencyLabels maps each frequency tag to its human-readable label.
var frequencyLabels = map[Frequency]string{
	Daily:   "Daily",
	Weekly:  "Weekly",
	Monthly: "Monthly",
}

// Valid reports whether f is one of the closed set of frequencies.
func (f Frequency) Valid() bool {
	_, ok := frequencyLabels[f]
	return ok
}

// Label returns the display string for f, or an empty string for an unknown
// frequency tag.
func (f Frequency) Label() string {
	return frequencyLabels[f]
}
