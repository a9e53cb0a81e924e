package plants

import "time"

// DefaultWateringFrequencyDays is used when a plant has no recorded
// watering frequency.
const DefaultWateringFrequencyDays = 7

// NextWateringDue derives the next watering date from the last watering
// timestamp. The calculation works at UTC date precision: the time of day
// the plant was watered does not shift the due date.
func NextWateringDue(lastWatered time.Time, frequencyDays int) time.Time {
	if frequencyDays < 1 {
		frequencyDays = DefaultWateringFrequencyDays
	}
	day := lastWatered.UTC().Truncate(24 * time.Hour)
	return day.AddDate(0, 0, frequencyDays)
}
