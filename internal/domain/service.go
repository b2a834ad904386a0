package domain

// Service represents an offerable salon service from the static catalog.
// The catalog is defined at process start and never mutated.
type Service struct {
	ID              string
	Name            string
	Subtitle        *string
	DurationMinutes int
}

// TotalDurationMinutes returns the summed duration of a service selection.
func TotalDurationMinutes(services []Service) int {
	total := 0
	for _, s := range services {
		total += s.DurationMinutes
	}
	return total
}
