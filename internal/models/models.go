package models

// All returns every model registered for auto-migration, in dependency
// order.
func All() []any {
	return []any{
		&Session{},
		&Waveform{},
		&Annotation{},
		&Comment{},
	}
}
