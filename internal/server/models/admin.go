package models

// Admin is the singleton record naming the global privileged authority.
// It is created exactly once by Initialize and never rotated.
type Admin struct {
	ID        string
	Authority string
}
