// Package entity defines the domain entities for the tasks feature.
package entity

// Task is a to-do item owned by the user whose email is UserEmail.
// Ownership is by convention only; no constraint ties it to an existing user.
type Task struct {
	ID        string
	Title     string
	Completed bool
	UserEmail string
}

// TaskPatch carries the fields of a partial update. Nil fields are left unchanged.
type TaskPatch struct {
	Title     *string
	Completed *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Completed == nil
}
