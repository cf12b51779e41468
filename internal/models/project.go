package models

// Project groups instances into one scene. Deleting a project does not
// cascade to its instances; their project_id keeps the old value.
type Project struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}
