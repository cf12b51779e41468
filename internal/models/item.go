package models

// Item is a reusable 3D asset. The binary model file itself is stored in
// the model_data column and only travels through the /model endpoints;
// HasModel tells clients whether a download would succeed.
type Item struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	HasModel    bool    `json:"has_model"`
}
