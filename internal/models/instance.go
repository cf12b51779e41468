package models

// Instance places an item inside a project with a full transform.
// ProjectID and ItemID are plain references checked at write time; the
// rows they point at may be deleted later without touching the instance.
type Instance struct {
	ID        int64   `json:"id"`
	ProjectID int64   `json:"project_id"`
	ItemID    int64   `json:"item_id"`
	PositionX float64 `json:"position_x"`
	PositionY float64 `json:"position_y"`
	PositionZ float64 `json:"position_z"`
	RotationX float64 `json:"rotation_x"`
	RotationY float64 `json:"rotation_y"`
	RotationZ float64 `json:"rotation_z"`
	ScaleX    float64 `json:"scale_x"`
	ScaleY    float64 `json:"scale_y"`
	ScaleZ    float64 `json:"scale_z"`
}
