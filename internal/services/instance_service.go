package services

import (
	"github.com/MarvMa/arpas-backend/internal/models"
	"github.com/MarvMa/arpas-backend/internal/repositories"
)

type InstanceService struct {
	instanceRepo *repositories.InstanceRepository
	projectRepo  *repositories.ProjectRepository
	itemRepo     *repositories.ItemRepository
}

func NewInstanceService(
	instanceRepo *repositories.InstanceRepository,
	projectRepo *repositories.ProjectRepository,
	itemRepo *repositories.ItemRepository,
) *InstanceService {
	return &InstanceService{
		instanceRepo: instanceRepo,
		projectRepo:  projectRepo,
		itemRepo:     itemRepo,
	}
}

// CreateInstanceRequest carries the full transform. Every field is
// required, but zero is a legal value for all of them, so the fields are
// pointers: "required" then means present, not non-zero.
type CreateInstanceRequest struct {
	ProjectID *int64   `json:"project_id" binding:"required"`
	ItemID    *int64   `json:"item_id" binding:"required"`
	PositionX *float64 `json:"position_x" binding:"required"`
	PositionY *float64 `json:"position_y" binding:"required"`
	PositionZ *float64 `json:"position_z" binding:"required"`
	RotationX *float64 `json:"rotation_x" binding:"required"`
	RotationY *float64 `json:"rotation_y" binding:"required"`
	RotationZ *float64 `json:"rotation_z" binding:"required"`
	ScaleX    *float64 `json:"scale_x" binding:"required"`
	ScaleY    *float64 `json:"scale_y" binding:"required"`
	ScaleZ    *float64 `json:"scale_z" binding:"required"`
}

type UpdateInstanceRequest struct {
	ProjectID *int64   `json:"project_id" binding:"required"`
	ItemID    *int64   `json:"item_id" binding:"required"`
	PositionX *float64 `json:"position_x" binding:"required"`
	PositionY *float64 `json:"position_y" binding:"required"`
	PositionZ *float64 `json:"position_z" binding:"required"`
	RotationX *float64 `json:"rotation_x" binding:"required"`
	RotationY *float64 `json:"rotation_y" binding:"required"`
	RotationZ *float64 `json:"rotation_z" binding:"required"`
	ScaleX    *float64 `json:"scale_x" binding:"required"`
	ScaleY    *float64 `json:"scale_y" binding:"required"`
	ScaleZ    *float64 `json:"scale_z" binding:"required"`
}

// CreateInstance validates that the referenced project and item exist, in
// that order, before anything is written. On a failed check no row is
// persisted. The checks are point-in-time only: rows deleted afterwards
// leave the instance dangling on purpose.
func (s *InstanceService) CreateInstance(req CreateInstanceRequest) (*models.Instance, error) {
	project, err := s.projectRepo.GetByID(*req.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}

	item, err := s.itemRepo.GetByID(*req.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	instance := &models.Instance{
		ProjectID: *req.ProjectID,
		ItemID:    *req.ItemID,
		PositionX: *req.PositionX,
		PositionY: *req.PositionY,
		PositionZ: *req.PositionZ,
		RotationX: *req.RotationX,
		RotationY: *req.RotationY,
		RotationZ: *req.RotationZ,
		ScaleX:    *req.ScaleX,
		ScaleY:    *req.ScaleY,
		ScaleZ:    *req.ScaleZ,
	}

	if err := s.instanceRepo.Create(instance); err != nil {
		return nil, err
	}

	return instance, nil
}

func (s *InstanceService) GetInstance(id int64) (*models.Instance, error) {
	instance, err := s.instanceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if instance == nil {
		return nil, ErrInstanceNotFound
	}

	return instance, nil
}

func (s *InstanceService) GetAllInstances() ([]models.Instance, error) {
	return s.instanceRepo.GetAll()
}

func (s *InstanceService) GetInstancesByProject(projectID int64) ([]models.Instance, error) {
	project, err := s.projectRepo.GetByID(projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}

	return s.instanceRepo.GetByProjectID(projectID)
}

// UpdateInstance fully replaces the stored row, re-validating both
// references. Check order: instance, then project, then item.
func (s *InstanceService) UpdateInstance(id int64, req UpdateInstanceRequest) (*models.Instance, error) {
	instance, err := s.instanceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if instance == nil {
		return nil, ErrInstanceNotFound
	}

	project, err := s.projectRepo.GetByID(*req.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}

	item, err := s.itemRepo.GetByID(*req.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	instance.ProjectID = *req.ProjectID
	instance.ItemID = *req.ItemID
	instance.PositionX = *req.PositionX
	instance.PositionY = *req.PositionY
	instance.PositionZ = *req.PositionZ
	instance.RotationX = *req.RotationX
	instance.RotationY = *req.RotationY
	instance.RotationZ = *req.RotationZ
	instance.ScaleX = *req.ScaleX
	instance.ScaleY = *req.ScaleY
	instance.ScaleZ = *req.ScaleZ

	if err := s.instanceRepo.Update(instance); err != nil {
		return nil, err
	}

	return instance, nil
}

func (s *InstanceService) DeleteInstance(id int64) error {
	instance, err := s.instanceRepo.GetByID(id)
	if err != nil {
		return err
	}
	if instance == nil {
		return ErrInstanceNotFound
	}

	return s.instanceRepo.Delete(id)
}
