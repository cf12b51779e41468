package services

import (
	"github.com/MarvMa/arpas-backend/internal/models"
	"github.com/MarvMa/arpas-backend/internal/repositories"
)

type ItemService struct {
	itemRepo *repositories.ItemRepository
}

func NewItemService(itemRepo *repositories.ItemRepository) *ItemService {
	return &ItemService{itemRepo: itemRepo}
}

type CreateItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description,omitempty"`
}

type UpdateItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description,omitempty"`
}

func (s *ItemService) CreateItem(req CreateItemRequest) (*models.Item, error) {
	item := &models.Item{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.itemRepo.Create(item); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *ItemService) GetItem(id int64) (*models.Item, error) {
	item, err := s.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	return item, nil
}

func (s *ItemService) GetAllItems() ([]models.Item, error) {
	return s.itemRepo.GetAll()
}

// UpdateItem replaces name and description. A stored model payload is not
// touched by metadata updates.
func (s *ItemService) UpdateItem(id int64, req UpdateItemRequest) (*models.Item, error) {
	item, err := s.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	item.Name = req.Name
	item.Description = req.Description

	if err := s.itemRepo.Update(item); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *ItemService) DeleteItem(id int64) error {
	item, err := s.itemRepo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrItemNotFound
	}

	return s.itemRepo.Delete(id)
}

// UploadModel stores the raw file bytes on the item. The payload is opaque;
// no format validation happens here.
func (s *ItemService) UploadModel(id int64, data []byte) (*models.Item, error) {
	item, err := s.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	if err := s.itemRepo.SetModelData(id, data); err != nil {
		return nil, err
	}

	item.HasModel = true
	return item, nil
}

func (s *ItemService) DownloadModel(id int64) ([]byte, error) {
	item, err := s.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	if !item.HasModel {
		return nil, ErrItemModelNotFound
	}

	return s.itemRepo.GetModelData(id)
}

// DeleteModel clears the stored payload. Clearing an item that never had
// one is a no-op that still succeeds.
func (s *ItemService) DeleteModel(id int64) (*models.Item, error) {
	item, err := s.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	if err := s.itemRepo.ClearModelData(id); err != nil {
		return nil, err
	}

	item.HasModel = false
	return item, nil
}
