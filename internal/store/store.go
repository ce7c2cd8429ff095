package store

import (
	"errors"

	"gorm.io/gorm"

	"linkhub/internal/models"
)

var (
	// ErrNotFound is returned when no row exists for the given id.
	ErrNotFound = errors.New("not found")
	// ErrMissingField is returned when a required field is empty.
	ErrMissingField = errors.New("missing required field")
)

// ResourceStore wraps single-table CRUD over the resources table.
type ResourceStore struct {
	db *gorm.DB
}

func NewResourceStore(db *gorm.DB) *ResourceStore {
	return &ResourceStore{db: db}
}

// ListAll returns every resource, newest first.
func (s *ResourceStore) ListAll() ([]models.Resource, error) {
	var resources []models.Resource
	if err := s.db.Order("created_at DESC, id DESC").Find(&resources).Error; err != nil {
		return nil, err
	}
	return resources, nil
}

func (s *ResourceStore) GetByID(id uint) (*models.Resource, error) {
	var resource models.Resource
	if err := s.db.First(&resource, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &resource, nil
}

// Insert persists a new resource. The row starts unverified; the id and
// creation timestamp are filled in on return.
func (s *ResourceStore) Insert(title, url, description, code string) (*models.Resource, error) {
	if title == "" || url == "" {
		return nil, ErrMissingField
	}
	resource := models.Resource{
		Title:       title,
		URL:         url,
		Description: description,
		Code:        code,
	}
	if err := s.db.Create(&resource).Error; err != nil {
		return nil, err
	}
	return &resource, nil
}

// Update rewrites the content fields of an existing resource. Unless
// preserveVerified is set the verified flag drops back to false, so any
// user-initiated edit demotes the row until an admin re-verifies it.
func (s *ResourceStore) Update(id uint, title, url, description string, preserveVerified bool) (*models.Resource, error) {
	if title == "" || url == "" {
		return nil, ErrMissingField
	}
	resource, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	values := map[string]interface{}{
		"title":       title,
		"url":         url,
		"description": description,
	}
	if !preserveVerified {
		values["verified"] = false
	}
	if err := s.db.Model(resource).Updates(values).Error; err != nil {
		return nil, err
	}
	return resource, nil
}

// ToggleVerified flips the verified flag and returns its new value.
func (s *ResourceStore) ToggleVerified(id uint) (bool, error) {
	resource, err := s.GetByID(id)
	if err != nil {
		return false, err
	}
	next := !resource.Verified
	if err := s.db.Model(resource).Update("verified", next).Error; err != nil {
		return false, err
	}
	return next, nil
}

// Delete removes a resource. Deleting an absent id is not an error.
func (s *ResourceStore) Delete(id uint) error {
	return s.db.Delete(&models.Resource{}, id).Error
}
