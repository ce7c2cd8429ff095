package store

import (
	"gorm.io/gorm"

	"linkhub/internal/models"
)

// PostStore handles the forum posts table. Posts are append-only from the
// web UI; there is no edit or delete surface.
type PostStore struct {
	db *gorm.DB
}

func NewPostStore(db *gorm.DB) *PostStore {
	return &PostStore{db: db}
}

func (s *PostStore) ListAll() ([]models.Post, error) {
	var posts []models.Post
	if err := s.db.Order("created_at DESC, id DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostStore) Insert(title, content, author string) (*models.Post, error) {
	if title == "" {
		return nil, ErrMissingField
	}
	post := models.Post{Title: title, Content: content, Author: author}
	if err := s.db.Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}
