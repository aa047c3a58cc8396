package services

import (
	"errors"
	"fmt"

	"petcare-api/models"
	"petcare-api/repositories"

	"gorm.io/gorm"
)

type TagService interface {
	CreateTag(req models.CreateTagRequest) (*models.Tag, error)
	GetTags() ([]models.Tag, error)
	GetTag(id uint) (*models.Tag, error)
}

type tagService struct {
	tagRepo repositories.TagRepository
}

func NewTagService(tagRepo repositories.TagRepository) TagService {
	return &tagService{tagRepo: tagRepo}
}

func (s *tagService) CreateTag(req models.CreateTagRequest) (*models.Tag, error) {
	_, err := s.tagRepo.GetByName(req.Name)
	if err == nil {
		return nil, fmt.Errorf("%w: tag", ErrConflict)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tag := &models.Tag{Name: req.Name}
	if err := s.tagRepo.Create(tag); err != nil {
		return nil, err
	}

	return tag, nil
}

func (s *tagService) GetTags() ([]models.Tag, error) {
	return s.tagRepo.GetAll()
}

func (s *tagService) GetTag(id uint) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: tag", ErrNotFound)
		}
		return nil, err
	}
	return tag, nil
}
