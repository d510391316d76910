package task

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogService manages projects and categories, the two grouping tables
// tasks hang off of.
type CatalogService struct {
	DB *gorm.DB
}

type SaveCatalogInput struct {
	Name  string
	Color string
	Icon  string
}

func (in *SaveCatalogInput) normalize() error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return ErrInvalidInput
	}
	return nil
}

func (s *CatalogService) CreateProject(ctx context.Context, userID uuid.UUID, in SaveCatalogInput) (*Project, error) {
	if err := in.normalize(); err != nil {
		return nil, err
	}
	p := Project{ID: uuid.New(), UserID: userID, Name: in.Name, Color: in.Color, Icon: in.Icon}
	if err := s.DB.WithContext(ctx).Create(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *CatalogService) UpdateProject(ctx context.Context, userID, id uuid.UUID, in SaveCatalogInput) (*Project, error) {
	if err := in.normalize(); err != nil {
		return nil, err
	}
	var p Project
	if err := s.DB.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	p.Name, p.Color, p.Icon = in.Name, in.Color, in.Icon
	if err := s.DB.WithContext(ctx).Save(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *CatalogService) DeleteProject(ctx context.Context, userID, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&Project{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *CatalogService) ListProjects(ctx context.Context, userID uuid.UUID) ([]Project, error) {
	var out []Project
	err := s.DB.WithContext(ctx).Where("user_id = ?", userID).Order("created_at asc").Find(&out).Error
	return out, err
}

func (s *CatalogService) CreateCategory(ctx context.Context, userID uuid.UUID, in SaveCatalogInput) (*Category, error) {
	if err := in.normalize(); err != nil {
		return nil, err
	}
	c := Category{ID: uuid.New(), UserID: userID, Name: in.Name, Color: in.Color, Icon: in.Icon}
	if err := s.DB.WithContext(ctx).Create(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, userID, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&Category{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *CatalogService) ListCategories(ctx context.Context, userID uuid.UUID) ([]Category, error) {
	var out []Category
	err := s.DB.WithContext(ctx).Where("user_id = ?", userID).Order("created_at asc").Find(&out).Error
	return out, err
}
