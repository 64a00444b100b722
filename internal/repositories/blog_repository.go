package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"zfit/internal/models/db_models"
)

type BlogRepository interface {
	ListAll(ctx context.Context) ([]db_models.BlogArticle, error)
	Upsert(ctx context.Context, article *db_models.BlogArticle) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type blogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{
		db: db,
	}
}

func (r *blogRepository) ListAll(ctx context.Context) ([]db_models.BlogArticle, error) {
	var articles []db_models.BlogArticle
	err := r.db.WithContext(ctx).
		Order("date DESC").
		Find(&articles).Error
	return articles, err
}

func (r *blogRepository) Upsert(ctx context.Context, article *db_models.BlogArticle) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(article).Error
}

func (r *blogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&db_models.BlogArticle{}, "id = ?", id).Error
}
