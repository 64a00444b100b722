package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"zfit/internal/models/db_models"
)

type FeedRepository interface {
	Insert(ctx context.Context, post *db_models.SocialPost) error
	ListRecent(ctx context.Context, limit int) ([]db_models.SocialPost, error)
	LikeCounts(ctx context.Context, postIDs []uuid.UUID) (map[uuid.UUID]int, error)
	LikedBy(ctx context.Context, postIDs []uuid.UUID, viewerID uuid.UUID) (map[uuid.UUID]bool, error)
	ToggleLike(ctx context.Context, postID, profileID uuid.UUID) (liked bool, likes int, err error)
}

type feedRepository struct {
	db *gorm.DB
}

func NewFeedRepository(db *gorm.DB) FeedRepository {
	return &feedRepository{
		db: db,
	}
}

func (r *feedRepository) Insert(ctx context.Context, post *db_models.SocialPost) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *feedRepository) ListRecent(ctx context.Context, limit int) ([]db_models.SocialPost, error) {
	var posts []db_models.SocialPost
	err := r.db.WithContext(ctx).
		Preload("Profile").
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

type likeCountRow struct {
	PostID uuid.UUID `gorm:"column:post_id"`
	Count  int       `gorm:"column:count"`
}

func (r *feedRepository) LikeCounts(ctx context.Context, postIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	counts := make(map[uuid.UUID]int, len(postIDs))
	if len(postIDs) == 0 {
		return counts, nil
	}

	var rows []likeCountRow
	err := r.db.WithContext(ctx).
		Model(&db_models.PostLike{}).
		Select("post_id, COUNT(*) AS count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.PostID] = row.Count
	}
	return counts, nil
}

func (r *feedRepository) LikedBy(ctx context.Context, postIDs []uuid.UUID, viewerID uuid.UUID) (map[uuid.UUID]bool, error) {
	liked := make(map[uuid.UUID]bool, len(postIDs))
	if len(postIDs) == 0 {
		return liked, nil
	}

	var likes []db_models.PostLike
	err := r.db.WithContext(ctx).
		Where("post_id IN ? AND profile_id = ?", postIDs, viewerID).
		Find(&likes).Error
	if err != nil {
		return nil, err
	}

	for _, l := range likes {
		liked[l.PostID] = true
	}
	return liked, nil
}

// ToggleLike flips the (post, profile) like inside one transaction and
// reports the resulting state plus the fresh count.
func (r *feedRepository) ToggleLike(ctx context.Context, postID, profileID uuid.UUID) (bool, int, error) {
	var post db_models.SocialPost
	if err := r.db.WithContext(ctx).First(&post, "id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, 0, gorm.ErrRecordNotFound
		}
		return false, 0, err
	}

	var liked bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing db_models.PostLike
		err := tx.Where("post_id = ? AND profile_id = ?", postID, profileID).
			First(&existing).Error

		switch {
		case err == nil:
			liked = false
			return tx.Unscoped().Delete(&existing).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			liked = true
			return tx.Create(&db_models.PostLike{PostID: postID, ProfileID: profileID}).Error
		default:
			return err
		}
	})
	if err != nil {
		return false, 0, err
	}

	var count int64
	err = r.db.WithContext(ctx).
		Model(&db_models.PostLike{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return liked, int(count), err
}
