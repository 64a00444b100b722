package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"zfit/internal/models/db_models"
	"zfit/internal/models/request_models"
	"zfit/internal/models/response_models"
	"zfit/internal/repositories"
	"zfit/pkg/utils"
)

const feedLimit = 20

type FeedServiceInterface interface {
	Feed(ctx context.Context, viewerID string) ([]response_models.FeedPostResponse, error)
	Publish(ctx context.Context, profileID string, request request_models.PublishPostRequest) error
	ToggleLike(ctx context.Context, profileID, postID string) (*response_models.LikeResponse, error)
}

type FeedService struct {
	feedRepo repositories.FeedRepository
	now      func() time.Time
}

func NewFeedService(feedRepo repositories.FeedRepository) FeedServiceInterface {
	return &FeedService{
		feedRepo: feedRepo,
		now:      time.Now,
	}
}

// Feed returns the latest posts with author snapshot, like state for the
// viewer and a relative-time label. Any failure degrades to an empty feed.
func (f *FeedService) Feed(ctx context.Context, viewerID string) ([]response_models.FeedPostResponse, error) {
	posts, err := f.feedRepo.ListRecent(ctx, feedLimit)
	if err != nil {
		log.Printf("social feed unavailable: %v", err)
		return []response_models.FeedPostResponse{}, nil
	}

	postIDs := make([]uuid.UUID, 0, len(posts))
	for i := range posts {
		postIDs = append(postIDs, posts[i].ID)
	}

	counts, err := f.feedRepo.LikeCounts(ctx, postIDs)
	if err != nil {
		counts = map[uuid.UUID]int{}
	}

	liked := map[uuid.UUID]bool{}
	if viewer, parseErr := uuid.Parse(viewerID); parseErr == nil {
		if m, likeErr := f.feedRepo.LikedBy(ctx, postIDs, viewer); likeErr == nil {
			liked = m
		}
	}

	now := f.now()
	responses := make([]response_models.FeedPostResponse, 0, len(posts))
	for i := range posts {
		p := &posts[i]
		responses = append(responses, response_models.FeedPostResponse{
			ID: p.ID.String(),
			User: response_models.FeedAuthor{
				ID:     p.Profile.ID.String(),
				Name:   p.Profile.Name,
				Avatar: p.Profile.Avatar,
				Level:  p.Profile.Level,
				Plan:   string(p.Profile.Plan),
			},
			WorkoutTitle:  p.WorkoutTitle,
			Intensity:     p.Intensity,
			Calories:      p.Calories,
			Duration:      p.Duration,
			Timestamp:     utils.RelativeLabel(utils.FromUnixSeconds(p.CreatedAt), now),
			Likes:         counts[p.ID],
			CommentsCount: p.CommentsCount,
			HasLiked:      liked[p.ID],
		})
	}
	return responses, nil
}

func (f *FeedService) Publish(ctx context.Context, profileID string, request request_models.PublishPostRequest) error {
	id, err := uuid.Parse(profileID)
	if err != nil {
		return utils.ErrAccountNotFound
	}

	post := &db_models.SocialPost{
		ProfileID:    id,
		WorkoutTitle: request.WorkoutTitle,
		Intensity:    request.Intensity,
		Calories:     request.Calories,
		Duration:     request.Duration,
	}

	if err := f.feedRepo.Insert(ctx, post); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (f *FeedService) ToggleLike(ctx context.Context, profileID, postID string) (*response_models.LikeResponse, error) {
	viewer, err := uuid.Parse(profileID)
	if err != nil {
		return nil, utils.ErrAccountNotFound
	}
	post, err := uuid.Parse(postID)
	if err != nil {
		return nil, utils.ErrPostNotFound
	}

	hasLiked, likes, err := f.feedRepo.ToggleLike(ctx, post, viewer)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrPostNotFound
		}
		return nil, utils.ErrDatabaseError
	}

	return &response_models.LikeResponse{
		PostID:   postID,
		Likes:    likes,
		HasLiked: hasLiked,
	}, nil
}
