package services

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"zfit/internal/models/db_models"
	"zfit/internal/models/request_models"
	"zfit/internal/models/response_models"
	"zfit/internal/repositories"
	"zfit/pkg/utils"
)

// ContentService covers the operator-managed records: blog articles,
// coupons, the exercise catalog and public routines. Reads degrade to
// empty lists; admin writes surface their errors.
type ContentServiceInterface interface {
	Articles(ctx context.Context) ([]response_models.ArticleResponse, error)
	ActiveCoupons(ctx context.Context) ([]response_models.CouponResponse, error)
	AllCoupons(ctx context.Context) ([]response_models.CouponResponse, error)
	Catalog(ctx context.Context) ([]response_models.CatalogExerciseResponse, error)
	PublicRoutines(ctx context.Context) ([]response_models.RoutineResponse, error)

	SaveArticle(ctx context.Context, request request_models.SaveArticleRequest) error
	DeleteArticle(ctx context.Context, id string) error
	SaveCoupon(ctx context.Context, request request_models.SaveCouponRequest) error
	DeleteCoupon(ctx context.Context, id string) error
	SaveCatalogExercise(ctx context.Context, request request_models.SaveCatalogExerciseRequest) error
	DeleteCatalogExercise(ctx context.Context, id string) error
	SaveRoutine(ctx context.Context, request request_models.SaveRoutineRequest) error
	DeleteRoutine(ctx context.Context, id string) error
}

type ContentService struct {
	blogRepo    repositories.BlogRepository
	couponRepo  repositories.CouponRepository
	catalogRepo repositories.CatalogRepository
	routineRepo repositories.RoutineRepository
}

func NewContentService(
	blogRepo repositories.BlogRepository,
	couponRepo repositories.CouponRepository,
	catalogRepo repositories.CatalogRepository,
	routineRepo repositories.RoutineRepository,
) ContentServiceInterface {
	return &ContentService{
		blogRepo:    blogRepo,
		couponRepo:  couponRepo,
		catalogRepo: catalogRepo,
		routineRepo: routineRepo,
	}
}

// ---------- Public reads ----------

func (s *ContentService) Articles(ctx context.Context) ([]response_models.ArticleResponse, error) {
	articles, err := s.blogRepo.ListAll(ctx)
	if err != nil {
		log.Printf("blog articles unavailable: %v", err)
		return []response_models.ArticleResponse{}, nil
	}

	responses := make([]response_models.ArticleResponse, 0, len(articles))
	for i := range articles {
		a := &articles[i]
		responses = append(responses, response_models.ArticleResponse{
			ID:       a.ID.String(),
			Title:    a.Title,
			Excerpt:  a.Excerpt,
			Content:  a.Content,
			Author:   a.Author,
			Date:     a.Date,
			Category: a.Category,
			Image:    a.Image,
			ReadTime: a.ReadTime,
		})
	}
	return responses, nil
}

func (s *ContentService) ActiveCoupons(ctx context.Context) ([]response_models.CouponResponse, error) {
	coupons, err := s.couponRepo.ListByStatus(ctx, db_models.CouponActive)
	if err != nil {
		log.Printf("coupons unavailable: %v", err)
		return []response_models.CouponResponse{}, nil
	}
	return toCouponResponses(coupons), nil
}

func (s *ContentService) AllCoupons(ctx context.Context) ([]response_models.CouponResponse, error) {
	coupons, err := s.couponRepo.ListAll(ctx)
	if err != nil {
		log.Printf("coupons unavailable: %v", err)
		return []response_models.CouponResponse{}, nil
	}
	return toCouponResponses(coupons), nil
}

func (s *ContentService) Catalog(ctx context.Context) ([]response_models.CatalogExerciseResponse, error) {
	exercises, err := s.catalogRepo.ListAll(ctx)
	if err != nil {
		log.Printf("exercise catalog unavailable: %v", err)
		return []response_models.CatalogExerciseResponse{}, nil
	}

	responses := make([]response_models.CatalogExerciseResponse, 0, len(exercises))
	for i := range exercises {
		responses = append(responses, response_models.CatalogExerciseResponse{
			ID:          exercises[i].ID.String(),
			Name:        exercises[i].Name,
			MuscleGroup: exercises[i].MuscleGroup,
		})
	}
	return responses, nil
}

func (s *ContentService) PublicRoutines(ctx context.Context) ([]response_models.RoutineResponse, error) {
	routines, err := s.routineRepo.ListPublic(ctx)
	if err != nil {
		log.Printf("public routines unavailable: %v", err)
		return []response_models.RoutineResponse{}, nil
	}

	responses := make([]response_models.RoutineResponse, 0, len(routines))
	for i := range routines {
		r := &routines[i]
		responses = append(responses, response_models.RoutineResponse{
			ID:           r.ID.String(),
			Title:        r.Title,
			MuscleGroups: r.MuscleGroups,
			Exercises:    decodeExercises(r.Exercises),
		})
	}
	return responses, nil
}

// ---------- Admin writes ----------

func (s *ContentService) SaveArticle(ctx context.Context, request request_models.SaveArticleRequest) error {
	article := &db_models.BlogArticle{
		Title:    request.Title,
		Excerpt:  request.Excerpt,
		Content:  request.Content,
		Author:   request.Author,
		Date:     request.Date,
		Category: request.Category,
		Image:    request.Image,
		ReadTime: request.ReadTime,
	}
	article.ID = parseOptionalID(request.ID)

	if err := s.blogRepo.Upsert(ctx, article); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ContentService) DeleteArticle(ctx context.Context, id string) error {
	return s.deleteByID(id, func(uid uuid.UUID) error {
		return s.blogRepo.Delete(ctx, uid)
	})
}

func (s *ContentService) SaveCoupon(ctx context.Context, request request_models.SaveCouponRequest) error {
	coupon := &db_models.Coupon{
		Code:      request.Code,
		Discount:  request.Discount,
		Type:      request.Type,
		Status:    db_models.CouponStatus(request.Status),
		ExpiresAt: request.ExpiresAt,
	}
	if coupon.Type == "" {
		coupon.Type = "percentage"
	}
	if coupon.Status == "" {
		coupon.Status = db_models.CouponActive
	}
	coupon.ID = parseOptionalID(request.ID)

	if err := s.couponRepo.Upsert(ctx, coupon); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ContentService) DeleteCoupon(ctx context.Context, id string) error {
	return s.deleteByID(id, func(uid uuid.UUID) error {
		return s.couponRepo.Delete(ctx, uid)
	})
}

func (s *ContentService) SaveCatalogExercise(ctx context.Context, request request_models.SaveCatalogExerciseRequest) error {
	exercise := &db_models.CatalogExercise{
		Name:        request.Name,
		MuscleGroup: request.MuscleGroup,
	}
	exercise.ID = parseOptionalID(request.ID)

	if err := s.catalogRepo.Upsert(ctx, exercise); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ContentService) DeleteCatalogExercise(ctx context.Context, id string) error {
	return s.deleteByID(id, func(uid uuid.UUID) error {
		return s.catalogRepo.Delete(ctx, uid)
	})
}

func (s *ContentService) SaveRoutine(ctx context.Context, request request_models.SaveRoutineRequest) error {
	exercises, _ := json.Marshal(routineExercises(request.Exercises))

	routine := &db_models.Routine{
		Title:        request.Title,
		MuscleGroups: request.MuscleGroups,
		Exercises:    exercises,
		IsPublic:     request.IsPublic,
	}
	routine.ID = parseOptionalID(request.ID)

	if err := s.routineRepo.Upsert(ctx, routine); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ContentService) DeleteRoutine(ctx context.Context, id string) error {
	return s.deleteByID(id, func(uid uuid.UUID) error {
		return s.routineRepo.Delete(ctx, uid)
	})
}

// ---------- Helpers ----------

func (s *ContentService) deleteByID(id string, remove func(uuid.UUID) error) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return utils.ErrPostNotFound
	}
	if err := remove(uid); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func parseOptionalID(id string) uuid.UUID {
	if id == "" {
		return uuid.Nil
	}
	uid, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil
	}
	return uid
}

func routineExercises(inputs []request_models.ExerciseInput) []db_models.Exercise {
	exercises := make([]db_models.Exercise, 0, len(inputs))
	for _, in := range inputs {
		ex := db_models.Exercise{
			ID:          in.ID,
			Name:        in.Name,
			MuscleGroup: in.MuscleGroup,
		}
		if ex.ID == "" {
			ex.ID = uuid.New().String()
		}
		for _, set := range in.Sets {
			ex.Sets = append(ex.Sets, db_models.ExerciseSet{
				Weight:    set.Weight,
				Reps:      set.Reps,
				Completed: false,
			})
		}
		exercises = append(exercises, ex)
	}
	return exercises
}

func toCouponResponses(coupons []db_models.Coupon) []response_models.CouponResponse {
	responses := make([]response_models.CouponResponse, 0, len(coupons))
	for i := range coupons {
		c := &coupons[i]
		responses = append(responses, response_models.CouponResponse{
			ID:        c.ID.String(),
			Code:      c.Code,
			Discount:  c.Discount,
			Type:      c.Type,
			Status:    string(c.Status),
			ExpiresAt: c.ExpiresAt,
		})
	}
	return responses
}
