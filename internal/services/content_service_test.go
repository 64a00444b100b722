package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"zfit/internal/models/db_models"
	"zfit/internal/models/request_models"
	"zfit/pkg/utils"
)

type fakeCouponRepo struct {
	listByStatusFn func(ctx context.Context, status db_models.CouponStatus) ([]db_models.Coupon, error)
	listAllFn      func(ctx context.Context) ([]db_models.Coupon, error)
	upsertFn       func(ctx context.Context, coupon *db_models.Coupon) error
	deleteFn       func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeCouponRepo) ListByStatus(ctx context.Context, status db_models.CouponStatus) ([]db_models.Coupon, error) {
	if f.listByStatusFn == nil {
		return nil, nil
	}
	return f.listByStatusFn(ctx, status)
}

func (f *fakeCouponRepo) ListAll(ctx context.Context) ([]db_models.Coupon, error) {
	if f.listAllFn == nil {
		return nil, nil
	}
	return f.listAllFn(ctx)
}

func (f *fakeCouponRepo) Upsert(ctx context.Context, coupon *db_models.Coupon) error {
	if f.upsertFn == nil {
		return nil
	}
	return f.upsertFn(ctx, coupon)
}

func (f *fakeCouponRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.deleteFn == nil {
		return nil
	}
	return f.deleteFn(ctx, id)
}

type fakeBlogRepo struct {
	listAllFn func(ctx context.Context) ([]db_models.BlogArticle, error)
	upsertFn  func(ctx context.Context, article *db_models.BlogArticle) error
	deleteFn  func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeBlogRepo) ListAll(ctx context.Context) ([]db_models.BlogArticle, error) {
	if f.listAllFn == nil {
		return nil, nil
	}
	return f.listAllFn(ctx)
}

func (f *fakeBlogRepo) Upsert(ctx context.Context, article *db_models.BlogArticle) error {
	if f.upsertFn == nil {
		return nil
	}
	return f.upsertFn(ctx, article)
}

func (f *fakeBlogRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.deleteFn == nil {
		return nil
	}
	return f.deleteFn(ctx, id)
}

type fakeCatalogRepo struct {
	listAllFn func(ctx context.Context) ([]db_models.CatalogExercise, error)
	upsertFn  func(ctx context.Context, exercise *db_models.CatalogExercise) error
	deleteFn  func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeCatalogRepo) ListAll(ctx context.Context) ([]db_models.CatalogExercise, error) {
	if f.listAllFn == nil {
		return nil, nil
	}
	return f.listAllFn(ctx)
}

func (f *fakeCatalogRepo) Upsert(ctx context.Context, exercise *db_models.CatalogExercise) error {
	if f.upsertFn == nil {
		return nil
	}
	return f.upsertFn(ctx, exercise)
}

func (f *fakeCatalogRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.deleteFn == nil {
		return nil
	}
	return f.deleteFn(ctx, id)
}

type fakeRoutineRepo struct {
	listPublicFn func(ctx context.Context) ([]db_models.Routine, error)
	upsertFn     func(ctx context.Context, routine *db_models.Routine) error
	deleteFn     func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeRoutineRepo) ListPublic(ctx context.Context) ([]db_models.Routine, error) {
	if f.listPublicFn == nil {
		return nil, nil
	}
	return f.listPublicFn(ctx)
}

func (f *fakeRoutineRepo) Upsert(ctx context.Context, routine *db_models.Routine) error {
	if f.upsertFn == nil {
		return nil
	}
	return f.upsertFn(ctx, routine)
}

func (f *fakeRoutineRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.deleteFn == nil {
		return nil
	}
	return f.deleteFn(ctx, id)
}

func newContentService(blog *fakeBlogRepo, coupon *fakeCouponRepo, catalog *fakeCatalogRepo, routine *fakeRoutineRepo) ContentServiceInterface {
	if blog == nil {
		blog = &fakeBlogRepo{}
	}
	if coupon == nil {
		coupon = &fakeCouponRepo{}
	}
	if catalog == nil {
		catalog = &fakeCatalogRepo{}
	}
	if routine == nil {
		routine = &fakeRoutineRepo{}
	}
	return NewContentService(blog, coupon, catalog, routine)
}

func TestActiveCouponsFiltersByStatus(t *testing.T) {
	coupon := &fakeCouponRepo{
		listByStatusFn: func(ctx context.Context, status db_models.CouponStatus) ([]db_models.Coupon, error) {
			if status != db_models.CouponActive {
				t.Errorf("status = %q, want active", status)
			}
			return []db_models.Coupon{{Code: "ZFIT10", Discount: 10, Status: db_models.CouponActive}}, nil
		},
	}
	svc := newContentService(nil, coupon, nil, nil)

	coupons, err := svc.ActiveCoupons(context.Background())
	if err != nil {
		t.Fatalf("ActiveCoupons: %v", err)
	}
	if len(coupons) != 1 || coupons[0].Code != "ZFIT10" {
		t.Errorf("got %+v", coupons)
	}
}

func TestReadsDegradeToEmpty(t *testing.T) {
	down := errors.New("connection refused")
	svc := newContentService(
		&fakeBlogRepo{listAllFn: func(ctx context.Context) ([]db_models.BlogArticle, error) { return nil, down }},
		&fakeCouponRepo{listByStatusFn: func(ctx context.Context, _ db_models.CouponStatus) ([]db_models.Coupon, error) { return nil, down }},
		&fakeCatalogRepo{listAllFn: func(ctx context.Context) ([]db_models.CatalogExercise, error) { return nil, down }},
		&fakeRoutineRepo{listPublicFn: func(ctx context.Context) ([]db_models.Routine, error) { return nil, down }},
	)
	ctx := context.Background()

	if articles, err := svc.Articles(ctx); err != nil || len(articles) != 0 {
		t.Errorf("Articles = %v, %v", articles, err)
	}
	if coupons, err := svc.ActiveCoupons(ctx); err != nil || len(coupons) != 0 {
		t.Errorf("ActiveCoupons = %v, %v", coupons, err)
	}
	if catalog, err := svc.Catalog(ctx); err != nil || len(catalog) != 0 {
		t.Errorf("Catalog = %v, %v", catalog, err)
	}
	if routines, err := svc.PublicRoutines(ctx); err != nil || len(routines) != 0 {
		t.Errorf("PublicRoutines = %v, %v", routines, err)
	}
}

func TestSaveCouponDefaults(t *testing.T) {
	var saved *db_models.Coupon
	coupon := &fakeCouponRepo{
		upsertFn: func(ctx context.Context, c *db_models.Coupon) error {
			saved = c
			return nil
		},
	}
	svc := newContentService(nil, coupon, nil, nil)

	err := svc.SaveCoupon(context.Background(), request_models.SaveCouponRequest{Code: "ZFIT10", Discount: 10})
	if err != nil {
		t.Fatalf("SaveCoupon: %v", err)
	}
	if saved.Type != "percentage" || saved.Status != db_models.CouponActive {
		t.Errorf("defaults not applied: %+v", saved)
	}
	if saved.ID != uuid.Nil {
		t.Errorf("new coupon should have no id yet, got %s", saved.ID)
	}
}

func TestSaveCouponKeepsID(t *testing.T) {
	id := uuid.New()
	var saved *db_models.Coupon
	coupon := &fakeCouponRepo{
		upsertFn: func(ctx context.Context, c *db_models.Coupon) error {
			saved = c
			return nil
		},
	}
	svc := newContentService(nil, coupon, nil, nil)

	err := svc.SaveCoupon(context.Background(), request_models.SaveCouponRequest{ID: id.String(), Code: "ZFIT10"})
	if err != nil {
		t.Fatalf("SaveCoupon: %v", err)
	}
	if saved.ID != id {
		t.Errorf("id = %s, want %s", saved.ID, id)
	}
}

func TestSaveRoutineAssignsExerciseIDs(t *testing.T) {
	var saved *db_models.Routine
	routine := &fakeRoutineRepo{
		upsertFn: func(ctx context.Context, r *db_models.Routine) error {
			saved = r
			return nil
		},
	}
	svc := newContentService(nil, nil, nil, routine)

	err := svc.SaveRoutine(context.Background(), request_models.SaveRoutineRequest{
		Title:        "Push",
		MuscleGroups: []string{"Peito"},
		Exercises:    []request_models.ExerciseInput{{Name: "Supino Reto"}},
		IsPublic:     true,
	})
	if err != nil {
		t.Fatalf("SaveRoutine: %v", err)
	}
	decoded := decodeExercises(saved.Exercises)
	if len(decoded) != 1 || decoded[0].ID == "" {
		t.Errorf("exercise id not assigned: %+v", decoded)
	}
}

func TestDeleteRejectsMalformedID(t *testing.T) {
	svc := newContentService(nil, nil, nil, nil)

	if err := svc.DeleteCoupon(context.Background(), "not-a-uuid"); !errors.Is(err, utils.ErrPostNotFound) {
		t.Errorf("got %v, want ErrPostNotFound", err)
	}
}

func TestSaveArticleSurfacesWriteFailure(t *testing.T) {
	blog := &fakeBlogRepo{
		upsertFn: func(ctx context.Context, a *db_models.BlogArticle) error {
			return errors.New("connection refused")
		},
	}
	svc := newContentService(blog, nil, nil, nil)

	err := svc.SaveArticle(context.Background(), request_models.SaveArticleRequest{Title: "Hipertrofia 101"})
	if !errors.Is(err, utils.ErrDatabaseError) {
		t.Errorf("got %v, want ErrDatabaseError", err)
	}
}
