package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"zfit/internal/models/request_models"
	"zfit/internal/services"
	"zfit/pkg/utils"
)

type AdminController struct {
	adminService   services.AdminServiceInterface
	contentService services.ContentServiceInterface
}

func NewAdminController(adminService services.AdminServiceInterface, contentService services.ContentServiceInterface) *AdminController {
	return &AdminController{
		adminService:   adminService,
		contentService: contentService,
	}
}

// ---------- Aggregates ----------

// Overview godoc
// @Summary Admin dashboard counts
// @Description Table counts plus profiles active in the last 30 days
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/stats [get]
func (a *AdminController) Overview(c *gin.Context) {
	stats, err := a.adminService.Overview(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "Admin stats fetched successfully")
}

// Leaderboard godoc
// @Summary Volume leaderboard
// @Description Top 10 profiles by total lifted volume (weight x reps over all sets)
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/leaderboard [get]
func (a *AdminController) Leaderboard(c *gin.Context) {
	entries, err := a.adminService.Leaderboard(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entries, "Leaderboard fetched successfully")
}

func (a *AdminController) ExerciseStats(c *gin.Context) {
	usages, err := a.adminService.ExerciseStats(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, usages, "Exercise stats fetched successfully")
}

// ---------- Content management ----------

func (a *AdminController) SaveArticle(c *gin.Context) {
	var req request_models.SaveArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.contentService.SaveArticle(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Article saved successfully")
}

func (a *AdminController) DeleteArticle(c *gin.Context) {
	if err := a.contentService.DeleteArticle(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Article deleted successfully")
}

func (a *AdminController) Coupons(c *gin.Context) {
	coupons, err := a.contentService.AllCoupons(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, coupons, "Coupons fetched successfully")
}

func (a *AdminController) SaveCoupon(c *gin.Context) {
	var req request_models.SaveCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.contentService.SaveCoupon(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Coupon saved successfully")
}

func (a *AdminController) DeleteCoupon(c *gin.Context) {
	if err := a.contentService.DeleteCoupon(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Coupon deleted successfully")
}

func (a *AdminController) SaveCatalogExercise(c *gin.Context) {
	var req request_models.SaveCatalogExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.contentService.SaveCatalogExercise(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Exercise saved successfully")
}

func (a *AdminController) DeleteCatalogExercise(c *gin.Context) {
	if err := a.contentService.DeleteCatalogExercise(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Exercise deleted successfully")
}

func (a *AdminController) SaveRoutine(c *gin.Context) {
	var req request_models.SaveRoutineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.contentService.SaveRoutine(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Routine saved successfully")
}

func (a *AdminController) DeleteRoutine(c *gin.Context) {
	if err := a.contentService.DeleteRoutine(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Routine deleted successfully")
}
