package controllers

import (
	"github.com/gin-gonic/gin"
	"zfit/internal/services"
	"zfit/pkg/utils"
)

// ContentController serves the public, read-only side of the operator
// content: blog, coupons, exercise catalog, public routines.
type ContentController struct {
	contentService services.ContentServiceInterface
}

func NewContentController(contentService services.ContentServiceInterface) *ContentController {
	return &ContentController{
		contentService: contentService,
	}
}

func (ct *ContentController) Articles(c *gin.Context) {
	articles, err := ct.contentService.Articles(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, articles, "Articles fetched successfully")
}

func (ct *ContentController) ActiveCoupons(c *gin.Context) {
	coupons, err := ct.contentService.ActiveCoupons(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, coupons, "Coupons fetched successfully")
}

func (ct *ContentController) Catalog(c *gin.Context) {
	exercises, err := ct.contentService.Catalog(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, exercises, "Exercise catalog fetched successfully")
}

func (ct *ContentController) PublicRoutines(c *gin.Context) {
	routines, err := ct.contentService.PublicRoutines(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, routines, "Routines fetched successfully")
}
