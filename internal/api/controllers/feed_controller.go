package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"zfit/internal/models/request_models"
	"zfit/internal/services"
	"zfit/pkg/utils"
)

type FeedController struct {
	feedService services.FeedServiceInterface
}

func NewFeedController(feedService services.FeedServiceInterface) *FeedController {
	return &FeedController{
		feedService: feedService,
	}
}

// Feed godoc
// @Summary Get the social feed
// @Description Latest posts with author snapshot, like counts and the viewer's like state
// @Tags Feed
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /feed [get]
func (f *FeedController) Feed(c *gin.Context) {
	posts, err := f.feedService.Feed(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, posts, "Feed fetched successfully")
}

func (f *FeedController) Publish(c *gin.Context) {
	var req request_models.PublishPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := f.feedService.Publish(c.Request.Context(), c.GetString("user_id"), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Post published successfully")
}

func (f *FeedController) ToggleLike(c *gin.Context) {
	like, err := f.feedService.ToggleLike(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, like, "Like toggled")
}
