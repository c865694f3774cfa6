package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"voyago/internal/models/request_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type RecommendationController struct {
	recommendationService services.RecommendationServiceInterface
}

func NewRecommendationController(recommendationService services.RecommendationServiceInterface) *RecommendationController {
	return &RecommendationController{
		recommendationService: recommendationService,
	}
}

func (r *RecommendationController) ProcessTravelPlan(c *gin.Context) {
	var request request_models.TravelPlanRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Plan text is required")
		return
	}

	recommendations, err := r.recommendationService.ProcessPlan(c.Request.Context(), request.Plan, request.Preferences)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, recommendations, "Recommendations generated")
}

func (r *RecommendationController) Chat(c *gin.Context) {
	var message request_models.ChatMessage
	if err := c.ShouldBindJSON(&message); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Message text is required")
		return
	}

	recommendations, err := r.recommendationService.Chat(c.Request.Context(), message.Message, message.CurrentPlan)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, recommendations, "Recommendations updated")
}

func (r *RecommendationController) GetRecommendationsForDay(c *gin.Context) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil || day < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid day number")
		return
	}

	var locations []string
	if raw := c.Query("locations"); raw != "" {
		for _, loc := range strings.Split(raw, ",") {
			if loc = strings.TrimSpace(loc); loc != "" {
				locations = append(locations, loc)
			}
		}
	}

	recommendations, err := r.recommendationService.DayView(c.Request.Context(), day, locations)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, recommendations, "Recommendations fetched")
}
