package request_models

type TravelPlanRequest struct {
	Plan        string `json:"plan" binding:"required"`
	Preferences string `json:"preferences"`
}

type ChatMessage struct {
	Message     string `json:"message" binding:"required"`
	CurrentPlan string `json:"current_plan"`
}

type BookingRequest struct {
	Type string `json:"type" binding:"required"`
	ID   int    `json:"id" binding:"required"`
	Date string `json:"date"`
}
