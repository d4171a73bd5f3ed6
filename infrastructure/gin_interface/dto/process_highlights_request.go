package dto

type ProcessHighlightsRequest struct {
	GamePks []string `json:"gamePks" binding:"required,min=1"`
}
