package dto

// CreateAnnouncementRequest represents the payload for creating an announcement
type CreateAnnouncementRequest struct {
	Title   string `json:"title" binding:"required,max=256"`
	Content string `json:"content" binding:"required"`
}
