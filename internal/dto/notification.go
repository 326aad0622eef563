package dto

import "github.com/smilelifetheprojectSG/HormigaFinanciera/internal/core/domain"

// NotificationResponse is a fired milestone notification.
type NotificationResponse struct {
	NotificationID string `json:"id"`
	Milestone      string `json:"milestone"`
	Type           string `json:"type"`
	Title          string `json:"title"`
	Message        string `json:"message"`
}

// NotificationListResponse wraps fired notifications.
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}

// ToNotificationResponses converts domain notifications to DTOs. It never
// returns nil so JSON responses always carry an array.
func ToNotificationResponses(notifications []domain.Notification) []NotificationResponse {
	res := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		res[i] = NotificationResponse{
			NotificationID: n.NotificationID,
			Milestone:      n.Milestone,
			Type:           string(n.Type),
			Title:          n.Title,
			Message:        n.Message,
		}
	}
	return res
}
