package domain

// Milestone keys. Each fires at most one notification per goal lifetime; the
// fired flags are persisted and only cleared when the goal's target or
// description changes or the goal is deleted.
const (
	MilestoneGoal100   = "goal_100"
	MilestoneGoal90    = "goal_90"
	MilestoneGoal80    = "goal_80"
	MilestoneDeadline1 = "deadline_1"
	MilestoneDeadline7 = "deadline_7"
)

// NotificationType classifies a milestone notification for display.
type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationInfo    NotificationType = "info"
	NotificationWarning NotificationType = "warning"
)

// Notification is a discrete one-shot event emitted when a milestone
// condition first becomes true. Display lifetime is the caller's concern.
type Notification struct {
	NotificationID string           `json:"id"`
	Milestone      string           `json:"milestone"`
	Type           NotificationType `json:"type"`
	Title          string           `json:"title"`
	Message        string           `json:"message"`
}
