package domain

// Event type constants used for event bus subscriptions and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "tree.planted")
const (
	// EventTypeTreePlanted is published when a new tree is planted
	EventTypeTreePlanted = "tree.planted"

	// EventTypeTreeCared is published after a successful water or fertilize action
	EventTypeTreeCared = "tree.cared"

	// EventTypeTreeHarvested is published after a successful harvest
	EventTypeTreeHarvested = "tree.harvested"

	// EventTypeCheckinCompleted is published after a successful daily check-in
	EventTypeCheckinCompleted = "checkin.completed"

	// EventTypeMilestoneReached is published when a streak milestone bonus is granted
	EventTypeMilestoneReached = "checkin.milestone"
)
