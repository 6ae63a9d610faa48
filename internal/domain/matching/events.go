package matching

// NotificationKind tags every outbox job written for matching requests.
const NotificationKind = "matching"

// Notification topics enqueued by lifecycle operations.
const (
	TopicRequestCreated   = "request.created"
	TopicRequestAccepted  = "request.accepted"
	TopicRequestCancelled = "request.cancelled"
	TopicRequestCompleted = "request.completed"
	TopicRequestExpired   = "request.expired"
	TopicResponseReceived = "response.received"
	TopicRatingSubmitted  = "rating.submitted"
)
