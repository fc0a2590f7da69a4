package constants

// NSQ topics
const (
	TopicOrderStatus = "order.status"
)

// NSQ channels
const (
	ChannelPortal = "portal-service"
)
