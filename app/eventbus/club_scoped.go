package eventbus

import (
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
)

// ClubScopedTopic appends the club id to a base topic: "{baseTopic}.{clubID}".
// Consumers subscribe to one club's topic, or to "{baseTopic}.*" on NATS for
// every club.
func ClubScopedTopic(baseTopic, clubID string) string {
	return fmt.Sprintf("%s.%s", baseTopic, clubID)
}

// PublishClubScoped publishes msg on the club's copy of baseTopic.
func PublishClubScoped(bus message.Publisher, baseTopic, clubID string, msg *message.Message) error {
	if clubID == "" {
		return fmt.Errorf("clubID cannot be empty for club-scoped publish")
	}
	return bus.Publish(ClubScopedTopic(baseTopic, clubID), msg)
}
