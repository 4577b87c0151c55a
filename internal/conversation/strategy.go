package conversation

import (
	"fmt"

	"hotelchat/internal/entity"
)

const (
	noHotelKey   = "hotel-no-hotel"
	generalTitle = "General Inquiry"
)

// Strategy decides which bucket a message belongs to for one viewer role
// and how that bucket is labelled.
type Strategy interface {
	Key(m entity.Message) string
	Title(m entity.Message, users, hotels Lookup) string
}

// StrategyFor picks the grouping for a role. Anything other than an
// operator groups the traveler way.
func StrategyFor(role entity.Role) Strategy {
	if role == entity.RoleOperator {
		return operatorGrouping{}
	}
	return travelerGrouping{}
}

// operatorGrouping buckets by the traveler who wrote the message.
type operatorGrouping struct{}

func (operatorGrouping) Key(m entity.Message) string {
	return fmt.Sprintf("user-%d", m.SenderId)
}

func (operatorGrouping) Title(m entity.Message, users, _ Lookup) string {
	return users.UserName(m.SenderId)
}

// travelerGrouping buckets by the hotel the message is about.
type travelerGrouping struct{}

func (travelerGrouping) Key(m entity.Message) string {
	if m.HotelId == nil {
		return noHotelKey
	}
	return fmt.Sprintf("hotel-%d", *m.HotelId)
}

func (travelerGrouping) Title(m entity.Message, _, hotels Lookup) string {
	if m.HotelId == nil {
		return generalTitle
	}
	return hotels.HotelName(*m.HotelId)
}
