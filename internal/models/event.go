package models

import "time"

type EventCategory string

const (
	CategoryWedding    EventCategory = "WEDDING"
	CategoryCorporate  EventCategory = "CORPORATE"
	CategoryMCEvents   EventCategory = "MC_EVENTS"
	CategoryGatherings EventCategory = "OUTSIDE_GATHERINGS"
	CategoryBirthday   EventCategory = "BIRTHDAY"
	CategoryConference EventCategory = "CONFERENCE"
	CategoryOther      EventCategory = "OTHER"
)

func (c EventCategory) Valid() bool {
	switch c {
	case CategoryWedding, CategoryCorporate, CategoryMCEvents, CategoryGatherings,
		CategoryBirthday, CategoryConference, CategoryOther:
		return true
	}
	return false
}

type Event struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	Title       string        `gorm:"not null" json:"title"`
	Description string        `json:"description,omitempty"`
	Date        time.Time     `gorm:"not null" json:"date"`
	Location    string        `json:"location"`
	Category    EventCategory `gorm:"type:varchar(30);not null" json:"category"`
	Price       float64       `gorm:"not null;default:0" json:"price"`
	IsPublished bool          `gorm:"not null;default:false" json:"is_published"`
	IsFeatured  bool          `gorm:"not null;default:false" json:"is_featured"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
