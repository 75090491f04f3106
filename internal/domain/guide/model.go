package guide

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Availability string

const (
	Available   Availability = "available"
	Busy        Availability = "busy"
	Unavailable Availability = "unavailable"
)

func (a Availability) Valid() bool {
	switch a {
	case Available, Busy, Unavailable:
		return true
	}
	return false
}

type Location struct {
	District string `json:"district"`
	State    string `json:"state"`
}

// Pricing rates are per tour in INR. Half-day and full-day are mandatory,
// multi-day and workshop are offered by some guides only.
type Pricing struct {
	HalfDay  float64  `json:"halfDay" gorm:"column:price_half_day"`
	FullDay  float64  `json:"fullDay" gorm:"column:price_full_day"`
	MultiDay *float64 `json:"multiDay,omitempty" gorm:"column:price_multi_day"`
	Workshop *float64 `json:"workshop,omitempty" gorm:"column:price_workshop"`
}

type Guide struct {
	ID              uuid.UUID      `json:"id" gorm:"primaryKey"`
	Name            string         `json:"name"`
	Bio             string         `json:"bio"`
	Specializations pq.StringArray `json:"specializations" gorm:"type:text[]"`
	Languages       pq.StringArray `json:"languages" gorm:"type:text[]"`
	ExperienceYears int            `json:"experience"`
	Location        Location       `json:"location" gorm:"embedded"`
	Pricing         Pricing        `json:"pricing" gorm:"embedded"`
	Certifications  pq.StringArray `json:"certifications,omitempty" gorm:"type:text[]"`
	Availability    Availability   `json:"availability"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

// Filter narrows a listing. Zero values mean "no constraint".
type Filter struct {
	Specialization string
	Language       string
	District       string
	State          string
	Availability   Availability
	MinExperience  int
	MaxFullDayRate float64
}
