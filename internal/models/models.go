package models

import "time"

const (
	PracticeAreaImmigration = "immigration"
	PracticeAreaRealEstate  = "real-estate"
	PracticeAreaWills       = "wills-power-of-attorney"
	PracticeAreaCriminal    = "criminal-law"
)

// PracticeAreas lists the form-classification tags accepted on submissions.
var PracticeAreas = []string{
	PracticeAreaImmigration,
	PracticeAreaRealEstate,
	PracticeAreaWills,
	PracticeAreaCriminal,
}

type Contact struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PracticeArea string    `json:"practiceArea"`
	Subject      string    `json:"subject"`
	Message      string    `json:"message"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Appointment struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	PracticeArea  string    `json:"practiceArea"`
	PreferredDate string    `json:"preferredDate"`
	PreferredTime string    `json:"preferredTime"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"createdAt"`
}

type BlogPost struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Excerpt   string    `json:"excerpt"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	Tags      []string  `json:"tags"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
