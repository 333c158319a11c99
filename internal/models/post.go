package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post represents a volunteering-opportunity listing stored in MongoDB.
// Field names match what the web client sends, so the bson/json tags
// are the wire contract.
type Post struct {
	ID                primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title             string             `json:"title" bson:"title"`
	Category          string             `json:"category" bson:"category"`
	Location          string             `json:"location" bson:"location"`
	NumberOfVolunteer int                `json:"numberOfVolunteer" bson:"numberOfVolunteer"` // remaining capacity
	PhotoURL          string             `json:"photo_url" bson:"photo_url"`
	Description       string             `json:"description" bson:"description"`
	Deadline          time.Time          `json:"deadline" bson:"deadline"`
	OrganizerEmail    string             `json:"organizer_Email" bson:"organizer_Email"`
	OrganizerName     string             `json:"organizer_Name" bson:"organizer_Name"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Title             string    `json:"title" validate:"required,min=1,max=200"`
	Category          string    `json:"category" validate:"required"`
	Location          string    `json:"location" validate:"required"`
	NumberOfVolunteer int       `json:"numberOfVolunteer" validate:"required,min=1"`
	PhotoURL          string    `json:"photo_url" validate:"omitempty,url"`
	Description       string    `json:"description" validate:"required"`
	Deadline          time.Time `json:"deadline" validate:"required"`
	OrganizerEmail    string    `json:"organizer_Email" validate:"required,email"`
	OrganizerName     string    `json:"organizer_Name" validate:"required"`
}

// UpdatePostRequest defines the request body for updating a post. The
// update replaces the whole business field set, so every field is
// required just like on create.
type UpdatePostRequest struct {
	Title             string    `json:"title" validate:"required,min=1,max=200"`
	Category          string    `json:"category" validate:"required"`
	Location          string    `json:"location" validate:"required"`
	NumberOfVolunteer int       `json:"numberOfVolunteer" validate:"min=0"`
	PhotoURL          string    `json:"photo_url" validate:"omitempty,url"`
	Description       string    `json:"description" validate:"required"`
	Deadline          time.Time `json:"deadline" validate:"required"`
	OrganizerEmail    string    `json:"organizer_Email" validate:"required,email"`
	OrganizerName     string    `json:"organizer_Name" validate:"required"`
}
