package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VolunteerRequest represents one volunteer's application to a Post.
// PostID is a weak reference by hex id; deleting a post does not
// cascade to its requests. The post fields are a denormalized snapshot
// taken when the volunteer applies.
type VolunteerRequest struct {
	ID             primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	VolunteerEmail string             `json:"volunteer_email" bson:"volunteer_email"`
	VolunteerName  string             `json:"volunteer_name" bson:"volunteer_name"`
	PostID         string             `json:"postId" bson:"postId"`
	Suggestion     string             `json:"suggestion,omitempty" bson:"suggestion,omitempty"`
	Status         string             `json:"status" bson:"status"`
	Title          string             `json:"title" bson:"title"`
	Category       string             `json:"category" bson:"category"`
	Location       string             `json:"location" bson:"location"`
	Deadline       time.Time          `json:"deadline" bson:"deadline"`
	OrganizerEmail string             `json:"organizer_Email" bson:"organizer_Email"`
	OrganizerName  string             `json:"organizer_Name" bson:"organizer_Name"`
}

// CreateVolunteerRequest defines the request body for applying to a post
type CreateVolunteerRequest struct {
	VolunteerEmail string    `json:"volunteer_email" validate:"required,email"`
	VolunteerName  string    `json:"volunteer_name" validate:"required"`
	PostID         string    `json:"postId" validate:"required"`
	Suggestion     string    `json:"suggestion,omitempty"`
	Status         string    `json:"status,omitempty"`
	Title          string    `json:"title,omitempty"`
	Category       string    `json:"category,omitempty"`
	Location       string    `json:"location,omitempty"`
	Deadline       time.Time `json:"deadline,omitempty"`
	OrganizerEmail string    `json:"organizer_Email,omitempty"`
	OrganizerName  string    `json:"organizer_Name,omitempty"`
}
