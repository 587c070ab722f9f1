// ================== internal/features/reports/model.go ==================
package reports

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Report is one immutable status observation of the spring: a photo, a
// cleanliness rating, an optional comment. Reports are only ever
// created; nothing in this service updates or deletes them.
// @Description A submitted status report
type Report struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id" example:"507f1f77bcf86cd799439011"`
	ImageURL   string             `bson:"imageUrl" json:"imageUrl" example:"https://firebasestorage.googleapis.com/v0/b/bucket/o/images%2F1700000000000_spring.jpg?alt=media&token=..."`
	Rating     int                `bson:"rating" json:"rating" example:"4" minimum:"1" maximum:"5"`
	RatingText string             `bson:"ratingText" json:"ratingText" example:"clean"`
	Comments   string             `bson:"comments" json:"comments" example:"Water is clear, some leaves near the edge"`
	CreatedAt  Timestamp          `bson:"createdAt" json:"createdAt" swaggertype:"string" example:"2024-05-01T08:30:00Z"`
}

// Rating bounds. 1 is worst, 5 is best.
const (
	MinRating = 1
	MaxRating = 5
)

// ratingLabels maps ratings 1..5, worst to best. The label is fixed at
// submission time and stored with the record, never recomputed later.
var ratingLabels = [5]string{"very dirty", "dirty", "fair", "clean", "very clean"}

// RatingLabel returns the human label for a rating, or "" when the
// rating is out of range.
func RatingLabel(rating int) string {
	if rating < MinRating || rating > MaxRating {
		return ""
	}
	return ratingLabels[rating-1]
}
