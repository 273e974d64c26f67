package models

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Doctor is one entry in the rural doctor directory.
type Doctor struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string             `bson:"name" json:"name"`
	Specialty       string             `bson:"specialty" json:"specialty"`
	Rating          float64            `bson:"rating" json:"rating"`
	Distance        string             `bson:"distance" json:"distance"`
	ConsultationFee string             `bson:"consultationFee" json:"consultationFee"`
	NextAvailable   string             `bson:"nextAvailable" json:"nextAvailable"`
	Location        string             `bson:"location" json:"location"`
	Phone           string             `bson:"phone" json:"phone"`
	Languages       []string           `bson:"languages" json:"languages"`
	Experience      string             `bson:"experience" json:"experience"`
	ImageURL        string             `bson:"imageURL" json:"imageURL"`
}

func (d *Doctor) Normalize() {
	if d.Languages == nil {
		d.Languages = []string{}
	}
}

// Matches reports whether the doctor satisfies the directory search filters.
// search matches name or specialty case-insensitively; specialty is exact.
func (d Doctor) Matches(search, specialty string) bool {
	if specialty != "" && d.Specialty != specialty {
		return false
	}
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(d.Name), search) ||
		strings.Contains(strings.ToLower(d.Specialty), search)
}
