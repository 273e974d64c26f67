package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AudioTip is a recorded health tip from the audioHealthTips collection.
type AudioTip struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title      string             `bson:"title" json:"title"`
	Transcript string             `bson:"transcript" json:"transcript"`
	AudioURL   string             `bson:"audioURL" json:"audioURL"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

// MatchesTitle reports whether the tip title contains the search term.
func (t AudioTip) MatchesTitle(search string) bool {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Title), search)
}
