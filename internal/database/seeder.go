// server/internal/database/seeder.go
package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"rural-health-api-server/internal/models"
)

// URLResolver builds the public URL for an object already in blob storage.
type URLResolver interface {
	PublicURL(objectKey string) string
}

// SeedSampleData loads the doctor directory and the sample audio tips the
// platform ships with. Each collection is seeded only when it is empty.
func SeedSampleData(db *mongo.Database, urls URLResolver) error {
	if err := seedDoctors(db); err != nil {
		return err
	}
	return seedAudioTips(db, urls)
}

func seedDoctors(db *mongo.Database) error {
	collection := db.Collection("doctors")

	count, err := collection.CountDocuments(context.Background(), bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		log.Println("Doctor directory already seeded. Skipping.")
		return nil
	}

	log.Println("Seeding doctor directory...")
	doctors := []interface{}{
		models.Doctor{
			Name:            "Dr. Rajesh Kumar",
			Specialty:       "General Medicine",
			Rating:          4.8,
			Distance:        "2.5 km",
			ConsultationFee: "₹300",
			NextAvailable:   "Today 3:00 PM",
			Location:        "Bangalore Rural District",
			Phone:           "+91 98765-43210",
			Languages:       []string{"English", "Hindi", "Kannada"},
			Experience:      "15 years",
		},
		models.Doctor{
			Name:            "Dr. Priya Sharma",
			Specialty:       "Pediatrics",
			Rating:          4.9,
			Distance:        "4.1 km",
			ConsultationFee: "₹400",
			NextAvailable:   "Tomorrow 10:00 AM",
			Location:        "Mysore Rural",
			Phone:           "+91 98765-43211",
			Languages:       []string{"English", "Kannada"},
			Experience:      "12 years",
		},
		models.Doctor{
			Name:            "Dr. Arun Reddy",
			Specialty:       "Cardiology",
			Rating:          4.7,
			Distance:        "6.8 km",
			ConsultationFee: "₹600",
			NextAvailable:   "Today 5:30 PM",
			Location:        "Hassan District",
			Phone:           "+91 98765-43212",
			Languages:       []string{"English", "Telugu", "Kannada"},
			Experience:      "20 years",
		},
		models.Doctor{
			Name:            "Dr. Meera Nair",
			Specialty:       "Dermatology",
			Rating:          4.6,
			Distance:        "8.2 km",
			ConsultationFee: "₹500",
			NextAvailable:   "Tomorrow 2:00 PM",
			Location:        "Tumkur Rural",
			Phone:           "+91 98765-43213",
			Languages:       []string{"English", "Malayalam", "Kannada"},
			Experience:      "8 years",
		},
	}

	if _, err := collection.InsertMany(context.Background(), doctors); err != nil {
		return err
	}

	log.Println("Doctor directory seeded successfully.")
	return nil
}

func seedAudioTips(db *mongo.Database, urls URLResolver) error {
	collection := db.Collection("audioHealthTips")

	count, err := collection.CountDocuments(context.Background(), bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		log.Println("Audio tips already seeded. Skipping.")
		return nil
	}

	log.Println("Seeding sample audio tips...")
	// The sample MP3s themselves are generated and uploaded to the bucket by
	// the audio pipeline (a separate tool); the seeder only writes the
	// documents pointing at them.
	tips := []interface{}{
		models.AudioTip{
			Title:      "Stay Hydrated",
			Transcript: "Drinking enough water helps maintain bodily functions and prevents dehydration.",
			AudioURL:   urls.PublicURL("audioTips/hydration.mp3"),
			CreatedAt:  time.Now(),
		},
		models.AudioTip{
			Title:      "Get Enough Sleep",
			Transcript: "Sleeping 7-8 hours helps your brain and body recover and function optimally.",
			AudioURL:   urls.PublicURL("audioTips/sleep.mp3"),
			CreatedAt:  time.Now(),
		},
	}

	if _, err := collection.InsertMany(context.Background(), tips); err != nil {
		return err
	}

	log.Println("Sample audio tips seeded successfully.")
	return nil
}
