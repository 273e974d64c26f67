package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"rural-health-api-server/internal/models"
)

type DoctorHandler struct {
	DB *mongo.Database
}

// GetAllDoctors lists the doctor directory. Supports ?q= (name or specialty
// search) and ?specialty= filters. The directory is small, so filtering
// happens in memory over the full collection.
func (h *DoctorHandler) GetAllDoctors(c *gin.Context) {
	collection := h.DB.Collection("doctors")

	cursor, err := collection.Find(context.Background(), bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query doctors"})
		return
	}
	defer cursor.Close(context.Background())

	var doctors []models.Doctor
	if err = cursor.All(context.Background(), &doctors); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode doctors"})
		return
	}

	search := c.Query("q")
	specialty := c.Query("specialty")

	filtered := []models.Doctor{}
	for i := range doctors {
		doctors[i].Normalize()
		if doctors[i].Matches(search, specialty) {
			filtered = append(filtered, doctors[i])
		}
	}

	c.JSON(http.StatusOK, filtered)
}
