package handlers

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"rural-health-api-server/internal/models"
	"rural-health-api-server/internal/s3"
)

type AudioTipHandler struct {
	DB         *mongo.Database
	S3Uploader *s3.Uploader
}

// GetAllAudioTips lists audio health tips, newest first. Supports ?q= title search.
func (h *AudioTipHandler) GetAllAudioTips(c *gin.Context) {
	collection := h.DB.Collection("audioHealthTips")

	cursor, err := collection.Find(context.Background(), bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query audio tips"})
		return
	}
	defer cursor.Close(context.Background())

	var tips []models.AudioTip
	if err = cursor.All(context.Background(), &tips); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode audio tips"})
		return
	}

	search := c.Query("q")
	filtered := []models.AudioTip{}
	for _, tip := range tips {
		if tip.MatchesTitle(search) {
			filtered = append(filtered, tip)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	c.JSON(http.StatusOK, filtered)
}

// CreateAudioTip uploads a new tip recording and stores its metadata.
func (h *AudioTipHandler) CreateAudioTip(c *gin.Context) {
	title := strings.TrimSpace(c.PostForm("title"))
	transcript := strings.TrimSpace(c.PostForm("transcript"))
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	fileHeader, err := c.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Audio file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read audio file"})
		return
	}
	defer file.Close()

	objectKey := fmt.Sprintf("audioTips/%d_%s", time.Now().UnixMilli(), fileHeader.Filename)
	audioURL, err := h.S3Uploader.UploadFile(c.Request.Context(), file, objectKey)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to upload audio file"})
		return
	}

	newTip := models.AudioTip{
		Title:      title,
		Transcript: transcript,
		AudioURL:   audioURL,
		CreatedAt:  time.Now(),
	}

	collection := h.DB.Collection("audioHealthTips")
	result, err := collection.InsertOne(context.Background(), newTip)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create audio tip"})
		return
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		newTip.ID = oid
	}

	c.JSON(http.StatusCreated, newTip)
}
