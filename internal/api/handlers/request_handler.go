package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"rural-health-api-server/internal/medreq"
	"rural-health-api-server/internal/models"
)

type RequestHandler struct {
	Service *medreq.Service
}

// CreateRequest handles the requester submission form. The body is multipart:
// text fields plus an optional "prescription" file.
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	in := medreq.SubmitInput{
		PatientName:   c.PostForm("patientName"),
		Phone:         c.PostForm("phone"),
		Location:      c.PostForm("address"),
		Urgency:       c.PostForm("urgency"),
		Notes:         c.PostForm("notes"),
		MedicinesText: c.PostForm("medicines"),
	}

	fileHeader, err := c.FormFile("prescription")
	if err == nil {
		// Oversized files are rejected before they are staged for upload.
		if err := medreq.CheckFileSize(fileHeader.Size); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read prescription file"})
			return
		}
		defer file.Close()
		in.File = file
		in.FileName = fileHeader.Filename
	}

	created, err := h.Service.Submit(c.Request.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, medreq.ErrMissingContent), errors.Is(err, medreq.ErrMissingRequiredField):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, medreq.ErrSubmissionFailed):
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to submit medicine request, please try again later"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit medicine request"})
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetAllRequests lists medicine requests, optionally filtered by status.
func (h *RequestHandler) GetAllRequests(c *gin.Context) {
	var status models.Status
	if raw := c.Query("status"); raw != "" {
		parsed, err := models.ParseStatus(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		status = parsed
	}

	requests, err := h.Service.List(c.Request.Context(), status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query medicine requests"})
		return
	}

	c.JSON(http.StatusOK, requests)
}

// GetRequestByID returns one medicine request.
func (h *RequestHandler) GetRequestByID(c *gin.Context) {
	request, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, medreq.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Medicine request not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve medicine request"})
		}
		return
	}

	c.JSON(http.StatusOK, request)
}

// AcceptRequest transitions a pending request to accepted.
func (h *RequestHandler) AcceptRequest(c *gin.Context) {
	h.transition(c, h.Service.Accept)
}

// DeliverRequest transitions an accepted request to delivered.
func (h *RequestHandler) DeliverRequest(c *gin.Context) {
	h.transition(c, h.Service.Deliver)
}

func (h *RequestHandler) transition(c *gin.Context, apply func(ctx context.Context, id string) (models.MedicineRequest, error)) {
	request, err := apply(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, medreq.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Medicine request not found"})
		case errors.Is(err, medreq.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update medicine request"})
		}
		return
	}

	c.JSON(http.StatusOK, request)
}
