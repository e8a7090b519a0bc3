package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	tutorRepo "edspire/database/repository/tutor"
	"edspire/models"
	tutorService "edspire/services/tutor"
	"edspire/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TutorHandler exposes the tutor directory endpoints.
type TutorHandler struct {
	Service tutorService.TutorService
}

func NewTutorHandler(svc tutorService.TutorService) *TutorHandler {
	return &TutorHandler{Service: svc}
}

// ListHandler returns every tutor decorated with live availability.
// GET /api/tutors
func (h *TutorHandler) ListHandler(c *gin.Context) {
	tutors, err := h.Service.List(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("failed to list tutors", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load tutors"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tutors": tutors})
}

// GetHandler returns one decorated tutor profile.
// GET /api/tutors/:tutorId
func (h *TutorHandler) GetHandler(c *gin.Context) {
	view, err := h.Service.GetByID(c.Request.Context(), c.Param("tutorId"))
	if err != nil {
		if errors.Is(err, tutorRepo.ErrTutorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tutor not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load tutor"})
		return
	}
	c.JSON(http.StatusOK, view)
}

type tutorProfileRequest struct {
	Name        string   `json:"name" binding:"required"`
	Subjects    []string `json:"subjects"`
	HourlyRate  float64  `json:"hourlyRate" binding:"omitempty,gte=0"`
	Specialties []string `json:"specialties"`
}

// CreateHandler registers the authenticated tutor in the directory.
// POST /api/tutors
func (h *TutorHandler) CreateHandler(c *gin.Context) {
	var req tutorProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid profile details"})
		return
	}

	profile := &models.TutorProfile{
		ID:          c.GetString("userID"),
		Name:        req.Name,
		Subjects:    req.Subjects,
		HourlyRate:  req.HourlyRate,
		Specialties: req.Specialties,
	}
	if err := h.Service.CreateProfile(c.Request.Context(), profile); err != nil {
		utils.GetLogger().Error("failed to create tutor profile", zap.String("tutorId", profile.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create profile"})
		return
	}

	c.JSON(http.StatusCreated, profile)
}

// UpdateHandler rewrites the authenticated tutor's directory fields.
// PUT /api/tutors/me
func (h *TutorHandler) UpdateHandler(c *gin.Context) {
	var req tutorProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid profile details"})
		return
	}

	profile := &models.TutorProfile{
		ID:          c.GetString("userID"),
		Name:        req.Name,
		Subjects:    req.Subjects,
		HourlyRate:  req.HourlyRate,
		Specialties: req.Specialties,
	}
	if err := h.Service.UpdateProfile(c.Request.Context(), profile); err != nil {
		if errors.Is(err, tutorRepo.ErrTutorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tutor not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// AvatarHandler accepts a multipart image, stages it to disk and hands it to
// the storage service.
// POST /api/tutors/me/avatar
func (h *TutorHandler) AvatarHandler(c *gin.Context) {
	logger := utils.GetLogger()
	tutorID := c.GetString("userID")

	file, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "avatar file is required"})
		return
	}

	tmpPath := filepath.Join(os.TempDir(), uuid.NewString()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		logger.Error("failed to stage avatar upload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}
	defer os.Remove(tmpPath)

	url, err := h.Service.UploadAvatar(c.Request.Context(), tutorID, tmpPath)
	if err != nil {
		if errors.Is(err, tutorRepo.ErrTutorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tutor not found"})
			return
		}
		logger.Error("avatar upload failed", zap.String("tutorId", tutorID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload avatar"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar": url})
}
