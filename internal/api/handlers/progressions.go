package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Conceptual-Machines/harmonia-api/internal/api/middleware"
	"github.com/Conceptual-Machines/harmonia-api/internal/models"
	"github.com/Conceptual-Machines/harmonia-api/internal/services"
	"github.com/Conceptual-Machines/harmonia-api/internal/voiceleading"
)

type ProgressionHandler struct {
	db      *gorm.DB
	service *services.VoiceLeadingService
}

func NewProgressionHandler(db *gorm.DB, service *services.VoiceLeadingService) *ProgressionHandler {
	return &ProgressionHandler{db: db, service: service}
}

// encodeVoicings flattens a solution's voicings for storage,
// "Bb4 Eb4 G3 Eb3; G4 Eb4 Bb3 Eb3; ...".
func encodeVoicings(voicings [][]string) string {
	chords := make([]string, len(voicings))
	for i, v := range voicings {
		chords[i] = strings.Join(v, " ")
	}
	return strings.Join(chords, "; ")
}

// Create saves a progression; with solve=true the best realization is
// searched for and stored alongside it.
func (h *ProgressionHandler) Create(c *gin.Context) {
	var req models.SaveProgressionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Reject unparseable progressions up front
	key, err := services.ParseKey(req.Tonic, req.Mode)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := voiceleading.ParseProgression(req.Progression, key); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	progression := models.SavedProgression{
		Name:        req.Name,
		Tonic:       req.Tonic,
		Mode:        key.Mode.String(),
		Progression: req.Progression,
	}
	if userID, ok := middleware.GetUserIDFromGateway(c); ok {
		progression.UserID = userID
	}

	if req.Solve {
		limit := 1
		resp, err := h.service.Search(c.Request.Context(), models.SearchRequest{
			Tonic:       req.Tonic,
			Mode:        req.Mode,
			Progression: req.Progression,
			Limit:       &limit,
		})
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if len(resp.Solutions) > 0 {
			best := resp.Solutions[0]
			progression.Voicings = encodeVoicings(best.Voicings)
			score := best.Score
			progression.Score = &score
		}
	}

	if err := h.db.Create(&progression).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save progression"})
		return
	}

	c.JSON(http.StatusCreated, progression)
}

// List returns the caller's saved progressions, newest first
func (h *ProgressionHandler) List(c *gin.Context) {
	query := h.db.Order("created_at DESC")
	if userID, ok := middleware.GetUserIDFromGateway(c); ok {
		query = query.Where("user_id = ?", userID)
	}

	var progressions []models.SavedProgression
	if err := query.Find(&progressions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list progressions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"progressions": progressions,
		"count":        len(progressions),
	})
}

// Get returns one saved progression by ID
func (h *ProgressionHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid progression ID"})
		return
	}

	var progression models.SavedProgression
	if err := h.db.First(&progression, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Progression not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load progression"})
		return
	}

	c.JSON(http.StatusOK, progression)
}

// Delete soft-deletes a saved progression
func (h *ProgressionHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid progression ID"})
		return
	}

	query := h.db.Where("id = ?", id)
	if userID, ok := middleware.GetUserIDFromGateway(c); ok {
		query = query.Where("user_id = ?", userID)
	}

	result := query.Delete(&models.SavedProgression{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete progression"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Progression not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
