package server

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/agenthands/healthchat/internal/config"
	"github.com/agenthands/healthchat/internal/core/chat"
	"github.com/agenthands/healthchat/internal/core/predict"
	"github.com/agenthands/healthchat/internal/core/random"
	"github.com/agenthands/healthchat/internal/predictor"
)

const serviceName = "AI Health Assistant"

type Server struct {
	Predictor predictor.Predictor
}

// NewServer builds the predictor synchronously, before any traffic is
// accepted, so handlers never observe a half-initialized backend.
func NewServer(cfg *config.Config) *Server {
	db := predict.DefaultData()
	if cfg.Data.ConditionsPath != "" {
		loaded, err := predict.LoadDatabase(cfg.Data.ConditionsPath)
		if err != nil {
			log.Fatalf("Failed to load condition database: %v", err)
		}
		db = loaded
	}

	return &Server{
		Predictor: predictor.New(cfg.Predictor, db, random.Default()),
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()
	r.HandleMethodNotAllowed = true

	r.POST("/api/predict", s.Predict)
	r.GET("/api/symptoms", s.Symptoms)
	r.GET("/api/health", s.Health)
	r.GET("/api/info", s.Info)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	return r
}

type PredictRequest struct {
	Symptoms string `json:"symptoms"`
}

func (s *Server) Predict(c *gin.Context) {
	var req PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No JSON data provided"})
		return
	}

	symptoms := strings.TrimSpace(req.Symptoms)
	if symptoms == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No symptoms provided"})
		return
	}

	result, err := s.Predictor.PredictFromText(c.Request.Context(), symptoms)
	if err != nil {
		log.Printf("Error in prediction: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": "error",
			"error":  "Prediction failed: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "success",
		"request_id":  uuid.NewString(),
		"messages":    chat.Format(result),
		"raw_results": result,
		"timestamp":   time.Now().Format(time.RFC3339),
	})
}

func (s *Server) Symptoms(c *gin.Context) {
	symptoms := s.Predictor.Vocabulary()
	c.JSON(http.StatusOK, gin.H{
		"status":         "success",
		"symptoms":       symptoms,
		"total_symptoms": len(symptoms),
		"demo_mode":      s.demoMode(),
	})
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":           "healthy",
		"service":          serviceName,
		"timestamp":        time.Now().Format(time.RFC3339),
		"predictor_loaded": s.Predictor != nil,
		"predictor_type":   s.Predictor.Name(),
	})
}

func (s *Server) Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":        serviceName + " API",
		"version":     "1.0.0",
		"description": "Disease prediction based on symptoms",
		"endpoints": gin.H{
			"POST /api/predict": "Predict disease from symptoms",
			"GET /api/symptoms": "Get list of available symptoms",
			"GET /api/health":   "Health check",
			"GET /api/info":     "This information",
		},
		"demo_mode": s.demoMode(),
	})
}

func (s *Server) demoMode() bool {
	return s.Predictor.Name() == "demo"
}
