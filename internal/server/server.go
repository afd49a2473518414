package server

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brokerbase/validata/internal/config"
	"github.com/brokerbase/validata/internal/core"
	"github.com/brokerbase/validata/internal/core/completeness"
	"github.com/brokerbase/validata/internal/core/dedupe"
	"github.com/brokerbase/validata/internal/core/model"
	"github.com/brokerbase/validata/internal/core/report"
	"github.com/brokerbase/validata/internal/store"
)

type Server struct {
	Auditor *core.Auditor
}

// NewServer wires the store when Memgraph is configured. Without it the
// server still serves the stateless validation endpoints.
func NewServer(cfg *config.Config) *Server {
	if cfg.Memgraph.URI == "" {
		log.Println("MEMGRAPH_URI not set, running stateless (validation endpoints only)")
		return &Server{}
	}

	s, err := store.NewMemgraphStore(cfg.Memgraph.URI, cfg.Memgraph.User, cfg.Memgraph.Password)
	if err != nil {
		log.Fatalf("Failed to connect to Memgraph: %v", err)
	}
	return &Server{Auditor: core.NewAuditor(s)}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/health", s.Health)
	r.POST("/records/validate", s.Validate)
	r.POST("/records/duplicates", s.Duplicates)
	r.POST("/records/completeness", s.Completeness)
	r.POST("/records", s.Ingest)
	r.GET("/groups/:id/report", s.GroupReport)

	return r
}

type batchRequest struct {
	Records []model.Record `json:"records"`
}

type ingestRequest struct {
	GroupID string         `json:"group_id"`
	Records []model.Record `json:"records"`
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "store": s.Auditor != nil})
}

func (s *Server) Validate(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	rep := report.Generate(req.Records)
	c.JSON(http.StatusOK, rep)
}

func (s *Server) Duplicates(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	c.JSON(http.StatusOK, dedupe.FindDuplicates(req.Records))
}

func (s *Server) Completeness(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	c.JSON(http.StatusOK, completeness.ScoreBatch(req.Records))
}

func (s *Server) Ingest(c *gin.Context) {
	if s.Auditor == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "No record store configured"})
		return
	}

	var req ingestRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.GroupID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if err := s.Auditor.IngestRecords(c.Request.Context(), req.GroupID, req.Records); err != nil {
		log.Printf("Failed to ingest records: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save records"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "saved": len(req.Records)})
}

func (s *Server) GroupReport(c *gin.Context) {
	if s.Auditor == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "No record store configured"})
		return
	}

	rep, err := s.Auditor.AuditGroup(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Printf("Failed to audit group: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
		return
	}

	c.JSON(http.StatusOK, rep)
}
