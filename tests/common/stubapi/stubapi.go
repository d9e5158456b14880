//go:build unit || e2e

// Package stubapi runs an in-process stand-in for the remote Reservation
// Service so client code can be exercised over real HTTP.
package stubapi

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"table-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

type Server struct {
	*httptest.Server

	mu            sync.Mutex
	createStatus  int
	listStatus    int
	listBody      string
	created       []map[string]any
	createHeaders []http.Header
	createCalls   int
	listCalls     int
	gate          chan struct{}
}

func New(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := &Server{
		createStatus: http.StatusOK,
		listStatus:   http.StatusOK,
		listBody:     "[]",
	}

	engine := gin.New()
	api := engine.Group("/api")
	api.POST("/reservation", s.handleCreate)
	api.GET("/reservation", s.handleList)

	s.Server = httptest.NewServer(engine)
	t.Cleanup(func() {
		s.Release()
		s.Close()
	})
	return s
}

func (s *Server) Config() config.ReservationAPIConfig {
	return config.ReservationAPIConfig{
		BaseURL:    s.URL + "/api",
		CreatePath: "/reservation",
		ListPath:   "/reservation",
		Timeout:    2 * time.Second,
	}
}

func (s *Server) SetCreateStatus(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.createStatus = status
}

func (s *Server) SetList(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listStatus = status
	s.listBody = body
}

// Hold makes create requests wait until Release is called.
func (s *Server) Hold() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gate == nil {
		s.gate = make(chan struct{})
	}
}

func (s *Server) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gate != nil {
		close(s.gate)
		s.gate = nil
	}
}

func (s *Server) Created() []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]map[string]any, len(s.created))
	copy(out, s.created)
	return out
}

func (s *Server) CreateHeaders() []http.Header {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]http.Header, len(s.createHeaders))
	copy(out, s.createHeaders)
	return out
}

func (s *Server) CreateCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createCalls
}

func (s *Server) ListCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listCalls
}

func (s *Server) handleCreate(c *gin.Context) {
	raw, _ := io.ReadAll(c.Request.Body)
	var body map[string]any
	_ = json.Unmarshal(raw, &body)

	s.mu.Lock()
	s.createCalls++
	s.created = append(s.created, body)
	s.createHeaders = append(s.createHeaders, c.Request.Header.Clone())
	status := s.createStatus
	gate := s.gate
	s.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-c.Request.Context().Done():
			return
		}
	}

	if status >= 200 && status < 300 {
		c.JSON(status, gin.H{"_id": "stub-id"})
		return
	}
	c.JSON(status, gin.H{"error": "rejected"})
}

func (s *Server) handleList(c *gin.Context) {
	s.mu.Lock()
	s.listCalls++
	status, body := s.listStatus, s.listBody
	s.mu.Unlock()

	c.Data(status, "application/json", []byte(body))
}
