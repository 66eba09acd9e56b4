package ui

import (
	"embed"
	stderrors "errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"schoolmap/adapters/tabular"
	"schoolmap/domain/schools"
	"schoolmap/internal"
	"schoolmap/internal/config"

	"github.com/gin-gonic/gin"
)

//go:embed templates/* static/*
var embeddedFiles embed.FS

// MapTemplate is the page the schools dataset is rendered into.
const MapTemplate = "national_schools/national_schools_sri_lanka.html"

// Server represents the web server for the schools map
type Server struct {
	router    *gin.Engine
	templates *template.Template
	cfg       *config.Config
	logger    *internal.Logger
}

// NewServer creates a new web server instance
func NewServer(cfg *config.Config) (*Server, error) {
	gin.SetMode(cfg.Server.GinMode)

	s := &Server{
		router: gin.Default(),
		cfg:    cfg,
		logger: internal.DefaultLogger,
	}

	if err := s.parseTemplates(); err != nil {
		return nil, err
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s, nil
}

// parseTemplates loads every embedded template under its path name, so
// nested pages keep their directory prefix (the map page is addressed as
// "national_schools/national_schools_sri_lanka.html").
func (s *Server) parseTemplates() error {
	templatesFS, err := fs.Sub(embeddedFiles, "templates")
	if err != nil {
		return fmt.Errorf("failed to create templates filesystem: %w", err)
	}

	files1, err := fs.Glob(templatesFS, "*.html")
	if err != nil {
		return fmt.Errorf("failed to glob root templates: %w", err)
	}
	files2, err := fs.Glob(templatesFS, "*/*.html")
	if err != nil {
		return fmt.Errorf("failed to glob nested templates: %w", err)
	}

	s.templates = template.New("")
	for _, file := range append(files1, files2...) {
		content, err := fs.ReadFile(templatesFS, file)
		if err != nil {
			return fmt.Errorf("failed to read template %s: %w", file, err)
		}
		if _, err := s.templates.New(file).Parse(string(content)); err != nil {
			return fmt.Errorf("failed to parse template %s: %w", file, err)
		}
	}

	return nil
}

// setupMiddleware configures Gin middleware
func (s *Server) setupMiddleware() {
	s.router.Use(requestID())

	staticFS, err := fs.Sub(embeddedFiles, "static")
	if err != nil {
		s.logger.Warn("static filesystem unavailable: %v", err)
		return
	}
	s.router.StaticFS("/static", http.FS(staticFS))
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleRoot)
	s.router.GET("/schools/map", s.handleSchoolMap)
	s.router.GET("/about", s.handleAbout)

	// API endpoints
	s.router.GET("/api/schools", s.handleSchoolsJSON)
	s.router.GET("/api/dataset/info", s.handleDatasetInfo)
}

// Start starts the web server
func (s *Server) Start(addr string) error {
	s.logger.Info("Starting schoolmap UI on http://%s", addr)
	return s.router.Run(addr)
}

// loadSchoolTable reads the geocoded schools file for one request. A
// missing file is the single recoverable failure: it is logged and
// downgraded to an empty table. Every other read error is returned to the
// caller and surfaces as a server error.
func (s *Server) loadSchoolTable() (*schools.Table, error) {
	path := s.cfg.SchoolsDataPath()
	table, err := tabular.NewDataReader(path).ReadTable()
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			s.logger.Error("file not found at %s", path)
			return &schools.Table{Rows: schools.Dataset{}}, nil
		}
		return nil, err
	}
	return table, nil
}

// handleRoot redirects to the map view
func (s *Server) handleRoot(c *gin.Context) {
	c.Redirect(http.StatusFound, "/schools/map")
}

// handleSchoolMap renders the national schools map page. The dataset rows
// are handed to the template unmodified under the "map_data" key.
func (s *Server) handleSchoolMap(c *gin.Context) {
	table, err := s.loadSchoolTable()
	if err != nil {
		s.logger.Error("failed to load schools data: %v", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	s.renderTemplate(c, MapTemplate, gin.H{
		"map_data": table.Rows,
	})
}

// handleSchoolsJSON returns the dataset as JSON
func (s *Server) handleSchoolsJSON(c *gin.Context) {
	table, err := s.loadSchoolTable()
	if err != nil {
		s.logger.Error("failed to load schools data: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load schools data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"schools": table.Rows,
		"count":   table.Rows.Len(),
	})
}

// renderTemplate executes a parsed template into the response
func (s *Server) renderTemplate(c *gin.Context, templateName string, data interface{}) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(c.Writer, templateName, data); err != nil {
		s.logger.Error("Template error: %v", err)
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}
