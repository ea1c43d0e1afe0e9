package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"task-planner/internal/directory"
	"task-planner/internal/taskparse"
	"task-planner/internal/timetrack/repository"
	"task-planner/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Directory
	categories directory.CategoryStore
	users      directory.UserDirectory

	// Task extraction
	resolver   taskparse.DateResolver
	calendar   taskparse.CalendarClient
	calendarID string
	timezone   string

	// Time tracking
	sessions   repository.SessionRepository
	descWindow time.Duration

	rateLimitPerMin int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Directory
	Categories directory.CategoryStore
	Users      directory.UserDirectory

	// Task extraction
	Resolver   taskparse.DateResolver
	Calendar   taskparse.CalendarClient // optional
	CalendarID string
	Timezone   string

	// Time tracking
	Sessions          repository.SessionRepository
	DescriptionWindow time.Duration

	RateLimitPerMin int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.Default(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		categories:      cfg.Categories,
		users:           cfg.Users,
		resolver:        cfg.Resolver,
		calendar:        cfg.Calendar,
		calendarID:      cfg.CalendarID,
		timezone:        cfg.Timezone,
		sessions:        cfg.Sessions,
		descWindow:      cfg.DescriptionWindow,
		rateLimitPerMin: cfg.RateLimitPerMin,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.categories == nil || srv.users == nil {
		return errors.New("directory stores are required")
	}
	if srv.resolver == nil {
		return errors.New("date resolver is required")
	}
	if srv.sessions == nil {
		return errors.New("session repository is required")
	}
	return nil
}
