package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"task-planner/config"
	_ "task-planner/docs" // Swagger docs
	directoryMem "task-planner/internal/directory/memory"
	"task-planner/internal/httpserver"
	"task-planner/internal/model"
	"task-planner/internal/taskparse"
	sessionMem "task-planner/internal/timetrack/repository/memory"
	"task-planner/pkg/datemath"
	"task-planner/pkg/gcalendar"
	"task-planner/pkg/log"
)

// @title       Task Planner API
// @description Natural-language task extraction and per-task time tracking with role-based assignment.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Task Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. DateMath parser
	timezone := cfg.Parser.Timezone
	dateMathParser, dtErr := datemath.NewParser(timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, dtErr)
		timezone = "UTC"
		dateMathParser, _ = datemath.NewParser(timezone)
	}

	// 4. Google Calendar client (optional)
	var calendarClient taskparse.CalendarClient
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendarClient = client
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 5. Directory and session stores
	categories := directoryMem.NewCategoryStore(directoryMem.DefaultCategories())
	users := directoryMem.NewUserDirectory(defaultUsers())
	sessions := sessionMem.New()

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:            logger,
		Port:              cfg.HTTPServer.Port,
		Mode:              cfg.HTTPServer.Mode,
		Environment:       cfg.Environment.Name,
		Categories:        categories,
		Users:             users,
		Resolver:          dateMathParser,
		Calendar:          calendarClient,
		CalendarID:        cfg.GoogleCalendar.CalendarID,
		Timezone:          timezone,
		Sessions:          sessions,
		DescriptionWindow: time.Duration(cfg.TimeTrack.DescriptionWindowMinutes) * time.Minute,
		RateLimitPerMin:   cfg.RateLimit.PerUserPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// defaultUsers seeds the in-memory directory. Replace with a real identity
// backend when one is available.
func defaultUsers() []directoryMem.UserSeed {
	return []directoryMem.UserSeed{
		{User: model.User{ID: "u-1", FirstName: "Alice", LastName: "Nguyen"}, Roles: []string{"Manager"}},
		{User: model.User{ID: "u-2", FirstName: "Bob", LastName: "Tran"}, Roles: []string{"Lead"}},
		{User: model.User{ID: "u-3", FirstName: "Carol", LastName: "Le"}},
	}
}
