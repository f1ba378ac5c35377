package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"

	"taskwarrior-mcp/config"
	mcpDelivery "taskwarrior-mcp/internal/task/delivery/mcp"
	"taskwarrior-mcp/internal/task/repository/taskwarrior"
	"taskwarrior-mcp/internal/task/usecase"
	"taskwarrior-mcp/pkg/log"
	"taskwarrior-mcp/pkg/taskdate"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger. Everything goes to stderr: stdout carries the MCP stream.
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting taskwarrior-mcp...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Taskwarrior binary: %s", cfg.Taskwarrior.Bin)

	// 3. Due-date classifier
	classifier, err := taskdate.NewClassifier(cfg.Taskwarrior.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Taskwarrior.Timezone, err)
		classifier, _ = taskdate.NewClassifier("")
	}

	// 4. Taskwarrior repository
	client := taskwarrior.New(taskwarrior.Config{
		Bin:             cfg.Taskwarrior.Bin,
		Taskrc:          cfg.Taskwarrior.Taskrc,
		Taskdata:        cfg.Taskwarrior.Taskdata,
		Timeout:         cfg.Taskwarrior.Timeout,
		RateLimitPerMin: cfg.Taskwarrior.RateLimitPerMin,
		CacheTTL:        cfg.Taskwarrior.CacheTTL,
		CacheSize:       cfg.Taskwarrior.CacheSize,
	}, logger)

	// 5. Task UseCase
	taskUC := usecase.New(logger, client, classifier, cfg.Suggest, cfg.Triage.StaleDays)

	// 6. MCP server over stdio
	s := server.NewMCPServer(
		"taskwarrior-mcp",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)
	mcpDelivery.New(logger, taskUC).Register(s)

	logger.Info(ctx, "Serving MCP over stdio")
	if err := server.ServeStdio(s); err != nil {
		logger.Error(ctx, "Server stopped with error: ", err)
		os.Exit(1)
	}
	logger.Info(ctx, "Server stopped gracefully")
}

// serverInstructions tells the AI caller how to use the tool surface.
func serverInstructions() string {
	return `You have access to the user's Taskwarrior task list.

Reading:
- task_list, task_get, task_bulk_get for raw task data
- task_summary or task_overview for a quick snapshot before diving in
- task_project_summary for per-project workload analysis

Deciding what to do:
- task_suggest recommends the next tasks to work on and explains why
- task_ready lists tasks that are unblocked right now
- task_blocked and task_dependencies explain what is waiting on what
- task_triage finds stale and unorganized tasks worth cleaning up
- task_context gathers everything about one task in a single call

Writing:
- task_add, task_modify, task_complete, task_delete
- task_start and task_stop track what is actively being worked on
- task_annotate attaches progress notes
- task_undo reverts the most recent change if something went wrong

Prefer 'concise' format when scanning many tasks to keep responses small;
use 'markdown' when presenting tasks to the user and 'json' only when you
need exact field values.`
}
