package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"taskapp/internal/client"
	"taskapp/internal/dashboard"
)

func main() {
	consoleWriter := zerolog.NewConsoleWriter()
	consoleWriter.TimeFormat = time.DateTime
	consoleWriter.Out = os.Stderr
	logger := zerolog.New(consoleWriter).With().Timestamp().Logger()

	cfg, err := dashboard.LoadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	api := client.New(cfg.APIBaseURL)
	app := dashboard.New(api, logger)
	app.SetSearchDebounce(cfg.SearchDebounce)
	app.SetAlertTTL(cfg.AlertTTL)

	ctx := context.Background()

	if cfg.Username != "" {
		if err := api.Login(ctx, cfg.Username, cfg.Password); err != nil {
			logger.Fatal().Err(err).Msg("login failed")
		}
		logger.Info().Str("username", cfg.Username).Msg("logged in")
	}

	app.ProbeHealth(ctx)
	if err := app.Refresh(ctx); err != nil {
		logger.Warn().Msg("initial load failed, use 'refresh' to retry")
	}

	render(app)

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "quit" || line == "exit" {
			break
		}
		if line != "" {
			runCommand(ctx, app, scanner, line)
			render(app)
		}
		fmt.Print("> ")
	}
}

func runCommand(ctx context.Context, app *dashboard.App, scanner *bufio.Scanner, line string) {
	cmd, rest, _ := strings.Cut(line, " ")
	switch cmd {
	case "add":
		_ = app.SubmitTask(ctx, dashboard.TaskForm{Title: rest})
	case "status":
		idStr, status, ok := strings.Cut(rest, " ")
		if !ok {
			fmt.Println("usage: status <id> <pending|in_progress|completed|cancelled>")
			return
		}
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			fmt.Println("invalid task id")
			return
		}
		_ = app.SetTaskStatus(ctx, id, status)
	case "rm":
		id, err := strconv.ParseInt(strings.TrimSpace(rest), 10, 64)
		if err != nil {
			fmt.Println("invalid task id")
			return
		}
		_ = app.RemoveTask(ctx, id, func() bool {
			fmt.Printf("delete task %d? [y/N] ", id)
			if !scanner.Scan() {
				return false
			}
			answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
			return answer == "y" || answer == "yes"
		})
	case "search":
		app.SetSearch(rest)
		// Filtering is debounced; give the timer a chance to fire before
		// the re-render.
		time.Sleep(350 * time.Millisecond)
	case "filter":
		kind, value, _ := strings.Cut(rest, " ")
		switch kind {
		case "status":
			app.SetStatusFilter(value)
		case "priority":
			app.SetPriorityFilter(value)
		default:
			fmt.Println("usage: filter status|priority <value>")
		}
	case "refresh":
		_ = app.Refresh(ctx)
	case "help":
		fmt.Println("commands: add <title> | status <id> <status> | rm <id> | search <term> | filter status|priority <value> | refresh | quit")
	default:
		fmt.Printf("unknown command %q, try 'help'\n", cmd)
	}
}

func render(app *dashboard.App) {
	snap := app.Snapshot()
	v := app.View()

	fmt.Printf("\n[%s] %s\n", snap.Badge.State, snap.Badge.Tooltip)
	if snap.Stats != nil {
		fmt.Printf("total %d | overdue %d\n", snap.Stats.TotalTasks, snap.Stats.OverdueCount)
	}
	fmt.Printf("pending %d | in progress %d | completed %d | cancelled %d\n",
		v.Counters.Pending, v.Counters.InProgress, v.Counters.Completed, v.Counters.Cancelled)

	if v.Empty {
		fmt.Println("\n  no tasks match the current filters")
	} else {
		fmt.Println()
		for _, card := range v.Cards {
			due := ""
			if card.DueDate != "" {
				due = " due " + card.DueDate
			}
			fmt.Printf("  #%d [%s/%s] %s (%s)%s\n",
				card.ID, card.Status, card.Priority, card.Title, card.Owner, due)
		}
	}

	for _, alert := range snap.Alerts {
		fmt.Printf("! %s: %s\n", alert.Level, alert.Message)
	}
	fmt.Println()
}
