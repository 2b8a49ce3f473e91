package cli

import (
	"log/slog"

	"github.com/felixgeelhaar/rolodex/internal/directory/domain"
)

// App holds the CLI application dependencies.
type App struct {
	Directory          *domain.Directory
	Prompt             string
	BirthdayWindowDays int
}

var app *App

// SetApp sets the application container used by the commands.
func SetApp(a *App) {
	app = a
}

// GetApp returns the application container.
func GetApp() *App {
	return app
}

// SetLogger sets the logger used by the commands.
func SetLogger(l *slog.Logger) {
	logger = l
}
