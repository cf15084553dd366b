// Package cli implements the interactive terminal client for notekeeper.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/fatih/color"

	"notekeeper/internal/client/config"
	"notekeeper/internal/client/service"
)

// printSuccess and printError render user feedback. They are variables so
// tests can capture output.
var (
	printSuccess = color.New(color.FgGreen).PrintlnFunc()
	printError   = color.New(color.FgRed).PrintlnFunc()
)

// App wires the interactive command loop to the backend client.
type App struct {
	config  *config.Config
	service *service.Service
	reader  *bufio.Reader
}

// NewApp constructs an App from configuration.
func NewApp(c *config.Config) *App {
	return &App{
		config:  c,
		service: service.NewService(c.ServerEndpointAddr),
		reader:  bufio.NewReader(os.Stdin),
	}
}

func (a *App) isLoggedIn() bool {
	return a.service.Session.Token != ""
}

// Run starts the interactive loop and blocks until the user exits or ctx is
// cancelled.
func (a *App) Run(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

// status renders the prompt segment showing who is logged in.
func (a *App) status() string {
	if a.isLoggedIn() {
		return a.service.Session.UserID
	}
	return "guest"
}

// Logout forgets the in-memory session.
func (a *App) Logout(ctx context.Context) error {
	a.service.Session = service.Session{}
	printSuccess("Logged out")
	return nil
}
