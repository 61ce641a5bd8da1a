package main

import (
	"go.uber.org/fx"

	"moodboard/internal/app"
)

func main() {
	// Run blocks until SIGINT/SIGTERM and then stops the lifecycle hooks in
	// reverse order: HTTP server and database, then the RabbitMQ client.
	fx.New(app.Module).Run()
}
