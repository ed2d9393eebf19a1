// Command booking-reminders serves the scheduled function that collects
// confirmed bookings starting soon and hands them to the reminder dispatcher.
//
// A cron scheduler invokes it with GET or POST /. Exit codes: 0 = clean
// shutdown, 1 = startup or serve error.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/learnhub/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.RunReminders(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "booking-reminders: %v\n", err)
		os.Exit(1)
	}
}
