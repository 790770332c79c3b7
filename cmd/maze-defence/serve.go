package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Mikko-Finell/maze-defence/internal/liveserver"
)

var flagServeAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the simulation with a websocket spectator feed",
	Long: `Starts the driver loop in the background and serves a websocket
endpoint spectators can connect to for a read-only state feed, grounded on
n0remac-Light-Speed-Duel's upgrade-then-ticker-push connection shape.

Examples:
  maze-defence serve --addr :8080
  maze-defence serve --addr :8080 --seed 7`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagServeAddr, "addr", ":8080", "HTTP address to listen on")
}

func runServe(cmd *cobra.Command, args []string) {
	t := loadTuning()
	d := newDriver(t)

	stop := make(chan struct{})
	go func() {
		ticker := time.NewTicker(time.Duration(flagTickMs) * time.Millisecond)
		defer ticker.Stop()
		for range ticker.C {
			d.Pump(flagTickMs)
		}
	}()

	srv := liveserver.New(d.World, 10)
	go srv.Run(stop)

	http.Handle("/ws", srv)
	fmt.Printf("serving spectator feed on %s/ws\n", flagServeAddr)
	if err := http.ListenAndServe(flagServeAddr, nil); err != nil {
		close(stop)
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}
