// Command client connects to an action server and drives one combatant,
// circling and pressing primary at a fixed interval.
package main

import (
	"flag"
	"log"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/doomerang-actions/network"
	"github.com/automoto/doomerang-actions/shared/messages"
	"github.com/automoto/doomerang-actions/shared/protocol"
)

func main() {
	address := flag.String("addr", "localhost:7373", "Server address")
	combo := flag.String("combo", "", "Combo to use (empty = server default)")
	rate := flag.Int("rate", 30, "Inputs sent per second")
	pressEvery := flag.Duration("press-every", 400*time.Millisecond, "Interval between primary presses")
	duration := flag.Duration("duration", 0, "Stop after this long (0 = run until interrupted)")
	flag.Parse()

	if *rate <= 0 {
		log.Fatalf("Input rate must be positive, got %d", *rate)
	}

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register components: %v", err)
	}

	client := network.NewClient()
	client.Connect(*address)
	defer client.Disconnect()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var deadline <-chan time.Time
	if *duration > 0 {
		deadline = time.After(*duration)
	}

	ticker := time.NewTicker(time.Second / time.Duration(*rate))
	defer ticker.Stop()
	stats := time.NewTicker(5 * time.Second)
	defer stats.Stop()

	start := time.Now()
	var lastPress time.Time
	for {
		select {
		case <-sigChan:
			log.Println("[client] interrupted")
			return
		case <-deadline:
			log.Printf("[client] done after %s, %d snapshots", *duration, client.Status().Snapshots)
			return
		case <-stats.C:
			status := client.Status()
			log.Printf("[client] state %s, %d snapshots, input %d", status.State, status.Snapshots, status.Sequence)
			if status.Err != nil {
				log.Fatalf("Client error: %v", status.Err)
			}
		case now := <-ticker.C:
			if client.Status().State != network.StateConnected {
				continue
			}
			angle := now.Sub(start).Seconds()
			input := messages.PlayerInput{
				MoveX:     math.Cos(angle),
				MoveY:     math.Sin(angle),
				Combo:     *combo,
				Timestamp: now.UnixMilli(),
			}
			if now.Sub(lastPress) >= *pressEvery {
				input.Primary = true
				lastPress = now
			}
			if err := client.SendInput(input); err != nil {
				log.Printf("[client] send: %v", err)
			}
		}
	}
}
