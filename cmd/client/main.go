// A scripted feeder that plays a full game against the ingestion server,
// useful for exercising the overlay end to end.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/CABMadeira/bodet-scoreboard/pkg/protocol"
)

func gameProgression() []protocol.GameSnapshot {
	return []protocol.GameSnapshot{
		protocol.PreGame(),
		{HomeScore: 12, AwayScore: 8, Period: 1, TimeMinutes: 8, TimeSeconds: 30, HomeFouls: 1, AwayFouls: 2, HomeTimeouts: 7, AwayTimeouts: 7, Possession: protocol.PossessionHome, GameState: protocol.GameStateRunning},
		{HomeScore: 28, AwayScore: 24, Period: 2, TimeMinutes: 6, TimeSeconds: 15, HomeFouls: 3, AwayFouls: 2, HomeTimeouts: 6, AwayTimeouts: 7, Possession: protocol.PossessionAway, GameState: protocol.GameStateRunning},
		{HomeScore: 45, AwayScore: 42, Period: 2, HomeFouls: 5, AwayFouls: 4, HomeTimeouts: 5, AwayTimeouts: 6, Possession: protocol.PossessionNone, GameState: protocol.GameStateHalftime},
		{HomeScore: 80, AwayScore: 74, Period: 4, TimeMinutes: 2, TimeSeconds: 30, HomeFouls: 4, AwayFouls: 5, HomeTimeouts: 3, AwayTimeouts: 2, Possession: protocol.PossessionHome, GameState: protocol.GameStateRunning},
		{HomeScore: 95, AwayScore: 95, Period: 4, HomeFouls: 6, AwayFouls: 6, HomeTimeouts: 1, Possession: protocol.PossessionNone, GameState: protocol.GameStateOvertime},
		{HomeScore: 105, AwayScore: 102, Period: 5, TimeMinutes: 3, TimeSeconds: 45, HomeFouls: 7, AwayFouls: 6, HomeTimeouts: 1, Possession: protocol.PossessionAway, GameState: protocol.GameStateRunning},
		{HomeScore: 110, AwayScore: 108, Period: 5, HomeFouls: 8, AwayFouls: 7, Possession: protocol.PossessionNone, GameState: protocol.GameStateFinal},
	}
}

func main() {
	addr := flag.String("addr", "127.0.0.1:8888", "Address of the ingestion server")
	interval := flag.Duration("interval", 2*time.Second, "Delay between updates")
	flag.Parse()

	conn, err := net.Dial("tcp", *addr)
	if err != nil {
		fmt.Println("Error connecting to TCP server:", err)
		os.Exit(1)
	}
	defer conn.Close()

	reader := bufio.NewReader(conn)

	updates := gameProgression()
	for i, snapshot := range updates {
		fmt.Printf("Sending update #%d: %s\n", i+1, snapshot)

		if _, err := conn.Write(protocol.Encode(snapshot)); err != nil {
			fmt.Println("Error sending update:", err)
			os.Exit(1)
		}

		reply, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println("Error reading server reply:", err)
			os.Exit(1)
		}
		fmt.Printf("Server: %s\n", reply[:len(reply)-1])

		if i < len(updates)-1 {
			time.Sleep(*interval)
		}
	}

	fmt.Println("All updates sent.")
}
