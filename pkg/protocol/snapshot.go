package protocol

import "fmt"

// Possession indicates which team has the ball.
type Possession uint8

const (
	PossessionNone Possession = 0
	PossessionHome Possession = 1
	PossessionAway Possession = 2
)

func (p Possession) String() string {
	switch p {
	case PossessionNone:
		return "None"
	case PossessionHome:
		return "Home"
	case PossessionAway:
		return "Away"
	default:
		return fmt.Sprintf("Possession(%d)", uint8(p))
	}
}

// GameState indicates the phase of the game.
type GameState uint8

const (
	GameStatePreGame  GameState = 0
	GameStateRunning  GameState = 1
	GameStatePaused   GameState = 2
	GameStateHalftime GameState = 3
	GameStateOvertime GameState = 4
	GameStateFinal    GameState = 5
)

func (g GameState) String() string {
	switch g {
	case GameStatePreGame:
		return "PreGame"
	case GameStateRunning:
		return "Running"
	case GameStatePaused:
		return "Paused"
	case GameStateHalftime:
		return "Halftime"
	case GameStateOvertime:
		return "Overtime"
	case GameStateFinal:
		return "Final"
	default:
		return fmt.Sprintf("GameState(%d)", uint8(g))
	}
}

// GameSnapshot is one decoded point-in-time game state. Snapshots are
// plain values; a newer frame supersedes the previous snapshot, it never
// mutates it.
type GameSnapshot struct {
	HomeScore    uint16
	AwayScore    uint16
	Period       uint8
	TimeMinutes  uint8
	TimeSeconds  uint8
	HomeFouls    uint8
	AwayFouls    uint8
	HomeTimeouts uint8
	AwayTimeouts uint8
	Possession   Possession
	GameState    GameState
}

// PreGame returns the snapshot scorepads show before tip-off.
func PreGame() GameSnapshot {
	return GameSnapshot{
		Period:       1,
		TimeMinutes:  12,
		HomeTimeouts: 7,
		AwayTimeouts: 7,
		Possession:   PossessionNone,
		GameState:    GameStatePreGame,
	}
}

// Clock formats the game clock as a zero-padded MM:SS string.
func (s GameSnapshot) Clock() string {
	return fmt.Sprintf("%02d:%02d", s.TimeMinutes, s.TimeSeconds)
}

// PeriodName returns a human-readable period label.
func (s GameSnapshot) PeriodName() string {
	switch {
	case s.Period >= 1 && s.Period <= 4:
		return [...]string{"1st Quarter", "2nd Quarter", "3rd Quarter", "4th Quarter"}[s.Period-1]
	case s.Period > 4:
		return fmt.Sprintf("OT%d", s.Period-4)
	default:
		return "Unknown"
	}
}

// IsOvertime reports whether the game is past the fourth period.
func (s GameSnapshot) IsOvertime() bool {
	return s.Period > 4
}

// IsFinished reports whether the game has ended.
func (s GameSnapshot) IsFinished() bool {
	return s.GameState == GameStateFinal
}

func (s GameSnapshot) String() string {
	return fmt.Sprintf("Home %d - %d Away, %s %s, possession %s, state %s",
		s.HomeScore, s.AwayScore, s.PeriodName(), s.Clock(), s.Possession, s.GameState)
}
