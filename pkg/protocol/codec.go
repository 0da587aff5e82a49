package protocol

import "encoding/binary"

const (
	// FrameSize is the fixed length of one wire frame in bytes.
	FrameSize = 14
	// ProtocolID is the discriminator carried in byte 0 of every frame.
	// A single frame type exists today; the check leaves room for more
	// without touching this one's layout.
	ProtocolID = 0x01
)

// Decode parses one wire frame into a GameSnapshot.
//
// Frame layout:
//   - Byte 0: protocol id (0x01)
//   - Bytes 1-2: home score (little-endian u16)
//   - Bytes 3-4: away score (little-endian u16)
//   - Byte 5: period (1-4 regular, 5+ overtime, max 10)
//   - Byte 6: time minutes
//   - Byte 7: time seconds (0-59)
//   - Byte 8: home fouls
//   - Byte 9: away fouls
//   - Byte 10: home timeouts remaining
//   - Byte 11: away timeouts remaining
//   - Byte 12: possession (0=None, 1=Home, 2=Away)
//   - Byte 13: game state (0=PreGame, 1=Running, 2=Paused, 3=Halftime, 4=Overtime, 5=Final)
//
// Decoding is strict: the first invalid field aborts with a typed error and
// no partial snapshot is returned. Bytes beyond the 14th are ignored.
func Decode(data []byte) (GameSnapshot, error) {
	if len(data) < FrameSize {
		return GameSnapshot{}, &ErrInvalidLength{Length: len(data)}
	}

	if data[0] != ProtocolID {
		return GameSnapshot{}, &ErrInvalidProtocolID{ID: data[0]}
	}

	homeScore := binary.LittleEndian.Uint16(data[1:3])
	awayScore := binary.LittleEndian.Uint16(data[3:5])

	period := data[5]
	if period == 0 || period > 10 {
		return GameSnapshot{}, &ErrInvalidPeriod{Period: period}
	}

	timeMinutes := data[6]
	timeSeconds := data[7]
	if timeSeconds >= 60 {
		return GameSnapshot{}, &ErrInvalidTime{Minutes: timeMinutes, Seconds: timeSeconds}
	}

	// Fouls and timeouts are accepted as-is; the codec does not enforce
	// game rules beyond the documented range checks.
	homeFouls := data[8]
	awayFouls := data[9]
	homeTimeouts := data[10]
	awayTimeouts := data[11]

	var possession Possession
	switch data[12] {
	case 0:
		possession = PossessionNone
	case 1:
		possession = PossessionHome
	case 2:
		possession = PossessionAway
	default:
		return GameSnapshot{}, &ErrInvalidPossession{Value: data[12]}
	}

	var gameState GameState
	switch data[13] {
	case 0:
		gameState = GameStatePreGame
	case 1:
		gameState = GameStateRunning
	case 2:
		gameState = GameStatePaused
	case 3:
		gameState = GameStateHalftime
	case 4:
		gameState = GameStateOvertime
	case 5:
		gameState = GameStateFinal
	default:
		return GameSnapshot{}, &ErrInvalidGameState{Value: data[13]}
	}

	return GameSnapshot{
		HomeScore:    homeScore,
		AwayScore:    awayScore,
		Period:       period,
		TimeMinutes:  timeMinutes,
		TimeSeconds:  timeSeconds,
		HomeFouls:    homeFouls,
		AwayFouls:    awayFouls,
		HomeTimeouts: homeTimeouts,
		AwayTimeouts: awayTimeouts,
		Possession:   possession,
		GameState:    gameState,
	}, nil
}

// Encode serializes a snapshot into one wire frame. Every snapshot holding
// the documented invariants is encodable, so Encode never fails, and
// Decode(Encode(s)) == s.
func Encode(s GameSnapshot) []byte {
	frame := make([]byte, FrameSize)

	frame[0] = ProtocolID
	binary.LittleEndian.PutUint16(frame[1:3], s.HomeScore)
	binary.LittleEndian.PutUint16(frame[3:5], s.AwayScore)
	frame[5] = s.Period
	frame[6] = s.TimeMinutes
	frame[7] = s.TimeSeconds
	frame[8] = s.HomeFouls
	frame[9] = s.AwayFouls
	frame[10] = s.HomeTimeouts
	frame[11] = s.AwayTimeouts
	frame[12] = byte(s.Possession)
	frame[13] = byte(s.GameState)

	return frame
}
