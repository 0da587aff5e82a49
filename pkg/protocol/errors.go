package protocol

import "fmt"

// ErrInvalidLength is returned when a frame is shorter than FrameSize.
type ErrInvalidLength struct {
	Length int
}

func (e *ErrInvalidLength) Error() string {
	return fmt.Sprintf("invalid data length: %d", e.Length)
}

// ErrInvalidProtocolID is returned when the discriminator byte is not ProtocolID.
type ErrInvalidProtocolID struct {
	ID byte
}

func (e *ErrInvalidProtocolID) Error() string {
	return fmt.Sprintf("invalid protocol id: 0x%02X", e.ID)
}

// ErrInvalidPeriod is returned when the period byte is outside [1,10].
type ErrInvalidPeriod struct {
	Period byte
}

func (e *ErrInvalidPeriod) Error() string {
	return fmt.Sprintf("invalid period: %d", e.Period)
}

// ErrInvalidTime is returned when the seconds byte is 60 or more.
type ErrInvalidTime struct {
	Minutes byte
	Seconds byte
}

func (e *ErrInvalidTime) Error() string {
	return fmt.Sprintf("invalid time: %d:%02d", e.Minutes, e.Seconds)
}

// ErrInvalidPossession is returned when the possession byte has no mapping.
type ErrInvalidPossession struct {
	Value byte
}

func (e *ErrInvalidPossession) Error() string {
	return fmt.Sprintf("invalid possession value: %d", e.Value)
}

// ErrInvalidGameState is returned when the game state byte has no mapping.
type ErrInvalidGameState struct {
	Value byte
}

func (e *ErrInvalidGameState) Error() string {
	return fmt.Sprintf("invalid game state value: %d", e.Value)
}
