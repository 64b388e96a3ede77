package messages

// PlayerInput is sent from client to server each frame with the player's
// control state. The server keeps the latest one per client and applies it
// at the start of the next tick.
type PlayerInput struct {
	Sequence uint32 // Incrementing ID for reconciliation

	Primary bool // primary button is down

	MoveX, MoveY float64 // Desired movement, clamped to unit length by the server

	AimX, AimY float64
	HasAim     bool

	Combo string // Combo to start when primary is pressed while idle (empty = server default)

	Timestamp int64 // Client timestamp (Unix ms)
}
