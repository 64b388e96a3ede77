package protocol

import (
	"fmt"

	"github.com/automoto/doomerang-actions/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
)

// Sync ID constants - ID 1 is reserved by necs for NetworkId
const (
	SyncIDNetPosition    uint = 10
	SyncIDNetActionState uint = 12
)

// Interpolation IDs (uint8 for WithInterpFn)
const (
	InterpIDNetPosition uint8 = 10
)

// RegisterComponents registers all network components with necs for serialization.
// This must be called by both server and client before any network operations.
func RegisterComponents() error {
	if err := esync.RegisterComponent(
		SyncIDNetPosition,
		netcomponents.NetPositionData{},
		netcomponents.NetPosition,
		esync.WithInterpFn(InterpIDNetPosition, netcomponents.LerpNetPosition),
	); err != nil {
		return fmt.Errorf("register net position: %w", err)
	}

	// Action state changes are discrete, so no interpolation.
	if err := esync.RegisterComponent(
		SyncIDNetActionState,
		netcomponents.NetActionStateData{},
		netcomponents.NetActionState,
	); err != nil {
		return fmt.Errorf("register net action state: %w", err)
	}

	return nil
}
