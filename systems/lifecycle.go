package systems

import (
	"errors"
	"fmt"

	"github.com/automoto/doomerang-actions/action"
	"github.com/automoto/doomerang-actions/components"
	cfg "github.com/automoto/doomerang-actions/config"
	"github.com/automoto/doomerang-actions/mutation"
	"github.com/yohamta/donburi"
)

var (
	ErrNotCharacter = errors.New("entity has no character")
	ErrDefeated     = errors.New("entity is defeated")
	ErrBusy         = errors.New("entity is already performing an action")
)

// EnterComboMelee starts a fresh combo on an idle character.
func EnterComboMelee(e *donburi.Entry, spec *cfg.ComboSpec) error {
	if !e.Valid() || !e.HasComponent(components.Character) {
		return ErrNotCharacter
	}
	if e.HasComponent(components.Defeated) {
		return ErrDefeated
	}
	if err := spec.Validate(); err != nil {
		return fmt.Errorf("enter combo: %w", err)
	}

	character := components.Character.Get(e)
	if character.Kind() != action.KindWielding {
		return ErrBusy
	}
	character.State = action.NewComboMelee(spec)
	return nil
}

// Interrupt cancels whatever the character is doing and withdraws its
// attack marker. Calling it on an idle character, or with a withdraw
// already pending, is harmless.
func Interrupt(w donburi.World, e *donburi.Entry) {
	if !e.Valid() || !e.HasComponent(components.Character) {
		return
	}
	components.Character.Get(e).State = action.Wielding{}
	if sink := mutation.Get(w); sink != nil {
		sink.Push(e.Entity(), action.AttackWithdraw{})
	}
}
