package config

import (
	"errors"
	"fmt"
	"time"
)

// StageSpec is one step of a combo attack. Values are immutable once the
// owning ComboSpec has been validated.
type StageSpec struct {
	// 1-based position of the stage in the combo
	Stage uint32 `yaml:"stage"`

	BaseDamage     uint32 `yaml:"base_damage"`
	MaxDamage      uint32 `yaml:"max_damage"`
	DamageIncrease uint32 `yaml:"damage_increase"` // added per completed cycle through all stages

	Knockback float32 `yaml:"knockback"`
	Range     float32 `yaml:"range"`
	Angle     float32 `yaml:"angle"` // degrees

	BuildupDuration time.Duration `yaml:"buildup_duration"`
	RecoverDuration time.Duration `yaml:"recover_duration"`
}

// ComboSpec is the static stage table of one combo action kind together with
// its energy economy. A validated spec is shared by pointer between every
// entity performing that combo.
type ComboSpec struct {
	Name      string      `yaml:"name"`
	NumStages uint32      `yaml:"num_stages"`
	Stages    []StageSpec `yaml:"stages"`

	InitialEnergyGain uint32 `yaml:"initial_energy_gain"`
	MaxEnergyGain     uint32 `yaml:"max_energy_gain"`
	EnergyIncrease    uint32 `yaml:"energy_increase"`

	// Width of the window after recovery in which primary chains to the next stage
	ComboDuration time.Duration `yaml:"combo_duration"`
}

// StageAt returns the stage with the given 1-based index, or nil when the
// index is outside 1..NumStages.
func (c *ComboSpec) StageAt(index uint32) *StageSpec {
	if c == nil || index < 1 || int(index) > len(c.Stages) {
		return nil
	}
	return &c.Stages[index-1]
}

// ConfigurationError reports an invalid combo table. It is a load-time
// condition; a validated table never produces runtime errors.
type ConfigurationError struct {
	Combo string
	Err   error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("combo %q: invalid configuration: %v", e.Combo, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Validate checks every table invariant and reports all problems at once.
func (c *ComboSpec) Validate() error {
	if c == nil {
		return &ConfigurationError{Err: errors.New("nil combo spec")}
	}

	var problems []error
	if c.Name == "" {
		problems = append(problems, errors.New("missing name"))
	}
	if c.NumStages < 1 {
		problems = append(problems, fmt.Errorf("num_stages must be at least 1, got %d", c.NumStages))
	}
	if int(c.NumStages) != len(c.Stages) {
		problems = append(problems, fmt.Errorf("num_stages is %d but %d stages are listed", c.NumStages, len(c.Stages)))
	}
	if c.ComboDuration < 0 {
		problems = append(problems, fmt.Errorf("combo_duration is negative (%s)", c.ComboDuration))
	}
	if c.InitialEnergyGain > c.MaxEnergyGain {
		problems = append(problems, fmt.Errorf("initial_energy_gain %d exceeds max_energy_gain %d", c.InitialEnergyGain, c.MaxEnergyGain))
	}

	for i, s := range c.Stages {
		want := uint32(i + 1)
		if s.Stage != want {
			problems = append(problems, fmt.Errorf("stage %d: index is %d, want %d", want, s.Stage, want))
		}
		if s.BaseDamage > s.MaxDamage {
			problems = append(problems, fmt.Errorf("stage %d: base_damage %d exceeds max_damage %d", want, s.BaseDamage, s.MaxDamage))
		}
		if s.BuildupDuration < 0 {
			problems = append(problems, fmt.Errorf("stage %d: buildup_duration is negative (%s)", want, s.BuildupDuration))
		}
		if s.RecoverDuration < 0 {
			problems = append(problems, fmt.Errorf("stage %d: recover_duration is negative (%s)", want, s.RecoverDuration))
		}
		if s.Range < 0 {
			problems = append(problems, fmt.Errorf("stage %d: range is negative (%g)", want, s.Range))
		}
		if s.Angle < 0 || s.Angle > 360 {
			problems = append(problems, fmt.Errorf("stage %d: angle %g outside [0, 360]", want, s.Angle))
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return &ConfigurationError{Combo: c.Name, Err: errors.Join(problems...)}
}
