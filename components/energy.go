package components

import "github.com/yohamta/donburi"

// EnergyData is the resource combo hits pay into.
type EnergyData struct {
	Current int32
	Max     int32
}

var Energy = donburi.NewComponentType[EnergyData]()
