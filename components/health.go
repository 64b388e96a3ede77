package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int32
	Max     int32
}

var Health = donburi.NewComponentType[HealthData]()
