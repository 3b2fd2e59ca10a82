package components

import "github.com/yohamta/donburi"

type CollectibleData struct {
	ID        int
	Collected bool
}

var Collectible = donburi.NewComponentType[CollectibleData]()
