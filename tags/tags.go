package tags

import "github.com/yohamta/donburi"

var (
	Boss       = donburi.NewTag().SetName("Boss")
	Projectile = donburi.NewTag().SetName("Projectile")
	Session    = donburi.NewTag().SetName("Session")
)
