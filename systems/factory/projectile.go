package factory

import (
	"github.com/automoto/stomp-mp/archetypes"
	"github.com/automoto/stomp-mp/components"
	"github.com/automoto/stomp-mp/shared/netcomponents"
	"github.com/automoto/stomp-mp/shared/ticktimer"
	"github.com/automoto/stomp-mp/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// FireballSpec describes a thrown fireball or iceball.
type FireballSpec struct {
	Owner       donburi.Entity
	Position    mgl64.Vec2 // feet centre
	FacingRight bool
	IsIceball   bool
	Speed       float64
	Size        float64
	Gravity     float64
	Lifetime    ticktimer.Timer
}

func CreateFireball(ecs *ecs.ECS, spec FireballSpec) *donburi.Entry {
	fireball := archetypes.Projectile.Spawn(ecs)

	obj := components.NewBodyObject(spec.Position, mgl64.Vec2{spec.Size, spec.Size}, tags.ResolvProjectile)
	obj.Data = fireball
	components.Object.SetValue(fireball, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	dir := -1.0
	if spec.FacingRight {
		dir = 1
	}
	components.Projectile.SetValue(fireball, components.ProjectileData{
		Owner:    spec.Owner,
		Lifetime: spec.Lifetime,
	})
	components.Body.SetValue(fireball, components.BodyData{
		Velocity: mgl64.Vec2{spec.Speed * dir, 0},
		Gravity:  mgl64.Vec2{0, -spec.Gravity},
	})
	netcomponents.NetProjectile.SetValue(fireball, netcomponents.NetProjectileData{
		IsIceball:   spec.IsIceball,
		FacingRight: spec.FacingRight,
	})
	netcomponents.NetPosition.SetValue(fireball, netcomponents.NetPositionData{X: spec.Position.X(), Y: spec.Position.Y()})

	return fireball
}
