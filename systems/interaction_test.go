package systems

import (
	"testing"

	"github.com/automoto/stomp-mp/shared/netconfig"
	"github.com/automoto/stomp-mp/shared/ticktimer"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/require"
)

// Player feet directly above an entity at (5, 1).
var above = mgl64.Vec2{5, 1.5}

// Player standing to the right of an entity at (5, 1).
var beside = mgl64.Vec2{6, 1}

func TestGroundpoundFromAboveSpecialKillsWithCombo(t *testing.T) {
	ts := newTestSim(t)
	en := ts.spawnEnemy(t, netconfig.KindGoomba, mgl64.Vec2{5, 1})
	p := ts.spawnPlayer(t, above, netconfig.Mushroom)

	ps := p.State()
	ps.IsGroundpounding = true
	ps.IsOnGround = false
	ps.StarCombo = 2
	p.Body().Velocity = mgl64.Vec2{1, -8}
	require.True(t, p.HasGroundpoundHitbox())

	en.InteractWithPlayer(p)

	st := en.State()
	assert.True(t, st.IsDead)
	assert.True(t, st.WasSpecialKilled)
	assert.True(t, st.WasGroundpounded)
	assert.Equal(t, uint8(2), st.ComboCounter, "combo is the value before the increment")
	assert.True(t, st.FacingRight, "launched along the player's horizontal velocity")
	assert.Equal(t, 3, ps.StarCombo)
	assert.Len(t, ts.rewards.spawned, 1)
}

func TestGroundpoundHangTimeIsAStomp(t *testing.T) {
	ts := newTestSim(t)
	en := ts.spawnEnemy(t, netconfig.KindKoopa, mgl64.Vec2{5, 1})
	p := ts.spawnPlayer(t, above, netconfig.Mushroom)

	ps := p.State()
	ps.IsGroundpounding = true
	ps.GroundpoundStartTimer = ticktimer.FromSeconds(ts.Clock, 1)

	en.InteractWithPlayer(p)

	assert.True(t, en.IsDead())
	assert.False(t, en.State().WasGroundpounded)
	assert.False(t, p.Data().DoEntityBounce, "a ground-pounding player does not bounce")
	assert.Zero(t, ps.StarCombo)
}

func TestDrillKillsAndBounces(t *testing.T) {
	ts := newTestSim(t)
	en := ts.spawnEnemy(t, netconfig.KindGoomba, mgl64.Vec2{5, 1})
	p := ts.spawnPlayer(t, above, netconfig.PropellerMushroom)

	p.State().IsDrilling = true

	en.InteractWithPlayer(p)

	assert.True(t, en.IsDead())
	assert.False(t, en.State().WasSpecialKilled, "goombas flatten on a plain kill")
	assert.True(t, p.Data().DoEntityBounce)
	assert.Zero(t, p.State().StarCombo)
}

func TestStompFromAbove(t *testing.T) {
	ts := newTestSim(t)
	en := ts.spawnEnemy(t, netconfig.KindGoomba, mgl64.Vec2{5, 1})
	p := ts.spawnPlayer(t, above, netconfig.Mushroom)

	en.InteractWithPlayer(p)

	assert.True(t, en.IsDead())
	assert.True(t, p.Data().DoEntityBounce)
	assert.Equal(t, netconfig.Mushroom, p.State().State)
}

func TestMiniStompDoesNotKill(t *testing.T) {
	ts := newTestSim(t)
	en := ts.spawnEnemy(t, netconfig.KindGoomba, mgl64.Vec2{5, 1})
	p := ts.spawnPlayer(t, above, netconfig.MiniMushroom)

	en.InteractWithPlayer(p)

	assert.False(t, en.IsDead())
	assert.True(t, p.Data().DoEntityBounce)
}

func TestMiniGroundpoundKillsAndCancels(t *testing.T) {
	ts := newTestSim(t)
	en := ts.spawnEnemy(t, netconfig.KindGoomba, mgl64.Vec2{5, 1})
	p := ts.spawnPlayer(t, above, netconfig.MiniMushroom)
	p.State().IsGroundpounding = true

	en.InteractWithPlayer(p)

	assert.True(t, en.IsDead())
	assert.False(t, en.State().WasGroundpounded, "mini players never special-kill by ground-pound")
	assert.False(t, p.State().IsGroundpounding)
	assert.True(t, p.Data().DoEntityBounce)
}

func TestSideHitPowersDown(t *testing.T) {
	ts := newTestSim(t)
	en := ts.spawnEnemy(t, netconfig.KindGoomba, mgl64.Vec2{5, 1})
	p := ts.spawnPlayer(t, beside, netconfig.FireFlower)

	en.InteractWithPlayer(p)

	assert.False(t, en.IsDead())
	assert.True(t, en.State().FacingRight, "turns toward the player")
	assert.Equal(t, netconfig.Mushroom, p.State().State)
	assert.True(t, p.State().DamageInvincibilityTimer.IsActive(ts.Clock))

	// Invincible now, so a second hit does nothing.
	en.State().FacingRight = false
	en.InteractWithPlayer(p)
	assert.Equal(t, netconfig.Mushroom, p.State().State)
	assert.False(t, en.State().FacingRight)
}

func TestSideHitKillsSmallPlayer(t *testing.T) {
	ts := newTestSim(t)
	en := ts.spawnEnemy(t, netconfig.KindGoomba, mgl64.Vec2{5, 1})
	p := ts.spawnPlayer(t, beside, netconfig.NoPowerup)

	en.InteractWithPlayer(p)

	assert.True(t, p.State().IsDead)
	assert.True(t, p.State().PreRespawnTimer.IsRunning())
	assert.False(t, en.IsDead())
}

func TestCrouchedShellParries(t *testing.T) {
	ts := newTestSim(t)
	en := ts.spawnEnemy(t, netconfig.KindGoomba, mgl64.Vec2{5, 1})
	p := ts.spawnPlayer(t, beside, netconfig.BlueShell)

	p.State().IsCrouchedInShell = true
	p.Body().Velocity = mgl64.Vec2{-2, 0}
	en.State().FacingRight = true

	en.InteractWithPlayer(p)

	assert.False(t, en.IsDead())
	assert.False(t, en.State().FacingRight, "turns away from the player")
	assert.Zero(t, p.Body().Velocity.X())
	assert.Equal(t, netconfig.BlueShell, p.State().State)
}

func TestStarmanInstakillsFromTheSide(t *testing.T) {
	ts := newTestSim(t)
	en := ts.spawnEnemy(t, netconfig.KindKoopa, mgl64.Vec2{5, 1})
	p := ts.spawnPlayer(t, beside, netconfig.Mushroom)

	ps := p.State()
	ps.IsStarmanInvincible = true
	ps.StarCombo = 9
	p.Body().Velocity = mgl64.Vec2{-3, 0}

	en.InteractWithPlayer(p)

	st := en.State()
	assert.True(t, st.IsDead)
	assert.True(t, st.WasSpecialKilled)
	assert.False(t, st.FacingRight)
	assert.Equal(t, uint8(7), st.ComboCounter, "combo is clamped")
	assert.Equal(t, 10, ps.StarCombo)
}

func TestSpikedTopHurtsStomper(t *testing.T) {
	ts := newTestSim(t)
	en := ts.spawnEnemy(t, netconfig.KindSpiny, mgl64.Vec2{5, 1})
	p := ts.spawnPlayer(t, above, netconfig.Mushroom)

	en.InteractWithPlayer(p)

	assert.False(t, en.IsDead())
	assert.Equal(t, netconfig.NoPowerup, p.State().State)
	assert.False(t, p.Data().DoEntityBounce)
}

func TestSpikedTopStillDiesToGroundpound(t *testing.T) {
	ts := newTestSim(t)
	en := ts.spawnEnemy(t, netconfig.KindSpiny, mgl64.Vec2{5, 1})
	p := ts.spawnPlayer(t, above, netconfig.Mushroom)
	p.State().IsGroundpounding = true

	en.InteractWithPlayer(p)

	assert.True(t, en.IsDead())
	assert.True(t, en.State().WasGroundpounded)
}

func TestFireballKillsOnce(t *testing.T) {
	ts := newTestSim(t)
	en := ts.spawnEnemy(t, netconfig.KindGoomba, mgl64.Vec2{5, 1})

	assert.True(t, en.InteractWithFireball(true))
	st := en.State()
	assert.True(t, st.IsDead)
	assert.True(t, st.WasSpecialKilled)
	assert.True(t, st.FacingRight)
	assert.Zero(t, st.ComboCounter)

	assert.False(t, en.InteractWithFireball(false), "dead entities do not consume fireballs")
	assert.Len(t, ts.rewards.spawned, 1)
}

func TestIceballFreezes(t *testing.T) {
	ts := newTestSim(t)
	en := ts.spawnEnemy(t, netconfig.KindGoomba, mgl64.Vec2{5, 1})

	assert.True(t, en.InteractWithIceball())
	assert.True(t, en.IsFrozen())
	assert.False(t, en.IsDead())

	assert.True(t, en.InteractWithIceball(), "a frozen entity still consumes iceballs")
	assert.True(t, en.IsFrozen())

	en.Kill()
	assert.False(t, en.InteractWithIceball())
}

func TestBlockBumpSpecialKills(t *testing.T) {
	ts := newTestSim(t)
	en := ts.spawnEnemy(t, netconfig.KindGoomba, mgl64.Vec2{5, 1})

	en.BlockBump()

	assert.True(t, en.IsDead())
	assert.True(t, en.State().WasSpecialKilled)
	assert.Zero(t, en.State().ComboCounter)
}

func TestCeilingHitBumpsBlockAndCountsIt(t *testing.T) {
	ts := newTestSim(t)
	en := ts.spawnEnemy(t, netconfig.KindGoomba, mgl64.Vec2{5, 3})
	p := ts.spawnPlayer(t, mgl64.Vec2{5, 1}, netconfig.Mushroom)
	ts.UpdateEntities(ts.ECS)

	// The tile spans x 4.5..5.5 and y 2..3; the goomba stands on top of it.
	body := p.Body()
	body.HitCeiling = true
	body.Ceiling = resolv.NewObject(4.5*32, 2*32, 32, 32)

	ts.UpdatePlayers(ts.ECS)

	assert.Equal(t, 1, p.State().BlockBumps)
	assert.True(t, en.IsDead(), "entities on the struck tile are bumped")
}
