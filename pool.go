package capsim

import (
	"sync"

	"github.com/capsim-dev/capsim/query"
	"github.com/go-gl/mathgl/mgl32"
)

var ctxPool = sync.Pool{
	New: func() any {
		return &resolveContext{}
	},
}

func newCtx(s *Solver, pos, desiredVel mgl32.Vec3, dt float32, exclude query.Ref) *resolveContext {
	ctx := ctxPool.Get().(*resolveContext)
	ctx.solver = s
	ctx.startPos = pos
	ctx.pos = pos
	ctx.desiredVel = desiredVel
	ctx.dt = dt
	ctx.exclude = exclude
	return ctx
}

func putCtx(ctx *resolveContext) {
	ctx.reset()
	ctxPool.Put(ctx)
}

func (ctx *resolveContext) reset() {
	ctx.solver = nil
	ctx.startPos = mgl32.Vec3{}
	ctx.pos = mgl32.Vec3{}
	ctx.desiredVel = mgl32.Vec3{}
	ctx.dt = 0
	ctx.exclude = query.NoRef
	ctx.horizontalIntent = mgl32.Vec3{}
	ctx.onGround = false
	ctx.groundNormal = mgl32.Vec3{}
	ctx.hitWall = false
	ctx.wallNormal = mgl32.Vec3{}
	ctx.hitCeiling = false
	ctx.landed = false
	ctx.stepped = false
	ctx.err = nil
}
