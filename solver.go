// Package capsim resolves the motion of a capsule-shaped actor against world
// geometry. Given a desired velocity it computes a collision-corrected
// position and velocity plus grounded, wall and step-climb state, using only
// swept capsule casts and ray casts supplied by a query.Provider. It never
// owns the world, renders, or reads input.
package capsim

import (
	"github.com/capsim-dev/capsim/cerror"
	"github.com/capsim-dev/capsim/cmath"
	"github.com/capsim-dev/capsim/query"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
)

// Solver resolves capsule motion against a shape-query provider. A Solver is
// stateless across calls apart from its config; each Resolve is a pure
// transformation of (position, velocity, dt) into a Result. It reuses pooled
// scratch state internally and must therefore not be invoked recursively or
// from multiple goroutines without external locking.
type Solver struct {
	conf  Config
	src   query.Provider
	shape query.Capsule

	log *logrus.Logger
}

// New validates conf and returns a solver querying src. The logger may be nil
// to disable tracing; recoverable provider faults are reported on it at warn
// level, per-phase decisions at debug level.
func New(conf Config, src query.Provider, log *logrus.Logger) (*Solver, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, cerror.NewConfigError("provider", "must not be nil")
	}
	return &Solver{
		conf:  conf,
		src:   src,
		shape: query.Capsule{Height: conf.Height, Radius: conf.Radius},
		log:   log,
	}, nil
}

// Config returns a copy of the solver's current tunables.
func (s *Solver) Config() Config {
	return s.conf
}

// SetStepHeight replaces the step height, affecting subsequent calls only.
func (s *Solver) SetStepHeight(v float32) error {
	if v < 0 {
		return cerror.NewConfigError("step height", "must not be negative")
	}
	s.conf.StepHeight = v
	return nil
}

// SetSlopeLimit replaces the walkable slope limit in degrees, affecting
// subsequent calls only.
func (s *Solver) SetSlopeLimit(deg float32) error {
	if deg < 0 || deg >= 90 {
		return cerror.NewConfigError("slope limit", "must be within [0, 90) degrees")
	}
	s.conf.SlopeLimit = deg
	return nil
}

// Resolve computes the collision-corrected position and velocity for one
// step of dt seconds at the desired velocity. The exclude handle keeps the
// actor's own collider out of every query. Resolve must run between world
// steps, on the same tick the provider's geometry belongs to.
func (s *Solver) Resolve(pos, desiredVel mgl32.Vec3, dt float32, exclude query.Ref) Result {
	if dt <= 0 {
		s.debugf("no resolve: non-positive dt %v", dt)
		return Result{Position: pos, Velocity: desiredVel}
	}

	ctx := newCtx(s, pos, cmath.ZeroSnapVec3(desiredVel, velocitySnapEpsilon), dt, exclude)
	defer putCtx(ctx)

	s.debugf("BEGIN resolve pos=%v vel=%v dt=%v", pos, desiredVel, dt)
	ctx.moveHorizontal()
	if ctx.err == nil {
		ctx.moveVertical()
	}
	if ctx.err == nil {
		ctx.classifyGround()
	}
	if ctx.err == nil && ctx.hitWall {
		ctx.tryStepUp()
	}
	res := ctx.result()
	s.debugf("END resolve pos=%v vel=%v onGround=%v hitWall=%v stepped=%v err=%v",
		res.Position, res.Velocity, res.OnGround, res.HitWall, res.Stepped, res.Err)
	return res
}

func (s *Solver) debugf(format string, args ...any) {
	if s.log != nil {
		s.log.Debugf(format, args...)
	}
}

func (s *Solver) warnf(format string, args ...any) {
	if s.log != nil {
		s.log.Warnf(format, args...)
	}
}
