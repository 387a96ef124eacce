package capsim

import "github.com/capsim-dev/capsim/cerror"

// Config holds the solver tunables. It is validated once at construction and
// owned by the solver afterwards; the only supported mutations are the
// Solver.SetStepHeight and Solver.SetSlopeLimit setters.
type Config struct {
	// Height is the total capsule height, pole to pole.
	Height float32
	// Radius is the capsule radius. Height must exceed 2*Radius.
	Radius float32
	// StepHeight is the tallest obstacle the solver converts into a vertical
	// hop instead of a wall hit.
	StepHeight float32
	// SlopeLimit is the maximum walkable surface tilt in degrees from up.
	SlopeLimit float32
	// SkinWidth is the clearance margin kept between the capsule surface and
	// geometry to avoid floating-point penetration.
	SkinWidth float32
	// MaxBounces bounds the horizontal slide-and-bounce loop.
	MaxBounces int
}

// DefaultConfig returns tunables for a humanoid-sized actor.
func DefaultConfig() Config {
	return Config{
		Height:     DefaultHeight,
		Radius:     DefaultRadius,
		StepHeight: DefaultStepHeight,
		SlopeLimit: DefaultSlopeLimit,
		SkinWidth:  DefaultSkinWidth,
		MaxBounces: DefaultMaxBounces,
	}
}

// Validate returns a *cerror.ConfigError naming the first violated
// constraint, or nil if the config is usable.
func (conf Config) Validate() error {
	if conf.Radius <= 0 {
		return cerror.NewConfigError("radius", "must be positive")
	}
	if conf.Height <= 2*conf.Radius {
		return cerror.NewConfigError("height", "must exceed twice the radius")
	}
	if conf.StepHeight < 0 {
		return cerror.NewConfigError("step height", "must not be negative")
	}
	if conf.SlopeLimit < 0 || conf.SlopeLimit >= 90 {
		return cerror.NewConfigError("slope limit", "must be within [0, 90) degrees")
	}
	if conf.SkinWidth <= 0 {
		return cerror.NewConfigError("skin width", "must be positive")
	}
	if conf.SkinWidth >= conf.Radius*0.5 {
		return cerror.NewConfigError("skin width", "must be small relative to the radius")
	}
	if conf.MaxBounces < 1 {
		return cerror.NewConfigError("max bounces", "must be at least 1")
	}
	return nil
}
