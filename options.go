package dotfx

// EntityOption configures an Entity during creation.
//
// Example:
//
//	parent := dotfx.NewEntity(dotfx.Pt(0, 0), dotfx.WithInitRadius(dotfx.FixedRadius(20)))
//	child := dotfx.NewEntity(dotfx.Pt(10, 10),
//	    dotfx.WithParent(parent),
//	    dotfx.WithInitRadius(dotfx.DerivedRadius(func(p, _ *dotfx.Entity) (float64, bool) {
//	        return p.Radius() / 2, true
//	    })))
type EntityOption func(*entityOptions)

// entityOptions holds optional configuration for Entity creation.
type entityOptions struct {
	initRadius RadiusInit
	parent     *Entity
	anchor     Point
	surface    Surface
	color      ColorDecl
	hasColor   bool
}

// defaultEntityOptions returns the default entity options.
func defaultEntityOptions() entityOptions {
	return entityOptions{
		initRadius: FixedRadius(DefaultRadius),
	}
}

// WithInitRadius sets the initial radius declaration.
func WithInitRadius(ri RadiusInit) EntityOption {
	return func(o *entityOptions) {
		o.initRadius = ri
	}
}

// WithParent sets the parent passed to derived radius functions.
func WithParent(p *Entity) EntityOption {
	return func(o *entityOptions) {
		o.parent = p
	}
}

// WithAnchor sets the anchor position.
func WithAnchor(p Point) EntityOption {
	return func(o *entityOptions) {
		o.anchor = p
	}
}

// WithSurface sets the surface the entity lives on. It sizes PosDistances
// and is handed to ColorFunc declarations.
func WithSurface(s Surface) EntityOption {
	return func(o *entityOptions) {
		o.surface = s
	}
}

// WithColor attaches a color capability with the given initial color.
func WithColor(c ColorDecl) EntityOption {
	return func(o *entityOptions) {
		o.color = c
		o.hasColor = true
	}
}
