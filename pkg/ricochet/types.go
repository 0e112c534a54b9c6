package ricochet

// Point is an integer coordinate pair.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// BulletRecord is a projectile spawn: where it starts and how fast it moves.
type BulletRecord struct {
	Start    Point `json:"start"`
	Velocity Point `json:"velocity"`
}

// WallRecord is a line segment between two points.
type WallRecord struct {
	Start Point `json:"start"`
	End   Point `json:"end"`
}

// Bullets is an ordered batch of bullet records.
type Bullets []BulletRecord

func (b Bullets) Len() int { return len(b) }

// Walls is an ordered batch of wall records.
type Walls []WallRecord

func (w Walls) Len() int { return len(w) }

// Range is a closed integer interval [Min, Max].
type Range struct {
	Min int
	Max int
}

// Contains reports whether v lies within the interval.
func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

var (
	BulletStartRange    = Range{Min: 300, Max: 400}
	BulletVelocityRange = Range{Min: -100, Max: 100}
	WallCoordRange      = Range{Min: 0, Max: 1000}
)

const (
	BulletCount = 10
	WallCount   = 10_000

	BulletsFile = "bullets.json"
	WallsFile   = "walls.json"
)

// DefaultWall is used when a walls fixture is missing or empty.
var DefaultWall = WallRecord{Start: Point{X: 10, Y: 100}, End: Point{X: 100, Y: 100}}

// InRange reports whether every coordinate of the bullet is inside its range.
func (b BulletRecord) InRange() bool {
	return BulletStartRange.Contains(b.Start.X) &&
		BulletStartRange.Contains(b.Start.Y) &&
		BulletVelocityRange.Contains(b.Velocity.X) &&
		BulletVelocityRange.Contains(b.Velocity.Y)
}

// InRange reports whether all four coordinates of the wall are inside WallCoordRange.
func (w WallRecord) InRange() bool {
	return WallCoordRange.Contains(w.Start.X) &&
		WallCoordRange.Contains(w.Start.Y) &&
		WallCoordRange.Contains(w.End.X) &&
		WallCoordRange.Contains(w.End.Y)
}
