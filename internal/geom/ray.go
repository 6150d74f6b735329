package geom

import "math"

// small distances below this are treated as zero to avoid self-intersection
// artifacts when a ray starts on a surface
const epsDist = 1e-9

// Ray is a half-line starting at Origin and extending along Dir.
// Dir is expected to be a unit vector; IntersectSphere normalizes its
// results against that assumption.
type Ray struct {
	Origin Vec3
	Dir    Vec3
}

// NewRay builds a ray from an origin and a (not necessarily unit) direction.
func NewRay(origin, dir Vec3) Ray {
	return Ray{Origin: origin, Dir: dir.Normalize()}
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Dir.Scale(t))
}

// IntersectSphere returns the smallest positive ray parameter at which the
// ray hits the sphere with the given center and radius. The second return
// value is false when the ray misses entirely or the sphere lies behind the
// origin.
func (r Ray) IntersectSphere(center Vec3, radius float64) (float64, bool) {
	oc := r.Origin.Sub(center)
	b := oc.Dot(r.Dir)
	c := oc.Dot(oc) - radius*radius

	disc := b*b - c
	if disc < 0 {
		return 0, false
	}

	sqrtDisc := math.Sqrt(disc)
	t := -b - sqrtDisc
	if t < epsDist {
		// origin inside the sphere, or surface grazing behind us
		t = -b + sqrtDisc
	}
	if t < epsDist {
		return 0, false
	}
	return t, true
}
