package integrator

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// ShadowRayLevel is the reflection level given to every shadow probe. It is
// non-zero so the primary-ray hit bias never applies to occlusion tests.
const ShadowRayLevel = 1

// PhongIntegrator implements Whitted-style ray tracing with Blinn-Phong
// local illumination and mirror reflection.
type PhongIntegrator struct {
	config Config
}

// NewPhongIntegrator creates a new Blinn-Phong integrator
func NewPhongIntegrator(config Config) *PhongIntegrator {
	return &PhongIntegrator{
		config: config,
	}
}

// RayColor returns the color for a ray. Recursion ends once the ray's
// reflection level reaches MaxDepth.
func (pi *PhongIntegrator) RayColor(ray core.Ray, sc *scene.Scene) mgl64.Vec4 {
	if ray.ReflectionLevel >= pi.config.MaxDepth {
		return core.Black
	}

	hit := geometry.NearestIntersection(ray, sc.Spheres)
	if !hit.Hit() {
		// Escaped reflections see no environment
		if ray.IsPrimary() {
			return sc.Background
		}
		return core.Black
	}

	sphere := sc.Spheres[hit.SphereIndex]
	color := core.MultiplyVec(sphere.Color, sc.Ambient).Mul(sphere.Ka)

	diffuse, specular := pi.directLighting(ray, hit, sphere, sc)
	color = color.Add(diffuse.Mul(sphere.Kd)).Add(specular.Mul(sphere.Ks))

	if sphere.Kr != 0 {
		reflected := pi.RayColor(reflectRay(ray, hit), sc)
		color = color.Add(reflected.Mul(sphere.Kr))
	}

	color[3] = 1
	return color
}

// directLighting sums the unshadowed diffuse and specular terms over all lights
func (pi *PhongIntegrator) directLighting(ray core.Ray, hit geometry.Intersection, sphere *geometry.Sphere, sc *scene.Scene) (diffuse, specular mgl64.Vec4) {
	for _, light := range sc.Lights {
		lightDir := light.DirectionFrom(hit.Point)

		cosine := hit.Normal.Dot(lightDir)
		if cosine <= 0 {
			continue
		}

		shadowRay := core.NewRay(hit.Point, lightDir, ShadowRayLevel)
		if geometry.NearestIntersection(shadowRay, sc.Spheres).Hit() {
			continue
		}

		diffuse = diffuse.Add(core.MultiplyVec(light.Color, sphere.Color).Mul(cosine))

		// The ray direction is used as cast, without normalizing
		halfVector := core.AsDirection(lightDir.Sub(ray.Direction))
		intensity := hit.Normal.Dot(halfVector)
		if intensity > 0 {
			term := math.Pow(math.Pow(intensity, sphere.SpecularExponent), 3)
			specular = specular.Add(light.Color.Mul(term))
		}
	}

	return diffuse, specular
}

// reflectRay mirrors the incoming ray about the hit normal, one level deeper
func reflectRay(ray core.Ray, hit geometry.Intersection) core.Ray {
	d := ray.Direction
	n := hit.Normal
	dir := core.AsDirection(d.Sub(n.Mul(2 * n.Dot(d))))
	return core.NewRay(hit.Point, dir, ray.ReflectionLevel+1)
}
