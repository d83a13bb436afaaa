package loaders

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

var (
	ErrUnknownDirective = errors.New("unknown directive")
	ErrArity            = errors.New("wrong number of arguments")
	ErrBadNumber        = errors.New("invalid number")
	ErrBadResolution    = errors.New("resolution out of range")
	ErrBadScale         = errors.New("sphere scale must be positive")
	ErrNoResolution     = errors.New("scene has no RES line")
)

// MaxResolution bounds each RES dimension
const MaxResolution = 16384

// directive describes one keyword of the scene format
type directive struct {
	args  int
	apply func(p *sceneParser, fields []string) error
}

var directives = map[string]directive{
	"NEAR":    {1, func(p *sceneParser, f []string) error { return p.float(f[0], &p.scene.ViewPlane.Near) }},
	"LEFT":    {1, func(p *sceneParser, f []string) error { return p.float(f[0], &p.scene.ViewPlane.Left) }},
	"RIGHT":   {1, func(p *sceneParser, f []string) error { return p.float(f[0], &p.scene.ViewPlane.Right) }},
	"TOP":     {1, func(p *sceneParser, f []string) error { return p.float(f[0], &p.scene.ViewPlane.Top) }},
	"BOTTOM":  {1, func(p *sceneParser, f []string) error { return p.float(f[0], &p.scene.ViewPlane.Bottom) }},
	"RES":     {2, (*sceneParser).parseResolution},
	"SPHERE":  {15, (*sceneParser).parseSphere},
	"LIGHT":   {7, (*sceneParser).parseLight},
	"BACK":    {3, func(p *sceneParser, f []string) error { return p.color(f, &p.scene.Background) }},
	"AMBIENT": {3, func(p *sceneParser, f []string) error { return p.color(f, &p.scene.Ambient) }},
	"OUTPUT":  {1, func(p *sceneParser, f []string) error { p.scene.Output = f[0]; return nil }},
}

// sceneParser holds the state of a single ParseScene call
type sceneParser struct {
	scene  *scene.Scene
	logger core.Logger
	hasRes bool
}

// ParseScene parses a scene description from an io.Reader. Spheres and
// lights beyond the scene capacity are dropped and reported to the logger,
// which may be nil.
func ParseScene(reader io.Reader, logger core.Logger) (*scene.Scene, error) {
	parser := &sceneParser{
		scene:  scene.NewScene(),
		logger: logger,
	}

	scanner := bufio.NewScanner(reader)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		if err := parser.processLine(scanner.Text()); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNumber, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}

	if !parser.hasRes {
		return nil, ErrNoResolution
	}

	return parser.scene, nil
}

// LoadScene loads and parses a scene file
func LoadScene(filename string, logger core.Logger) (*scene.Scene, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	sc, err := ParseScene(file, logger)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return sc, nil
}

// processLine processes a single line of scene input
func (p *sceneParser) processLine(line string) error {
	fields := strings.Fields(line)

	// Skip empty lines and comments
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}

	d, ok := directives[fields[0]]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownDirective, fields[0])
	}
	if len(fields)-1 != d.args {
		return fmt.Errorf("%s: %w: expected %d, got %d", fields[0], ErrArity, d.args, len(fields)-1)
	}
	return d.apply(p, fields[1:])
}

func (p *sceneParser) parseResolution(fields []string) error {
	var w, h float64
	if err := p.float(fields[0], &w); err != nil {
		return err
	}
	if err := p.float(fields[1], &h); err != nil {
		return err
	}
	// NaN fails every comparison, so it is rejected here
	if !(w >= 1 && w <= MaxResolution && h >= 1 && h <= MaxResolution) {
		return fmt.Errorf("%w: %sx%s", ErrBadResolution, fields[0], fields[1])
	}
	p.scene.Width = int(w)
	p.scene.Height = int(h)
	p.hasRes = true
	return nil
}

// parseSphere reads: id px py pz sx sy sz r g b Ka Kd Ks Kr n
func (p *sceneParser) parseSphere(fields []string) error {
	values, err := p.floats(fields[1:])
	if err != nil {
		return err
	}

	scale := mgl64.Vec3{values[3], values[4], values[5]}
	if scale.X() <= 0 || scale.Y() <= 0 || scale.Z() <= 0 {
		return fmt.Errorf("sphere %s: %w", fields[0], ErrBadScale)
	}

	sphere := geometry.NewSphere(fields[0], core.NewPoint(values[0], values[1], values[2]), scale, geometry.Material{
		Color:            core.NewColor(values[6], values[7], values[8]),
		Ka:               values[9],
		Kd:               values[10],
		Ks:               values[11],
		Kr:               values[12],
		SpecularExponent: values[13],
	})
	if !p.scene.AddSphere(sphere) {
		p.logf("Dropping sphere %s: scene already has %d spheres\n", fields[0], scene.MaxSpheres)
	}
	return nil
}

// parseLight reads: id px py pz r g b
func (p *sceneParser) parseLight(fields []string) error {
	values, err := p.floats(fields[1:])
	if err != nil {
		return err
	}

	light := lights.NewPointLight(fields[0],
		core.NewPoint(values[0], values[1], values[2]),
		core.NewColor(values[3], values[4], values[5]))
	if !p.scene.AddLight(light) {
		p.logf("Dropping light %s: scene already has %d lights\n", fields[0], scene.MaxLights)
	}
	return nil
}

func (p *sceneParser) color(fields []string, dst *mgl64.Vec4) error {
	values, err := p.floats(fields)
	if err != nil {
		return err
	}
	*dst = core.NewColor(values[0], values[1], values[2])
	return nil
}

func (p *sceneParser) floats(fields []string) ([]float64, error) {
	values := make([]float64, len(fields))
	for i, field := range fields {
		if err := p.float(field, &values[i]); err != nil {
			return nil, err
		}
	}
	return values, nil
}

func (p *sceneParser) float(field string, dst *float64) error {
	value, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrBadNumber, field)
	}
	*dst = value
	return nil
}

func (p *sceneParser) logf(format string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Printf(format, args...)
	}
}
