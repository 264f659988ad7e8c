// Package job loads plot jobs: YAML files describing sampled runs, the
// units they were recorded in, and how to draw them.
//
//	title: Beam deflection
//	output: deflection.png
//	x: {label: position, unit: m}
//	y: {label: deflection, unit: m, prefix: m}
//	envelope: true
//	runs:
//	  - name: load case 1
//	    x: {unit: m, values: [0, 1, 2]}
//	    y: {unit: m, prefix: m, values: [0, 1.5, 0]}
//
// Units are looked up by key in a svt.UnitCollection, never parsed.
package job

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/gogpu/svt"
	"github.com/gogpu/svt/plot"
)

// Job is a decoded job file.
type Job struct {
	Title    string `yaml:"title"`
	Output   string `yaml:"output"`
	X        Axis   `yaml:"x"`
	Y        Axis   `yaml:"y"`
	Envelope bool   `yaml:"envelope"`
	Runs     []Run  `yaml:"runs"`
}

// Axis configures one figure axis. An empty Unit selects the unit of the
// first run.
type Axis struct {
	Label  string `yaml:"label"`
	Unit   string `yaml:"unit"`
	Prefix string `yaml:"prefix"`
}

// Run is one sampled curve.
type Run struct {
	Name string `yaml:"name"`
	X    Series `yaml:"x"`
	Y    Series `yaml:"y"`
}

// Series is a list of values recorded in one unit.
type Series struct {
	Unit   string    `yaml:"unit"`
	Prefix string    `yaml:"prefix"`
	Values []float64 `yaml:"values"`
}

// NamedCurve is a run converted to a curve.
type NamedCurve struct {
	Name  string
	Curve svt.Curve
}

// Load reads and decodes the job file at path.
func Load(path string) (*Job, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("job: read %s: %w", path, err)
	}
	j, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w (in %s)", err, path)
	}
	return j, nil
}

// Parse decodes a job document. Unknown fields are rejected.
func Parse(data []byte) (*Job, error) {
	var j Job
	if err := yaml.UnmarshalStrict(data, &j); err != nil {
		return nil, fmt.Errorf("job: decode: %w", err)
	}
	return &j, nil
}

// Validate checks the structure of the job. Unit keys are checked later,
// against a collection, by Axes and Curves.
func (j *Job) Validate() error {
	if len(j.Runs) == 0 {
		return fieldError("runs", ErrNoRuns)
	}
	if j.Envelope && len(j.Runs) < 2 {
		return fieldError("envelope", ErrTooFewRuns)
	}
	for i, r := range j.Runs {
		field := fmt.Sprintf("runs[%d]", i)
		if r.X.Unit == "" {
			return fieldError(field+".x.unit", ErrEmptyField)
		}
		if r.Y.Unit == "" {
			return fieldError(field+".y.unit", ErrEmptyField)
		}
		if len(r.X.Values) == 0 {
			return fieldError(field+".x.values", ErrEmptyField)
		}
		if len(r.X.Values) != len(r.Y.Values) {
			return fieldError(field, fmt.Errorf("%w: %d and %d", ErrLengthMismatch, len(r.X.Values), len(r.Y.Values)))
		}
	}
	return nil
}

// resolve looks key up in c and applies prefix to it.
func resolve(c *svt.UnitCollection, field, key, prefix string) (svt.Measure, error) {
	m, err := c.Get(key)
	if err != nil {
		return nil, fieldError(field+".unit", err)
	}
	if prefix == "" {
		return m, nil
	}
	u, ok := m.(svt.Unit)
	if !ok {
		return nil, fieldError(field+".prefix", fmt.Errorf("%q takes no prefix: %w", key, svt.ErrUnsupportedConversion))
	}
	u, err = u.WithPrefix(prefix)
	if err != nil {
		return nil, fieldError(field+".prefix", err)
	}
	return u, nil
}

// Axes returns the figure axis measures.
func (j *Job) Axes(c *svt.UnitCollection) (x, y svt.Measure, err error) {
	if len(j.Runs) == 0 {
		return nil, nil, fieldError("runs", ErrNoRuns)
	}
	axis := func(name string, a Axis, s Series) (svt.Measure, error) {
		if a.Unit == "" {
			return resolve(c, "runs[0]."+name, s.Unit, s.Prefix)
		}
		return resolve(c, name, a.Unit, a.Prefix)
	}
	if x, err = axis("x", j.X, j.Runs[0].X); err != nil {
		return nil, nil, err
	}
	if y, err = axis("y", j.Y, j.Runs[0].Y); err != nil {
		return nil, nil, err
	}
	return x, y, nil
}

// Curves converts every run into a curve in the units it was recorded in.
func (j *Job) Curves(c *svt.UnitCollection) ([]NamedCurve, error) {
	out := make([]NamedCurve, 0, len(j.Runs))
	for i, r := range j.Runs {
		field := fmt.Sprintf("runs[%d]", i)
		xm, err := resolve(c, field+".x", r.X.Unit, r.X.Prefix)
		if err != nil {
			return nil, err
		}
		ym, err := resolve(c, field+".y", r.Y.Unit, r.Y.Prefix)
		if err != nil {
			return nil, err
		}
		curve, err := svt.NewCurve(svt.NewArray(r.X.Values, xm), svt.NewArray(r.Y.Values, ym))
		if err != nil {
			return nil, fieldError(field, err)
		}
		name := r.Name
		if name == "" {
			name = fmt.Sprintf("run %d", i+1)
		}
		out = append(out, NamedCurve{Name: name, Curve: curve})
		svt.Logger().Debug("job: built curve", "name", name, "samples", curve.Len(),
			"x", xm.Label(), "y", ym.Label())
	}
	return out, nil
}

// Figure validates the job and builds a figure holding its runs, plus
// their envelope when requested. opts are applied after the job's own
// title and axis labels.
func (j *Job) Figure(c *svt.UnitCollection, opts ...plot.Option) (*plot.Figure, error) {
	if err := j.Validate(); err != nil {
		return nil, err
	}
	x, y, err := j.Axes(c)
	if err != nil {
		return nil, err
	}
	curves, err := j.Curves(c)
	if err != nil {
		return nil, err
	}
	base := []plot.Option{
		plot.WithTitle(j.Title),
		plot.WithAxisLabels(j.X.Label, j.Y.Label),
	}
	fig := plot.NewFigure(x, y, append(base, opts...)...)
	if j.Envelope {
		all := make([]svt.Curve, len(curves))
		for i, nc := range curves {
			all[i] = nc.Curve
		}
		if err := fig.AddEnvelope("envelope", all...); err != nil {
			return nil, fieldError("envelope", err)
		}
	}
	for i, nc := range curves {
		if err := fig.AddCurve(nc.Name, nc.Curve); err != nil {
			return nil, fieldError(fmt.Sprintf("runs[%d]", i), err)
		}
	}
	return fig, nil
}
