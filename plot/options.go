package plot

import "golang.org/x/text/language"

// Option configures a Figure during creation.
//
// Example:
//
//	fig := plot.NewFigure(si.Second(), si.Meter(),
//	    plot.WithSize(1024, 768),
//	    plot.WithTitle("Displacement"),
//	)
type Option func(*options)

type options struct {
	width, height  int
	title          string
	xLabel, yLabel string
	background     RGBA
	foreground     RGBA
	grid           RGBA
	palette        []RGBA
	lang           language.Tag
	fontSize       float64
	lineWidth      float64
	ticks          int
}

func defaultOptions() options {
	return options{
		width:      800,
		height:     600,
		background: White,
		foreground: Black,
		grid:       LightGray,
		palette:    DefaultPalette,
		lang:       language.English,
		fontSize:   13,
		lineWidth:  2,
		ticks:      6,
	}
}

// WithSize sets the image size in pixels.
func WithSize(width, height int) Option {
	return func(o *options) {
		o.width, o.height = width, height
	}
}

// WithTitle sets the text drawn above the plot area.
func WithTitle(title string) Option {
	return func(o *options) {
		o.title = title
	}
}

// WithAxisLabels sets the axis titles. The unit label of each axis is
// appended in brackets.
func WithAxisLabels(x, y string) Option {
	return func(o *options) {
		o.xLabel, o.yLabel = x, y
	}
}

// WithBackground sets the image background color.
func WithBackground(c RGBA) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithForeground sets the color of axes and text.
func WithForeground(c RGBA) Option {
	return func(o *options) {
		o.foreground = c
	}
}

// WithPalette sets the series color cycle. An empty palette is ignored.
func WithPalette(p ...RGBA) Option {
	return func(o *options) {
		if len(p) > 0 {
			o.palette = p
		}
	}
}

// WithLanguage selects the locale used to format tick labels.
func WithLanguage(tag language.Tag) Option {
	return func(o *options) {
		o.lang = tag
	}
}

// WithFontSize sets the label font size in points at 72 DPI.
func WithFontSize(size float64) Option {
	return func(o *options) {
		o.fontSize = size
	}
}

// WithLineWidth sets the stroke width of curves in pixels.
func WithLineWidth(w float64) Option {
	return func(o *options) {
		o.lineWidth = w
	}
}

// WithTicks sets the approximate number of ticks per axis.
func WithTicks(n int) Option {
	return func(o *options) {
		o.ticks = n
	}
}
