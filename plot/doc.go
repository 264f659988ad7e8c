// Package plot renders curves of physical quantities to PNG images.
//
// A Figure fixes the unit of each axis. Curves added to it are converted to
// those units, so a curve sampled in millimeters and one sampled in meters
// land on the same scale, and adding a curve whose units cannot be
// converted fails with svt.ErrIncompatibleUnits.
//
//	fig := plot.NewFigure(si.Second(), si.Meter(),
//	    plot.WithTitle("Displacement"),
//	    plot.WithAxisLabels("time", "position"),
//	)
//	if err := fig.AddCurve("run 1", c); err != nil {
//	    return err
//	}
//	if err := fig.SavePNG("displacement.png"); err != nil {
//	    return err
//	}
//
// Rendering is pure Go: lines and envelope bands are rasterized with
// golang.org/x/image/vector and labels are drawn with the Go Regular font.
// Tick labels follow the locale chosen with WithLanguage.
package plot
