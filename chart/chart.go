package chart

import (
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/xferstat/xferstat/xferstat"
)

type Meta struct {
	Title  string
	XLabel string
	YLabel string
}

type Series struct {
	Label  string
	Result *xferstat.StatisticsResult
}

type errPoints struct {
	plotter.XYs
	plotter.YErrors
}

var markerShapes = []draw.GlyphDrawer{
	draw.RingGlyph{},
	draw.TriangleGlyph{},
	draw.SquareGlyph{},
	draw.CrossGlyph{},
	draw.PlusGlyph{},
}

func toErrPoints(result *xferstat.StatisticsResult) *errPoints {
	ret := &errPoints{
		XYs:     make(plotter.XYs, result.Len()),
		YErrors: make(plotter.YErrors, result.Len()),
	}

	for i := range result.X {
		ret.XYs[i].X = result.X[i]
		ret.XYs[i].Y = result.Y[i]
		ret.YErrors[i].Low = result.YErr[i]
		ret.YErrors[i].High = result.YErr[i]
	}

	return ret
}

func applyFontSize(p *plot.Plot, size vg.Length) {
	p.Title.TextStyle.Font.Size = size
	p.X.Label.TextStyle.Font.Size = size
	p.Y.Label.TextStyle.Font.Size = size
	p.X.Tick.Label.Font.Size = size * 3 / 4
	p.Y.Tick.Label.Font.Size = size * 3 / 4
	p.Legend.TextStyle.Font.Size = size
}

func addSeries(p *plot.Plot, style Style, index int, series Series) error {
	if series.Result == nil || series.Result.Len() == 0 {
		return errors.Errorf("series %q has no points", series.Label)
	}

	points := toErrPoints(series.Result)
	color := plotutil.Color(index)

	line, scatter, err := plotter.NewLinePoints(points)
	if err != nil {
		return errors.Wrapf(err, "could not build series %q", series.Label)
	}
	line.LineStyle.Width = vg.Points(style.LineWidth)
	line.LineStyle.Dashes = []vg.Length{vg.Points(4 * style.LineWidth), vg.Points(2 * style.LineWidth)}
	line.LineStyle.Color = color
	scatter.GlyphStyle.Shape = markerShapes[index%len(markerShapes)]
	scatter.GlyphStyle.Radius = vg.Points(style.MarkerRadius)
	scatter.GlyphStyle.Color = color

	bars, err := plotter.NewYErrorBars(points)
	if err != nil {
		return errors.Wrapf(err, "could not build error bars for %q", series.Label)
	}
	bars.LineStyle.Width = vg.Points(style.LineWidth / 2)
	bars.LineStyle.Color = color

	p.Add(line, scatter, bars)
	p.Legend.Add(series.Label, line, scatter)

	return nil
}

// Render draws every series on one chart and saves it to path. The image
// format follows the file extension.
func Render(path string, meta Meta, style Style, series ...Series) error {
	if len(series) == 0 {
		return errors.New("no series to render")
	}
	if err := style.validate(); err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = meta.Title
	p.X.Label.Text = meta.XLabel
	p.Y.Label.Text = meta.YLabel
	p.Legend.Top = true
	applyFontSize(p, vg.Points(style.FontSize))

	for index, s := range series {
		if err := addSeries(p, style, index, s); err != nil {
			return err
		}
	}

	if err := p.Save(vg.Length(style.Width)*vg.Inch, vg.Length(style.Height)*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "could not save chart to %s", path)
	}

	return nil
}
