package xferstat

import (
	"io"
	"log"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

type jsonReport struct {
	Log    string    `json:"log"`
	Param1 float64   `json:"param1"`
	Param2 float64   `json:"param2"`
	X      []float64 `json:"x"`
	Y      []float64 `json:"y"`
	YErr   []float64 `json:"yerr"`
	N      []int     `json:"n"`
}

func printReport(printer *log.Logger, report *Report) {
	if report != nil {
		printer.Printf("Log: %s\n", report.Name)
		printer.Printf("Param1: %g\n", report.Param1)
		printer.Printf("Param2: %g\n", report.Param2)
		for i := 0; i < report.Result.Len(); i++ {
			printer.Printf("%g-mean: %.3f\n", report.Result.X[i], report.Result.Y[i])
			printer.Printf("%g-stddev: %.3f\n", report.Result.X[i], report.Result.YErr[i])
			printer.Printf("%g-n: %d\n", report.Result.X[i], report.Result.N[i])
		}
	}
}

func WriteJSON(w io.Writer, reports []*Report) error {
	out := []*jsonReport{}

	for _, report := range reports {
		out = append(out, &jsonReport{
			Log:    report.Name,
			Param1: report.Param1,
			Param2: report.Param2,
			X:      report.Result.X,
			Y:      report.Result.Y,
			YErr:   report.Result.YErr,
			N:      report.Result.N,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return errors.Wrap(encoder.Encode(out), "could not encode reports")
}

func RunAndPrint(printer *log.Logger, paths []string, format string) error {
	if format != FormatText && format != FormatJSON {
		return errors.Errorf("unknown output format %q", format)
	}

	reports := []*Report{}

	for _, path := range paths {
		report, err := Summarize(path)
		if err != nil {
			return errors.Wrapf(err, "could not summarize %s", path)
		}
		reports = append(reports, report)
	}

	if format == FormatJSON {
		return WriteJSON(printer.Writer(), reports)
	}

	for index, report := range reports {
		if index > 0 {
			printer.Println()
		}
		printReport(printer, report)
	}

	return nil
}
