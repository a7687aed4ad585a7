package xferstat

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// GetGroupStats summarises one group of samples. StdDev uses the population
// formula, dividing by the number of samples.
func GetGroupStats(samples []float64) *Stats {
	ret := &Stats{
		NSamples: len(samples),
	}
	if ret.NSamples == 0 {
		return ret
	}

	mean, variance := stat.PopMeanVariance(samples, nil)
	// rounding in the compensated sum can leave a tiny negative variance for equal samples
	ret.Mean = mean
	ret.StdDev = math.Sqrt(math.Max(variance, 0))
	ret.StdErr = ret.StdDev / math.Sqrt(float64(ret.NSamples))
	ret.Min = floats.Min(samples)
	ret.Max = floats.Max(samples)

	return ret
}

func getSortedKeys(points map[float64][]float64) []float64 {
	keys := make([]float64, 0, len(points))

	for key := range points {
		keys = append(keys, key)
	}
	sort.Float64s(keys)

	return keys
}

func GetStatistics(points map[float64][]float64) *StatisticsResult {
	ret := &StatisticsResult{
		X:    []float64{},
		Y:    []float64{},
		YErr: []float64{},
		N:    []int{},
	}

	for _, x := range getSortedKeys(points) {
		logger.Debug().Float64("x", x).Msg("calculating statistics")

		stats := GetGroupStats(points[x])

		ret.X = append(ret.X, x)
		ret.Y = append(ret.Y, stats.Mean)
		ret.YErr = append(ret.YErr, stats.StdDev)
		ret.N = append(ret.N, stats.NSamples)
	}

	return ret
}

// Summarize parses one log and aggregates it.
func Summarize(path string) (*Report, error) {
	parsed, err := ParseLog(path)
	if err != nil {
		return nil, err
	}

	return &Report{
		Name:   parsed.Name,
		Param1: parsed.Param1,
		Param2: parsed.Param2,
		Result: GetStatistics(parsed.Points),
	}, nil
}
