package xferstat

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"gotest.tools/v3/assert"
)

func assertFloat(t *testing.T, got, want float64) {
	t.Helper()
	assert.Assert(t, math.Abs(got-want) <= 1e-9*math.Max(1, math.Abs(want)), "got %v, want %v", got, want)
}

func TestGetGroupStats_11Samples(t *testing.T) {
	samples := []float64{0.0, -0.5, 0.5, -1.0, 1.0, -1.5, 1.5, -2.0, 2.0, -2.5, 2.5}

	stats := GetGroupStats(samples)

	assert.Equal(t, stats.NSamples, 11)
	assert.Equal(t, stats.Mean, 0.0)
	assert.Equal(t, stats.StdDev, 1.5811388300841898)
	assert.Equal(t, stats.StdErr, 0.4767312946227962)
	assert.Equal(t, stats.Min, -2.5)
	assert.Equal(t, stats.Max, 2.5)
}

func TestGetGroupStats_6Samples(t *testing.T) {
	samples := []float64{-2.0, -3.0, 0.0, 2.0, -1.0, 1.0}

	stats := GetGroupStats(samples)

	assert.Equal(t, stats.NSamples, 6)
	assert.Equal(t, stats.Mean, -0.5)
	assert.Equal(t, stats.StdDev, 1.707825127659933)
	assert.Equal(t, stats.StdErr, 0.6972166887783964)
	assert.Equal(t, stats.Min, -3.0)
	assert.Equal(t, stats.Max, 2.0)
}

func TestGetGroupStats_25Samples(t *testing.T) {
	samples := []float64{127, 19, 139, 34, 134, 236, 221, 61, 146, 151, 157, 45, 137, 231, 46, 61, 215, 29, 189, 42, 108, 174, 235, 79, 167}

	stats := GetGroupStats(samples)

	assert.Equal(t, stats.NSamples, 25)
	assertFloat(t, stats.Mean, 127.32)
	assertFloat(t, stats.StdDev, 70.00726819409546)
	assertFloat(t, stats.StdErr, 14.001453638819092)
	assert.Equal(t, stats.Min, 19.0)
	assert.Equal(t, stats.Max, 236.0)
}

func TestGetGroupStats_SingleSample(t *testing.T) {
	stats := GetGroupStats([]float64{4.25})

	assert.Equal(t, stats.NSamples, 1)
	assert.Equal(t, stats.Mean, 4.25)
	assert.Equal(t, stats.StdDev, 0.0)
	assert.Equal(t, stats.StdErr, 0.0)
}

func TestGetGroupStats_TwoSamples(t *testing.T) {
	stats := GetGroupStats([]float64{2, 4})

	assert.Equal(t, stats.Mean, 3.0)
	assert.Equal(t, stats.StdDev, 1.0)
}

func TestGetGroupStats_Empty(t *testing.T) {
	stats := GetGroupStats(nil)

	assert.DeepEqual(t, *stats, Stats{})
}

func TestGetStatistics(t *testing.T) {
	points := map[float64][]float64{
		2.0: {5.0},
		1.0: {2.0, 4.0},
	}

	result := GetStatistics(points)

	assert.DeepEqual(t, result.X, []float64{1.0, 2.0})
	assert.DeepEqual(t, result.Y, []float64{3.0, 5.0})
	assert.DeepEqual(t, result.YErr, []float64{1.0, 0.0})
	assert.DeepEqual(t, result.N, []int{2, 1})
}

func TestGetStatistics_Empty(t *testing.T) {
	result := GetStatistics(map[float64][]float64{})

	assert.DeepEqual(t, result.X, []float64{})
	assert.DeepEqual(t, result.Y, []float64{})
	assert.DeepEqual(t, result.YErr, []float64{})
	assert.Equal(t, result.Len(), 0)
}

func TestGetStatistics_NegativeAndFractionalKeys(t *testing.T) {
	points := map[float64][]float64{
		0.25:  {1},
		-3:    {2},
		0.125: {3},
		100:   {4},
	}

	result := GetStatistics(points)

	assert.DeepEqual(t, result.X, []float64{-3, 0.125, 0.25, 100})
	assert.DeepEqual(t, result.Y, []float64{2, 3, 1, 4})
}

func generateDummyPoints(rng *rand.Rand, nKeys int, maxSamples int) map[float64][]float64 {
	points := map[float64][]float64{}

	for i := 0; i < nKeys; i++ {
		key := float64(rng.Intn(1000)) / 10
		nSamples := rng.Intn(maxSamples) + 1
		for j := 0; j < nSamples; j++ {
			points[key] = append(points[key], rng.Float64()*100)
		}
	}

	return points
}

func TestGetStatistics_AlignedAndSorted(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for iter := 0; iter < 50; iter += 1 {
		points := generateDummyPoints(rng, rng.Intn(30), 10)

		result := GetStatistics(points)

		assert.Equal(t, len(result.X), len(points))
		assert.Equal(t, len(result.Y), len(result.X))
		assert.Equal(t, len(result.YErr), len(result.X))
		assert.Equal(t, len(result.N), len(result.X))
		assert.Assert(t, sort.Float64sAreSorted(result.X))
		for i, x := range result.X {
			assert.Equal(t, result.N[i], len(points[x]))
			assert.Assert(t, result.YErr[i] >= 0)
		}
	}
}

func TestGetStatistics_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	points := generateDummyPoints(rng, 20, 8)

	first := GetStatistics(points)
	second := GetStatistics(points)

	assert.DeepEqual(t, first, second)
}

func TestGetGroupStats_EqualSamples(t *testing.T) {
	stats := GetGroupStats([]float64{0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1})

	assert.Assert(t, !math.IsNaN(stats.StdDev))
	assert.Assert(t, stats.StdDev < 1e-12)
	assertFloat(t, stats.Mean, 0.1)
}
