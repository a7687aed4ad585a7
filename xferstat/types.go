package xferstat

type LogRecord struct {
	X float64
	Y float64
}

type ParsedLog struct {
	Name   string
	Param1 float64
	Param2 float64
	Points map[float64][]float64
}

func (l *ParsedLog) NSamples() int {
	ret := 0

	for _, samples := range l.Points {
		ret += len(samples)
	}

	return ret
}

type Stats struct {
	NSamples int
	Mean     float64
	StdDev   float64
	StdErr   float64
	Min      float64
	Max      float64
}

// StatisticsResult holds index-aligned sequences ordered by ascending X.
type StatisticsResult struct {
	X    []float64
	Y    []float64
	YErr []float64
	N    []int
}

func (r *StatisticsResult) Len() int {
	return len(r.X)
}

type Report struct {
	Name   string
	Param1 float64
	Param2 float64
	Result *StatisticsResult
}
