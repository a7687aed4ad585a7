package xferstat

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

const completionTimeLabel = "Completion time (seconds)"

type Experiment struct {
	Kind          string
	XLabel        string
	YLabel        string
	TitleFormat   string
	DefaultOutput string
}

var experiments = map[string]*Experiment{
	"delay": {
		Kind:          "delay",
		XLabel:        "Delay (milliseconds)",
		YLabel:        completionTimeLabel,
		TitleFormat:   "Filesize : %d MBytes",
		DefaultOutput: "delay-plot.pdf",
	},
	"filesize": {
		Kind:          "filesize",
		XLabel:        "File size (MBytes)",
		YLabel:        completionTimeLabel,
		TitleFormat:   "Delay : %d milliseconds",
		DefaultOutput: "filesize-plot.pdf",
	},
	"loss": {
		Kind:          "loss",
		XLabel:        "Link Loss [0, 1)",
		YLabel:        completionTimeLabel,
		TitleFormat:   "Filesize : %d MBytes",
		DefaultOutput: "loss-plot.pdf",
	},
}

func ExperimentKinds() []string {
	ret := []string{}

	for kind := range experiments {
		ret = append(ret, kind)
	}
	sort.Strings(ret)

	return ret
}

func LookupExperiment(kind string) (*Experiment, error) {
	experiment, ok := experiments[kind]
	if !ok {
		return nil, errors.Errorf("unknown experiment %q (expected one of %s)", kind, strings.Join(ExperimentKinds(), ", "))
	}

	return experiment, nil
}

// Title renders the fixed experimental condition, which is always the first header parameter.
func (e *Experiment) Title(param1 float64) string {
	return fmt.Sprintf(e.TitleFormat, int64(param1))
}
