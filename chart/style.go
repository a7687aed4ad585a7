package chart

import (
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Style is passed to Render by the caller. Lengths are in points, the image size in inches.
type Style struct {
	FontSize     float64 `mapstructure:"font_size"`
	MarkerRadius float64 `mapstructure:"marker_radius"`
	LineWidth    float64 `mapstructure:"line_width"`
	Width        float64 `mapstructure:"width"`
	Height       float64 `mapstructure:"height"`
}

func DefaultStyle() Style {
	return Style{
		FontSize:     22,
		MarkerRadius: 7.5,
		LineWidth:    3,
		Width:        8,
		Height:       6,
	}
}

func setStyleDefaults(v *viper.Viper) {
	def := DefaultStyle()

	v.SetDefault("font_size", def.FontSize)
	v.SetDefault("marker_radius", def.MarkerRadius)
	v.SetDefault("line_width", def.LineWidth)
	v.SetDefault("width", def.Width)
	v.SetDefault("height", def.Height)
}

// LoadStyle layers defaults, the optional config file at path and the
// font-size flag, in increasing priority.
func LoadStyle(path string, flags *pflag.FlagSet) (Style, error) {
	v := viper.New()
	setStyleDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Style{}, errors.Wrapf(err, "could not read style config %s", path)
		}
	}

	if flags != nil {
		if flag := flags.Lookup("font-size"); flag != nil {
			if err := v.BindPFlag("font_size", flag); err != nil {
				return Style{}, errors.Wrap(err, "could not bind font-size flag")
			}
		}
	}

	style := Style{}
	if err := v.Unmarshal(&style); err != nil {
		return Style{}, errors.Wrap(err, "could not decode style config")
	}
	if err := style.validate(); err != nil {
		return Style{}, err
	}

	return style, nil
}

func (s Style) validate() error {
	if s.FontSize <= 0 || s.MarkerRadius <= 0 || s.LineWidth <= 0 {
		return errors.Errorf("style lengths must be positive: font %g, marker %g, line %g", s.FontSize, s.MarkerRadius, s.LineWidth)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return errors.Errorf("image size must be positive: %gx%g", s.Width, s.Height)
	}

	return nil
}
