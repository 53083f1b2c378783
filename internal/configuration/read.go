package configuration

import (
	_ "embed"
	"os"
	"strconv"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/HazyCorp/numdemo/internal/report"
	"github.com/HazyCorp/numdemo/internal/runmetrics"
	"github.com/HazyCorp/numdemo/pkg/common/hzlog"
	"github.com/HazyCorp/numdemo/pkg/stringutil"
)

// Build-time settings, set with
//
//	go build -ldflags "-X github.com/HazyCorp/numdemo/internal/configuration.VerboseLogs=true"
var (
	// ConfigPath replaces the embedded defaults with the yaml file at this path.
	ConfigPath string
	// VerboseLogs overrides logging.verbose when not empty.
	VerboseLogs string
)

//go:embed default.yaml
var defaultYAML []byte

type Config struct {
	fx.Out

	Logging hzlog.Config      `json:"logging" yaml:"logging"`
	Report  report.Config     `json:"report" yaml:"report"`
	Metrics runmetrics.Config `json:"metrics" yaml:"metrics"`
}

func Read() (Config, error) {
	data := defaultYAML
	if ConfigPath != "" {
		var err error
		data, err = os.ReadFile(ConfigPath)
		if err != nil {
			return Config{}, errors.Wrapf(err, "cannot read config at %s", ConfigPath)
		}
	}

	c, err := Parse(data)
	if err != nil {
		return Config{}, err
	}

	if VerboseLogs != "" {
		verbose, err := strconv.ParseBool(VerboseLogs)
		if err != nil {
			return Config{}, errors.Wrapf(err, "cannot parse build-time VerboseLogs %q", VerboseLogs)
		}
		c.Logging.Verbose = verbose
	}

	return c, nil
}

func Parse(data []byte) (Config, error) {
	c := Config{
		Logging: hzlog.DefaultConfig(),
		Report:  report.DefaultConfig(),
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, errors.Wrap(err, "cannot parse config as yaml")
	}

	normalize(&c)

	if err := Validate(&c); err != nil {
		return Config{}, errors.Wrap(err, "invalid config provided")
	}

	return c, nil
}

func normalize(c *Config) {
	c.Logging.Level = stringutil.ToLower(stringutil.Trim(c.Logging.Level))
	c.Logging.Mode = stringutil.ToLower(stringutil.Trim(c.Logging.Mode))
	c.Report.Format = stringutil.ToLower(stringutil.Trim(c.Report.Format))
}

func Validate(c *Config) error {
	var errlist *multierror.Error

	lvl, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		errlist = multierror.Append(errlist, errors.Errorf("config.logging.level %q is not a level", c.Logging.Level))
	} else if lvl > zapcore.ErrorLevel {
		errlist = multierror.Append(errlist, errors.Errorf("config.logging.level must be one of [debug, info, warn, error], got %q", c.Logging.Level))
	}

	switch c.Logging.Mode {
	case hzlog.ModeConsole, hzlog.ModeJSON:
	default:
		errlist = multierror.Append(errlist, errors.Errorf("config.logging.mode must be one of [console, json], got %q", c.Logging.Mode))
	}

	switch c.Report.Format {
	case report.FormatText, report.FormatJSON:
	default:
		errlist = multierror.Append(errlist, errors.Errorf("config.report.format must be one of [text, json], got %q", c.Report.Format))
	}

	return errlist.ErrorOrNil()
}
