package spatialpooler

import (
	"fmt"
	"log"
	"math/rand"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Config is the caller-facing, validated construction input for a
// Connections. LocalAreaDensity and NumActiveColumnsPerInhArea are mutually
// exclusive: exactly one must be set to a positive value, the other left at
// its zero-value sentinel.
type Config struct {
	InputDimensions  []int `validate:"required,dive,gt=0" json:"input_dimensions"`
	ColumnDimensions []int `validate:"required,dive,gt=0" json:"column_dimensions"`

	PotentialRadius  int     `validate:"gte=0" json:"potential_radius"`
	PotentialPct     float64 `validate:"gt=0,lte=1" json:"potential_pct"`
	InitConnectedPct float64 `validate:"gt=0,lte=1" json:"init_connected_pct"`

	GlobalInhibition           bool    `json:"global_inhibition"`
	LocalAreaDensity           float64 `validate:"gte=0,lte=0.5" json:"local_area_density"`
	NumActiveColumnsPerInhArea int     `validate:"gte=0" json:"num_active_columns_per_inh_area"`
	StimulusThreshold          int     `validate:"gte=0" json:"stimulus_threshold"`

	SynPermInactiveDec      float64 `validate:"gte=0,lte=1" json:"syn_perm_inactive_dec"`
	SynPermActiveInc        float64 `validate:"gte=0,lte=1" json:"syn_perm_active_inc"`
	SynPermBelowStimulusInc float64 `validate:"gt=0,lte=1" json:"syn_perm_below_stimulus_inc"`
	SynPermTrimThreshold    float64 `validate:"gte=0,lte=1" json:"syn_perm_trim_threshold"`
	SynPermConnected        float64 `validate:"gt=0,lte=1" json:"syn_perm_connected"`

	MinPctOverlapDutyCycle float64 `validate:"gte=0,lte=1" json:"min_pct_overlap_duty_cycle"`
	MinPctActiveDutyCycle  float64 `validate:"gte=0,lte=1" json:"min_pct_active_duty_cycle"`
	DutyCyclePeriod        int     `validate:"gt=0" json:"duty_cycle_period"`
	MaxBoost               float64 `validate:"gte=1" json:"max_boost"`
	UpdatePeriod           int     `validate:"gt=0" json:"update_period"`

	Seed     int64       `json:"seed"`
	Parallel bool        `json:"parallel"`
	Logger   *log.Logger `validate:"-" json:"-"`
}

// DefaultConfig returns the NuPIC-family defaults used throughout this
// package's own tests, with global inhibition and a fixed winner count so
// callers have a working starting point without tuning every scalar.
func DefaultConfig() *Config {
	return &Config{
		InputDimensions:            []int{32},
		ColumnDimensions:           []int{32},
		PotentialRadius:            16,
		PotentialPct:               0.5,
		InitConnectedPct:           0.5,
		GlobalInhibition:           true,
		NumActiveColumnsPerInhArea: 10,
		StimulusThreshold:          0,
		SynPermInactiveDec:         0.008,
		SynPermActiveInc:           0.05,
		SynPermBelowStimulusInc:    0.01,
		SynPermTrimThreshold:       0.025,
		SynPermConnected:           0.1,
		MinPctOverlapDutyCycle:     0.001,
		MinPctActiveDutyCycle:      0.001,
		DutyCyclePeriod:            1000,
		MaxBoost:                   10.0,
		UpdatePeriod:               50,
	}
}

// NewConnections validates cfg and, if valid, returns a freshly constructed
// Connections ready for Init. No compute-time error is ever returned from
// here — failures are always *ConfigurationError.
func NewConnections(cfg *Config) (*Connections, error) {
	if cfg == nil {
		return nil, &ConfigurationError{Message: "config must not be nil"}
	}
	if err := validate.Struct(cfg); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			first := verrs[0]
			return nil, &ConfigurationError{
				Field:   first.Field(),
				Message: fmt.Sprintf("failed %q validation", first.Tag()),
				Cause:   err,
			}
		}
		return nil, &ConfigurationError{Message: err.Error(), Cause: err}
	}

	if !(0 <= cfg.SynPermTrimThreshold && cfg.SynPermTrimThreshold <= cfg.SynPermConnected && cfg.SynPermConnected <= 1) {
		return nil, &ConfigurationError{
			Field:   "syn_perm_trim_threshold",
			Message: "must satisfy 0 <= syn_perm_trim_threshold <= syn_perm_connected <= 1",
		}
	}

	hasDensity := cfg.LocalAreaDensity > 0
	hasCount := cfg.NumActiveColumnsPerInhArea > 0
	if hasDensity == hasCount {
		return nil, &ConfigurationError{
			Field:   "local_area_density",
			Message: "exactly one of local_area_density or num_active_columns_per_inh_area must be set",
		}
	}

	numInputs := product(cfg.InputDimensions)
	numColumns := product(cfg.ColumnDimensions)
	if numInputs <= 0 || numColumns <= 0 {
		return nil, &ConfigurationError{
			Field:   "input_dimensions",
			Message: "dimensions must yield a positive number of inputs and columns",
		}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	c := &Connections{
		inputDimensions:            append([]int(nil), cfg.InputDimensions...),
		columnDimensions:           append([]int(nil), cfg.ColumnDimensions...),
		numInputs:                  numInputs,
		numColumns:                 numColumns,
		potentialRadius:            cfg.PotentialRadius,
		potentialPct:               cfg.PotentialPct,
		initConnectedPct:           cfg.InitConnectedPct,
		globalInhibition:           cfg.GlobalInhibition,
		localAreaDensity:           cfg.LocalAreaDensity,
		numActiveColumnsPerInhArea: cfg.NumActiveColumnsPerInhArea,
		stimulusThreshold:          cfg.StimulusThreshold,
		synPermInactiveDec:         cfg.SynPermInactiveDec,
		synPermActiveInc:           cfg.SynPermActiveInc,
		synPermBelowStimulusInc:    cfg.SynPermBelowStimulusInc,
		synPermTrimThreshold:       cfg.SynPermTrimThreshold,
		synPermConnected:           cfg.SynPermConnected,
		synPermMin:                 0,
		synPermMax:                 1,
		minPctOverlapDutyCycle:     cfg.MinPctOverlapDutyCycle,
		minPctActiveDutyCycle:      cfg.MinPctActiveDutyCycle,
		dutyCyclePeriod:            cfg.DutyCyclePeriod,
		maxBoost:                   cfg.MaxBoost,
		updatePeriod:               cfg.UpdatePeriod,
		inhibitionRadius:           1,
		seed:                       cfg.Seed,
		random:                     rand.New(rand.NewSource(cfg.Seed)),
		parallel:                   cfg.Parallel,
		id:                         uuid.New(),
		logger:                     logger,
	}
	return c, nil
}
