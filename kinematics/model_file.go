package kinematics

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"go.viam.com/kinchain/utils"
)

// Supported values of ModelConfig.AngleUnits.
const (
	AngleUnitsRadians = "radians"
	AngleUnitsDegrees = "degrees"
)

// ModelConfig describes a chain as stored in a model file.
type ModelConfig struct {
	Name string `json:"name" yaml:"name"`
	// AngleUnits applies to theta and alpha. Empty means radians. Joint ranges are kept in
	// whatever unit the file uses.
	AngleUnits string          `json:"angle_units,omitempty" yaml:"angle_units,omitempty"`
	DHParams   []DHParamConfig `json:"dhParams" yaml:"dhParams"`
}

// DHParamConfig is one joint of a model file.
type DHParamConfig struct {
	ID    string  `json:"id" yaml:"id"`
	Theta float64 `json:"theta" yaml:"theta"`
	D     float64 `json:"d" yaml:"d"`
	A     float64 `json:"a" yaml:"a"`
	Alpha float64 `json:"alpha" yaml:"alpha"`
	Min   float64 `json:"min" yaml:"min"`
	Max   float64 `json:"max" yaml:"max"`
}

// UnmarshalModelJSON parses a JSON model description.
func UnmarshalModelJSON(jsonData []byte) (*ModelConfig, error) {
	// empty data probably means that the caller has no model information
	if len(jsonData) == 0 {
		return nil, ErrNoModelInformation
	}
	cfg := &ModelConfig{}
	if err := json.Unmarshal(jsonData, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal json file")
	}
	return cfg, nil
}

// UnmarshalModelYAML parses a YAML model description.
func UnmarshalModelYAML(yamlData []byte) (*ModelConfig, error) {
	if len(yamlData) == 0 {
		return nil, ErrNoModelInformation
	}
	cfg := &ModelConfig{}
	if err := yaml.Unmarshal(yamlData, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal yaml file")
	}
	return cfg, nil
}

// ParseModelFile reads a model file, choosing the format from its extension.
func ParseModelFile(filename string) (*ModelConfig, error) {
	//nolint:gosec
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read model file")
	}
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".json":
		return UnmarshalModelJSON(data)
	case ".yaml", ".yml":
		return UnmarshalModelYAML(data)
	default:
		return nil, errors.Errorf("unsupported model file extension %q, supported extensions are .json, .yaml and .yml", ext)
	}
}

// Table converts the joints of the model into a DHTable with angles in radians.
func (cfg *ModelConfig) Table() (DHTable, error) {
	toRad := func(v float64) float64 { return v }
	switch cfg.AngleUnits {
	case "", AngleUnitsRadians:
	case AngleUnitsDegrees:
		toRad = utils.DegToRad
	default:
		return nil, errors.Errorf("unsupported angle units %q, supported units are %s and %s",
			cfg.AngleUnits, AngleUnitsRadians, AngleUnitsDegrees)
	}

	table := make(DHTable, 0, len(cfg.DHParams))
	for _, p := range cfg.DHParams {
		table = append(table, JointParameter{
			Theta: toRad(p.Theta),
			D:     p.D,
			A:     p.A,
			Alpha: toRad(p.Alpha),
			Range: Limit{Min: p.Min, Max: p.Max},
		})
	}
	return table, nil
}

// ParseConfig builds the chain the model describes.
func (cfg *ModelConfig) ParseConfig() (*Chain, error) {
	table, err := cfg.Table()
	if err != nil {
		return nil, err
	}
	chain, err := NewChainFromTable(table)
	if err != nil {
		return nil, errors.Wrapf(err, "model %q", cfg.Name)
	}
	return chain, nil
}
