// Package scenario loads the composite container definitions and the loot
// requests of a run.
package scenario

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/osse101/LootContainers_Go/internal/container"
	"github.com/osse101/LootContainers_Go/internal/domain"
	"github.com/osse101/LootContainers_Go/internal/logger"
	"github.com/osse101/LootContainers_Go/internal/metrics"
)

// Scenario describes composites to build and the items to loot into them
type Scenario struct {
	Composites []CompositeDef `json:"composites" yaml:"composites" validate:"dive"`
	Loot       []LootRequest  `json:"loot" yaml:"loot" validate:"dive"`
}

// CompositeDef names a multi container and the containers it nests, in
// search order. Names may refer to composites defined earlier in the file.
type CompositeDef struct {
	Name       string   `json:"name" yaml:"name" validate:"required"`
	Containers []string `json:"containers" yaml:"containers" validate:"min=1,dive,required"`
}

// LootRequest asks for one item to be looted into a named container
type LootRequest struct {
	Container string `json:"container" yaml:"container" validate:"required"`
	Item      string `json:"item" yaml:"item" validate:"required"`
}

var validate = validator.New()

// Load reads a scenario file. The format follows the file extension.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadFileFailed, err)
	}
	return Parse(path, data)
}

// Parse decodes scenario data; name is used for format detection and errors.
func Parse(name string, data []byte) (*Scenario, error) {
	var s Scenario

	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ExtJSON:
		if err := validateJSON(data); err != nil {
			return nil, fmt.Errorf(ErrMsgSchemaFailed, name, err)
		}
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf(ErrMsgParseFailed, name, err)
		}
	case ExtYAML, ExtYML:
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf(ErrMsgParseFailed, name, err)
		}
	default:
		return nil, fmt.Errorf(ErrFmtUnsupportedFormat, domain.ErrInvalidInput, ext)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	s.normalize()
	return &s, nil
}

// normalize rewrites every name in NFC form, matching the feed files.
func (s *Scenario) normalize() {
	for i := range s.Composites {
		def := &s.Composites[i]
		def.Name = norm.NFC.String(def.Name)
		for j, child := range def.Containers {
			def.Containers[j] = norm.NFC.String(child)
		}
	}
	for i := range s.Loot {
		s.Loot[i].Container = norm.NFC.String(s.Loot[i].Container)
		s.Loot[i].Item = norm.NFC.String(s.Loot[i].Item)
	}
}

// Validate checks the decoded scenario
func (s *Scenario) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf(ErrFmtInvalidScenario, domain.ErrInvalidInput, strings.Join(msgs, ", "))
}

// Build constructs the composites in file order and registers them. A
// composite whose name is taken is still built, but stays unregistered.
func (s *Scenario) Build(ctx context.Context, reg *container.Registry) ([]*container.Multi, error) {
	log := logger.FromContext(ctx)

	built := make([]*container.Multi, 0, len(s.Composites))
	for i, def := range s.Composites {
		m, err := container.NewMulti(def.Name, def.Containers, reg)
		if err != nil {
			return nil, fmt.Errorf(ErrFmtBuildComposite, i, def.Name, err)
		}
		if reg.Register(m) {
			metrics.RecordContainerRegistered(metrics.KindMulti)
			log.Debug(LogMsgCompositeRegistered, "container", m.Name(), "children", len(def.Containers), "empty_weight", m.EmptyWeight())
		} else {
			log.Warn(LogMsgCompositeDropped, "container", m.Name())
		}
		built = append(built, m)
	}
	return built, nil
}
