// Package config provides the workflow definition loader.
package config

import (
	"os"
	"path/filepath"

	"github.com/MOMA-AUH/gwf-failed-targets/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the workflow definition looked up in the project dir.
const DefaultFilename = "workflow.yaml"

// FileWorkflowLoader implements ports.WorkflowLoader using a YAML file.
type FileWorkflowLoader struct {
	Filename string
}

// NewLoader creates a loader for the default workflow filename.
func NewLoader() *FileWorkflowLoader {
	return &FileWorkflowLoader{Filename: DefaultFilename}
}

// Load reads the workflow definition from the given project directory.
func (l *FileWorkflowLoader) Load(dir string) (*domain.Graph, error) {
	return Load(filepath.Join(dir, l.Filename))
}

// Workflowfile represents the structure of the workflow.yaml file.
type Workflowfile struct {
	Targets map[string]TargetDTO `yaml:"targets"`
}

// TargetDTO represents a target definition in the configuration.
type TargetDTO struct {
	Walltime  string   `yaml:"walltime"`
	Memory    string   `yaml:"memory"`
	Cores     int      `yaml:"cores"`
	Nodes     int      `yaml:"nodes"`
	DependsOn []string `yaml:"dependsOn"`
}

// Load reads a workflow file from the given path and returns a validated
// domain.Graph.
func Load(path string) (*domain.Graph, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(
			zerr.Wrap(err, domain.ErrWorkflowReadFailed.Error()),
			"path", path,
		)
	}

	var wf Workflowfile
	if err := yaml.Unmarshal(data, &wf); err != nil {
		return nil, zerr.Wrap(err, domain.ErrWorkflowParseFailed.Error())
	}

	g := domain.NewGraph()
	for name, dto := range wf.Targets {
		target, err := buildTarget(name, dto)
		if err != nil {
			return nil, err
		}
		if err := g.AddTarget(target); err != nil {
			return nil, err
		}
	}

	// Catches unknown dependencies and cycles in one pass.
	if err := g.Validate(); err != nil {
		return nil, err
	}

	return g, nil
}

func buildTarget(name string, dto TargetDTO) (*domain.Target, error) {
	var res domain.Resources

	if dto.Walltime != "" {
		w, err := domain.ParseWalltime(dto.Walltime)
		if err != nil {
			return nil, zerr.With(err, "target", name)
		}
		res.Walltime = w
	}
	if dto.Memory != "" {
		m, err := domain.ParseMemory(dto.Memory)
		if err != nil {
			return nil, zerr.With(err, "target", name)
		}
		res.Memory = m
	}
	res.Cores = dto.Cores
	res.Nodes = dto.Nodes

	return &domain.Target{
		Name:         domain.NewInternedString(name),
		Resources:    res,
		Dependencies: domain.NewInternedStrings(dto.DependsOn),
	}, nil
}
