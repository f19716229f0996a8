// Package pipeline drives the scan, extract and emit stages once per flavor.
package pipeline

import (
	"context"
	"fmt"
	"sort"

	"fossilgen/internal/config"
	"fossilgen/internal/discovery"
	"fossilgen/internal/domain"
	"fossilgen/internal/emitter"
)

// Progress receives updates while a flavor's sources are scanned
type Progress interface {
	Start(flavor domain.Flavor)
	Update(files, groups int)
	Finish()
}

// Pipeline wires the scanner, parser and emitter together.
// Passes run one after another and share no state.
type Pipeline struct {
	config   *config.Config
	scanner  *discovery.Scanner
	parser   *discovery.Parser
	emitter  *emitter.Emitter
	progress Progress
}

// New creates a new Pipeline
func New(cfg *config.Config, scanner *discovery.Scanner, parser *discovery.Parser, e *emitter.Emitter) *Pipeline {
	return &Pipeline{
		config:  cfg,
		scanner: scanner,
		parser:  parser,
		emitter: e,
	}
}

// NewFromConfig builds a Pipeline and its stages from the config
func NewFromConfig(cfg *config.Config) *Pipeline {
	return New(
		cfg,
		discovery.NewScanner(cfg.DirPrefix, cfg.FilePrefix),
		discovery.NewParser(cfg.Marker),
		emitter.New(),
	)
}

// SetProgress sets the progress reporter for the pipeline
func (p *Pipeline) SetProgress(progress Progress) {
	p.progress = progress
}

// Run generates a runner for each flavor in order and stops at the first error
func (p *Pipeline) Run(ctx context.Context) ([]domain.GenerationResult, error) {
	results := make([]domain.GenerationResult, 0, len(p.config.Flavors))
	for _, flavor := range p.config.Flavors {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		result, err := p.RunFlavor(ctx, flavor)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}

// RunFlavor scans the sources of one flavor and writes its runner
func (p *Pipeline) RunFlavor(ctx context.Context, flavor domain.Flavor) (domain.GenerationResult, error) {
	groups, files, err := p.Discover(ctx, flavor)
	if err != nil {
		return domain.GenerationResult{}, err
	}

	sorted := groups.Sorted()
	path, n, err := p.emitter.Write(p.config.GetOutputDir(), sorted, flavor)
	if err != nil {
		return domain.GenerationResult{}, fmt.Errorf("%s runner: %w", flavor.Name, err)
	}

	return domain.GenerationResult{
		Flavor:     flavor,
		OutputPath: path,
		Groups:     sorted,
		Files:      files,
		Bytes:      n,
	}, nil
}

// Discover collects the groups declared by a flavor's sources without writing anything.
// It returns the group set and the sorted paths of the files scanned.
func (p *Pipeline) Discover(ctx context.Context, flavor domain.Flavor) (*domain.GroupSet, []string, error) {
	if p.progress != nil {
		p.progress.Start(flavor)
		defer p.progress.Finish()
	}

	groups := domain.NewGroupSet()
	paths := []string{}
	err := p.scanner.ScanEach(p.config.Root, flavor.Extension, func(file domain.SourceFile) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		p.parser.CollectInto(groups, file)
		paths = append(paths, file.Path)
		if p.progress != nil {
			p.progress.Update(len(paths), groups.Len())
		}
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("scan %s sources: %w", flavor.Name, err)
	}

	sort.Strings(paths)
	return groups, paths, nil
}
