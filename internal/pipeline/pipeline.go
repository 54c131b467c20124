// Package pipeline loads schemas from disk and runs the diff and merge
// engines, publishing lifecycle events and logging progress.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/heneryville/graphql-schema-utils/internal/diff"
	"github.com/heneryville/graphql-schema-utils/internal/eventbus"
	"github.com/heneryville/graphql-schema-utils/internal/events"
	"github.com/heneryville/graphql-schema-utils/internal/introspection"
	"github.com/heneryville/graphql-schema-utils/internal/logging"
	"github.com/heneryville/graphql-schema-utils/internal/merge"
	"github.com/heneryville/graphql-schema-utils/internal/opid"
	"github.com/heneryville/graphql-schema-utils/internal/schema"
)

// Source formats recognized by Load.
const (
	FormatSDL           = "sdl"
	FormatIntrospection = "introspection"
)

var sdlExtensions = map[string]bool{
	".graphql":  true,
	".graphqls": true,
	".gql":      true,
	".sdl":      true,
}

// Pipeline runs schema operations and reports them on a bus. A nil bus
// publishes nothing.
type Pipeline struct {
	bus *eventbus.Bus
}

func New(bus *eventbus.Bus) *Pipeline {
	return &Pipeline{bus: bus}
}

// DetectFormat decides how paths are read. Several SDL files form one
// schema; an introspection result must be a single .json file.
func DetectFormat(paths []string) (string, error) {
	if len(paths) == 0 {
		return "", fmt.Errorf("no schema files given")
	}
	for _, p := range paths {
		ext := strings.ToLower(filepath.Ext(p))
		switch {
		case sdlExtensions[ext]:
		case ext == ".json":
			if len(paths) > 1 {
				return "", fmt.Errorf("%s: an introspection result cannot be combined with other files", p)
			}
			return FormatIntrospection, nil
		default:
			return "", fmt.Errorf("%s: unsupported schema file extension %q", p, ext)
		}
	}
	return FormatSDL, nil
}

// Load builds one schema from paths. Directories contribute every SDL file
// beneath them.
func (p *Pipeline) Load(ctx context.Context, paths ...string) (*schema.Schema, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	paths, err := Discover(paths)
	if err != nil {
		return nil, err
	}
	format, err := DetectFormat(paths)
	if err != nil {
		return nil, err
	}

	ctx, _ = opid.NewContext(ctx)
	logger := logging.FromContext(ctx)
	progress := logging.NewProgress(logger)
	logger.Debug("loading schema", "paths", paths, "format", format)
	eventbus.Publish(ctx, p.bus, events.LoadStart{Paths: paths, Format: format})

	s, err := load(format, paths)

	finish := events.LoadFinish{Paths: paths, Format: format, Err: err, Duration: progress.Elapsed()}
	if s != nil {
		finish.Types = len(s.Types)
	}
	eventbus.Publish(ctx, p.bus, finish)
	if err != nil {
		return nil, err
	}
	progress.Done("loaded schema", "paths", paths, "types", len(s.Types))
	return s, nil
}

func load(format string, paths []string) (*schema.Schema, error) {
	if format == FormatIntrospection {
		data, err := os.ReadFile(paths[0])
		if err != nil {
			return nil, err
		}
		return introspection.Build(paths[0], data)
	}
	return schema.BuildFromFiles(paths...)
}

// loadPair loads both sides concurrently.
func (p *Pipeline) loadPair(ctx context.Context, thisPaths, otherPaths []string) (this, other *schema.Schema, err error) {
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		this, err = p.Load(ctx, thisPaths...)
		return err
	})
	eg.Go(func() error {
		var err error
		other, err = p.Load(ctx, otherPaths...)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, nil, err
	}
	return this, other, nil
}

// Diff loads both schemas and compares them.
func (p *Pipeline) Diff(ctx context.Context, thisPaths, otherPaths []string, opts diff.Options) ([]diff.Diff, error) {
	ctx, _ = opid.NewContext(ctx)
	logger := logging.FromContext(ctx)
	progress := logging.NewProgress(logger)
	eventbus.Publish(ctx, p.bus, events.DiffStart{LabelForThis: opts.LabelForThis, LabelForOther: opts.LabelForOther})

	diffs, err := p.diff(ctx, thisPaths, otherPaths, opts)

	breaking := len(diff.Breaking(diffs))
	eventbus.Publish(ctx, p.bus, events.DiffFinish{
		Diffs:    len(diffs),
		Breaking: breaking,
		Err:      err,
		Duration: progress.Elapsed(),
	})
	if err != nil {
		return nil, err
	}
	progress.Done("compared schemas", "diffs", len(diffs), "breaking", breaking)
	return diffs, nil
}

func (p *Pipeline) diff(ctx context.Context, thisPaths, otherPaths []string, opts diff.Options) ([]diff.Diff, error) {
	this, other, err := p.loadPair(ctx, thisPaths, otherPaths)
	if err != nil {
		return nil, err
	}
	return diff.Schemas(this, other, opts)
}

// Merge loads both schemas and merges other into this.
func (p *Pipeline) Merge(ctx context.Context, thisPaths, otherPaths []string) (*schema.Schema, error) {
	ctx, _ = opid.NewContext(ctx)
	logger := logging.FromContext(ctx)
	progress := logging.NewProgress(logger)
	eventbus.Publish(ctx, p.bus, events.MergeStart{})

	merged, err := p.merge(ctx, thisPaths, otherPaths)

	finish := events.MergeFinish{Err: err, Duration: progress.Elapsed()}
	if merged != nil {
		finish.Types = len(merged.Types)
	}
	eventbus.Publish(ctx, p.bus, finish)
	if err != nil {
		return nil, err
	}
	progress.Done("merged schemas", "types", len(merged.Types))
	return merged, nil
}

func (p *Pipeline) merge(ctx context.Context, thisPaths, otherPaths []string) (*schema.Schema, error) {
	this, other, err := p.loadPair(ctx, thisPaths, otherPaths)
	if err != nil {
		return nil, err
	}
	return merge.Schemas(this, other)
}
