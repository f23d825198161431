// Package seedfile populates an instance store from a YAML file and keeps it in sync with the file.
//
// File format:
//
//	instances:
//	  - instance_id: i-1
//	    app: WebServer
//	    vip_address: web.vip
//	    status: UP
//	    ipv4: 10.0.0.1
//	    ports: [{name: http, port: 8080}]
package seedfile

import (
	"context"
	"fmt"
	"os"
	"sync"

	"mylegacyregistry/domain"
	"mylegacyregistry/helpers"
	"mylegacyregistry/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Instances []domain.Instance `yaml:"instances"`
}

// Load reads and validates the instances of a seed file. Instance ids must be unique.
func Load(path string) ([]domain.Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}

	seen := make(map[string]struct{}, len(f.Instances))
	for n, i := range f.Instances {
		if err := i.Validate(); err != nil {
			return nil, fmt.Errorf("seed file %s: instance #%d: %w", path, n, err)
		}
		if _, ok := seen[i.InstanceID]; ok {
			return nil, fmt.Errorf("seed file %s: duplicate instance_id %q", path, i.InstanceID)
		}
		seen[i.InstanceID] = struct{}{}
	}

	return f.Instances, nil
}

// Loader writes the instances of a seed file into the store. Records of a previous load that are
// no longer in the file are deleted. Seeded records do not expire.
type Loader struct {
	path   string
	cache  interfaces.Cache[domain.Instance]
	logger log.Logger

	mu     sync.Mutex
	loaded map[string]struct{}
}

// NewLoader creates a loader. Panics on empty path or nil cache.
func NewLoader(path string, cache interfaces.Cache[domain.Instance], logger log.Logger) *Loader {
	return &Loader{
		path:   helpers.StrPanic(path, "adapters.seedfile.loader.go: path is required"),
		cache:  helpers.NilPanic(cache, "adapters.seedfile.loader.go: cache is required"),
		logger: log.WithPrefix(logger, "component", "SeedLoader"),
		loaded: make(map[string]struct{}),
	}
}

// Path returns the seed file path.
func (l *Loader) Path() string {
	return l.path
}

// Apply loads the file and syncs the store with it. An invalid file leaves the store untouched.
func (l *Loader) Apply(ctx context.Context) error {
	instances, err := Load(l.path)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	current := make(map[string]struct{}, len(instances))
	for _, i := range instances {
		if err := l.cache.WriteValue(ctx, i.InstanceID, i, 0); err != nil {
			return fmt.Errorf("failed to store seeded instance %q: %w", i.InstanceID, err)
		}
		current[i.InstanceID] = struct{}{}
	}

	removed := 0
	for id := range l.loaded {
		if _, ok := current[id]; ok {
			continue
		}
		if err := l.cache.DeleteValue(ctx, id); err != nil {
			return fmt.Errorf("failed to delete unseeded instance %q: %w", id, err)
		}
		removed++
	}
	l.loaded = current

	level.Info(l.logger).Log("msg", "seed file applied", "file", l.path, "instances", len(instances), "removed", removed)
	return nil
}
