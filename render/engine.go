package render

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/afero"
)

// Engine names.
const (
	Jinja    = "jinja"
	Go       = "go"
	Mustache = "mustache"
)

// Engine renders templates stored below a root directory.
type Engine interface {
	// Render executes the template at the slash-separated path name, relative to the root.
	Render(name string, vars map[string]any) (string, error)
}

// extensions maps template extensions to the engine that understands them.
var extensions = map[string]string{
	".j2":       Jinja,
	".jinja":    Jinja,
	".jinja2":   Jinja,
	".tmpl":     Go,
	".gotmpl":   Go,
	".mustache": Mustache,
}

var constructors = map[string]func(fs afero.Fs, root string) Engine{
	Jinja:    newJinjaEngine,
	Go:       newGoEngine,
	Mustache: newMustacheEngine,
}

// AvailableEngines returns the sorted names of all engines.
func AvailableEngines() []string {
	names := lo.Keys(constructors)
	sort.Strings(names)
	return names
}

// EngineFor names the engine used for a template: the one bound to its extension, or fallback.
func EngineFor(name, fallback string) string {
	if engine, ok := extensions[strings.ToLower(filepath.Ext(name))]; ok {
		return engine
	}
	return fallback
}

// engines lazily builds one engine per name for a template root.
type engines struct {
	fs    afero.Fs
	root  string
	built map[string]Engine
}

func (e *engines) get(name string) (Engine, error) {
	if engine, ok := e.built[name]; ok {
		return engine, nil
	}

	constructor, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("unknown engine %q, available: %s", name, strings.Join(AvailableEngines(), ", "))
	}

	engine := constructor(e.fs, e.root)
	e.built[name] = engine
	return engine, nil
}
