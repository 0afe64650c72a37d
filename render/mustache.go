package render

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cbroglie/mustache"
	"github.com/spf13/afero"
)

// mustacheEngine renders logic-less templates. Helpers are section lambdas:
// {{#darken}}{{colors.red}}{{/darken}}.
type mustacheEngine struct {
	fs   afero.Fs
	root string
}

func newMustacheEngine(fs afero.Fs, root string) Engine {
	return &mustacheEngine{fs: fs, root: root}
}

func (e *mustacheEngine) Render(name string, vars map[string]any) (string, error) {
	data, err := afero.ReadFile(e.fs, filepath.Join(e.root, filepath.FromSlash(name)))
	if err != nil {
		return "", err
	}

	tpl, err := mustache.ParseStringPartialsRaw(string(data), &partials{e}, true)
	if err != nil {
		return "", err
	}

	return tpl.Render(vars, mustacheLambdas())
}

func mustacheLambdas() map[string]any {
	lambda := func(fn func(string) (string, error)) mustache.LambdaFunc {
		return func(text string, render mustache.RenderFunc) (string, error) {
			rendered, err := render(text)
			if err != nil {
				return "", err
			}
			return fn(strings.TrimSpace(rendered))
		}
	}

	return map[string]any{
		"darken":  lambda(func(s string) (string, error) { return Darken(s) }),
		"lighten": lambda(func(s string) (string, error) { return Lighten(s) }),
		"xterm": lambda(func(s string) (string, error) {
			idx, err := Xterm(s)
			if err != nil {
				return "", err
			}
			return strconv.Itoa(idx), nil
		}),
		"nohash": lambda(func(s string) (string, error) { return LStrip(s, "#"), nil }),
	}
}

// partials resolves {{> name}} against the template root, trying name.mustache first.
type partials struct {
	engine *mustacheEngine
}

func (p *partials) Get(name string) (string, error) {
	base := filepath.Join(p.engine.root, filepath.FromSlash(name))
	for _, candidate := range []string{base + ".mustache", base} {
		if data, err := afero.ReadFile(p.engine.fs, candidate); err == nil {
			return string(data), nil
		}
	}
	return "", fmt.Errorf("partial %q not found below %s", name, p.engine.root)
}
