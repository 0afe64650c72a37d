package render

import (
	"bytes"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/nikolalohinski/gonja/v2"
	"github.com/nikolalohinski/gonja/v2/config"
	"github.com/nikolalohinski/gonja/v2/exec"
	"github.com/nikolalohinski/gonja/v2/loaders"
	"github.com/spf13/afero"
)

// markup extensions get HTML escaping, everything else is rendered verbatim.
var markup = map[string]bool{".html": true, ".htm": true, ".xml": true}

// jinjaEngine renders Jinja2 templates through gonja.
type jinjaEngine struct {
	loader *aferoLoader
	env    *exec.Environment
}

func newJinjaEngine(fs afero.Fs, root string) Engine {
	env := *gonja.DefaultEnvironment
	env.Filters = exec.NewFilterSet(jinjaFilters()).Update(gonja.DefaultEnvironment.Filters)

	return &jinjaEngine{
		loader: &aferoLoader{fs: fs, root: root},
		env:    &env,
	}
}

func (e *jinjaEngine) Render(name string, vars map[string]any) (string, error) {
	cfg := config.New()
	cfg.AutoEscape = markup[strings.ToLower(path.Ext(name))]

	tpl, err := exec.NewTemplate(name, cfg, e.loader, e.env)
	if err != nil {
		return "", err
	}

	data := Funcs()
	for k, v := range vars {
		data[k] = v
	}

	var b strings.Builder
	if err := tpl.Execute(&b, exec.NewContext(data)); err != nil {
		return "", err
	}

	return b.String(), nil
}

// jinjaFilters exposes the helpers taking a color first as filters:
// {{ colors.red|darken }}, {{ colors.red|darken(0.2) }}, {{ colors.red|lstrip("#") }}.
func jinjaFilters() map[string]exec.FilterFunction {
	shift := func(fn func(string, ...float64) (string, error)) exec.FilterFunction {
		return func(_ *exec.Evaluator, in *exec.Value, params *exec.VarArgs) *exec.Value {
			if in.IsError() {
				return in
			}

			var amount []float64
			if len(params.Args) > 0 {
				amount = append(amount, params.Args[0].Float())
			}
			return filterResult(fn(in.String(), amount...))
		}
	}

	strip := func(fn func(string, string) string) exec.FilterFunction {
		return func(_ *exec.Evaluator, in *exec.Value, params *exec.VarArgs) *exec.Value {
			if in.IsError() {
				return in
			}

			cutset := " \t\r\n"
			if len(params.Args) > 0 {
				cutset = params.Args[0].String()
			}
			return exec.AsValue(fn(in.String(), cutset))
		}
	}

	return map[string]exec.FilterFunction{
		"darken":  shift(Darken),
		"lighten": shift(Lighten),
		"lstrip":  strip(LStrip),
		"rstrip":  strip(RStrip),
		"xterm": func(_ *exec.Evaluator, in *exec.Value, _ *exec.VarArgs) *exec.Value {
			if in.IsError() {
				return in
			}
			return filterResult(Xterm(in.String()))
		},
	}
}

func filterResult[T any](out T, err error) *exec.Value {
	if err != nil {
		return exec.AsValue(fmt.Errorf("filter: %w", err))
	}
	return exec.AsValue(out)
}

// aferoLoader feeds gonja from the afero backend. Includes and imports resolve against the template root.
type aferoLoader struct {
	fs   afero.Fs
	root string
}

func (l *aferoLoader) Resolve(name string) (string, error) {
	if filepath.IsAbs(name) {
		return name, nil
	}
	return filepath.Join(l.root, filepath.FromSlash(name)), nil
}

func (l *aferoLoader) Read(name string) (io.Reader, error) {
	resolved, err := l.Resolve(name)
	if err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(l.fs, resolved)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}

func (l *aferoLoader) Inherit(string) (loaders.Loader, error) {
	return l, nil
}
