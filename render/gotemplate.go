package render

import (
	"path"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/spf13/afero"
)

// goEngine renders text/template templates: {{ .colors.red }}, {{ darken .colors.red 0.2 }}.
type goEngine struct {
	fs   afero.Fs
	root string
}

func newGoEngine(fs afero.Fs, root string) Engine {
	return &goEngine{fs: fs, root: root}
}

func (e *goEngine) Render(name string, vars map[string]any) (string, error) {
	data, err := afero.ReadFile(e.fs, filepath.Join(e.root, filepath.FromSlash(name)))
	if err != nil {
		return "", err
	}

	tpl, err := template.New(path.Base(name)).
		Option("missingkey=error").
		Funcs(Funcs()).
		Parse(string(data))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	if err := tpl.Execute(&b, vars); err != nil {
		return "", err
	}

	return b.String(), nil
}
