// Package render compiles a directory of templates against a resolved theme.
//
// Every file below the template root is a template. The engine is picked from its
// extension, and the output lands in the output root under the same relative directory,
// with the extension dropped: templates/kitty/theme.conf.j2 becomes <output>/kitty/theme.conf.
package render

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/makedot/makedot/filesystem"
	"github.com/makedot/makedot/log"
	"github.com/makedot/makedot/theme"
	"github.com/makedot/makedot/util"
)

// skipDirs are version control directories never treated as template sources.
var skipDirs = map[string]bool{".git": true, ".hg": true, ".svn": true}

// Options configures a Run.
type Options struct {
	// Templates is the template root directory.
	Templates string
	// Output is the directory receiving compiled files.
	Output string
	// Engine is used for templates whose extension does not select one.
	Engine string
	// Theme provides the template variables.
	Theme *theme.Theme
	// OnRender, when set, is called before each template is rendered.
	OnRender func(Result)
}

// Result describes one compiled template.
type Result struct {
	Template string
	Output   string
	Engine   string
}

// Run renders every template below opts.Templates, stopping at the first failure.
func Run(opts Options) ([]Result, error) {
	if opts.Theme == nil {
		return nil, fmt.Errorf("render: no theme given")
	}

	templates, err := Discover(opts.Templates)
	if err != nil {
		return nil, err
	}

	pool := &engines{
		fs:    filesystem.API().Fs,
		root:  opts.Templates,
		built: make(map[string]Engine),
	}

	vars := opts.Theme.Vars()
	results := make([]Result, 0, len(templates))

	for _, name := range templates {
		result := Result{
			Template: name,
			Engine:   EngineFor(name, opts.Engine),
		}

		if result.Output, err = OutputPath(opts.Output, name); err != nil {
			return results, err
		}

		if opts.OnRender != nil {
			opts.OnRender(result)
		}

		if err := compile(pool, result, vars); err != nil {
			log.Errorf("rendering %s: %v", name, err)
			return results, fmt.Errorf("render %s: %w", name, err)
		}

		log.WithFields(map[string]any{
			"template": result.Template,
			"output":   result.Output,
			"engine":   result.Engine,
		}).Info("rendered")

		results = append(results, result)
	}

	return results, nil
}

func compile(pool *engines, result Result, vars map[string]any) error {
	engine, err := pool.get(result.Engine)
	if err != nil {
		return err
	}

	text, err := engine.Render(result.Template, vars)
	if err != nil {
		return err
	}

	return filesystem.API().WriteFile(result.Output, []byte(text), 0o644)
}

// Discover lists every file below root as sorted slash-separated relative paths.
func Discover(root string) ([]string, error) {
	api := filesystem.API()

	info, err := api.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("template directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("template directory: %s is not a directory", root)
	}

	var templates []string
	err = api.Walk(root, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if path != root && skipDirs[info.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		if info.Mode()&os.ModeSymlink != 0 {
			target, err := api.Stat(path)
			if err != nil {
				log.Warnf("skipping %s: %v", path, err)
				return nil
			}
			if target.IsDir() {
				return nil
			}
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		templates = append(templates, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return templates, nil
}

// OutputPath maps a template to its compiled location, creating the parent directories.
func OutputPath(output, name string) (string, error) {
	rel := filepath.FromSlash(name)
	dir := filepath.Join(output, filepath.Dir(rel))

	if err := filesystem.API().MkdirAll(dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}

	return filepath.Join(dir, util.FileStem(rel)), nil
}
