package render

import (
	"strings"
	"testing"

	"github.com/makedot/makedot/filesystem"
	"github.com/makedot/makedot/theme"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func write(path, content string) {
	So(filesystem.API().WriteFile(path, []byte(content), 0o644), ShouldBeNil)
}

func read(path string) string {
	return string(lo.Must(filesystem.API().ReadFile(path)))
}

func TestEngineFor(t *testing.T) {
	Convey("EngineFor", t, func() {
		So(EngineFor("kitty/theme.conf.j2", Go), ShouldEqual, Jinja)
		So(EngineFor("a.JINJA", Go), ShouldEqual, Jinja)
		So(EngineFor("a.gotmpl", Jinja), ShouldEqual, Go)
		So(EngineFor("a.mustache", Jinja), ShouldEqual, Mustache)
		So(EngineFor("Xresources", Mustache), ShouldEqual, Mustache)
		So(AvailableEngines(), ShouldResemble, []string{Go, Jinja, Mustache})
	})
}

func TestDiscover(t *testing.T) {
	Convey("Given a template tree", t, func() {
		filesystem.SetMemMapFs()
		write("/tpl/zsh/colors.zsh.j2", "")
		write("/tpl/Xresources", "")
		write("/tpl/.git/config", "")
		write("/tpl/.bashrc.j2", "")

		Convey("Every file is a template, version control excluded", func() {
			templates, err := Discover("/tpl")
			So(err, ShouldBeNil)
			So(templates, ShouldResemble, []string{".bashrc.j2", "Xresources", "zsh/colors.zsh.j2"})
		})

		Convey("A missing root fails", func() {
			_, err := Discover("/missing")
			So(err, ShouldNotBeNil)
		})

		Convey("A file root fails", func() {
			_, err := Discover("/tpl/Xresources")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestOutputPath(t *testing.T) {
	Convey("OutputPath", t, func() {
		filesystem.SetMemMapFs()

		out, err := OutputPath("/out", "kitty/theme.conf.j2")
		So(err, ShouldBeNil)
		So(out, ShouldEqual, "/out/kitty/theme.conf")
		So(lo.Must(filesystem.API().IsDir("/out/kitty")), ShouldBeTrue)

		out, err = OutputPath("/out", "Xresources")
		So(err, ShouldBeNil)
		So(out, ShouldEqual, "/out/Xresources")
	})
}

func TestRun(t *testing.T) {
	Convey("Given templates for every engine", t, func() {
		filesystem.SetMemMapFs()
		write("/tpl/kitty/theme.conf.j2", "color1 {{ colors.red }}")
		write("/tpl/filters.j2", `{{ colors.red|lstrip("#") }} {{ colors.red|darken }} {{ colors.red|darken(0.2) }} {{ base.black|xterm }} {{ xterm_dark[9] }}`)
		write("/tpl/zip.j2", `{% for name, hex in zip(xterm_names, xterm_dark) %}{{ name }}={{ hex }};{% endfor %}`)
		write("/tpl/cycle.j2", `{% for c in cycle(base.black, base.white, 3) %}{{ c }} {% endfor %}`)
		write("/tpl/include.j2", `{% include "partials/red.inc" %}`)
		write("/tpl/partials/red.inc", "{{ colors.red }}")
		write("/tpl/go.conf.tmpl", `{{ .colors.blue }} {{ index .xterm_light 0 }} {{ lighten .base.black 0.5 }}`)
		write("/tpl/logic.conf.mustache", `{{colors.green}} {{#nohash}}{{colors.cyan}}{{/nohash}} {{#xterm}}{{base.black}}{{/xterm}}`)

		red, err := theme.Resolve(nil)
		So(err, ShouldBeNil)

		var announced []string
		opts := Options{
			Templates: "/tpl",
			Output:    "/out",
			Engine:    Jinja,
			Theme:     red,
			OnRender:  func(r Result) { announced = append(announced, r.Template) },
		}

		Convey("All templates compile", func() {
			results, err := Run(opts)
			So(err, ShouldBeNil)
			So(results, ShouldHaveLength, 8)
			So(announced, ShouldHaveLength, 8)

			So(read("/out/kitty/theme.conf"), ShouldEqual, "color1 #aa0000")
			So(read("/out/filters"), ShouldEqual, strings.Join([]string{
				"aa0000",
				lo.Must(Darken("#aa0000")),
				lo.Must(Darken("#aa0000", 0.2)),
				"16",
				lo.Must(Lighten(lo.Must(Lighten("#aa0000")))),
			}, " "))
			So(read("/out/cycle"), ShouldEqual, "#000000 #555555 #aaaaaa ")
			So(read("/out/include"), ShouldEqual, "#aa0000")
			So(read("/out/go.conf"), ShouldEqual, "#0000aa #ffffff #808080")
			So(read("/out/logic.conf"), ShouldEqual, "#00aa00 00aaaa 16")

			var pairs strings.Builder
			for i, name := range red.XtermNames {
				pairs.WriteString(name + "=" + red.XtermDark[i].Hex() + ";")
			}
			So(read("/out/zip"), ShouldEqual, pairs.String())
			So(read("/out/zip"), ShouldStartWith, "red=#000000;green=#aa0000;")
		})

		Convey("User overrides reach the output", func() {
			custom, err := theme.Resolve(&theme.File{Colors: map[string]string{"red": "#cc241d"}})
			So(err, ShouldBeNil)
			opts.Theme = custom

			_, err = Run(opts)
			So(err, ShouldBeNil)
			So(read("/out/kitty/theme.conf"), ShouldEqual, "color1 #cc241d")
		})

		Convey("Existing outputs are overwritten", func() {
			write("/out/kitty/theme.conf", "stale content that is longer than the new one")
			_, err := Run(opts)
			So(err, ShouldBeNil)
			So(read("/out/kitty/theme.conf"), ShouldEqual, "color1 #aa0000")
		})

		Convey("Template errors stop the run", func() {
			write("/tpl/broken.j2", "{{ colors.red|darken(")
			_, err := Run(opts)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "broken.j2")
		})

		Convey("Missing mustache partials stop the run", func() {
			write("/tpl/partial.conf.mustache", "{{> nowhere}}")
			_, err := Run(opts)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "nowhere")
		})

		Convey("Markup templates are escaped, others are not", func() {
			write("/tpl/page.html", "{{ note }}")
			write("/tpl/plain.j2", "{{ note }}")
			custom, err := theme.Resolve(&theme.File{Extra: map[string]any{"note": "<b>"}})
			So(err, ShouldBeNil)
			opts.Theme = custom

			_, err = Run(opts)
			So(err, ShouldBeNil)
			So(read("/out/page"), ShouldEqual, "&lt;b&gt;")
			So(read("/out/plain"), ShouldEqual, "<b>")
		})

		Convey("An unknown default engine fails for unbound extensions", func() {
			write("/tpl/Xresources", "{{ colors.red }}")
			opts.Engine = "jinja3"
			_, err := Run(opts)
			So(err, ShouldNotBeNil)
		})

		Convey("A theme is required", func() {
			opts.Theme = nil
			_, err := Run(opts)
			So(err, ShouldNotBeNil)
		})
	})
}
