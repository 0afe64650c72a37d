package theme

import (
	"strconv"
	"testing"

	"github.com/makedot/makedot/palette"
	. "github.com/smartystreets/goconvey/convey"
)

func TestResolveDefaults(t *testing.T) {
	Convey("Given only a white override", t, func() {
		theme, err := Resolve(&File{Base: map[string]string{White: "#fafafa"}})
		So(err, ShouldBeNil)

		Convey("The override wins over the default", func() {
			So(theme.Base[White].Hex(), ShouldEqual, "#fafafa")
			So(theme.Base[Black].Hex(), ShouldEqual, "#000000")
		})

		Convey("All default accents are present", func() {
			for name, hex := range DefaultColors() {
				So(theme.Colors[name].Hex(), ShouldEqual, hex)
			}
		})

		Convey("Both terminal tables are complete and valid", func() {
			vars := theme.Vars()
			for _, group := range []string{"xterm_dark", "xterm_light"} {
				table := vars[group].([]string)
				So(table, ShouldHaveLength, 16)
				for _, hex := range table {
					_, err := palette.Parse(hex)
					So(err, ShouldBeNil)
				}
			}
		})

		Convey("The dark table follows the slot layout", func() {
			dark := theme.XtermDark
			So(dark[0].Hex(), ShouldEqual, "#000000")
			So(dark[15].Hex(), ShouldEqual, "#fafafa")
			So(dark[1].Hex(), ShouldEqual, "#aa0000")
			So(dark[6].Hex(), ShouldEqual, "#00aaaa")
			So(dark[9].Hex(), ShouldEqual, palette.MustParse("#aa0000").Lighten().Lighten().Hex())
			So(dark[8].Hex(), ShouldEqual, palette.MustParse("#111111").Lighten().Lighten().Hex())
			So(dark[7].Hex(), ShouldEqual, palette.MustParse("#eeeeee").Darken().Darken().Hex())
		})

		Convey("The light table mirrors it", func() {
			light := theme.XtermLight
			So(light[0].Hex(), ShouldEqual, "#fafafa")
			So(light[15].Hex(), ShouldEqual, "#000000")
			So(light[4].Hex(), ShouldEqual, "#0000aa")
			So(light[12].Hex(), ShouldEqual, palette.MustParse("#0000aa").Darken().Darken().Hex())
		})
	})

	Convey("Given a nil file", t, func() {
		theme, err := Resolve(nil)
		So(err, ShouldBeNil)
		So(theme.XtermNames, ShouldResemble, AccentNames)
	})
}

func TestResolveOverrides(t *testing.T) {
	Convey("Given user accents", t, func() {
		file := &File{
			Colors: map[string]string{
				"red":       "#cc241d",
				"red_light": "#fb4934",
				"orange":    "#d65d0e",
			},
			XtermNames: []string{"orange", "green", "yellow", "blue", "magenta", "cyan"},
			Extra:      map[string]any{"font": "Iosevka"},
		}

		theme, err := Resolve(file)
		So(err, ShouldBeNil)

		Convey("Names decide the slot order", func() {
			So(theme.XtermDark[1].Hex(), ShouldEqual, "#d65d0e")
		})

		Convey("An explicit _light variant fills the bright slot", func() {
			file.XtermNames = nil
			theme, err := Resolve(file)
			So(err, ShouldBeNil)
			So(theme.XtermDark[9].Hex(), ShouldEqual, "#fb4934")
			So(theme.XtermLight[9].Hex(), ShouldEqual, "#fb4934")
		})

		Convey("Extra keys reach the template variables", func() {
			vars := theme.Vars()
			So(vars["font"], ShouldEqual, "Iosevka")
			So(vars["colors"].(map[string]string)["orange"], ShouldEqual, "#d65d0e")
		})
	})

	Convey("Given an explicit terminal table", t, func() {
		table := map[string]string{}
		for i := 0; i < 16; i++ {
			table[strconv.Itoa(i)] = "#123456"
		}

		Convey("It is used as is", func() {
			theme, err := Resolve(&File{XtermDark: table})
			So(err, ShouldBeNil)
			So(theme.XtermDark[12].Hex(), ShouldEqual, "#123456")
			So(theme.XtermLight[0].Hex(), ShouldEqual, "#ffffff")
		})

		Convey("A missing slot fails", func() {
			delete(table, "7")
			_, err := Resolve(&File{XtermDark: table})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "missing slot 7")
		})

		Convey("An out of range slot fails", func() {
			table["16"] = "#000000"
			_, err := Resolve(&File{XtermLight: table})
			So(err, ShouldNotBeNil)
		})
	})
}

func TestResolveErrors(t *testing.T) {
	Convey("Resolve fails", t, func() {
		Convey("On malformed colors", func() {
			_, err := Resolve(&File{Colors: map[string]string{"red": "crimson"}})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "colors.red")
		})

		Convey("On unknown xterm names, suggesting the closest one", func() {
			_, err := Resolve(&File{XtermNames: []string{"red", "green", "yellow", "blu", "magenta", "cyan"}})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, `did you mean "blue"`)
		})

		Convey("On a wrong number of xterm names", func() {
			_, err := Resolve(&File{XtermNames: []string{"red"}})
			So(err, ShouldNotBeNil)
		})
	})
}
