package util

import (
	"testing"

	"github.com/makedot/makedot/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "template", "templates"), ShouldEqual, "1 template")
		So(Quantify(2, "template", "templates"), ShouldEqual, "2 templates")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("hello"), ShouldEqual, "Hello")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestFileStem(t *testing.T) {
	Convey("FileStem", t, func() {
		So(FileStem("path/to/file.txt"), ShouldEqual, "file")
		So(FileStem("file"), ShouldEqual, "file")
		So(FileStem("kitty/theme.conf.j2"), ShouldEqual, "theme.conf")
		So(FileStem(".bashrc"), ShouldEqual, ".bashrc")
		So(FileStem(".bashrc.j2"), ShouldEqual, ".bashrc")
	})
}

func TestDelete(t *testing.T) {
	Convey("Delete", t, func() {
		filesystem.SetMemMapFs()
		api := filesystem.API()
		So(api.WriteFile("/compiled/kitty/theme.conf", []byte("x"), 0o644), ShouldBeNil)

		Convey("Should remove single files", func() {
			So(Delete("/compiled/kitty/theme.conf"), ShouldBeNil)
			So(lo.Must(api.Exists("/compiled/kitty/theme.conf")), ShouldBeFalse)
		})

		Convey("Should remove directories recursively", func() {
			So(Delete("/compiled"), ShouldBeNil)
			So(lo.Must(api.Exists("/compiled")), ShouldBeFalse)
		})

		Convey("Should fail on missing paths", func() {
			So(Delete("/nowhere"), ShouldNotBeNil)
		})
	})
}
