package filesystem

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			fs := API()
			So(fs.Name(), ShouldEqual, "MemMapFS")

			Convey("And keep written files in memory", func() {
				So(fs.WriteFile("/tmp/colors.conf", []byte("#aa0000"), 0o644), ShouldBeNil)
				data, err := API().ReadFile("/tmp/colors.conf")
				So(err, ShouldBeNil)
				So(string(data), ShouldEqual, "#aa0000")
			})
		})
	})
}
