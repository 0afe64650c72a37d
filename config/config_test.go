package config

import (
	"testing"

	"github.com/makedot/makedot/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			So(Setup(), ShouldBeNil)
			for name := range Default {
				So(viper.IsSet(name), ShouldBeTrue)
			}
			So(viper.GetString(key.RenderEngine), ShouldEqual, "jinja")
		})

		Convey("Should pick up environment overrides", func() {
			t.Setenv("MAKEDOT_RENDER_ENGINE", "mustache")
			So(Setup(), ShouldBeNil)
			So(viper.GetString(key.RenderEngine), ShouldEqual, "mustache")
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("logs.level"), ShouldEqual, "logs_level")
		})
	})
}

func TestFieldEnv(t *testing.T) {
	Convey("Field.Env", t, func() {
		field := Default[key.LogsLevel]
		So(field.Env(), ShouldEqual, "MAKEDOT_LOGS_LEVEL")
	})
}
