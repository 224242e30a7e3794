package config

import (
	"testing"

	"github.com/clipdeck/clipdeck/filesystem"
	"github.com/clipdeck/clipdeck/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given a fresh config", t, func() {
		So(Setup(), ShouldBeNil)

		Convey("Every registered field should have its default", func() {
			So(len(Default), ShouldEqual, key.DefinedFieldsCount)
			for name, field := range Default {
				So(viper.Get(name), ShouldEqual, field.Value)
			}
		})

		Convey("The service URL should point at the local API by default", func() {
			So(viper.GetString(key.APIURL), ShouldEqual, "http://localhost:8080/api/v1/videos")
			So(viper.GetInt(key.APITimeout), ShouldEqual, 0)
		})

		Convey("Env names should carry the application prefix", func() {
			field := Default[key.APIURL]
			So(field.Env(), ShouldEqual, "CLIPDECK_API_URL")
		})

		Convey("The environment should override the default", func() {
			t.Setenv("CLIPDECK_API_URL", "http://media.test/api")
			So(viper.GetString(key.APIURL), ShouldEqual, "http://media.test/api")
		})

		Convey("Pretty should mention the key and env", func() {
			field := Default[key.Player]
			pretty := field.Pretty()
			So(pretty, ShouldContainSubstring, key.Player)
			So(pretty, ShouldContainSubstring, "CLIPDECK_PLAYER_DEFAULT")
		})
	})
}
