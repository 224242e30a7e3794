package cmd

import (
	"encoding/json"
	"testing"

	"github.com/clipdeck/clipdeck/video"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/cobra"
)

func TestParseID(t *testing.T) {
	Convey("Given video ids from the command line", t, func() {
		Convey("A number should parse", func() {
			id, err := parseID("42")
			So(err, ShouldBeNil)
			So(id, ShouldEqual, int64(42))
		})

		Convey("Negative ids should be rejected", func() {
			_, err := parseID("-1")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "invalid video id")
		})

		Convey("Anything else should be rejected", func() {
			_, err := parseID("forty-two")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "forty-two")
		})
	})
}

func TestFilterVideos(t *testing.T) {
	Convey("Given a list of videos", t, func() {
		videos := []video.Video{
			{ID: 1, Title: "Holiday in Spain", Description: "Beach day"},
			{ID: 2, Title: "Birthday", Description: "Cake"},
			{ID: 3, Title: "Hiking", Description: "Holiday trail"},
		}

		Convey("An empty query should keep everything", func() {
			So(filterVideos(videos, ""), ShouldHaveLength, 3)
		})

		Convey("A query should match titles in server order", func() {
			filtered := filterVideos(videos, "hi")
			So(filtered, ShouldHaveLength, 2)
			So(filtered[0].ID, ShouldEqual, int64(1))
			So(filtered[1].ID, ShouldEqual, int64(3))
		})

		Convey("Descriptions should not be matched", func() {
			filtered := filterVideos(videos, "holiday")
			So(filtered, ShouldHaveLength, 1)
			So(filtered[0].ID, ShouldEqual, int64(1))
		})

		Convey("Fuzzy matches should be case insensitive", func() {
			filtered := filterVideos(videos, "BDAY")
			So(filtered, ShouldHaveLength, 1)
			So(filtered[0].ID, ShouldEqual, int64(2))
		})
	})
}

func TestMaskToken(t *testing.T) {
	Convey("Tokens should be masked except for the last four characters", t, func() {
		So(maskToken("secret-token"), ShouldEqual, "********oken")
		So(maskToken("abc"), ShouldEqual, "***")
	})
}

func TestVideoSchema(t *testing.T) {
	Convey("The list schema should describe an array of videos", t, func() {
		schema := videoSchema()
		So(schema, ShouldNotBeNil)
		So(schema.Type, ShouldEqual, "array")
		So(schema.Ref, ShouldBeEmpty)
		So(schema.Items, ShouldNotBeNil)
		So(schema.Items.Type, ShouldEqual, "object")

		encoded, err := json.Marshal(schema)
		So(err, ShouldBeNil)
		So(string(encoded), ShouldNotContainSubstring, `"clipdeck."`)
	})
}

func visitCommands(c *cobra.Command, fn func(*cobra.Command)) {
	fn(c)
	for _, child := range c.Commands() {
		visitCommands(child, fn)
	}
}

func TestCommandFlags(t *testing.T) {
	Convey("Every command should merge the persistent flags without clashing shorthands", t, func() {
		visitCommands(rootCmd, func(c *cobra.Command) {
			So(func() { c.LocalFlags() }, ShouldNotPanic)
			So(func() { c.InheritedFlags() }, ShouldNotPanic)
		})
	})

	Convey("where --history should have no shorthand", t, func() {
		flag := whereCmd.Flags().Lookup("history")
		So(flag, ShouldNotBeNil)
		So(flag.Shorthand, ShouldBeEmpty)
	})
}
