package auth

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/zalando/go-keyring"
)

func init() {
	keyring.MockInit()
}

func TestToken(t *testing.T) {
	Convey("Given an empty keyring", t, func() {
		So(DeleteToken(), ShouldBeNil)

		Convey("Token should be empty without an error", func() {
			token, err := Token()
			So(err, ShouldBeNil)
			So(token, ShouldBeEmpty)
		})

		Convey("When a token is saved", func() {
			So(SetToken("secret"), ShouldBeNil)

			Convey("It should be returned", func() {
				token, err := Token()
				So(err, ShouldBeNil)
				So(token, ShouldEqual, "secret")
			})

			Convey("Deleting it should leave nothing behind", func() {
				So(DeleteToken(), ShouldBeNil)
				token, err := Token()
				So(err, ShouldBeNil)
				So(token, ShouldBeEmpty)
			})
		})
	})
}
