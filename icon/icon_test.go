package icon

import (
	"testing"

	"github.com/clipdeck/clipdeck/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	Convey("Given every registered icon", t, func() {
		Reset(func() { viper.Set(key.IconsVariant, plain) })

		for i := range icons {
			for _, variant := range AvailableVariants() {
				viper.Set(key.IconsVariant, variant)
				So(Get(i), ShouldNotBeEmpty)
			}
		}

		Convey("An unknown variant should render nothing", func() {
			viper.Set(key.IconsVariant, "hieroglyphs")
			So(Get(Success), ShouldBeEmpty)
		})

		Convey("An unknown icon should render nothing", func() {
			viper.Set(key.IconsVariant, plain)
			So(Get(Icon(-1)), ShouldBeEmpty)
		})
	})
}
