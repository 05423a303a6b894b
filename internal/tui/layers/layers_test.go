package layers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCentered(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		w, h         int
		wantX, wantY int
	}{
		{"fits", "ab\ncd", 10, 6, 4, 2},
		{"wider than screen", "abcdefghij", 4, 3, 0, 1},
		{"empty screen", "x", 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := Centered(tt.content, tt.w, tt.h)
			assert.Equal(t, tt.wantX, x)
			assert.Equal(t, tt.wantY, y)
		})
	}
}

func TestPlace(t *testing.T) {
	bg := "..........\n..........\n.........."

	assert.Equal(t, "..........\n...XY.....\n..........", Place(bg, "XY", 3, 1))
	assert.Equal(t, bg, Place(bg, "", 3, 1))
}

func TestPlaceExtendsShortBackground(t *testing.T) {
	out := Place("ab", "Z", 3, 1)
	assert.Equal(t, "ab\n   Z", out)
}

func TestPlaceCentered(t *testing.T) {
	bg := "......\n......\n......"
	assert.Equal(t, "......\n..OK..\n......", PlaceCentered(bg, "OK", 6, 3))
}

func TestModalWidth(t *testing.T) {
	assert.Equal(t, ModalMinWidth, ModalWidth(20))
	assert.Equal(t, 50, ModalWidth(100))
	assert.Equal(t, ModalMaxWidth, ModalWidth(400))
}
