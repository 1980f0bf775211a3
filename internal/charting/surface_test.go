package charting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanvas_SingleOwner(t *testing.T) {
	canvas := NewCanvas(100, 50, FormatPNG)

	require.NoError(t, canvas.Bind("a"))
	require.NoError(t, canvas.Bind("a"))
	assert.ErrorIs(t, canvas.Bind("b"), ErrSurfaceBusy)
	assert.ErrorIs(t, canvas.Paint("b", []byte("x")), ErrSurfaceNotOwned)

	require.NoError(t, canvas.Paint("a", []byte("frame")))
	canvas.Release("b")
	assert.Equal(t, "a", canvas.Owner())

	canvas.Release("a")
	assert.Empty(t, canvas.Owner())
	assert.Equal(t, []byte("frame"), canvas.Frame())
	require.NoError(t, canvas.Bind("b"))
}

func TestCanvas_Resize(t *testing.T) {
	canvas := NewCanvas(100, 50, FormatSVG)
	canvas.Resize(300, 200)

	width, height := canvas.Size()
	assert.Equal(t, 300, width)
	assert.Equal(t, 200, height)
	assert.Equal(t, "image/svg+xml", canvas.ContentType())
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "png", want: FormatPNG},
		{in: "", want: FormatPNG},
		{in: " SVG ", want: FormatSVG},
		{in: "gif", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
