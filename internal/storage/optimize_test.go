package storage

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestPNG сохраняет одноцветное изображение заданного размера.
func writeTestPNG(t *testing.T, path string, width, height int, c color.Color) {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, png.Encode(f, img))
}

func openImage(t *testing.T, path string) image.Image {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, _, err := image.Decode(f)
	require.NoError(t, err)
	return img
}

func TestOptimize(t *testing.T) {
	t.Run("Большое изображение вписывается в рамку", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "big.png")
		writeTestPNG(t, path, 1200, 900, color.NRGBA{R: 200, G: 100, B: 50, A: 255})

		err := Optimize(path, DefaultMaxWidth, DefaultMaxHeight, DefaultQuality)

		require.NoError(t, err)
		img := openImage(t, path)
		assert.Equal(t, 800, img.Bounds().Dx())
		assert.Equal(t, 600, img.Bounds().Dy(), "пропорции 4:3 сохраняются")
	})

	t.Run("Небольшое изображение не увеличивается", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "small.png")
		writeTestPNG(t, path, 300, 200, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

		err := Optimize(path, DefaultMaxWidth, DefaultMaxHeight, DefaultQuality)

		require.NoError(t, err)
		img := openImage(t, path)
		assert.Equal(t, 300, img.Bounds().Dx())
		assert.Equal(t, 200, img.Bounds().Dy())
	})

	t.Run("Прозрачность отбрасывается", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "alpha.png")
		writeTestPNG(t, path, 100, 100, color.NRGBA{R: 255, G: 0, B: 0, A: 0})

		err := Optimize(path, DefaultMaxWidth, DefaultMaxHeight, DefaultQuality)

		require.NoError(t, err)
		img := openImage(t, path)
		_, _, _, a := img.At(50, 50).RGBA()
		assert.Equal(t, uint32(0xFFFF), a, "результат полностью непрозрачный")
	})

	t.Run("Битый файл оставляет содержимое нетронутым", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.jpg")
		garbage := []byte("this is not an image at all")
		require.NoError(t, os.WriteFile(path, garbage, 0644))

		err := Optimize(path, DefaultMaxWidth, DefaultMaxHeight, DefaultQuality)

		assert.Error(t, err)
		data, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Equal(t, garbage, data)
	})

	t.Run("Отсутствующий файл возвращает ошибку", func(t *testing.T) {
		err := Optimize(filepath.Join(t.TempDir(), "missing.png"), DefaultMaxWidth, DefaultMaxHeight, DefaultQuality)

		assert.Error(t, err)
	})
}

func TestFlatten(t *testing.T) {
	t.Run("Палитра разворачивается", func(t *testing.T) {
		src := image.NewPaletted(image.Rect(0, 0, 4, 4), color.Palette{
			color.NRGBA{R: 1, G: 2, B: 3, A: 255},
		})

		flat := flatten(src)

		_, ok := flat.(*image.NRGBA)
		assert.True(t, ok)
	})

	t.Run("Серое изображение проходит без изменений", func(t *testing.T) {
		src := image.NewGray(image.Rect(0, 0, 4, 4))

		assert.Same(t, image.Image(src), flatten(src))
	})
}
