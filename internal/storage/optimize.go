package storage

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // регистрирует декодер webp
)

const (
	DefaultMaxWidth  = 800
	DefaultMaxHeight = 800
	DefaultQuality   = 85
)

// Optimize перекодирует изображение на месте: декодирует файл, отбрасывает
// альфа-канал и палитру, вписывает в рамку maxWidth x maxHeight (без
// увеличения) и сохраняет с заданным качеством. Шаг необязательный: при
// любой ошибке файл остаётся тем, что записала загрузка.
func Optimize(path string, maxWidth, maxHeight, quality int) error {
	img, err := imaging.Open(path)
	if err != nil {
		return fmt.Errorf("не удалось декодировать изображение: %w", err)
	}

	img = flatten(img)

	// Fit сохраняет пропорции и не увеличивает меньшие изображения
	img = imaging.Fit(img, maxWidth, maxHeight, imaging.Lanczos)

	if err := imaging.Save(img, path, imaging.JPEGQuality(quality)); err != nil {
		return fmt.Errorf("не удалось сохранить изображение: %w", err)
	}

	return nil
}

// flatten приводит изображения с альфа-каналом или палитрой к обычной
// трёхканальной модели. Альфа отбрасывается, а не накладывается на фон.
func flatten(img image.Image) image.Image {
	switch img.(type) {
	case *image.NRGBA, *image.RGBA, *image.NRGBA64, *image.RGBA64, *image.Paletted:
	default:
		return img
	}

	bounds := img.Bounds()
	flat := image.NewNRGBA(bounds)
	draw.Draw(flat, bounds, img, bounds.Min, draw.Src)
	for i := 3; i < len(flat.Pix); i += 4 {
		flat.Pix[i] = 0xFF
	}

	return flat
}
