package attachment

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	"github.com/ledongthuc/pdf"
)

// ErrUnreadablePDF возвращается, если первую страницу PDF не удалось разобрать.
var ErrUnreadablePDF = errors.New("unreadable pdf")

// DefaultThumbScale — масштаб превью относительно размера страницы в пунктах.
const DefaultThumbScale = 0.3

// US Letter, если у страницы нет MediaBox.
const (
	defaultPageWidth  = 612.0
	defaultPageHeight = 792.0
)

// Thumbnailer строит превью первой страницы PDF и возвращает его как PNG data URL.
type Thumbnailer interface {
	Thumbnail(pdfData []byte) (string, error)
}

// PDFThumbnailer рисует упрощённое превью: лист нужных пропорций и
// блоки на местах текстовых фрагментов первой страницы.
type PDFThumbnailer struct {
	Scale float64
}

var (
	paperColor  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	borderColor = color.RGBA{R: 0xc8, G: 0xc8, B: 0xc8, A: 0xff}
	inkColor    = color.RGBA{R: 0x50, G: 0x50, B: 0x50, A: 0xff}
)

// Thumbnail реализует Thumbnailer.
func (t PDFThumbnailer) Thumbnail(pdfData []byte) (thumb string, err error) {
	// парсер pdf паникует на битых файлах
	defer func() {
		if r := recover(); r != nil {
			thumb, err = "", fmt.Errorf("%w: %v", ErrUnreadablePDF, r)
		}
	}()

	scale := t.Scale
	if scale <= 0 {
		scale = DefaultThumbScale
	}

	r, err := pdf.NewReader(bytes.NewReader(pdfData), int64(len(pdfData)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadablePDF, err)
	}
	if r.NumPage() < 1 {
		return "", fmt.Errorf("%w: no pages", ErrUnreadablePDF)
	}
	page := r.Page(1)
	if page.V.IsNull() {
		return "", fmt.Errorf("%w: first page missing", ErrUnreadablePDF)
	}

	pw, ph := pageSize(page)
	w := int(math.Max(1, math.Round(pw*scale)))
	h := int(math.Max(1, math.Round(ph*scale)))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: paperColor}, image.Point{}, draw.Src)
	drawBorder(img, borderColor)

	for _, txt := range page.Content().Text {
		fh := math.Max(1, txt.FontSize*scale*0.7)
		fw := txt.W * scale
		if fw < 1 {
			fw = math.Max(1, fh*0.5)
		}
		x0 := int(txt.X * scale)
		y1 := h - int(txt.Y*scale)
		rect := image.Rect(x0, y1-int(fh), x0+int(math.Ceil(fw)), y1).Intersect(img.Bounds())
		if rect.Empty() {
			continue
		}
		draw.Draw(img, rect, &image.Uniform{C: inkColor}, image.Point{}, draw.Src)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode thumbnail: %w", err)
	}
	return Encode("image/png", buf.Bytes()), nil
}

// pageSize возвращает ширину и высоту страницы в пунктах, учитывая
// MediaBox, унаследованный от родительского узла Pages.
func pageSize(p pdf.Page) (float64, float64) {
	for v := p.V; !v.IsNull(); v = v.Key("Parent") {
		box := v.Key("MediaBox")
		if box.Len() != 4 {
			continue
		}
		w := box.Index(2).Float64() - box.Index(0).Float64()
		h := box.Index(3).Float64() - box.Index(1).Float64()
		if w > 0 && h > 0 {
			return w, h
		}
	}
	return defaultPageWidth, defaultPageHeight
}

func drawBorder(img *image.RGBA, c color.Color) {
	b := img.Bounds()
	for x := b.Min.X; x < b.Max.X; x++ {
		img.Set(x, b.Min.Y, c)
		img.Set(x, b.Max.Y-1, c)
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		img.Set(b.Min.X, y, c)
		img.Set(b.Max.X-1, y, c)
	}
}
