// Package attachment работает со встроенными во документы файлами:
// классификация по MIME-типу, кодирование data URL, загрузка с диска и превью PDF.
package attachment

import (
	"mime"
	"strings"
)

// Kind — закрытый набор видов вложений; от него зависит способ отображения.
type Kind int

const (
	// KindOther — произвольный файл, показывается ссылкой на скачивание.
	KindOther Kind = iota
	// KindImage — изображение, показывается превью.
	KindImage
	// KindPDF — PDF, показывается превью первой страницы (pdfThumb).
	KindPDF
)

func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindPDF:
		return "pdf"
	default:
		return "other"
	}
}

// Classify определяет вид вложения по заявленному MIME-типу.
func Classify(mimeType string) Kind {
	mt, _, err := mime.ParseMediaType(mimeType)
	if err != nil {
		mt = strings.ToLower(strings.TrimSpace(mimeType))
	}
	switch {
	case strings.HasPrefix(mt, "image/"):
		return KindImage
	case mt == "application/pdf":
		return KindPDF
	default:
		return KindOther
	}
}
