package attachment

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"ChatVault/internal/model"
)

// ErrTooLarge возвращается, если файл превышает допустимый размер.
var ErrTooLarge = errors.New("attachment too large")

// Load читает файл с диска и превращает его во встроенное вложение.
// MIME-тип берётся по расширению, иначе определяется по содержимому.
// maxBytes <= 0 отключает ограничение размера.
func Load(path string, maxBytes int64) (model.Attachment, error) {
	st, err := os.Stat(path)
	if err != nil {
		return model.Attachment{}, fmt.Errorf("stat attachment: %w", err)
	}
	if st.IsDir() {
		return model.Attachment{}, fmt.Errorf("attachment %q is a directory", path)
	}
	if maxBytes > 0 && st.Size() > maxBytes {
		return model.Attachment{}, fmt.Errorf("%w: %d bytes (limit %d)", ErrTooLarge, st.Size(), maxBytes)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Attachment{}, fmt.Errorf("read attachment: %w", err)
	}
	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}
	return model.Attachment{
		Name: filepath.Base(path),
		Type: mimeType,
		Data: Encode(mimeType, data),
	}, nil
}
