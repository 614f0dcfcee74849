package attachment

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrInvalidDataURL возвращается, если строка не является data URL.
var ErrInvalidDataURL = errors.New("invalid data URL")

// Encode упаковывает содержимое в data URL: data:<mime>;base64,<payload>.
func Encode(mimeType string, data []byte) string {
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// Decode разбирает data URL и возвращает MIME-тип и содержимое.
// Поддерживаются base64 и percent-encoded варианты.
func Decode(dataURL string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return "", nil, ErrInvalidDataURL
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, ErrInvalidDataURL
	}
	isBase64 := false
	if m, found := strings.CutSuffix(meta, ";base64"); found {
		meta, isBase64 = m, true
	}
	mimeType := meta
	if mimeType == "" {
		mimeType = "text/plain;charset=US-ASCII"
	}
	if isBase64 {
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %v", ErrInvalidDataURL, err)
		}
		return mimeType, data, nil
	}
	s, err := url.PathUnescape(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidDataURL, err)
	}
	return mimeType, []byte(s), nil
}

// MediaType возвращает MIME-тип из data URL без декодирования содержимого.
func MediaType(dataURL string) string {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return ""
	}
	meta, _, _ := strings.Cut(rest, ",")
	meta = strings.TrimSuffix(meta, ";base64")
	return meta
}
