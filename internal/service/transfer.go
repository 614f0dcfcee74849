package service

import (
	"ChatVault/internal/attachment"
	"ChatVault/internal/model"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// UnnamedDocument — имя для импортированных записей без name.
const UnnamedDocument = "Unnamed"

// ExportFileName — имя файла резервной копии по умолчанию.
const ExportFileName = "vault_backup.json"

const importSchemaJSON = `{"type":"array","items":{"type":"object"}}`

var importSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewStringLoader(importSchemaJSON))
})

// ParseImport разбирает файл импорта и нормализует каждую запись.
// Поддерживаются старые формы записей: без file или с file в виде строки data URL.
func ParseImport(data []byte) ([]model.Document, error) {
	schema, err := importSchema()
	if err != nil {
		return nil, fmt.Errorf("compile import schema: %w", err)
	}
	res, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedImport, err)
	}
	if !res.Valid() {
		errs := res.Errors()
		return nil, fmt.Errorf("%w: %s", ErrMalformedImport, errs[0].String())
	}

	var records []map[string]any
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedImport, err)
	}
	docs := make([]model.Document, 0, len(records))
	for _, rec := range records {
		docs = append(docs, normalizeRecord(rec))
	}
	return docs, nil
}

func normalizeRecord(rec map[string]any) model.Document {
	name := strings.TrimSpace(stringField(rec, "name"))
	if name == "" {
		name = UnnamedDocument
	}
	return model.Document{
		Name:  name,
		Value: stringField(rec, "value"),
		Info:  stringField(rec, "info"),
		File:  fileField(rec["file"]),
	}
}

func stringField(rec map[string]any, key string) string {
	s, _ := rec[key].(string)
	return s
}

func fileField(v any) *model.Attachment {
	switch f := v.(type) {
	case map[string]any:
		data := stringField(f, "data")
		if data == "" {
			return nil
		}
		att := &model.Attachment{Name: stringField(f, "name"), Type: stringField(f, "type"), Data: data}
		if att.Type == "" {
			att.Type = attachment.MediaType(data)
		}
		if att.Name == "" {
			att.Name = "attachment"
		}
		return att
	case string:
		if !strings.HasPrefix(f, "data:") {
			return nil
		}
		return &model.Attachment{Name: "attachment", Type: attachment.MediaType(f), Data: f}
	default:
		return nil
	}
}

// WriteExport пишет документы JSON-массивом с отступом в два пробела.
func WriteExport(w io.Writer, docs []model.Document) error {
	if docs == nil {
		docs = []model.Document{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(docs)
}
