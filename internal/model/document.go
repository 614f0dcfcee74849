package model

import "time"

// Attachment — файл, встроенный в документ целиком (data URL), а не ссылка на него.
type Attachment struct {
	Name string `json:"name"`
	Type string `json:"type"` // MIME-тип, например "application/pdf"
	Data string `json:"data"` // data:<mime>;base64,<payload>
}

// Document — единственная сохраняемая сущность хранилища.
type Document struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Value string `json:"value"`
	Info  string `json:"info"`

	File *Attachment `json:"file"`

	// PdfThumb — PNG-превью первой страницы (data URL), только для PDF-вложений.
	PdfThumb string `json:"pdfThumb,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// HasFile сообщает, есть ли у документа вложение.
func (d Document) HasFile() bool { return d.File != nil && d.File.Data != "" }

// Clone возвращает копию документа, не разделяющую вложение с оригиналом.
func (d Document) Clone() Document {
	if d.File != nil {
		f := *d.File
		d.File = &f
	}
	return d
}

// DocumentUpdate — частичное обновление. nil-поля не меняются.
// File == nil сохраняет текущее вложение; RemoveFile удаляет его.
type DocumentUpdate struct {
	Name       *string
	Value      *string
	Info       *string
	File       *Attachment
	RemoveFile bool
}

// Empty сообщает, что обновление ничего не меняет.
func (u DocumentUpdate) Empty() bool {
	return u.Name == nil && u.Value == nil && u.Info == nil && u.File == nil && !u.RemoveFile
}

// Apply накладывает обновление на документ. Новое вложение или его удаление
// сбрасывает PdfThumb: превью строилось по старому файлу.
func (d Document) Apply(u DocumentUpdate) Document {
	d = d.Clone()
	if u.Name != nil {
		d.Name = *u.Name
	}
	if u.Value != nil {
		d.Value = *u.Value
	}
	if u.Info != nil {
		d.Info = *u.Info
	}
	switch {
	case u.File != nil:
		f := *u.File
		d.File = &f
		d.PdfThumb = ""
	case u.RemoveFile:
		d.File = nil
		d.PdfThumb = ""
	}
	return d
}
