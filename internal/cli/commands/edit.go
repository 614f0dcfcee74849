package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"ChatVault/internal/attachment"
	"ChatVault/internal/config"
	"ChatVault/internal/model"
)

type editCmd struct{}

func (editCmd) Name() string { return "edit" }
func (editCmd) Description() string {
	return "Изменить поля документа; файл без --file/--remove-file сохраняется"
}
func (editCmd) Usage() string {
	return "edit [--name=<n>] [--value=<v>] [--info=<i>] [--file=<path>|--remove-file] <id>"
}

func (editCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	name := fs.String("name", "", "новое имя")
	value := fs.String("value", "", "новое значение")
	info := fs.String("info", "", "новая заметка")
	file := fs.String("file", "", "путь к новому вложению")
	removeFile := fs.Bool("remove-file", false, "удалить вложение")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	if fs.NArg() != 1 {
		return ErrUsage
	}
	id, err := parseID(fs.Arg(0))
	if err != nil {
		return err
	}
	if *file != "" && *removeFile {
		return ErrUsage
	}

	// меняем только явно переданные флаги, пустая строка тоже значение
	var upd model.DocumentUpdate
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			upd.Name = name
		case "value":
			upd.Value = value
		case "info":
			upd.Info = info
		}
	})
	upd.RemoveFile = *removeFile
	if *file != "" {
		att, err := attachment.Load(*file, cfg.MaxAttachmentBytes())
		if err != nil {
			return err
		}
		upd.File = &att
	}
	if upd.Empty() {
		return ErrUsage
	}

	v, done, err := openVault(ctx, cfg)
	if err != nil {
		return err
	}
	defer done()
	doc, err := v.Update(ctx, id, upd)
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, "Updated:")
	printDocument(Out, doc)
	return nil
}

func init() { RegisterCmd(editCmd{}) }
