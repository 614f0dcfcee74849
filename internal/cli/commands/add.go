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

type addCmd struct{}

func (addCmd) Name() string        { return "add" }
func (addCmd) Description() string { return "Добавить документ (опционально с заметкой и файлом)" }
func (addCmd) Usage() string {
	return "add [--info=<text>] [--file=<path>] <name> [<value>]"
}

func (addCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	// флаги допускаются только перед позиционными аргументами
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	info := fs.String("info", "", "заметка")
	file := fs.String("file", "", "путь к вложению")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	rest := fs.Args()
	if len(rest) < 1 || len(rest) > 2 {
		return ErrUsage
	}
	doc := model.Document{Name: rest[0], Info: *info}
	if len(rest) == 2 {
		doc.Value = rest[1]
	}
	if *file != "" {
		att, err := attachment.Load(*file, cfg.MaxAttachmentBytes())
		if err != nil {
			return err
		}
		doc.File = &att
	}

	v, done, err := openVault(ctx, cfg)
	if err != nil {
		return err
	}
	defer done()
	saved, err := v.Add(ctx, doc)
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, "Created:")
	fmt.Fprintf(Out, "  id:   %d\n", saved.ID)
	fmt.Fprintf(Out, "  name: %s\n", saved.Name)
	if saved.HasFile() {
		fmt.Fprintf(Out, "  file: %s (%s)\n", saved.File.Name, attachment.Classify(saved.File.Type))
	}
	return nil
}

func init() { RegisterCmd(addCmd{}) }
