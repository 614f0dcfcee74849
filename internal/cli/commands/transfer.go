package commands

import (
	"context"
	"fmt"
	"os"

	"ChatVault/internal/config"
	"ChatVault/internal/service"
)

type exportCmd struct{}

func (exportCmd) Name() string { return "export" }
func (exportCmd) Description() string {
	return "Сохранить все документы в JSON (по умолчанию vault_backup.json, - для stdout)"
}
func (exportCmd) Usage() string { return "export [<path>|-]" }

func (exportCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) > 1 {
		return ErrUsage
	}
	path := service.ExportFileName
	if len(args) == 1 {
		path = args[0]
	}
	v, done, err := openVault(ctx, cfg)
	if err != nil {
		return err
	}
	defer done()

	if path == "-" {
		return v.Export(Out)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	if err := v.Export(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Exported %d documents to %s\n", v.Mirror().Len(), path)
	return nil
}

type importCmd struct{}

func (importCmd) Name() string        { return "import" }
func (importCmd) Description() string { return "Добавить документы из JSON-файла резервной копии" }
func (importCmd) Usage() string       { return "import <path>" }

func (importCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	v, done, err := openVault(ctx, cfg)
	if err != nil {
		return err
	}
	defer done()
	n, err := v.Import(ctx, f)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Imported: %d documents\n", n)
	return nil
}

func init() {
	RegisterCmd(exportCmd{})
	RegisterCmd(importCmd{})
}
