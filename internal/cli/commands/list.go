package commands

import (
	"context"
	"fmt"

	"ChatVault/internal/config"
)

type listCmd struct{}

func (listCmd) Name() string        { return "list" }
func (listCmd) Description() string { return "Показать все документы" }
func (listCmd) Usage() string       { return "list" }

func (listCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	v, done, err := openVault(ctx, cfg)
	if err != nil {
		return err
	}
	defer done()
	list := v.List()
	if len(list) == 0 {
		fmt.Fprintln(Out, "Нет документов")
		return nil
	}
	for _, d := range list {
		printDocument(Out, d)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(list))
	return nil
}

func init() { RegisterCmd(listCmd{}) }
