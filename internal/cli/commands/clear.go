package commands

import (
	"context"
	"fmt"

	"ChatVault/internal/config"
)

type clearCmd struct{}

func (clearCmd) Name() string        { return "clear" }
func (clearCmd) Description() string { return "Удалить все документы (нужен --yes)" }
func (clearCmd) Usage() string       { return "clear --yes" }

func (clearCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 || args[0] != "--yes" {
		return ErrUsage
	}
	v, done, err := openVault(ctx, cfg)
	if err != nil {
		return err
	}
	defer done()
	n := v.Mirror().Len()
	if err := v.Clear(ctx); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Cleared: %d documents\n", n)
	return nil
}

func init() { RegisterCmd(clearCmd{}) }
