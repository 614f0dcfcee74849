package commands

import (
	"context"
	"strings"

	"ChatVault/internal/config"
)

type askCmd struct{}

func (askCmd) Name() string        { return "ask" }
func (askCmd) Description() string { return "Задать один вопрос, как в чате" }
func (askCmd) Usage() string       { return "ask <text...>" }

func (askCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return ErrUsage
	}
	v, done, err := openVault(ctx, cfg)
	if err != nil {
		return err
	}
	defer done()
	printResult(ctx, Out, v, v.Resolve(text))
	return nil
}

func init() { RegisterCmd(askCmd{}) }
