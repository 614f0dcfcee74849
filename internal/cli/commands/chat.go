package commands

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"ChatVault/internal/config"
)

type chatCmd struct{}

func (chatCmd) Name() string        { return "chat" }
func (chatCmd) Description() string { return "Интерактивный чат с хранилищем (exit — выход)" }
func (chatCmd) Usage() string       { return "chat" }

func (chatCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	v, done, err := openVault(ctx, cfg)
	if err != nil {
		return err
	}
	defer done()

	replyColor.Fprintf(Out, "ChatVault: %d documents. Ask me anything, \"exit\" to quit.\n", v.Mirror().Len())
	sc := bufio.NewScanner(In)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for {
		fmt.Fprint(Out, "> ")
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}
		printResult(ctx, Out, v, v.Resolve(line))
		if ctx.Err() != nil {
			break
		}
	}
	fmt.Fprintln(Out)
	return sc.Err()
}

func init() { RegisterCmd(chatCmd{}) }
