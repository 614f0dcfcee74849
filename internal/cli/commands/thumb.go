package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"ChatVault/internal/attachment"
	"ChatVault/internal/config"
)

type thumbCmd struct{}

func (thumbCmd) Name() string        { return "thumb" }
func (thumbCmd) Description() string { return "Построить превью первой страницы PDF-вложения" }
func (thumbCmd) Usage() string       { return "thumb [--out=<file.png>] <id>" }

func (thumbCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("thumb", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	out := fs.String("out", "", "куда сохранить PNG")
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
	v, done, err := openVault(ctx, cfg)
	if err != nil {
		return err
	}
	defer done()

	thumb, err := v.EnsureThumbnail(ctx, id)
	if err != nil {
		return err
	}
	_, png, err := attachment.Decode(thumb)
	if err != nil {
		return err
	}
	if *out == "" {
		fmt.Fprintf(Out, "Preview ready: %d bytes PNG\n", len(png))
		return nil
	}
	if err := os.WriteFile(*out, png, 0o600); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Preview saved to %s\n", *out)
	return nil
}

func init() { RegisterCmd(thumbCmd{}) }
