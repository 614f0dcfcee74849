package commands

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"ChatVault/internal/attachment"
	"ChatVault/internal/cli/bootstrap"
	"ChatVault/internal/config"
	"ChatVault/internal/model"
	"ChatVault/internal/resolver"
	"ChatVault/internal/service"

	"github.com/fatih/color"
)

var (
	replyColor = color.New(color.FgCyan)
	matchColor = color.New(color.FgGreen)
	fileColor  = color.New(color.FgYellow)
	errColor   = color.New(color.FgRed)
)

// openVault — общий путь открытия хранилища для команд.
func openVault(ctx context.Context, cfg *config.Config) (*service.Vault, func() error, error) {
	return bootstrap.OpenVault(ctx, cfg, Logger)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrUsage
	}
	return id, nil
}

// printResult печатает ответ резолвера. Для PDF без превью оно строится
// и сохраняется сразу, как при первом показе в чате.
func printResult(ctx context.Context, w io.Writer, v *service.Vault, res resolver.Result) {
	if res.Reply != "" {
		replyColor.Fprintln(w, res.Reply)
	}
	for _, m := range res.Matches {
		matchColor.Fprintln(w, m.Text)
		printAttachment(ctx, w, v, m.Kind, m.Document)
	}
}

func printAttachment(ctx context.Context, w io.Writer, v *service.Vault, kind attachment.Kind, d model.Document) {
	if !d.HasFile() {
		return
	}
	switch kind {
	case attachment.KindImage:
		fileColor.Fprintf(w, "   [image] %s\n", d.File.Name)
	case attachment.KindPDF:
		status := "preview ready"
		if d.PdfThumb == "" && v != nil {
			if _, err := v.EnsureThumbnail(ctx, d.ID); err != nil {
				Logger.Warnw("pdf preview failed", "id", d.ID, "error", err)
				status = "no preview"
			}
		}
		fileColor.Fprintf(w, "   [pdf] %s (%s)\n", d.File.Name, status)
	default:
		fileColor.Fprintf(w, "   [file] %s\n", d.File.Name)
	}
}

func printDocument(w io.Writer, d model.Document) {
	fmt.Fprintf(w, "- %d  %s: %s\n", d.ID, d.Name, d.Value)
	if d.Info != "" {
		fmt.Fprintf(w, "    info: %s\n", d.Info)
	}
	if d.HasFile() {
		fmt.Fprintf(w, "    file: %s (%s, %s)\n", d.File.Name, d.File.Type, attachment.Classify(d.File.Type))
	}
}
