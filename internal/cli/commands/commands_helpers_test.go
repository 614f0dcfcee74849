package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ChatVault/internal/config"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

// fakeCmd позволяет управлять возвратом ошибок из Run
type fakeCmd struct {
	name, usage, desc string
	run               func(ctx context.Context, cfg *config.Config, args []string) error
}

func (f fakeCmd) Name() string        { return f.name }
func (f fakeCmd) Description() string { return f.desc }
func (f fakeCmd) Usage() string       { return f.usage }
func (f fakeCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	return f.run(ctx, cfg, args)
}

// перехват stdout на время теста
func withStdoutCapture(t *testing.T, fn func()) string {
	t.Helper()
	old := Out
	var buf bytes.Buffer
	Out = &buf
	defer func() { Out = old }()
	fn()
	return buf.String()
}

// withStdin подменяет ввод чата.
func withStdin(t *testing.T, input string) {
	t.Helper()
	old := In
	In = strings.NewReader(input)
	t.Cleanup(func() { In = old })
}

// tempConfig — конфиг с базой во временном каталоге.
func tempConfig(t *testing.T) *config.Config {
	t.Helper()
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })
	return &config.Config{
		DBPath:          filepath.Join(t.TempDir(), "vault.sqlite"),
		MaxAttachmentMB: 10,
	}
}

func run(t *testing.T, cmd Command, cfg *config.Config, args ...string) (string, error) {
	t.Helper()
	var err error
	out := withStdoutCapture(t, func() { err = cmd.Run(context.Background(), cfg, args) })
	return out, err
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, data, 0o600))
	return p
}

// chdir меняет рабочий каталог на время теста (аналог t.Chdir из Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}
