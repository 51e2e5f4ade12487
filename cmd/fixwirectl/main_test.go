package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danmuck/fixwire/internal/config"
	"github.com/danmuck/fixwire/internal/protocol"
	"github.com/danmuck/fixwire/internal/protocol/catalog"
	"github.com/danmuck/fixwire/internal/testutil/testlog"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// captureLogs sends the global logger to a buffer for the rest of the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})
	return &buf
}

func mustContain(t *testing.T, out string, parts ...string) {
	t.Helper()
	for _, p := range parts {
		if !strings.Contains(out, p) {
			t.Fatalf("expected output to contain %q, got:\n%s", p, out)
		}
	}
}

func TestEncodeMov(t *testing.T) {
	testlog.Start(t)
	out, err := run(t, "", "encode", "mov", "message_type=MOV", "x_to=13", "y_to=37")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if out != "[     MOV013037]\n" {
		t.Fatalf("unexpected encoding: %q", out)
	}
}

func TestEncodeAtInfoLevelLogsNothing(t *testing.T) {
	testlog.Start(t)
	logs := captureLogs(t)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	out, err := run(t, "", "encode", "mov", "message_type=MOV", "x_to=13", "y_to=37")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if out != "[     MOV013037]\n" {
		t.Fatalf("unexpected encoding: %q", out)
	}
	if logs.Len() != 0 {
		t.Fatalf("expected no log output at the default level, got %q", logs.String())
	}
}

func TestEncodeErrors(t *testing.T) {
	testlog.Start(t)
	cases := []struct {
		args []string
		want error
	}{
		{[]string{"encode", "mov", "x_to=1000"}, protocol.ErrInvalidData},
		{[]string{"encode", "mov", "z_to=1"}, protocol.ErrUnknownField},
		{[]string{"encode", "nope"}, catalog.ErrUnknownSchema},
	}
	for _, tc := range cases {
		if _, err := run(t, "", tc.args...); !errors.Is(err, tc.want) {
			t.Fatalf("%v: expected %v, got %v", tc.args, tc.want, err)
		}
	}

	_, err := run(t, "", "encode", "mov", "x_to")
	if err == nil || !strings.Contains(err.Error(), "want field=value") {
		t.Fatalf("expected field=value error, got %v", err)
	}
	if _, err := run(t, "", "encode", "mov", "x_to=abc"); err == nil {
		t.Fatalf("expected error for non-numeric x_to")
	}
}

func TestDecodeRaw(t *testing.T) {
	testlog.Start(t)
	out, err := run(t, "", "decode", "mov", "[     MOV013037]")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := `begin="[" message_type="MOV" x_to=13 y_to=37 end="]"` + "\n"
	if out != want {
		t.Fatalf("unexpected decode output: %q", out)
	}

	if _, err := run(t, "", "decode", "mov", "X     MOV013037]"); !errors.Is(err, protocol.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := run(t, "", "decode", "mov", "[     MOV0"); !errors.Is(err, protocol.ErrInputTooSmall) {
		t.Fatalf("expected ErrInputTooSmall, got %v", err)
	}
}

func TestDecodeStdinStream(t *testing.T) {
	testlog.Start(t)
	in := "[     MOV001002]\n[  ATTACK003004]\n"
	out, err := run(t, in, "decode", "mov")
	if err != nil {
		t.Fatalf("decode stream: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", out)
	}
	mustContain(t, lines[1], `message_type="ATTACK"`, "y_to=4")
}

func TestListAndSchema(t *testing.T) {
	testlog.Start(t)
	out, err := run(t, "", "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	mustContain(t, out, "mov", "16")

	out, err = run(t, "", "schema", "mov")
	if err != nil {
		t.Fatalf("schema: %v", err)
	}
	mustContain(t, out, "message_type", "number(3)", "total")
}

func TestGeneratedTemplateLoadsOverBuiltins(t *testing.T) {
	testlog.Start(t)
	for _, format := range []string{"toml", "yaml"} {
		t.Run(format, func(t *testing.T) {
			logs := captureLogs(t)
			path := filepath.Join(t.TempDir(), "catalog."+format)
			if err := config.WriteTemplate(path, format, false); err != nil {
				t.Fatalf("write template: %v", err)
			}

			out, err := run(t, "", "--catalog", path, "encode", "mov", "message_type=MOV", "x_to=13", "y_to=37")
			if err != nil {
				t.Fatalf("encode with generated catalog: %v", err)
			}
			if out != "[     MOV013037]\n" {
				t.Fatalf("unexpected encoding: %q", out)
			}
			mustContain(t, logs.String(), `"schema":"mov"`, "replaces built-in schema")
		})
	}
}

func TestConfigCatalogAndTerminator(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()
	catalogPath := filepath.Join(dir, "catalog.yaml")
	if err := config.WriteTemplate(catalogPath, "yaml", false); err != nil {
		t.Fatalf("write template: %v", err)
	}

	cfgPath := filepath.Join(dir, "fixwirectl.toml")
	cfg := "catalog = \"" + filepath.ToSlash(catalogPath) + "\"\nterminator = \"|\"\nlog_level = \"warn\"\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	out, err := run(t, "", "--config", cfgPath, "encode", "mov", "message_type=MOV", "x_to=1", "y_to=2")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if out != "[     MOV001002]|" {
		t.Fatalf("unexpected encoding: %q", out)
	}

	out, err = run(t, "[     MOV001002]|[     MOV003004]", "--config", cfgPath, "decode", "mov")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if n := strings.Count(out, "\n"); n != 2 {
		t.Fatalf("expected 2 decoded records, got %d in %q", n, out)
	}
}

func TestLoadCLIConfig(t *testing.T) {
	testlog.Start(t)
	cfg, err := loadCLIConfig("")
	if err != nil {
		t.Fatalf("default config: %v", err)
	}
	if cfg != defaultCLIConfig() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}

	path := filepath.Join(t.TempDir(), "fixwirectl.toml")
	if err := os.WriteFile(path, []byte("metrics_addr = \" 127.0.0.1:9464 \"\nterminator = \"\"\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err = loadCLIConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.MetricsAddr != "127.0.0.1:9464" || cfg.Terminator != "" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected config: %+v", cfg)
	}

	if err := os.WriteFile(path, []byte("colour = \"red\"\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := loadCLIConfig(path); err == nil || !strings.Contains(err.Error(), "unknown keys") {
		t.Fatalf("expected unknown keys error, got %v", err)
	}
}

func TestUnknownLogLevel(t *testing.T) {
	testlog.Start(t)
	_, err := run(t, "", "--log-level", "loud", "list")
	if err == nil || !strings.Contains(err.Error(), "unknown log level") {
		t.Fatalf("expected unknown log level error, got %v", err)
	}
}
