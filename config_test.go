package imui_test

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/go-theft-auto/imui"
)

func TestParseConfig(t *testing.T) {
	cfg, err := imui.ParseConfig([]byte(`
chunk_capacity = 64
max_chunks = 8
topology = "vertex_strip"
vertex_format = ["clip_pos:float2", "color:float4"]
verbose = false
`))
	if err != nil {
		t.Fatalf("ParseConfig() returned error: %v", err)
	}
	if cfg.ChunkCapacity != 64 || cfg.MaxChunks != 8 || cfg.Topology != imui.VertexStrip {
		t.Errorf("config = %+v", cfg)
	}
	want := imui.VertexFormat{
		{Semantic: imui.SemanticClipPos, Type: imui.Float2},
		{Semantic: imui.SemanticColor, Type: imui.Float4},
	}
	if !slices.Equal(cfg.VertexFormat, want) {
		t.Errorf("vertex format = %v, want %v", cfg.VertexFormat, want)
	}

	ctx, err := imui.New(imui.WithConfig(cfg), imui.WithLogger(quietLogger))
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	defer ctx.Close()
	if ctx.Topology() != imui.VertexStrip || ctx.VertexFormat().Stride() != 24 {
		t.Errorf("context topology %v stride %d", ctx.Topology(), ctx.VertexFormat().Stride())
	}
}

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := imui.ParseConfig([]byte("max_chunks = 2\n"))
	if err != nil {
		t.Fatal(err)
	}
	def := imui.DefaultConfig()
	if cfg.ChunkCapacity != def.ChunkCapacity || cfg.Topology != def.Topology {
		t.Errorf("unset keys should keep defaults, got %+v", cfg)
	}
	if !slices.Equal(cfg.VertexFormat, imui.DefaultVertexFormat) {
		t.Errorf("vertex format = %v", cfg.VertexFormat)
	}
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"unknown key", "chunk_size = 4\n", "unknown keys chunk_size"},
		{"bad topology", `topology = "fan"`, "unknown topology"},
		{"bad element", `vertex_format = ["pos:float2"]`, "invalid vertex format"},
		{"empty format", `vertex_format = []`, "no elements"},
		{"syntax", "chunk_capacity = ", "parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := imui.ParseConfig([]byte(tt.data))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "imui.toml")
	if err := os.WriteFile(path, []byte(`topology = "indexed_strip"`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := imui.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() returned error: %v", err)
	}
	if cfg.Topology != imui.IndexedStrip {
		t.Errorf("topology = %v", cfg.Topology)
	}

	_, err = imui.LoadConfig(filepath.Join(dir, "missing.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: got %v, want os.ErrNotExist", err)
	}
}
