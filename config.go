package imui

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds the construction-time settings of a Context. It can be
// loaded from TOML:
//
//	chunk_capacity = 512
//	max_chunks = 64
//	topology = "indexed_list"
//	vertex_format = ["screen_pos:float2", "uv:float2", "color:uint1"]
type Config struct {
	// ChunkCapacity is the number of widgets per arena chunk.
	ChunkCapacity int `toml:"chunk_capacity"`
	// MaxChunks limits the arena; 0 means unlimited. When the limit is
	// reached, widget allocation fails for the rest of the frame.
	MaxChunks    int          `toml:"max_chunks"`
	VertexFormat VertexFormat `toml:"vertex_format"`
	Topology     Topology     `toml:"topology"`
	Verbose      bool         `toml:"verbose"`

	Logger *slog.Logger `toml:"-"`
}

// DefaultConfig returns the settings New starts from.
func DefaultConfig() Config {
	return Config{
		ChunkCapacity: DefaultChunkCapacity,
		VertexFormat:  slices.Clone(DefaultVertexFormat),
		Topology:      IndexedList,
	}
}

// ParseConfig decodes TOML on top of DefaultConfig. Unknown keys are an error.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("imui: parse config: %w", err)
	}
	if un := md.Undecoded(); len(un) > 0 {
		keys := make([]string, len(un))
		for i, k := range un {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("imui: parse config: unknown keys %s", strings.Join(keys, ", "))
	}
	if err := cfg.VertexFormat.Validate(); err != nil {
		return Config{}, fmt.Errorf("imui: parse config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads and parses a TOML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("imui: load config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Option configures a Context.
type Option func(*Config)

// WithConfig replaces all settings with c.
func WithConfig(c Config) Option {
	return func(cfg *Config) { *cfg = c }
}

// WithChunkCapacity sets the number of widgets per arena chunk.
func WithChunkCapacity(n int) Option {
	return func(cfg *Config) { cfg.ChunkCapacity = n }
}

// WithMaxChunks limits the number of arena chunks.
func WithMaxChunks(n int) Option {
	return func(cfg *Config) { cfg.MaxChunks = n }
}

// WithVertexFormat sets the vertex layout of the draw data.
func WithVertexFormat(f VertexFormat) Option {
	return func(cfg *Config) { cfg.VertexFormat = slices.Clone(f) }
}

// WithTopology sets how quads are written into the draw data.
func WithTopology(t Topology) Option {
	return func(cfg *Config) { cfg.Topology = t }
}

// WithLogger sets the logger used for debug and warning records.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *Config) { cfg.Logger = l }
}
