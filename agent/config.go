package agent

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yuanhenglee/go-nogo-mcts/board"
)

// Method selects which player implementation a Config describes.
type Method int

const (
	MethodRandom Method = iota
	MethodMCTS
)

func (m Method) String() string {
	if m == MethodMCTS {
		return "mcts"
	}
	return "random"
}

// forbiddenNameChars mirrors the outer runner's convention for display
// names: they must not collide with its own move/protocol syntax.
const forbiddenNameChars = "[]():; "

// Config is the typed construction record a Player is built from.
// ParseMeta derives one from the stringly-typed "name=value" arguments
// the outer runner passes at agent construction.
type Config struct {
	Name         string
	Role         board.Side
	Seed         uint64
	HasSeed      bool
	Method       Method
	Iterations   int  // 0 means "use the search package's own default"
	TimeBudgetMs int  // 0 means "use the search package's own default"
	Debug        bool
}

// ParseMeta parses a whitespace-separated sequence of key=value (or
// bare boolean key) tokens into a Config, validating name and role the
// way the outer runner's agent constructor does. An empty args string
// is valid only if role is supplied some other way; in practice role
// is always required and ParseMeta returns an error without it.
func ParseMeta(args string) (Config, error) {
	meta := map[string]string{"name": "unknown", "role": "unknown"}
	for _, pair := range strings.Fields(args) {
		key, value, hasValue := strings.Cut(pair, "=")
		if !hasValue {
			value = "1"
		}
		meta[key] = value
	}

	cfg := Config{
		Name:         meta["name"],
		Method:       MethodRandom,
		Iterations:   0,
		TimeBudgetMs: 0,
	}

	if strings.ContainsAny(cfg.Name, forbiddenNameChars) {
		return Config{}, fmt.Errorf("agent: invalid name %q", cfg.Name)
	}

	switch meta["role"] {
	case "black":
		cfg.Role = board.Black
	case "white":
		cfg.Role = board.White
	default:
		return Config{}, fmt.Errorf("agent: invalid role %q", meta["role"])
	}

	if v, ok := meta["seed"]; ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("agent: invalid seed %q: %w", v, err)
		}
		cfg.Seed, cfg.HasSeed = seed, true
	}

	if _, ok := meta["mcts"]; ok {
		cfg.Method = MethodMCTS
	}

	if v, ok := meta["T"]; ok {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("agent: invalid T %q", v)
		}
		cfg.Iterations = n
	}

	if v, ok := meta["time"]; ok {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("agent: invalid time %q", v)
		}
		cfg.TimeBudgetMs = n
	}

	if _, ok := meta["debug"]; ok {
		cfg.Debug = true
	}

	return cfg, nil
}
