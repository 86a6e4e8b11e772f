package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"Ponk/core"
	"Ponk/logger"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const ViewTerminal = "terminal"
const ViewWindow = "window"

const DefaultEnv = "local"

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Env             string
	View            string
	Seed            uint64
	Sound           bool
	ParallelPaddles bool

	TickRate     int
	Width        float64
	Height       float64
	PaddleWidth  float64
	PaddleHeight float64
	PaddleSpeed  float64
	PaddleMargin float64
	ClampOffset  float64
	BallSize     float64
	BallSpeed    float64
}

// Flags declares the command line surface. Flag values override the
// properties file only when set explicitly.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("ponk", pflag.ContinueOnError)
	env := os.Getenv("PONG_ENV")
	if env == "" {
		env = DefaultEnv
	}
	fs.String("env", env, "properties file to load from <config-dir>/properties")
	fs.String("config-dir", ".", "directory holding logger.properties and properties/")
	fs.String("view", ViewTerminal, "presentation: terminal or window")
	fs.Uint64("seed", 0, "random seed for ball velocity, 0 picks one from the clock")
	fs.Bool("sound", false, "play sound cues")
	return fs
}

func setDefaults(v *viper.Viper) {
	d := core.DefaultSettings()
	v.SetDefault("view", ViewTerminal)
	v.SetDefault("seed", 0)
	v.SetDefault("sound", false)
	v.SetDefault("parallel_paddles", false)
	v.SetDefault("tick.rate", d.TickRate)
	v.SetDefault("playfield.width", d.Field.Width)
	v.SetDefault("playfield.height", d.Field.Height)
	v.SetDefault("paddle.width", d.PaddleWidth)
	v.SetDefault("paddle.height", d.PaddleHeight)
	v.SetDefault("paddle.speed", d.PaddleSpeed)
	v.SetDefault("paddle.margin", d.PaddleMargin)
	v.SetDefault("paddle.clamp_offset", d.ClampOffset)
	v.SetDefault("ball.size", d.BallSize)
	v.SetDefault("ball.speed", d.BallSpeed)
}

// Load reads <dir>/properties/<env>.properties. A missing file is not an
// error; defaults apply. PONG_* environment variables override the file.
func Load(dir, env string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("properties")
	v.AddConfigPath(filepath.Join(dir, "properties"))
	v.SetEnvPrefix("PONG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if flags != nil {
		for _, name := range []string{"view", "seed", "sound"} {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(name, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config %s: %w", env, err)
		}
		logger.Log.Warn(fmt.Sprintf(logger.ConfigMissingMsg, env))
	}

	r := &reader{v: v}
	c := &Config{
		Env:             env,
		View:            strings.ToLower(r.str("view")),
		Seed:            r.unsigned("seed"),
		Sound:           r.flag("sound"),
		ParallelPaddles: r.flag("parallel_paddles"),
		TickRate:        r.integer("tick.rate"),
		Width:           r.num("playfield.width"),
		Height:          r.num("playfield.height"),
		PaddleWidth:     r.num("paddle.width"),
		PaddleHeight:    r.num("paddle.height"),
		PaddleSpeed:     r.num("paddle.speed"),
		PaddleMargin:    r.num("paddle.margin"),
		ClampOffset:     r.num("paddle.clamp_offset"),
		BallSize:        r.num("ball.size"),
		BallSpeed:       r.num("ball.speed"),
	}
	if r.err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, r.err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	positive := map[string]float64{
		"tick.rate":        float64(c.TickRate),
		"playfield.width":  c.Width,
		"playfield.height": c.Height,
		"paddle.width":     c.PaddleWidth,
		"paddle.height":    c.PaddleHeight,
		"paddle.speed":     c.PaddleSpeed,
		"ball.size":        c.BallSize,
		"ball.speed":       c.BallSpeed,
	}
	for key, val := range positive {
		if !finite(val) || val <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, key, val)
		}
	}
	if !finite(c.PaddleMargin) || c.PaddleMargin < 0 {
		return fmt.Errorf("%w: paddle.margin must not be negative", ErrInvalidConfig)
	}
	//球拍內側不能碰到發球位置
	if c.PaddleWidth+c.PaddleMargin+c.BallSize/2 >= c.Width/2 {
		return fmt.Errorf("%w: paddles reach the serve, need paddle.width + paddle.margin + ball.size/2 < playfield.width/2", ErrInvalidConfig)
	}
	if !finite(c.ClampOffset) || c.ClampOffset < 0 || c.ClampOffset > c.Height {
		return fmt.Errorf("%w: paddle.clamp_offset must be within [0, playfield.height]", ErrInvalidConfig)
	}
	if c.View != ViewTerminal && c.View != ViewWindow {
		return fmt.Errorf("%w: unknown view %q", ErrInvalidConfig, c.View)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (c *Config) Settings() core.Settings {
	return core.Settings{
		Field:           core.Playfield{Width: c.Width, Height: c.Height},
		PaddleWidth:     c.PaddleWidth,
		PaddleHeight:    c.PaddleHeight,
		PaddleSpeed:     c.PaddleSpeed,
		PaddleMargin:    c.PaddleMargin,
		ClampOffset:     c.ClampOffset,
		BallSize:        c.BallSize,
		BallSpeed:       c.BallSpeed,
		TickRate:        c.TickRate,
		ParallelPaddles: c.ParallelPaddles,
	}
}

// reader keeps the first conversion error so Load can report it once.
type reader struct {
	v   *viper.Viper
	err error
}

func (r *reader) fail(key string, err error) {
	if r.err == nil {
		r.err = fmt.Errorf("%s: %w", key, err)
	}
}

func (r *reader) str(key string) string {
	s, err := cast.ToStringE(r.v.Get(key))
	if err != nil {
		r.fail(key, err)
	}
	return s
}

func (r *reader) num(key string) float64 {
	f, err := cast.ToFloat64E(r.v.Get(key))
	if err != nil {
		r.fail(key, err)
	}
	return f
}

func (r *reader) integer(key string) int {
	i, err := cast.ToIntE(r.v.Get(key))
	if err != nil {
		r.fail(key, err)
	}
	return i
}

func (r *reader) unsigned(key string) uint64 {
	u, err := cast.ToUint64E(r.v.Get(key))
	if err != nil {
		r.fail(key, err)
	}
	return u
}

func (r *reader) flag(key string) bool {
	b, err := cast.ToBoolE(r.v.Get(key))
	if err != nil {
		r.fail(key, err)
	}
	return b
}
