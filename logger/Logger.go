package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Log = New()

type Logger struct {
	entry   *logrus.Entry
	rotator *lumberjack.Logger
}

// Options mirrors logger.properties.
type Options struct {
	Filename   string
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
	Level      string
	Echo       bool
}

// New returns a logger writing text to stderr until Init is called.
func New() *Logger {
	return &Logger{entry: logrus.NewEntry(logrus.New())}
}

func readLoggerProperties(dir string) (*viper.Viper, Options, error) {
	v := viper.New()
	v.SetConfigName("logger")
	v.SetConfigType("properties")
	v.AddConfigPath(dir)

	v.SetDefault("logFilename", "log/ponk.log")
	v.SetDefault("maxSize", 10)
	v.SetDefault("maxBackups", 3)
	v.SetDefault("maxAge", 28)
	v.SetDefault("compress", false)
	v.SetDefault("level", "Info")
	v.SetDefault("echo", false)

	if err := v.ReadInConfig(); err != nil {
		return nil, Options{}, fmt.Errorf("read logger config: %w", err)
	}

	opts := Options{
		Filename:   cast.ToString(v.Get("logFilename")),
		MaxSize:    cast.ToInt(v.Get("maxSize")),
		MaxBackups: cast.ToInt(v.Get("maxBackups")),
		MaxAge:     cast.ToInt(v.Get("maxAge")),
		Compress:   cast.ToBool(v.Get("compress")),
		Level:      cast.ToString(v.Get("level")),
		Echo:       cast.ToBool(v.Get("echo")),
	}
	return v, opts, nil
}

// Init loads logger.properties from dir, switches output to a rotating JSON
// file and reloads the level whenever the file changes.
func (l *Logger) Init(dir string) error {
	v, opts, err := readLoggerProperties(dir)
	if err != nil {
		return err
	}
	l.Configure(opts)

	v.OnConfigChange(func(e fsnotify.Event) {
		level := cast.ToString(v.Get("level"))
		l.SetLevel(ParseLevel(level))
		l.Info(fmt.Sprintf(LevelReloadMsg, e.Name, level))
	})
	v.WatchConfig()
	return nil
}

func (l *Logger) Configure(opts Options) {
	l.rotator = &lumberjack.Logger{
		Filename:   opts.Filename,
		MaxSize:    opts.MaxSize,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAge,
		Compress:   opts.Compress,
	}

	var out io.Writer = l.rotator
	if opts.Echo {
		out = io.MultiWriter(l.rotator, os.Stderr)
	}

	base := l.entry.Logger
	base.SetFormatter(&logrus.JSONFormatter{})
	base.SetOutput(out)
	base.SetLevel(ParseLevel(opts.Level))
}

func ParseLevel(level string) logrus.Level {
	switch strings.ToLower(level) {

	case "trace":
		return logrus.TraceLevel

	case "info":
		return logrus.InfoLevel

	case "warn":
		return logrus.WarnLevel

	case "error":
		return logrus.ErrorLevel

	case "fatal":
		return logrus.FatalLevel

	default:
		return logrus.DebugLevel
	}
}

// Close flushes the rotating file, if any.
func (l *Logger) Close() error {
	if l.rotator == nil {
		return nil
	}
	return l.rotator.Close()
}

// WithField returns a logger sharing this one's output with an extra field.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{entry: l.entry.WithField(key, value), rotator: l.rotator}
}

func (l *Logger) SetLevel(level logrus.Level) {
	l.entry.Logger.SetLevel(level)
}

func (l *Logger) Enabled(level logrus.Level) bool {
	return l.entry.Logger.IsLevelEnabled(level)
}

func (l *Logger) SetOutput(out io.Writer) {
	l.entry.Logger.SetOutput(out)
}

func (l *Logger) Info(message string) {
	l.entry.Info(message)
}

func (l *Logger) Error(message string) {
	l.entry.Error(message)
}

func (l *Logger) Debug(message string) {
	l.entry.Debug(message)
}

func (l *Logger) Trace(message string) {
	l.entry.Trace(message)
}

func (l *Logger) Warn(message string) {
	l.entry.Warn(message)
}

func (l *Logger) Fatal(message string) {
	l.entry.Fatal(message)
}
