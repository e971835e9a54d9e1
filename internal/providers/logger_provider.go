package providers

import (
	"net/http"
	"os"
	"path/filepath"

	"acsd/internal/structures"

	"github.com/rs/zerolog"
)

type TypeEnum int

const (
	TypeApp TypeEnum = iota
	TypeGet
	TypePost
)

// GetLogTypeByRequestType maps an HTTP method to the access-log channel.
// Everything that is not a POST is logged as a read.
func GetLogTypeByRequestType(method string) TypeEnum {
	if method == http.MethodPost {
		return TypePost
	}
	return TypeGet
}

type Logger interface {
	Errorf(t TypeEnum, format string, args ...interface{})
	Warnf(t TypeEnum, format string, args ...interface{})
	Infof(t TypeEnum, format string, args ...interface{})
	Debugf(t TypeEnum, format string, args ...interface{})
	Fatalf(t TypeEnum, format string, args ...interface{})
	Close()
}

type LogProvider struct {
	appFile    *os.File
	accessFile *os.File
	app        zerolog.Logger
	access     zerolog.Logger
}

func NewLogProvider(conf *structures.Config) (Logger, error) {
	level, err := zerolog.ParseLevel(conf.Logger.Level)
	if err != nil {
		return nil, err
	}

	mode := os.FileMode(conf.Logger.Mode)
	appFile, err := openLogFile(filepath.Join(conf.Logger.Dir, "app.log"), mode)
	if err != nil {
		return nil, err
	}
	accessFile, err := openLogFile(filepath.Join(conf.Logger.Dir, "access.log"), mode)
	if err != nil {
		appFile.Close()
		return nil, err
	}

	lp := &LogProvider{
		appFile:    appFile,
		accessFile: accessFile,
	}

	if conf.Debug {
		console := zerolog.ConsoleWriter{Out: os.Stderr}
		lp.app = zerolog.New(zerolog.MultiLevelWriter(appFile, console))
		lp.access = zerolog.New(zerolog.MultiLevelWriter(accessFile, console))
	} else {
		lp.app = zerolog.New(appFile)
		lp.access = zerolog.New(accessFile)
	}
	lp.app = lp.app.Level(level).With().Timestamp().Logger()
	lp.access = lp.access.Level(level).With().Timestamp().Logger()

	return lp, nil
}

func openLogFile(path string, mode os.FileMode) (*os.File, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, mode)
}

func (lp *LogProvider) byType(t TypeEnum) *zerolog.Logger {
	if t == TypeApp {
		return &lp.app
	}
	return &lp.access
}

func (lp *LogProvider) Errorf(t TypeEnum, format string, args ...interface{}) {
	lp.byType(t).Error().Msgf(format, args...)
}

func (lp *LogProvider) Warnf(t TypeEnum, format string, args ...interface{}) {
	lp.byType(t).Warn().Msgf(format, args...)
}

func (lp *LogProvider) Infof(t TypeEnum, format string, args ...interface{}) {
	lp.byType(t).Info().Msgf(format, args...)
}

func (lp *LogProvider) Debugf(t TypeEnum, format string, args ...interface{}) {
	lp.byType(t).Debug().Msgf(format, args...)
}

func (lp *LogProvider) Fatalf(t TypeEnum, format string, args ...interface{}) {
	lp.byType(t).Fatal().Msgf(format, args...)
}

func (lp *LogProvider) Close() {
	lp.appFile.Close()
	lp.accessFile.Close()
}
