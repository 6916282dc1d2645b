// Package eventlog ships structured diagnostic events to a remote log
// collector. Delivery is best effort: a failed or slow collector never
// affects the caller.
package eventlog

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/samber/lo"
)

const (
	StackBackend  = "backend"
	StackFrontend = "frontend"
)

const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
	LevelFatal = "fatal"
)

const (
	PackageCache      = "cache"
	PackageController = "controller"
	PackageCronJob    = "cron_job"
	PackageDB         = "db"
	PackageDomain     = "domain"
	PackageHandler    = "handler"
	PackageRepository = "repository"
	PackageRoute      = "route"
	PackageService    = "service"
	PackageAuth       = "auth"
	PackageConfig     = "config"
	PackageMiddleware = "middleware"
	PackageUtils      = "utils"
)

var (
	Stacks = []string{StackBackend, StackFrontend}

	Levels = []string{LevelDebug, LevelInfo, LevelWarn, LevelError, LevelFatal}

	// BackendPackages is the collector's whitelist for the package field.
	BackendPackages = []string{
		PackageCache, PackageController, PackageCronJob, PackageDB, PackageDomain,
		PackageHandler, PackageRepository, PackageRoute, PackageService,
		PackageAuth, PackageConfig, PackageMiddleware, PackageUtils,
	}
)

var ErrInvalidLogEvent = errors.New("invalid log event")

// Event is the payload accepted by the log collector.
type Event struct {
	Stack   string `json:"stack"`
	Level   string `json:"level"`
	Package string `json:"package"`
	Message string `json:"message"`
}

// NewEvent lowercases stack, level and package, then validates the result.
func NewEvent(stack, level, pkg, message string) (Event, error) {
	e := Event{
		Stack:   strings.ToLower(stack),
		Level:   strings.ToLower(level),
		Package: strings.ToLower(pkg),
		Message: message,
	}
	if err := e.Validate(); err != nil {
		return Event{}, err
	}
	return e, nil
}

// Validate checks every field against the collector's whitelists.
func (e Event) Validate() error {
	err := validation.ValidateStruct(&e,
		validation.Field(&e.Stack, validation.Required, validation.In(lo.ToAnySlice(Stacks)...)),
		validation.Field(&e.Level, validation.Required, validation.In(lo.ToAnySlice(Levels)...)),
		validation.Field(&e.Package, validation.Required, validation.In(lo.ToAnySlice(BackendPackages)...)),
		validation.Field(&e.Message, validation.By(notBlank)),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLogEvent, err)
	}
	return nil
}

func notBlank(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return errors.New("cannot be blank")
	}
	return nil
}
