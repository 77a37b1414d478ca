package logsvc

import (
	"fmt"
	"log"
	"net/http"

	"github.com/rollbar/rollbar-go"
	"github.com/rollbar/rollbar-go/errors"

	"github.com/academia/dashboard/core"
)

// RollbarLogger prints to a std logger and forwards every entry to Rollbar, when enabled.
type RollbarLogger struct {
	std *log.Logger
}

var _ core.Logger = (*RollbarLogger)(nil)

func NewRollbarLogger(std *log.Logger, conf *core.Config) *RollbarLogger {
	rollbar.SetToken(conf.RollbarToken)
	rollbar.SetEnvironment(conf.Env)
	rollbar.SetServerHost(conf.Server.Address)
	rollbar.SetCodeVersion(conf.Build)
	rollbar.SetStackTracer(errors.StackTracer)
	rollbar.SetCustom(map[string]interface{}{"app": conf.AppName, "backend": conf.Backend.BaseURL})
	return &RollbarLogger{std: std}
}

func (l RollbarLogger) Enable(enabled bool) {
	rollbar.SetEnabled(enabled)
}

// expected fmt: msg | error, map[string]interface{} (extras), *http.Request
// Rollbar takes a single request and a single extras map: later ones are dropped.
func (l RollbarLogger) prepare(msg string, args []interface{}) []interface{} {
	var reqSet, extrasSet bool
	newArgs := make([]interface{}, 0, len(args)+1)
	newArgs = append(newArgs, msg)
	for _, arg := range args {
		switch a := arg.(type) {
		case nil:
		case *http.Request:
			if !reqSet {
				newArgs = append(newArgs, a)
				reqSet = true
			}
		case map[string]interface{}:
			if !extrasSet {
				newArgs = append(newArgs, a)
				extrasSet = true
			}
		default:
			newArgs = append(newArgs, a)
		}
	}
	return newArgs
}

func (l RollbarLogger) print(msg string, args []interface{}) {
	l.std.Println(msg)
	for _, arg := range args {
		switch a := arg.(type) {
		case nil:
		case *http.Request:
			l.std.Println(requestLine(a))
		default:
			l.std.Printf("%+v\n", a)
		}
	}
}

func requestLine(r *http.Request) string {
	line := fmt.Sprintf("%s %s", r.Method, r.URL.RequestURI())
	if rid := r.Header.Get("X-Request-ID"); rid != "" {
		line += " request_id=" + rid
	}
	return line
}

func (l RollbarLogger) Debug(msg string, args ...interface{}) {
	rollbar.Debug(l.prepare(msg, args)...)
	l.print(msg, args)
}

func (l RollbarLogger) Info(msg string, args ...interface{}) {
	rollbar.Info(l.prepare(msg, args)...)
	l.print(msg, args)
}

func (l RollbarLogger) Warn(msg string, args ...interface{}) {
	rollbar.Warning(l.prepare(msg, args)...)
	l.print(msg, args)
}

func (l RollbarLogger) Error(msg string, args ...interface{}) {
	rollbar.Error(l.prepare(msg, args)...)
	l.print(msg, args)
}

func (l RollbarLogger) Fatal(msg string, args ...interface{}) {
	rollbar.Critical(l.prepare(msg, args)...)
	rollbar.Wait()
	l.print(msg, args)
	l.std.Fatal(msg)
}
