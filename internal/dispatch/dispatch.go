// Package dispatch runs control-binary commands and reports each outcome as a notification.
package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/SiirRandall/ecc-tray/internal/notify"
	"github.com/sirupsen/logrus"
)

var (
	ErrRejected       = errors.New("command rejected")
	errEmptyCommand   = fmt.Errorf("%w: empty argument list", ErrRejected)
	errEmptyProgram   = fmt.Errorf("%w: empty program name", ErrRejected)
	errNulArgument    = fmt.Errorf("%w: argument contains NUL byte", ErrRejected)
	errInvalidMessage = fmt.Errorf("%w: message is not valid UTF-8", ErrRejected)
)

type Kind int

const (
	Success Kind = iota
	DeviceReportedError
	TransportError
)

func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case DeviceReportedError:
		return "device error"
	case TransportError:
		return "transport error"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Outcome is the classified result of one invocation. Message holds the
// device error, the stderr text, or the caller's description on success.
type Outcome struct {
	Kind    Kind
	Message string
}

// Result is either a rejection (nothing ran) or a dispatched outcome.
type Result struct {
	Rejected error
	Outcome  Outcome
}

func (r Result) Dispatched() bool { return r.Rejected == nil }

type Options struct {
	// Debug logs the trimmed stdout/stderr of every call.
	Debug   bool
	Timeout time.Duration
	Log     logrus.FieldLogger
}

type Dispatcher struct {
	runner   Runner
	notifier notify.Notifier
	debug    bool
	timeout  time.Duration
	log      logrus.FieldLogger
}

func New(runner Runner, notifier notify.Notifier, opts Options) *Dispatcher {
	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Dispatcher{
		runner:   runner,
		notifier: notifier,
		debug:    opts.Debug,
		timeout:  opts.Timeout,
		log:      log.WithField("component", "dispatch"),
	}
}

func validate(argv []string, message string) error {
	if len(argv) == 0 {
		return errEmptyCommand
	}
	if argv[0] == "" {
		return errEmptyProgram
	}
	for _, a := range argv {
		if strings.IndexByte(a, 0) >= 0 {
			return errNulArgument
		}
	}
	if !utf8.ValidString(message) {
		return errInvalidMessage
	}
	return nil
}

// Dispatch runs argv to completion and emits exactly one notification for it.
// Malformed input is rejected without running anything or notifying. A command
// killed because the caller cancelled ctx is logged but not notified.
func (d *Dispatcher) Dispatch(ctx context.Context, argv []string, message string) Result {
	if err := validate(argv, message); err != nil {
		d.log.WithError(err).WithField("argv", argv).Warn("dropping command")
		return Result{Rejected: err}
	}

	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	d.log.WithField("argv", argv).Debug("running control binary")
	stdout, stderr, err := d.runner.Run(ctx, argv)
	out := string(bytes.TrimSpace(stdout))
	errText := string(bytes.TrimSpace(stderr))
	if d.debug {
		d.log.Debugf("\tstdout: %s\n\tstderr: %s", out, errText)
	}

	var outcome Outcome
	switch {
	case err != nil && errors.Is(ctx.Err(), context.Canceled):
		outcome = Outcome{Kind: TransportError, Message: fmt.Sprintf("%s: %v", argv[0], ctx.Err())}
		d.log.WithField("argv", argv).Info("command cancelled")
		return Result{Outcome: outcome}
	case err != nil && ctx.Err() != nil:
		outcome = Outcome{Kind: TransportError, Message: fmt.Sprintf("%s: %v", argv[0], ctx.Err())}
	case err != nil && !isExitError(err):
		outcome = Outcome{Kind: TransportError, Message: err.Error()}
	default:
		if err != nil {
			d.log.WithError(err).Debug("control binary exited with non-zero status")
		}
		outcome = Classify(out, errText, message)
	}

	d.report(outcome)
	return Result{Outcome: outcome}
}

func (d *Dispatcher) report(o Outcome) {
	n := notify.Notification{Urgency: notify.Normal, Title: notify.AppName, Body: o.Message}
	if o.Kind != Success {
		n.Urgency = notify.Critical
		n.Body = "Error: " + o.Message
		d.log.WithField("kind", o.Kind.String()).Warn(o.Message)
	}
	d.notifier.Notify(n)
}

// Classify inspects already-trimmed output:
//  1. stdout is a JSON object with a truthy "error" field -> DeviceReportedError
//  2. stderr is non-empty -> TransportError
//  3. otherwise -> Success with the caller's description
//
// Unparseable stdout, a missing field and a falsy field all fall through step 1 alike.
func Classify(stdout, stderr, description string) Outcome {
	var body map[string]any
	if json.Unmarshal([]byte(stdout), &body) == nil {
		if v, ok := body["error"]; ok && truthy(v) {
			return Outcome{Kind: DeviceReportedError, Message: errorText(v)}
		}
	}
	if stderr != "" {
		return Outcome{Kind: TransportError, Message: stderr}
	}
	return Outcome{Kind: Success, Message: description}
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != ""
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	default:
		return true
	}
}

func errorText(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

func isExitError(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}
