package ui

import (
	"context"

	"github.com/SiirRandall/ecc-tray/internal/device"
	"github.com/SiirRandall/ecc-tray/internal/dispatch"

	"fyne.io/fyne/v2"
	"github.com/sirupsen/logrus"
)

// Dispatcher runs one control-binary command to completion.
type Dispatcher interface {
	Dispatch(ctx context.Context, argv []string, message string) dispatch.Result
}

type AppUI struct {
	app  fyne.App
	ctl  *device.Client
	disp Dispatcher
	log  logrus.FieldLogger

	jobs chan device.Command
	// ctx gates new work only; running commands are never cancelled by it.
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

func NewAppUI(a fyne.App, ctl *device.Client, disp Dispatcher, log logrus.FieldLogger) *AppUI {
	ctx, cancel := context.WithCancel(context.Background())
	u := &AppUI{
		app:    a,
		ctl:    ctl,
		disp:   disp,
		log:    log.WithField("component", "ui"),
		jobs:   make(chan device.Command, 16),
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go u.work()
	return u
}

// Run installs the tray and blocks in the fyne event loop until Quit.
// A command already running is allowed to finish before Run returns.
func (u *AppUI) Run() {
	u.EnableSystemTray()
	u.app.Run()
	u.cancel()
	<-u.done
}

// Quit stops accepting commands and leaves the event loop.
func (u *AppUI) Quit() {
	u.cancel()
	u.app.Quit()
}

/* Worker */

// work runs queued commands one at a time, in click order, off the UI thread.
func (u *AppUI) work() {
	defer close(u.done)
	for {
		var cmd device.Command
		select {
		case <-u.ctx.Done():
			return
		case cmd = <-u.jobs:
		}
		if u.ctx.Err() != nil {
			return
		}
		res := u.disp.Dispatch(context.Background(), cmd.Args, cmd.Description)
		if !res.Dispatched() {
			u.log.WithError(res.Rejected).Warn("command rejected")
			continue
		}
		u.log.WithFields(logrus.Fields{
			"action":  cmd.Description,
			"outcome": res.Outcome.Kind.String(),
		}).Debug("command finished")
	}
}

func (u *AppUI) submit(cmd device.Command) {
	if u.ctx.Err() != nil {
		return
	}
	select {
	case u.jobs <- cmd:
	default:
		u.log.WithField("action", cmd.Description).Warn("command queue full, dropping click")
	}
}
