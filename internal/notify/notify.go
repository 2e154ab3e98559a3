// Package notify sends desktop notifications without waiting on them.
package notify

import (
	"fmt"
	"os/exec"

	"fyne.io/fyne/v2"
	"github.com/gen2brain/beeep"
	"github.com/sirupsen/logrus"
)

const AppName = "ElgatoControlCenter"

type Urgency string

const (
	Normal   Urgency = "normal"
	Critical Urgency = "critical"
)

type Notification struct {
	Urgency Urgency
	Title   string
	Body    string
}

// Notifier is a one-way sink. Delivery failures are logged, never returned.
type Notifier interface {
	Notify(n Notification)
}

// New picks a backend by name. The fyne backend needs a running app.
func New(backend string, app fyne.App, log logrus.FieldLogger) (Notifier, error) {
	log = log.WithField("component", "notify")
	switch backend {
	case "", "notify-send":
		return NewSend(log), nil
	case "beeep":
		return &Beeep{log: log}, nil
	case "fyne":
		if app == nil {
			return nil, fmt.Errorf("notify backend %q needs a fyne app", backend)
		}
		return &Fyne{app: app}, nil
	default:
		return nil, fmt.Errorf("unknown notify backend %q", backend)
	}
}

// Send shells out to notify-send.
type Send struct {
	Binary string
	log    logrus.FieldLogger
}

func NewSend(log logrus.FieldLogger) *Send {
	return &Send{Binary: "notify-send", log: log}
}

// Args returns the argv used for n.
func (s *Send) Args(n Notification) []string {
	u := n.Urgency
	if u == "" {
		u = Normal
	}
	title := n.Title
	if title == "" {
		title = AppName
	}
	return []string{s.Binary, "-u", string(u), title, n.Body}
}

func (s *Send) Notify(n Notification) {
	args := s.Args(n)
	cmd := exec.Command(args[0], args[1:]...)
	if err := cmd.Start(); err != nil {
		s.log.WithError(err).Warn("notify-send failed to start")
		return
	}
	// reap the child; its exit status is not inspected
	go func() { _ = cmd.Wait() }()
}

// Beeep uses the cross-platform beeep library.
type Beeep struct {
	log logrus.FieldLogger
}

func (b *Beeep) Notify(n Notification) {
	title := n.Title
	if title == "" {
		title = AppName
	}
	go func() {
		var err error
		if n.Urgency == Critical {
			err = beeep.Alert(title, n.Body, "")
		} else {
			err = beeep.Notify(title, n.Body, "")
		}
		if err != nil {
			b.log.WithError(err).Warn("beeep notification failed")
		}
	}()
}

// Fyne routes notifications through the running fyne app.
type Fyne struct {
	app fyne.App
}

func (f *Fyne) Notify(n Notification) {
	title := n.Title
	if title == "" {
		title = AppName
	}
	if n.Urgency == Critical {
		title += ": Error"
	}
	f.app.SendNotification(fyne.NewNotification(title, n.Body))
}
