package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/SiirRandall/ecc-tray/internal/buildinfo"
	"github.com/SiirRandall/ecc-tray/internal/config"
	"github.com/SiirRandall/ecc-tray/internal/device"
	"github.com/SiirRandall/ecc-tray/internal/dispatch"
	"github.com/SiirRandall/ecc-tray/internal/notify"
	"github.com/SiirRandall/ecc-tray/internal/ui"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		debug   bool
		cfgPath string
	)
	cmd := &cobra.Command{
		Use:          "ecc-tray",
		Short:        "ECC System Tray",
		Version:      buildinfo.Version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), debug, cfgPath)
		},
	}
	cmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} {{.Version}}\n  Commit: %s\n  Built: %s\n",
		buildinfo.CommitHash, buildinfo.BuildDate))
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug mode")
	cmd.Flags().StringVar(&cfgPath, "config", "", "Select a config file (default path in ~/.config/elgatocontrolcenter/)")
	return cmd
}

// newLogger writes diagnostics to out, which is stdout outside of tests.
func newLogger(out io.Writer, debug bool) *log.Logger {
	logger := log.New()
	logger.SetOutput(out)
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func run(out io.Writer, debug bool, cfgPath string) error {
	logger := newLogger(out, debug)

	cfg, err := config.Load(cfgPath, logger)
	if err != nil {
		logger.WithError(err).Error("Config error")
		notify.NewSend(logger).Notify(notify.Notification{
			Urgency: notify.Critical,
			Title:   "Error " + notify.AppName,
			Body:    config.UserMessage(err),
		})
		os.Exit(1)
	}

	target := device.Endpoint{IP: cfg.IP(), Port: cfg.Port()}
	logger.Infof("Attaching to %s...", target)

	a := app.NewWithID("com.elgatocontrolcenter.tray")
	notifier, err := notify.New(cfg.Notify.Backend, a, logger)
	if err != nil {
		return err
	}
	disp := dispatch.New(dispatch.ExecRunner{}, notifier, dispatch.Options{
		Debug:   debug,
		Timeout: cfg.Timeout(),
		Log:     logger,
	})
	tray := ui.NewAppUI(a, device.New(cfg.Control.Binary, target), disp, logger)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	go func() {
		<-sig
		logger.Info("Interrupted, quitting")
		fyne.Do(tray.Quit)
	}()

	tray.Run()
	return nil
}
