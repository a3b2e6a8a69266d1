package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/chzyer/readline"
	"github.com/infinigence/octochat/pkg/composer"
	"github.com/infinigence/octochat/pkg/session"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
)

func main() {
	var configFile string
	var verbose bool
	flag.StringVar(&configFile, "c", "", "config file path (built-in rules when empty)")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.Parse()

	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	conf := composer.DefaultConfig()
	if configFile != "" {
		var err error
		conf, err = composer.ReadConfigFile(configFile)
		if err != nil {
			logrus.WithError(err).Fatal("failed to read config file")
		}
	}

	table, err := composer.BuildTable(conf, clockwork.NewRealClock())
	if err != nil {
		logrus.WithError(err).Fatal("failed to build rule table")
	}

	rl, err := readline.New("> ")
	if err != nil {
		logrus.WithError(err).Fatal("failed to open console")
	}
	defer rl.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s := &session.Session{
		Table:       table,
		In:          rl,
		Out:         rl.Stdout(),
		Greeting:    conf.Bot.Greeting,
		Welcome:     conf.Bot.Welcome,
		NoMatchText: conf.Bot.NoMatchText,
	}
	if err := s.Run(ctx); err != nil && ctx.Err() == nil {
		logrus.WithError(err).Error("session ended with error")
	}
}
