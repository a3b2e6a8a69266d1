package main

import (
	"flag"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/infinigence/octochat/pkg/composer"
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
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	conf := composer.DefaultConfig()
	if configFile != "" {
		logrus.Infof("Using config file: %s", configFile)
		var err error
		conf, err = composer.ReadConfigFile(configFile)
		if err != nil {
			logrus.WithError(err).Fatal("failed to read config file")
		}
	}

	clock := clockwork.NewRealClock()
	table, err := composer.BuildTable(conf, clock)
	if err != nil {
		logrus.WithError(err).Fatal("failed to build rule table")
	}

	s, err := NewServer(conf, table, clock)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create server")
	}

	logrus.Infof("listening %s", conf.Server.Listen)
	if err := http.ListenAndServe(conf.Server.Listen, s.Router()); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
