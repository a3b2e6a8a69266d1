package main

import (
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/infinigence/octochat/pkg/bot"
	"github.com/infinigence/octochat/pkg/chatapi"
	"github.com/infinigence/octochat/pkg/composer"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
)

type Server struct {
	conf     *composer.ConfigFile
	handlers *chatapi.Handlers
	auth     *BearerKeyMW
}

func NewServer(conf *composer.ConfigFile, table *bot.Table, clock clockwork.Clock) (*Server, error) {
	auth := &BearerKeyMW{}
	if err := auth.UpdateFromConfig(conf); err != nil {
		return nil, err
	}
	handlers := chatapi.NewHandlers(table, chatapi.Options{
		ModelName:    conf.Server.ModelName,
		NoMatchText:  conf.Bot.NoMatchText,
		FarewellText: conf.Bot.FarewellText,
		Clock:        clock,
	})
	return &Server{
		conf:     conf,
		handlers: handlers,
		auth:     auth,
	}, nil
}

func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), gzip.Gzip(gzip.DefaultCompression), s.auth.Handle())
	r.POST("/v1/respond", s.wrap(s.handlers.RespondHandler()))
	r.POST("/v1/chat/completions", s.wrap(s.handlers.ChatCompletionsHandler()))
	r.POST("/v1/messages", s.wrap(s.handlers.MessagesHandler()))
	return r
}

func (s *Server) wrap(handler http.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		logrus.WithContext(c.Request.Context()).Debugf("[server] %s from user %q", c.FullPath(), c.GetString("user"))
		handler(c.Writer, c.Request)
	}
}
