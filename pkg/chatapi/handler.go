package chatapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/infinigence/octochat/pkg/bot"
	"github.com/infinigence/octochat/pkg/errutils"
	"github.com/infinigence/octochat/pkg/types/anthropic"
	"github.com/infinigence/octochat/pkg/types/openai"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
)

var (
	ErrStreamNotSupported = errors.New("streaming is not supported")
	ErrNoUserMessage      = errors.New("no user message in request")
)

type Options struct {
	ModelName    string
	NoMatchText  string
	FarewellText string
	Clock        clockwork.Clock // used for the created timestamp
}

// Handlers serves a Table over HTTP. The Table is shared by all requests
// and only read.
type Handlers struct {
	table *bot.Table
	opts  Options
}

func NewHandlers(table *bot.Table, opts Options) *Handlers {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	return &Handlers{table: table, opts: opts}
}

type RespondRequest struct {
	Text string `json:"text"`
}

type RespondResponse struct {
	bot.Outcome
	Reply string `json:"reply"` // text to show the user, also set for exit and no match
}

// Reply renders an outcome as the text shown to the user.
func (h *Handlers) Reply(o bot.Outcome) string {
	switch o.Kind {
	case bot.OutcomeResponded:
		return o.Text
	case bot.OutcomeExit:
		return h.opts.FarewellText
	default:
		return h.opts.NoMatchText
	}
}

func (h *Handlers) dispatch(r *http.Request, text string) bot.Outcome {
	text = strings.TrimSpace(text)
	outcome := h.table.Respond(text)
	logrus.WithContext(r.Context()).Debugf("[chatapi] %s %q -> %s", r.URL.Path, text, outcome)
	return outcome
}

// RespondHandler handles native POST /v1/respond requests.
func (h *Handlers) RespondHandler() http.HandlerFunc {
	return errutils.ErrorHandlingMiddleware(func(w http.ResponseWriter, r *http.Request) {
		var req RespondRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			*r = *errutils.WithError(r, fmt.Errorf("decode request: %w", err), http.StatusBadRequest, "Bad Request")
			return
		}

		outcome := h.dispatch(r, req.Text)
		writeJSON(w, r, &RespondResponse{Outcome: outcome, Reply: h.Reply(outcome)})
	})
}

// ChatCompletionsHandler handles OpenAI /v1/chat/completions requests
func (h *Handlers) ChatCompletionsHandler() http.HandlerFunc {
	return errutils.ErrorHandlingMiddleware(func(w http.ResponseWriter, r *http.Request) {
		var req openai.ChatCompletionNewParams
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			*r = *errutils.WithError(r, fmt.Errorf("decode request: %w", err), http.StatusBadRequest, "Bad Request")
			return
		}
		if req.IsStream() {
			*r = *errutils.WithError(r, ErrStreamNotSupported, http.StatusBadRequest, ErrStreamNotSupported.Error())
			return
		}
		text, ok := req.LastUserText()
		if !ok {
			*r = *errutils.WithError(r, ErrNoUserMessage, http.StatusBadRequest, ErrNoUserMessage.Error())
			return
		}

		outcome := h.dispatch(r, text)
		resp := openai.NewChatCompletion(
			"chatcmpl-"+uuid.NewString(),
			h.modelName(string(req.Model)),
			h.opts.Clock.Now().Unix(),
			h.Reply(outcome))
		writeJSON(w, r, resp)
	})
}

// MessagesHandler handles Anthropic /v1/messages requests
func (h *Handlers) MessagesHandler() http.HandlerFunc {
	return errutils.ErrorHandlingMiddleware(func(w http.ResponseWriter, r *http.Request) {
		var req anthropic.MessageNewParams
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			*r = *errutils.WithError(r, fmt.Errorf("decode request: %w", err), http.StatusBadRequest, "Bad Request")
			return
		}
		if req.IsStream() {
			*r = *errutils.WithError(r, ErrStreamNotSupported, http.StatusBadRequest, ErrStreamNotSupported.Error())
			return
		}
		text, ok := req.LastUserText()
		if !ok {
			*r = *errutils.WithError(r, ErrNoUserMessage, http.StatusBadRequest, ErrNoUserMessage.Error())
			return
		}

		outcome := h.dispatch(r, text)
		resp := anthropic.NewTextMessage(
			"msg_"+strings.ReplaceAll(uuid.NewString(), "-", ""),
			h.modelName(string(req.Model)),
			h.Reply(outcome))
		writeJSON(w, r, resp)
	})
}

// modelName echoes the requested model, falling back to the configured one.
func (h *Handlers) modelName(requested string) string {
	if requested != "" {
		return requested
	}
	return h.opts.ModelName
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		*r = *errutils.WithError(r, err, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
