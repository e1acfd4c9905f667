package router

import (
	"strings"

	"go.uber.org/zap"
	"gopkg.in/telebot.v3"
)

type HandlerFunc func(c telebot.Context, payload string) error

// CallbackRouter dispatches inline-button callbacks by key. Callback data
// is "key|payload"; calendar keys (cal_*) are delegated wholesale.
type CallbackRouter struct {
	handlers    map[string]HandlerFunc
	CalDelegate func(c telebot.Context) error
	Log         *zap.SugaredLogger
}

func New(log *zap.SugaredLogger) *CallbackRouter {
	return &CallbackRouter{handlers: make(map[string]HandlerFunc), Log: log}
}

func (r *CallbackRouter) Register(key string, h HandlerFunc) {
	r.handlers[key] = h
}

func (r *CallbackRouter) Attach(bot *telebot.Bot) {
	bot.Handle(telebot.OnCallback, func(c telebot.Context) error {
		raw := strings.TrimPrefix(c.Data(), "\f")
		key := raw
		payload := ""
		if i := strings.IndexByte(raw, '|'); i >= 0 {
			key = raw[:i]
			if len(raw) > i+1 {
				payload = raw[i+1:]
			}
		}
		r.Log.Debugw("callback", "raw", raw, "key", key)
		_ = c.Respond()

		if strings.HasPrefix(key, "cal_") {
			if r.CalDelegate != nil {
				return r.CalDelegate(c)
			}
			return nil
		}
		if h, ok := r.handlers[key]; ok {
			return h(c, payload)
		}
		return nil
	})
}
