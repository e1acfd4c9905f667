package telegram

import (
	"errors"
	"strconv"
	"time"

	"gopkg.in/telebot.v3"

	"work-hours-bot/internal/delivery/telegram/middleware"
	"work-hours-bot/internal/domain"
	"work-hours-bot/pkg/clock"
)

// registerFlows wires the inline-button callbacks onto the router. They
// share the pending-input maps with the text handlers, so they live in the
// same package.
func (h *Handler) registerFlows() {
	h.Router.Register("log_today", func(c telebot.Context, payload string) error {
		return h.beginShiftEntry(c, today())
	})

	h.Router.Register("log_pick", func(c telebot.Context, payload string) error {
		h.Calendar.OnDate = func(date time.Time, c telebot.Context) error {
			return h.beginShiftEntry(c, date)
		}
		return h.Calendar.ShowCalendar(c)
	})

	h.Router.Register("del_today", func(c telebot.Context, payload string) error {
		return h.deleteShift(c, today())
	})

	h.Router.Register("del_pick", func(c telebot.Context, payload string) error {
		h.Calendar.OnDate = func(date time.Time, c telebot.Context) error {
			return h.deleteShift(c, date)
		}
		return h.Calendar.ShowCalendar(c)
	})

	h.Router.Register("overwrite_yes", func(c telebot.Context, payload string) error {
		p, ok := h.pending[c.Chat().ID]
		if !ok || p.kind != pendingOverwrite {
			return nil
		}
		delete(h.pending, c.Chat().ID)
		return h.storeShift(c, p.date, p.start, p.end, true)
	})

	h.Router.Register("overwrite_no", func(c telebot.Context, payload string) error {
		p, ok := h.pending[c.Chat().ID]
		if !ok || p.kind != pendingOverwrite {
			return nil
		}
		delete(h.pending, c.Chat().ID)
		return middleware.EditOrSend(c, "Kept the existing shift for "+p.date.Format("2006-01-02")+".", nil)
	})

	h.Router.Register("sched_day", func(c telebot.Context, payload string) error {
		n, err := strconv.Atoi(payload)
		if err != nil || n < 0 || n > 6 {
			return nil
		}
		day := time.Weekday(n)
		dt, err := h.Schedule.TimesFor(day)
		if err != nil {
			return h.replyError(c, err)
		}
		h.pending[c.Chat().ID] = &pendingInput{kind: pendingScheduleTimes, day: day}
		return middleware.EditOrSend(c,
			day.String()+" is currently "+clock.FormatRange(dt.Start, dt.End)+
				". Send new times as \"HH:MM - HH:MM\", or /cancel.", nil)
	})
}

// beginShiftEntry prompts for the times of the picked date.
func (h *Handler) beginShiftEntry(c telebot.Context, date time.Time) error {
	h.pending[c.Chat().ID] = &pendingInput{kind: pendingShiftTimes, date: date}
	return middleware.EditOrSend(c,
		"Enter times for "+date.Format("2006-01-02")+
			" as \"HH:MM - HH:MM\", or send \"holiday\" for the scheduled default.", nil)
}

func (h *Handler) deleteShift(c telebot.Context, date time.Time) error {
	err := h.WorkTimes.DeleteShift(date)
	if errors.Is(err, domain.ErrNotFound) {
		return middleware.EditOrSend(c, "Nothing to delete: no shift is logged for "+date.Format("2006-01-02")+".", nil)
	}
	if err != nil {
		return h.replyError(c, err)
	}
	return middleware.EditOrSend(c, "Deleted the shift for "+date.Format("2006-01-02")+".", nil)
}
