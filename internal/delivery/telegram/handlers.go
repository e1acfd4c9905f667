package telegram

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/telebot.v3"

	"work-hours-bot/internal/app/service"
	"work-hours-bot/internal/delivery/telegram/keyboards"
	"work-hours-bot/internal/delivery/telegram/router"
	"work-hours-bot/internal/domain"
	"work-hours-bot/pkg/calendar"
	"work-hours-bot/pkg/clock"
)

type pendingKind int

const (
	pendingShiftTimes pendingKind = iota // awaiting "HH:MM - HH:MM" for a date
	pendingOverwrite                     // awaiting the yes/no overwrite answer
	pendingRate                          // awaiting a new pay rate
	pendingScheduleTimes                 // awaiting default times for a weekday
)

type pendingInput struct {
	kind  pendingKind
	date  time.Time
	day   time.Weekday
	start string
	end   string
}

type Handler struct {
	Bot       *telebot.Bot
	Log       *zap.SugaredLogger
	WorkTimes *service.WorkTimeServiceImpl
	Rates     *service.PayRateService
	Week      *service.WeekService
	Schedule  *service.ScheduleService
	Calendar  *calendar.CalendarController
	Router    *router.CallbackRouter

	pending map[int64]*pendingInput // chatID -> awaited text input
}

var (
	btnLogShift    = telebot.Btn{Text: "🕘 Log Shift"}
	btnDeleteShift = telebot.Btn{Text: "🗑 Delete Shift"}
	btnSchedule    = telebot.Btn{Text: "📋 Weekly Schedule"}
	btnPayRate     = telebot.Btn{Text: "💷 Pay Rate"}
	btnThisWeek    = telebot.Btn{Text: "📊 This Week"}
)

func (h *Handler) Register() {
	h.pending = make(map[int64]*pendingInput)

	h.Bot.Handle("/start", h.handleStart)
	h.Bot.Handle("/cancel", func(c telebot.Context) error {
		delete(h.pending, c.Chat().ID)
		return c.Send("Cancelled.")
	})

	h.Bot.Handle(telebot.OnText, func(c telebot.Context) error {
		chatID := c.Chat().ID
		if p, ok := h.pending[chatID]; ok {
			return h.handlePendingText(c, p)
		}

		switch c.Text() {
		case btnLogShift.Text:
			return c.Send("Log a shift for which day?", keyboards.BuildDayPickKeyboard("log"))
		case btnDeleteShift.Text:
			return c.Send("Delete the shift for which day?", keyboards.BuildDayPickKeyboard("del"))
		case btnSchedule.Text:
			return h.handleScheduleMenu(c)
		case btnPayRate.Text:
			return h.handlePayRateMenu(c)
		case btnThisWeek.Text:
			return h.handleWeekSummary(c)
		}
		return nil
	})

	h.registerFlows()
	h.Router.CalDelegate = h.Calendar.HandleCallback
	h.Router.Attach(h.Bot)
}

func (h *Handler) handleStart(c telebot.Context) error {
	markup := &telebot.ReplyMarkup{ResizeKeyboard: true}
	markup.Reply(
		markup.Row(markup.Text(btnLogShift.Text), markup.Text(btnDeleteShift.Text)),
		markup.Row(markup.Text(btnSchedule.Text), markup.Text(btnPayRate.Text)),
		markup.Row(markup.Text(btnThisWeek.Text)),
	)
	return c.Send("Welcome! Track your work hours with the menu below.", markup)
}

// handlePendingText routes free text while an input is awaited. The pending
// entry is kept on validation errors so the user can just retry.
func (h *Handler) handlePendingText(c telebot.Context, p *pendingInput) error {
	chatID := c.Chat().ID
	switch p.kind {
	case pendingShiftTimes:
		startStr, endStr, err := h.resolveShiftTimes(c.Text(), p.date)
		if err != nil {
			return h.replyError(c, err)
		}
		delete(h.pending, chatID)
		return h.submitShift(c, p.date, startStr, endStr)

	case pendingOverwrite:
		return c.Send(
			"A shift for "+p.date.Format("2006-01-02")+" already exists. Overwrite it?",
			keyboards.BuildOverwriteKeyboard(),
		)

	case pendingRate:
		if err := h.Rates.SetRate(c.Text()); err != nil {
			return h.replyError(c, err)
		}
		delete(h.pending, chatID)
		return c.Send("Pay rate saved.")

	case pendingScheduleTimes:
		start, end, err := clock.ParseRange(c.Text())
		if err != nil {
			return c.Send("Please enter times as \"HH:MM - HH:MM\", e.g. 09:00 - 17:00.")
		}
		if err := h.Schedule.SetDay(p.day, start.String(), end.String()); err != nil {
			return h.replyError(c, err)
		}
		delete(h.pending, chatID)
		return c.Send(p.day.String() + " default set to " + clock.FormatRange(start, end) + ".")
	}
	return nil
}

// resolveShiftTimes turns the raw reply into a start/end pair. "holiday"
// substitutes the scheduled default for the date's weekday.
func (h *Handler) resolveShiftTimes(text string, date time.Time) (string, string, error) {
	if strings.EqualFold(strings.TrimSpace(text), "holiday") {
		dt, err := h.Schedule.TimesFor(date.Weekday())
		if err != nil {
			return "", "", err
		}
		return dt.Start.String(), dt.End.String(), nil
	}
	start, end, err := clock.ParseRange(text)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return start.String(), end.String(), nil
}

// submitShift checks for an existing record first; a duplicate turns into
// the overwrite question, otherwise the shift is stored straight away.
func (h *Handler) submitShift(c telebot.Context, date time.Time, startStr, endStr string) error {
	exists, err := h.WorkTimes.HasRecord(date)
	if err != nil {
		return h.replyError(c, err)
	}
	if exists {
		h.pending[c.Chat().ID] = &pendingInput{
			kind:  pendingOverwrite,
			date:  date,
			start: startStr,
			end:   endStr,
		}
		return c.Send(
			"A shift for "+date.Format("2006-01-02")+" already exists. Overwrite it?",
			keyboards.BuildOverwriteKeyboard(),
		)
	}
	return h.storeShift(c, date, startStr, endStr, false)
}

func (h *Handler) storeShift(c telebot.Context, date time.Time, startStr, endStr string, overwrite bool) error {
	wt, err := h.WorkTimes.LogShift(date, startStr, endStr, overwrite)
	if err != nil {
		return h.replyError(c, err)
	}
	return c.Send(fmt.Sprintf(
		"Shift added for %s: %s - %s, %.2f hours, £%.2f.",
		wt.Date.Format("2006-01-02"), wt.Start, wt.End, wt.HoursWorked, wt.Pay,
	))
}

func (h *Handler) handleScheduleMenu(c telebot.Context) error {
	ws, err := h.Schedule.Week()
	if err != nil {
		return h.replyError(c, err)
	}
	var b strings.Builder
	b.WriteString("Weekly schedule:\n")
	for _, day := range scheduleOrder {
		d := ws.Days[day]
		fmt.Fprintf(&b, "%s  %s\n", day.String()[:3], clock.FormatRange(d.Start, d.End))
	}
	b.WriteString("\nPick a day to change:")
	return c.Send(b.String(), keyboards.BuildWeekdayKeyboard())
}

func (h *Handler) handlePayRateMenu(c telebot.Context) error {
	rate, err := h.Rates.Rate()
	if err != nil {
		return h.replyError(c, err)
	}
	h.pending[c.Chat().ID] = &pendingInput{kind: pendingRate}
	return c.Send("Current pay rate: £" + rate + "/h. Send a new rate, or /cancel to keep it.")
}

func (h *Handler) handleWeekSummary(c telebot.Context) error {
	ws, err := h.Schedule.Week()
	if err != nil {
		return h.replyError(c, err)
	}
	lines, totals, err := h.Week.WorkedWeek(time.Now())
	if err != nil {
		return h.replyError(c, err)
	}

	var b strings.Builder
	b.WriteString("Your shifts:\n")
	for _, day := range scheduleOrder {
		d := ws.Days[day]
		fmt.Fprintf(&b, "%s  %s\n", day.String()[:3], clock.FormatRange(d.Start, d.End))
	}
	b.WriteString("\nWorked week:\n")
	if len(lines) == 0 {
		b.WriteString("no shifts logged yet\n")
	}
	for _, l := range lines {
		fmt.Fprintf(&b, "%s  %s - %s\n", l.Day, l.Start, l.End)
	}
	fmt.Fprintf(&b, "\nTotal pay: £%.2f\nTotal hours worked: %.2f", totals.Pay, totals.Hours)
	return c.Send(b.String())
}

// replyError turns a service error into a user-facing message. Validation
// gets the corrective text, storage trouble is logged and reported without
// detail, absent records read as a no-op.
func (h *Handler) replyError(c telebot.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrValidation):
		msg := strings.TrimPrefix(err.Error(), domain.ErrValidation.Error()+": ")
		return c.Send("That didn't work: " + msg)
	case errors.Is(err, domain.ErrNotFound):
		return c.Send("No shift is logged for that date.")
	default:
		h.Log.Errorw("storage operation failed", "err", err)
		return c.Send("Storage error: nothing was changed. Please try again.")
	}
}

var scheduleOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
