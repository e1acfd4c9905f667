package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/telebot.v3"
)

// CalendarController renders an inline month calendar and reports the
// picked date through OnDate.
type CalendarController struct {
	Bot    *telebot.Bot
	OnDate func(time.Time, telebot.Context) error
}

// ShowCalendar opens the calendar on the current month.
func (cc *CalendarController) ShowCalendar(c telebot.Context) error {
	now := time.Now()
	return SendCalendar(c, now.Year(), int(now.Month()))
}

// SendCalendar builds and sends the calendar for the given month.
func SendCalendar(c telebot.Context, year, month int) error {
	markup := &telebot.ReplyMarkup{}
	days := daysInMonth(year, month)
	var rows []telebot.Row
	week := telebot.Row{}
	for d := 1; d <= days; d++ {
		btn := markup.Data(strconv.Itoa(d), "cal_day", strconv.Itoa(d)+"-"+strconv.Itoa(month)+"-"+strconv.Itoa(year))
		week = append(week, btn)
		if len(week) == 7 {
			rows = append(rows, week)
			week = telebot.Row{}
		}
	}
	if len(week) > 0 {
		rows = append(rows, week)
	}
	prev := markup.Data("<", "cal_prev", strconv.Itoa(month)+"-"+strconv.Itoa(year))
	next := markup.Data(">", "cal_next", strconv.Itoa(month)+"-"+strconv.Itoa(year))
	rows = append(rows, telebot.Row{prev, next})
	markup.Inline(rows...)

	title := fmt.Sprintf("%s %d", time.Month(month).String(), year)
	if err := c.Edit(title, markup); err != nil {
		return c.Send(title, markup)
	}
	return nil
}

// HandleCallback dispatches the cal_* callbacks: a picked day goes to
// OnDate, the arrows re-render the adjacent month.
func (cc *CalendarController) HandleCallback(c telebot.Context) error {
	raw := strings.TrimPrefix(c.Data(), "\f")
	split := strings.SplitN(raw, "|", 2)
	if len(split) != 2 {
		return nil
	}
	payload := split[1]
	switch split[0] {
	case "cal_day":
		parts := SplitDateData(payload)
		if len(parts) != 3 {
			return c.Send("Could not read that date.")
		}
		day, _ := strconv.Atoi(parts[0])
		month, _ := strconv.Atoi(parts[1])
		year, _ := strconv.Atoi(parts[2])
		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		if cc.OnDate != nil {
			return cc.OnDate(date, c)
		}
		return nil
	case "cal_prev":
		month, year, ok := splitMonthData(payload)
		if !ok {
			return nil
		}
		month--
		if month < 1 {
			month = 12
			year--
		}
		return SendCalendar(c, year, month)
	case "cal_next":
		month, year, ok := splitMonthData(payload)
		if !ok {
			return nil
		}
		month++
		if month > 12 {
			month = 1
			year++
		}
		return SendCalendar(c, year, month)
	}
	return nil
}

// SplitDateData splits a "d-m-y" callback payload.
func SplitDateData(payload string) []string {
	return strings.Split(payload, "-")
}

func splitMonthData(payload string) (month, year int, ok bool) {
	parts := SplitDateData(payload)
	if len(parts) != 2 {
		return 0, 0, false
	}
	month, _ = strconv.Atoi(parts[0])
	year, _ = strconv.Atoi(parts[1])
	return month, year, true
}

func daysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
