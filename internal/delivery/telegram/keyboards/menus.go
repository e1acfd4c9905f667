package keyboards

import (
	"strconv"
	"time"

	"gopkg.in/telebot.v3"
)

// BuildDayPickKeyboard offers today or the inline calendar for an action
// ("log" or "del"), producing "<action>_today" / "<action>_pick" callbacks.
func BuildDayPickKeyboard(action string) *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{}
	btnToday := markup.Data("Today", action+"_today")
	btnPick := markup.Data("Pick a date", action+"_pick")
	markup.Inline(markup.Row(btnToday, btnPick))
	return markup
}

// BuildOverwriteKeyboard asks the yes/no overwrite question for a date
// that already has a logged shift.
func BuildOverwriteKeyboard() *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{}
	btnYes := markup.Data("Yes, overwrite", "overwrite_yes")
	btnNo := markup.Data("No, keep it", "overwrite_no")
	markup.Inline(markup.Row(btnYes, btnNo))
	return markup
}

// BuildWeekdayKeyboard lays out Mon-Sun pickers for editing the weekly
// schedule, payload carrying the time.Weekday number.
func BuildWeekdayKeyboard() *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{}
	order := []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}
	rows := []telebot.Row{}
	week := telebot.Row{}
	for _, day := range order {
		btn := markup.Data(day.String()[:3], "sched_day", strconv.Itoa(int(day)))
		week = append(week, btn)
		if len(week) == 4 {
			rows = append(rows, week)
			week = telebot.Row{}
		}
	}
	if len(week) > 0 {
		rows = append(rows, week)
	}
	markup.Inline(rows...)
	return markup
}
