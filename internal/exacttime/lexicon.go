package exacttime

// The temporal vocabulary is closed, so morphological normalization reduces
// to a finite table of inflected forms. Keys and values are already
// case-folded with ё collapsed to е (see normalize).
var lemmas = map[string]string{
	// weekdays
	"понедельника": "понедельник",
	"понедельнику": "понедельник",
	"вторника":     "вторник",
	"вторнику":     "вторник",
	"среду":        "среда",
	"среды":        "среда",
	"среде":        "среда",
	"четверга":     "четверг",
	"четвергу":     "четверг",
	"пятницу":      "пятница",
	"пятницы":      "пятница",
	"пятнице":      "пятница",
	"субботу":      "суббота",
	"субботы":      "суббота",
	"субботе":      "суббота",
	"воскресенья":  "воскресенье",
	"воскресенью":  "воскресенье",
	"воскресения":  "воскресение",
	"воскресению":  "воскресение",

	// months
	"января":   "январь",
	"январе":   "январь",
	"февраля":  "февраль",
	"феврале":  "февраль",
	"марта":    "март",
	"марте":    "март",
	"апреля":   "апрель",
	"апреле":   "апрель",
	"мая":      "май",
	"мае":      "май",
	"июня":     "июнь",
	"июне":     "июнь",
	"июля":     "июль",
	"июле":     "июль",
	"августа":  "август",
	"августе":  "август",
	"сентября": "сентябрь",
	"сентябре": "сентябрь",
	"октября":  "октябрь",
	"октябре":  "октябрь",
	"ноября":   "ноябрь",
	"ноябре":   "ноябрь",
	"декабря":  "декабрь",
	"декабре":  "декабрь",

	// times of day
	"утра":    "утро",
	"утром":   "утро",
	"утру":    "утро",
	"дня":     "день",
	"днем":    "день",
	"дню":     "день",
	"вечера":  "вечер",
	"вечером": "вечер",
	"вечеру":  "вечер",
	"ночи":    "ночь",
	"ночью":   "ночь",

	// count and year words
	"часа":    "час",
	"часу":    "час",
	"часов":   "час",
	"часе":    "час",
	"минуту":  "минута",
	"минуты":  "минута",
	"минут":   "минута",
	"минутах": "минута",
	"года":    "год",
	"году":    "год",
	"годах":   "год",
}

var months = map[string]int{
	"январь":   1,
	"февраль":  2,
	"март":     3,
	"апрель":   4,
	"май":      5,
	"июнь":     6,
	"июль":     7,
	"август":   8,
	"сентябрь": 9,
	"октябрь":  10,
	"ноябрь":   11,
	"декабрь":  12,
}

var days = map[string]int{
	"понедельник": int(Monday),
	"вторник":     int(Tuesday),
	"среда":       int(Wednesday),
	"четверг":     int(Thursday),
	"пятница":     int(Friday),
	"суббота":     int(Saturday),
	"воскресенье": int(Sunday),
	"воскресение": int(Sunday),
	"завтра":      int(Tomorrow),
	"послезавтра": int(DayAfterTomorrow),
	"сегодня":     int(Today),
}

var timesOfDay = map[string]int{
	"утро":  int(Morning),
	"день":  int(Day),
	"вечер": int(Evening),
	"ночь":  int(Night),
}
