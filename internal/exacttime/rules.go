package exacttime

// The phrase grammar. Built once at package init, read-only afterwards, so
// Extract is safe to call concurrently.
var atTimeGrammar = buildGrammar()

func buildGrammar() *rule {
	hour := seq(
		req(ranged(1, 24, fieldHour)),
		opt(word("час")),
	)
	minute := seq(
		req(ranged(0, 59, fieldMinute)),
		opt(word("минута")),
	)

	hourMinuteSep := alt(lit(":"), lit("-"))
	dateSep := alt(lit("-"), lit("."), lit("/"))

	hourAndMinute := seq(
		req(hour),
		opt(hourMinuteSep),
		req(minute),
	)

	timeRule := alt(hourAndMinute, hour, minute)

	dayNum := ranged(1, 31, fieldDateDay)
	monthNum := ranged(1, 12, fieldDateMonth)
	yearNum := ranged(1, 2099, fieldDateYear)
	yearWords := alt(
		seq(req(lit("г")), req(lit("."))),
		word("год"),
	)
	monthName := dict(months, fieldDateMonth)

	date := alt(
		seq(req(yearNum), req(dateSep), req(monthNum), req(dateSep), req(dayNum)),
		seq(req(dayNum), req(dateSep), req(monthName), req(dateSep), opt(yearNum), opt(yearWords)),
		seq(req(dayNum), req(dateSep), req(monthNum), req(dateSep), opt(yearNum), opt(yearWords)),
		seq(req(dayNum), req(monthName), opt(yearNum), opt(yearWords)),
	)

	dayName := dict(days, fieldDayName)
	timeOfDay := dict(timesOfDay, fieldTimeOfDay)
	at := alt(lit("в"), lit("во"))

	return alt(
		// в понедельник в 10 утра / завтра в 11
		seq(opt(at), req(dayName), req(at), req(timeRule), opt(timeOfDay)),
		// в 10 завтра утром / в 10 завтра / в 20:15
		seq(req(at), req(timeRule), opt(dayName), opt(timeOfDay)),
		// в субботу утром / во вторник
		seq(req(at), req(dayName), opt(timeOfDay)),
		// 17.04.2018 в 9 / 23 мая в 15-10
		seq(req(date), req(at), req(timeRule), opt(timeOfDay)),
		// сходить в магазин вечером / завтра днём
		seq(opt(dayName), req(timeOfDay)),
	)
}
