package gameserver

// IsDarkPeriod reports whether a period reduces outdoor visibility.
//
// Postcondition: Returns true for Midnight, LateNight, Night.
func IsDarkPeriod(period TimePeriod) bool {
	return period == PeriodMidnight || period == PeriodLateNight || period == PeriodNight
}

// IsDark reports whether the current game hour falls in a dark period. It
// satisfies the perception tracker's darkness source.
func (c *GameClock) IsDark() bool {
	return IsDarkPeriod(c.CurrentHour().Period())
}
