package gameserver_test

import (
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/cory-johannsen/feud/internal/gameserver"
)

// Every hour maps to a period, and the three night phases are the ones
// that count as dark for perception purposes.
func TestGameHour_PeriodAndDarkness(t *testing.T) {
	cases := []struct {
		hour   int32
		period gameserver.TimePeriod
		dark   bool
	}{
		{0, gameserver.PeriodMidnight, true},
		{1, gameserver.PeriodLateNight, true},
		{4, gameserver.PeriodLateNight, true},
		{5, gameserver.PeriodDawn, false},
		{6, gameserver.PeriodDawn, false},
		{7, gameserver.PeriodMorning, false},
		{11, gameserver.PeriodMorning, false},
		{12, gameserver.PeriodAfternoon, false},
		{16, gameserver.PeriodAfternoon, false},
		{17, gameserver.PeriodDusk, false},
		{18, gameserver.PeriodDusk, false},
		{19, gameserver.PeriodEvening, false},
		{21, gameserver.PeriodEvening, false},
		{22, gameserver.PeriodNight, true},
		{23, gameserver.PeriodNight, true},
	}
	for _, tc := range cases {
		gh := gameserver.GameHour(tc.hour)
		if got := gh.Period(); got != tc.period {
			t.Errorf("hour %d: period %q, want %q", tc.hour, got, tc.period)
		}
		if got := gameserver.IsDarkPeriod(gh.Period()); got != tc.dark {
			t.Errorf("hour %d: IsDarkPeriod = %v, want %v", tc.hour, got, tc.dark)
		}
	}
}

func TestGameHour_String(t *testing.T) {
	if got := gameserver.GameHour(6).String(); got != "06:00" {
		t.Errorf("got %q, want 06:00", got)
	}
	if got := gameserver.GameHour(18).String(); got != "18:00" {
		t.Errorf("got %q, want 18:00", got)
	}
}

// Every hour yields a known period, and darkness holds exactly during
// Midnight, Late Night, and Night.
func TestProperty_GameHour_PeriodAlwaysValid(t *testing.T) {
	dark := map[gameserver.TimePeriod]bool{
		gameserver.PeriodMidnight:  true,
		gameserver.PeriodLateNight: true,
		gameserver.PeriodNight:     true,
	}
	light := map[gameserver.TimePeriod]bool{
		gameserver.PeriodDawn:      true,
		gameserver.PeriodMorning:   true,
		gameserver.PeriodAfternoon: true,
		gameserver.PeriodDusk:      true,
		gameserver.PeriodEvening:   true,
	}
	rapid.Check(t, func(t *rapid.T) {
		h := rapid.Int32Range(0, 23).Draw(t, "hour")
		p := gameserver.GameHour(h).Period()
		if !dark[p] && !light[p] {
			t.Fatalf("hour %d returned unknown period %q", h, p)
		}
		if got := gameserver.IsDarkPeriod(p); got != dark[p] {
			t.Fatalf("period %q: IsDarkPeriod = %v, want %v", p, got, dark[p])
		}
	})
}

// Starting at dusk, each tick advances one game hour; visibility consumers
// polling CurrentHour see the day progress.
func TestGameClock_AdvancesHour(t *testing.T) {
	clk := gameserver.NewGameClock(17, 20*time.Millisecond)
	ch := make(chan gameserver.GameHour, 4)
	clk.Subscribe(ch)
	stop := clk.Start()
	defer stop()
	defer clk.Unsubscribe(ch)

	for i := 0; i < 2; i++ {
		select {
		case <-ch:
		case <-time.After(500 * time.Millisecond):
			t.Fatalf("timed out waiting for tick %d", i+1)
		}
	}

	if h := clk.CurrentHour(); h != 19 {
		t.Errorf("expected hour 19 after 2 ticks from dusk, got %d", h)
	}
}

// The hour after 23:00 is midnight, and midnight is dark.
func TestGameClock_WrapsIntoDarkness(t *testing.T) {
	clk := gameserver.NewGameClock(23, 20*time.Millisecond)
	ch := make(chan gameserver.GameHour, 4)
	clk.Subscribe(ch)
	stop := clk.Start()
	defer stop()
	defer clk.Unsubscribe(ch)

	select {
	case h := <-ch:
		if h != 0 {
			t.Errorf("expected hour 0 after wrapping from 23, got %d", h)
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for wrap tick")
	}
	if !clk.IsDark() {
		t.Error("midnight should read as dark")
	}
}

func TestGameClock_SubscribeReceivesTick(t *testing.T) {
	clk := gameserver.NewGameClock(0, 20*time.Millisecond)
	ch := make(chan gameserver.GameHour, 4)
	clk.Subscribe(ch)
	stop := clk.Start()
	defer stop()
	defer clk.Unsubscribe(ch)

	select {
	case <-ch:
	case <-time.After(200 * time.Millisecond):
		t.Fatal("timed out waiting for tick")
	}
}

func TestGameClock_UnsubscribeStopsDelivery(t *testing.T) {
	clk := gameserver.NewGameClock(0, 20*time.Millisecond)
	ch := make(chan gameserver.GameHour, 4)
	clk.Subscribe(ch)
	stop := clk.Start()
	defer stop()

	select {
	case <-ch:
	case <-time.After(200 * time.Millisecond):
		t.Fatal("no initial tick")
	}

	clk.Unsubscribe(ch)
	for len(ch) > 0 {
		<-ch
	}

	// Give the clock time for further ticks; none may arrive.
	time.Sleep(100 * time.Millisecond)
	if len(ch) > 0 {
		t.Error("received tick after unsubscribe")
	}
}
