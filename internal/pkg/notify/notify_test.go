package notify

import (
	"testing"
	"time"
)

func TestFanoutDeliversToEveryTarget(t *testing.T) {
	first := &Recorder{}
	second := &Recorder{}
	fan := Fanout{first, nil, second}

	n := Notification{Level: LevelSuccess, Screen: "events", Message: "Event created successfully", Time: time.Now()}
	fan.Notify(n)

	for name, rec := range map[string]*Recorder{"first": first, "second": second} {
		got, ok := rec.Last()
		if !ok {
			t.Fatalf("%s recorder received nothing", name)
		}
		if got.Message != n.Message || got.Level != LevelSuccess {
			t.Errorf("%s recorder got %+v", name, got)
		}
	}
}

func TestRecorderAllReturnsCopy(t *testing.T) {
	rec := &Recorder{}
	rec.Notify(Notification{Message: "one"})

	all := rec.All()
	all[0].Message = "changed"

	if got, _ := rec.Last(); got.Message != "one" {
		t.Errorf("recorder state mutated through All(): %q", got.Message)
	}
	if _, ok := (&Recorder{}).Last(); ok {
		t.Error("empty recorder reported a notification")
	}
}
