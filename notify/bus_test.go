package notify

import "testing"

func TestBusPublishAndSubscribe(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	ch, cancel := bus.Subscribe()
	defer cancel()

	bus.Success("saved")

	select {
	case n := <-ch:
		if n.Level != LevelSuccess || n.Message != "saved" {
			t.Errorf("got %+v", n)
		}
	default:
		t.Fatal("expected a notification")
	}
}

func TestBusCancelStopsDelivery(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	ch, cancel := bus.Subscribe()
	cancel()

	bus.Info("after cancel")

	if _, ok := <-ch; ok {
		t.Error("channel should be closed after cancel")
	}
}

func TestBusPublishNeverBlocks(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	_, cancel := bus.Subscribe()
	defer cancel()

	// Far more messages than the subscriber buffer holds
	for i := 0; i < 100; i++ {
		bus.Warning("overflow")
	}
}

func TestBusCloseIsIdempotent(t *testing.T) {
	bus := NewBus()
	ch, _ := bus.Subscribe()
	bus.Close()
	bus.Close()

	if _, ok := <-ch; ok {
		t.Error("channel should be closed after bus close")
	}

	// Publishing and subscribing after close must not panic
	bus.Error("late")
	late, cancel := bus.Subscribe()
	defer cancel()
	if _, ok := <-late; ok {
		t.Error("subscription after close should return a closed channel")
	}
}
