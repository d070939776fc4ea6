package core

import (
	"testing"
	"time"
)

func TestFixedStepInterval(t *testing.T) {
	fs := NewFixedStep(30)
	if got := fs.Interval(); got != time.Second/30 {
		t.Fatalf("interval = %v, expected %v", got, time.Second/30)
	}
}

func TestFixedStepFiresImmediately(t *testing.T) {
	fs := NewFixedStep(30)
	if !fs.ShouldStep() {
		t.Fatalf("a fresh FixedStep should allow the first tick at once")
	}
}

func TestFixedStepDefaultsOnBadTPS(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() != time.Second/30 {
		t.Fatalf("interval = %v for tps=0, expected the 30 tps default", fs.Interval())
	}
}
