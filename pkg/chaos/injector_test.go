package chaos

import (
	"errors"
	"testing"
	"time"
)

func TestNewInjector(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{name: "nil config returns error", config: nil, wantErr: true},
		{name: "empty config", config: &Config{}, wantErr: false},
		{name: "full config", config: &Config{
			Enabled:     true,
			FailureRate: 0.5,
			Errors:      []error{errors.New("a"), errors.New("b")},
			Delay:       time.Millisecond,
			Seed:        1,
		}, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewInjector(tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewInjector() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	cfg := &Config{FailureRate: 1.5, Delay: -time.Second}
	cfg.Clamp()
	if cfg.FailureRate != 1.0 {
		t.Errorf("FailureRate = %v, want 1.0", cfg.FailureRate)
	}
	if cfg.Delay != 0 {
		t.Errorf("Delay = %v, want 0", cfg.Delay)
	}

	cfg = &Config{FailureRate: -0.5}
	cfg.Clamp()
	if cfg.FailureRate != 0 {
		t.Errorf("FailureRate = %v, want 0", cfg.FailureRate)
	}
}

func TestDecideDisabled(t *testing.T) {
	inj, err := NewInjector(&Config{Enabled: false, FailureRate: 1.0, Seed: 1})
	if err != nil {
		t.Fatal(err)
	}

	for _i := 0; _i < 100; _i++ {
		if d := inj.Decide(); d.Triggered() {
			t.Fatal("disabled injector triggered a fault")
		}
	}

	stats := inj.Stats()
	if stats.TotalInvocations != 100 {
		t.Errorf("TotalInvocations = %d, want 100", stats.TotalInvocations)
	}
	if stats.Triggered != 0 {
		t.Errorf("Triggered = %d, want 0", stats.Triggered)
	}
}

func TestDecideAlwaysTriggersAtFullRate(t *testing.T) {
	boom := errors.New("boom")
	inj, err := NewInjector(&Config{
		Enabled:     true,
		FailureRate: 1.0,
		Errors:      []error{boom},
		Delay:       time.Microsecond,
		Seed:        42,
	})
	if err != nil {
		t.Fatal(err)
	}

	for _i := 0; _i < 50; _i++ {
		d := inj.Decide()
		if !d.Triggered() {
			t.Fatal("full-rate injector did not trigger")
		}
		if !errors.Is(d.Err, boom) {
			t.Errorf("Err = %v, want %v", d.Err, boom)
		}
		if d.Delay != time.Microsecond {
			t.Errorf("Delay = %v, want %v", d.Delay, time.Microsecond)
		}
	}

	stats := inj.Stats()
	if stats.Triggered != 50 {
		t.Errorf("Triggered = %d, want 50", stats.Triggered)
	}
}

func TestDecideFallsBackToSentinelError(t *testing.T) {
	inj, err := NewInjector(&Config{Enabled: true, FailureRate: 1.0, Seed: 1})
	if err != nil {
		t.Fatal(err)
	}

	d := inj.Decide()
	if !errors.Is(d.Err, ErrFaultInjected) {
		t.Errorf("Err = %v, want ErrFaultInjected", d.Err)
	}
}

func TestDecideDeterministicBySeed(t *testing.T) {
	pool := []error{errors.New("a"), errors.New("b"), errors.New("c")}
	run := func(seed int64) []error {
		inj, err := NewInjector(&Config{
			Enabled:     true,
			FailureRate: 0.5,
			Errors:      pool,
			Seed:        seed,
		})
		if err != nil {
			t.Fatal(err)
		}
		out := make([]error, 200)
		for i := range out {
			out[i] = inj.Decide().Err
		}
		return out
	}

	first := run(1234)
	second := run(1234)
	for i := range first {
		if !errors.Is(first[i], second[i]) && first[i] != second[i] {
			t.Fatalf("decision %d differs between identical seeds: %v vs %v", i, first[i], second[i])
		}
	}

	other := run(5678)
	same := true
	for i := range first {
		if first[i] != other[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical decision sequences")
	}
}

func TestResetStats(t *testing.T) {
	inj, err := NewInjector(&Config{Enabled: true, FailureRate: 1.0, Seed: 1})
	if err != nil {
		t.Fatal(err)
	}
	inj.Decide()
	inj.ResetStats()

	if stats := inj.Stats(); stats.TotalInvocations != 0 || stats.Triggered != 0 {
		t.Errorf("stats not reset: %+v", stats)
	}
}
