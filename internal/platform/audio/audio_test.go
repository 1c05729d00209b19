package audio

import (
	"math"
	"testing"
)

func TestMelodyLength(t *testing.T) {
	notes := []Note{{440, 1}, {0, 0.5}, {880, 0.5}}
	m := NewMelody(1000, notes, 60)

	if m.Len() != 2000 {
		t.Fatalf("Len() = %d, expected 2000", m.Len())
	}

	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := m.Stream(buf)
		total += n
		if !ok {
			break
		}
		for i := 0; i < n; i++ {
			if math.Abs(buf[i][0]) > 1 || buf[i][0] != buf[i][1] {
				t.Fatalf("sample %d = %v, expected mono within [-1, 1]", total-n+i, buf[i])
			}
		}
	}
	if total != 2000 {
		t.Errorf("streamed %d samples, expected 2000", total)
	}
}

func TestMelodyRestIsSilent(t *testing.T) {
	m := NewMelody(1000, []Note{{440, 1}, {0, 1}}, 60)
	if err := m.Seek(1000); err != nil {
		t.Fatalf("Seek() error = %v", err)
	}
	buf := make([][2]float64, 100)
	n, _ := m.Stream(buf)
	for i := 0; i < n; i++ {
		if buf[i][0] != 0 {
			t.Fatalf("rest sample %d = %v, expected 0", i, buf[i][0])
		}
	}
	if m.Position() != 1100 {
		t.Errorf("Position() = %d, expected 1100", m.Position())
	}
}

func TestMelodySeekBounds(t *testing.T) {
	m := NewMelody(1000, theme, 150)
	if err := m.Seek(-1); err == nil {
		t.Error("Seek(-1) error = nil, expected an error")
	}
	if err := m.Seek(m.Len() + 1); err == nil {
		t.Error("Seek(past end) error = nil, expected an error")
	}
	if err := m.Seek(m.Len()); err != nil {
		t.Errorf("Seek(end) error = %v", err)
	}
}

// Audio operations must be safe without a device.
func TestPlayerWithoutDevice(t *testing.T) {
	p := NewPlayer(nil)
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("player panicked without initialization: %v", r)
		}
	}()

	p.Sync(true, false, false)
	if p.Playing() {
		t.Error("Playing() = true without initialization")
	}
	p.Close()
}
