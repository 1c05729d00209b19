package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Note is one step of a melody. A zero frequency is a rest.
type Note struct {
	Freq  float64
	Beats float64
}

// theme is the looping in-game soundtrack.
var theme = []Note{
	{659.25, 1}, {0, 0.5}, {659.25, 0.5}, {783.99, 1}, {659.25, 1},
	{587.33, 1}, {523.25, 1}, {493.88, 2},
	{523.25, 1}, {587.33, 0.5}, {659.25, 0.5}, {587.33, 1}, {523.25, 1},
	{440.00, 1}, {493.88, 1}, {523.25, 2},
	{392.00, 1}, {0, 0.5}, {392.00, 0.5}, {440.00, 1}, {493.88, 1},
	{523.25, 1}, {587.33, 1}, {659.25, 2},
	{587.33, 1}, {523.25, 0.5}, {493.88, 0.5}, {440.00, 1}, {493.88, 1},
	{523.25, 4},
}

// Melody renders a note sequence as a soft square wave. It implements
// beep.StreamSeeker so it can be looped.
type Melody struct {
	sr     beep.SampleRate
	starts []int // first sample of each note
	notes  []Note
	total  int
	pos    int
	amp    float64
}

// NewMelody creates a melody played at bpm beats per minute.
func NewMelody(sr beep.SampleRate, notes []Note, bpm float64) *Melody {
	m := &Melody{sr: sr, notes: notes, amp: 0.12}
	samplesPerBeat := float64(sr) * 60 / bpm
	for _, n := range notes {
		m.starts = append(m.starts, m.total)
		m.total += int(n.Beats * samplesPerBeat)
	}
	return m
}

// Stream fills samples with the next part of the melody.
func (m *Melody) Stream(samples [][2]float64) (n int, ok bool) {
	if m.pos >= m.total {
		return 0, false
	}
	note := m.noteAt(m.pos)
	for i := range samples {
		if m.pos >= m.total {
			return i, true
		}
		for note+1 < len(m.starts) && m.pos >= m.starts[note+1] {
			note++
		}
		v := m.sample(note)
		samples[i][0] = v
		samples[i][1] = v
		m.pos++
		n++
	}
	return n, true
}

// sample returns the value at the current position inside note.
func (m *Melody) sample(note int) float64 {
	freq := m.notes[note].Freq
	if freq <= 0 {
		return 0
	}
	end := m.total
	if note+1 < len(m.starts) {
		end = m.starts[note+1]
	}
	length := end - m.starts[note]
	offset := m.pos - m.starts[note]
	t := float64(offset) / float64(m.sr)

	square := 1.0
	if math.Sin(2*math.Pi*freq*t) < 0 {
		square = -1
	}
	// Short attack and a linear release keep notes from clicking.
	env := 1 - float64(offset)/float64(max(length, 1))
	if attack := m.sr.N(5 * time.Millisecond); offset < attack {
		env *= float64(offset) / float64(attack)
	}
	return m.amp * square * env
}

func (m *Melody) noteAt(pos int) int {
	note := 0
	for note+1 < len(m.starts) && pos >= m.starts[note+1] {
		note++
	}
	return note
}

// Err always returns nil.
func (m *Melody) Err() error { return nil }

// Len returns the melody length in samples.
func (m *Melody) Len() int { return m.total }

// Position returns the current sample.
func (m *Melody) Position() int { return m.pos }

// Seek moves to sample p.
func (m *Melody) Seek(p int) error {
	if p < 0 || p > m.total {
		return fmt.Errorf("audio: seek position %d out of range [0, %d]", p, m.total)
	}
	m.pos = p
	return nil
}
