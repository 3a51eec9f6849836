package audio

import "testing"

func TestSeq(t *testing.T) {
	s := NewSeq(.1, []int{2, 3, 1})
	Init(s, Params{SampleRate: 10})
	notes := NewIter([]float64{60, 62, 64})
	var fired []int
	s.Next.Connect(notes.Next)
	s.Next.Connect(func() { fired = append(fired, int(notes.Value())) })

	s.Step()
	if len(fired) != 0 {
		t.Fatal("fired before Play")
	}
	s.Play()
	var at []int
	for i := 0; i < 10; i++ {
		n := len(fired)
		s.Step()
		if len(fired) > n {
			at = append(at, i)
		}
	}
	if want := []int{0, 2, 5}; !equalInts(at, want) {
		t.Errorf("fired at steps %v, want %v", at, want)
	}
	if want := []int{60, 62, 64}; !equalInts(fired, want) {
		t.Errorf("iterator values %v, want %v", fired, want)
	}
	if !s.Done() {
		t.Error("not done")
	}
}

func TestSeqSpeed(t *testing.T) {
	s := NewSeq(.1, []int{4, 4})
	Init(s, Params{SampleRate: 10})
	count := 0
	s.Next.Connect(func() {
		count++
		s.SetSpeed(2)
	})
	s.Play()
	steps := 0
	for !s.Done() {
		s.Step()
		steps++
	}
	if count != 2 {
		t.Errorf("fired %d times, want 2", count)
	}
	if steps != 5 {
		t.Errorf("took %d steps at double speed, want 5", steps)
	}
}

func TestIterOverrun(t *testing.T) {
	it := NewIter([]float64{1})
	it.Next()
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	it.Next()
}

func TestTriggerOrder(t *testing.T) {
	var tr Trigger
	var got []int
	tr.Connect(func() { got = append(got, 1) })
	c := tr.Connect(func() { got = append(got, 2) })
	tr.Connect(func() { got = append(got, 3) })
	tr.Fire()
	c.Disconnect()
	tr.Fire()
	if want := []int{1, 2, 3, 1, 3}; !equalInts(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
