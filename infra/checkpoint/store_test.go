package checkpoint

import "testing"

func TestOffsetRoundTrip(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	if _, ok, err := s.Offset("seg/0.bin"); err != nil || ok {
		t.Fatalf("fresh store: ok=%v err=%v", ok, err)
	}

	if err := s.SetOffset("seg/0.bin", 3800); err != nil {
		t.Fatal(err)
	}
	if err := s.SetOffset("seg/1.bin", 76); err != nil {
		t.Fatal(err)
	}

	off, ok, err := s.Offset("seg/0.bin")
	if err != nil || !ok || off != 3800 {
		t.Fatalf("offset = (%d, %v, %v), want (3800, true, nil)", off, ok, err)
	}

	all, err := s.Offsets()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 || all["seg/1.bin"] != 76 {
		t.Fatalf("offsets = %v", all)
	}
}

func TestOffsetsSurviveReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SetOffset("a.bin", 38); err != nil {
		t.Fatal(err)
	}
	if err := s.Flush(); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s, err = Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	off, ok, err := s.Offset("a.bin")
	if err != nil || !ok || off != 38 {
		t.Fatalf("after reopen: (%d, %v, %v)", off, ok, err)
	}

	// Overwrites win.
	if err := s.SetOffset("a.bin", 114); err != nil {
		t.Fatal(err)
	}
	off, _, _ = s.Offset("a.bin")
	if off != 114 {
		t.Fatalf("offset = %d, want 114", off)
	}
}
