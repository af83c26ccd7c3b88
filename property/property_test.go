package property

import "testing"

func TestAddGetSetRoundTrip(t *testing.T) {
	cases := [...]struct {
		name string
		typ  Type
		dim  int
		val  Value
	}{
		{"kTestInt", Int, 1, Value{Type: Int, I: 42}},
		{"kTestDouble", Double, 1, Value{Type: Double, D: 3.5}},
		{"kTestString", String, 1, Value{Type: String, S: "hello"}},
		{"kTestPointer", Pointer, 1, Value{Type: Pointer, P: 0xdead}},
	}
	for _, c := range cases {
		s := NewStore(nil)
		if err := s.Add(c.name, c.typ, c.dim, false); err != nil {
			t.Fatalf("Add(%s): %v", c.name, err)
		}
		if err := s.Update(c.name, 0, c.val); err != nil {
			t.Fatalf("Update(%s): %v", c.name, err)
		}
		got, err := s.Get(c.name, 0)
		if err != nil {
			t.Fatalf("Get(%s): %v", c.name, err)
		}
		if got != c.val {
			t.Errorf("Get(%s) = %+v, want %+v", c.name, got, c.val)
		}
		if n, _ := s.Length(c.name); n != c.dim {
			t.Errorf("Length(%s) = %d, want %d", c.name, n, c.dim)
		}
	}
}

func TestAddExists(t *testing.T) {
	s := NewStore(nil)
	if err := s.Add("kTest", Int, 1, false); err != nil {
		t.Fatal(err)
	}
	if err := s.Add("kTest", Int, 1, false); err == nil {
		t.Fatal("expected ErrExists, got nil")
	}
	if err := s.Add("kTest", Int, 1, true); err != nil {
		t.Fatalf("replace Add: %v", err)
	}
}

func TestVariableLengthAppend(t *testing.T) {
	s := NewStore(nil)
	if err := s.Add("kSeq", String, Variable, false); err != nil {
		t.Fatal(err)
	}
	for i, v := range []string{"a", "b", "c"} {
		if err := s.Update("kSeq", i, Value{Type: String, S: v}); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}
	if n, _ := s.Length("kSeq"); n != 3 {
		t.Fatalf("Length = %d, want 3", n)
	}
	// Appending out of order (skipping an index) must fail.
	if err := s.Update("kSeq", 10, Value{Type: String, S: "x"}); err == nil {
		t.Fatal("expected ErrBadIndex appending past length")
	}
}

func TestAddressStability(t *testing.T) {
	s := NewStore(nil)
	s.Add("kA", Int, 1, false)
	s.Add("kB", Int, 1, false)
	pa, _ := s.Address("kA", 0)
	s.Add("kC", Int, 1, false)
	s.Add("kD", Int, 1, false)
	pa2, _ := s.Address("kA", 0)
	if pa != pa2 {
		t.Fatal("address of kA changed after adding unrelated properties")
	}
	s.Update("kA", 0, Value{Type: Int, I: 7})
	v, _ := s.Get("kA", 0)
	if v.I != 7 {
		t.Fatal("update through stable address path failed")
	}
}

func TestGetBadIndex(t *testing.T) {
	s := NewStore(nil)
	s.Add("kA", Int, 1, false)
	if _, err := s.Get("kA", 1); err == nil {
		t.Fatal("expected ErrBadIndex")
	}
}

func TestSchemaRejectsUnknownEnum(t *testing.T) {
	s := NewStore(DefaultSchema())
	if err := s.Add(ImageEffectPropComponents, String, 1, false); err != nil {
		t.Fatal(err)
	}
	if err := s.Update(ImageEffectPropComponents, 0, Value{Type: String, S: "bogus"}); err == nil {
		t.Fatal("expected ErrValue for out-of-enum value")
	}
	if err := s.Update(ImageEffectPropComponents, 0, Value{Type: String, S: ComponentsRGBA}); err != nil {
		t.Fatalf("valid enum rejected: %v", err)
	}
}

func TestSchemaPolymorphicDefault(t *testing.T) {
	s := NewStore(DefaultSchema())
	// Double2D parameter: Default has dimension 2.
	if err := s.Add(ParamPropDefault, Double, 2, false); err != nil {
		t.Fatalf("Add polymorphic Default: %v", err)
	}
	if err := s.Update(ParamPropDefault, 0, Value{Type: Double, D: 1}); err != nil {
		t.Fatal(err)
	}
	if err := s.Update(ParamPropDefault, 1, Value{Type: Double, D: 2}); err != nil {
		t.Fatal(err)
	}
}

func TestPointerNilStoresZero(t *testing.T) {
	s := NewStore(nil)
	s.Add("kPtr", Pointer, 1, false)
	if err := s.Update("kPtr", 0, Value{Type: Pointer, P: 0}); err != nil {
		t.Fatal(err)
	}
	v, _ := s.Get("kPtr", 0)
	if v.P != 0 {
		t.Fatalf("P = %d, want 0", v.P)
	}
}
