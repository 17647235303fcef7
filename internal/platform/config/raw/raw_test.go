package raw

import "testing"

func TestGet(t *testing.T) {
	t.Setenv("RAWTEST_NAME", "  value  ")
	c := New().Prefix("RAWTEST_")
	if got := c.Get("NAME", "def"); got != "value" {
		t.Fatalf("Get = %q, want trimmed value", got)
	}
	if got := c.Get("MISSING", "def"); got != "def" {
		t.Fatalf("Get missing = %q, want default", got)
	}
}

func TestGetBool(t *testing.T) {
	t.Setenv("RAWTEST_A", "yes")
	t.Setenv("RAWTEST_B", "0")
	c := New().Prefix("RAWTEST_")
	if !c.GetBool("A", false) {
		t.Fatal("yes should parse true")
	}
	if c.GetBool("B", true) {
		t.Fatal("0 should parse false")
	}
	if !c.GetBool("MISSING", true) {
		t.Fatal("missing should fall back to default")
	}
}

func TestGetInt(t *testing.T) {
	t.Setenv("RAWTEST_N", "42")
	t.Setenv("RAWTEST_BAD", "4x2")
	c := New().Prefix("RAWTEST_")
	if got := c.GetInt("N", 7); got != 42 {
		t.Fatalf("GetInt = %d, want 42", got)
	}
	if got := c.GetInt("BAD", 7); got != 7 {
		t.Fatalf("GetInt bad input = %d, want default", got)
	}
}
