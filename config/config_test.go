package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	c := Default()
	if c.MaxDFAStates <= 0 {
		t.Errorf("MaxDFAStates = %d, want > 0", c.MaxDFAStates)
	}
	if !c.ForbidAmpersand {
		t.Error("ForbidAmpersand should default to true")
	}
}

func TestLoadMissingPathReturnsDefault(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if c != Default() {
		t.Errorf("Load(\"\") = %+v, want Default()", c)
	}
}

func TestLoadOverlaysTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "automatonkit.toml")
	body := "max_dfa_states = 10\nforbid_ampersand = false\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.MaxDFAStates != 10 {
		t.Errorf("MaxDFAStates = %d, want 10", c.MaxDFAStates)
	}
	if c.ForbidAmpersand {
		t.Error("ForbidAmpersand should be overridden to false")
	}
	if c.MaxRegexLength != Default().MaxRegexLength {
		t.Errorf("MaxRegexLength = %d, want default %d", c.MaxRegexLength, Default().MaxRegexLength)
	}
}

func TestCheckLength(t *testing.T) {
	c := Default()
	c.MaxRegexLength = 3
	if err := c.CheckLength("ab"); err != nil {
		t.Errorf("CheckLength(ab) = %v, want nil", err)
	}
	if err := c.CheckLength("abcd"); err == nil {
		t.Error("CheckLength(abcd) should fail with MaxRegexLength=3")
	}
}
