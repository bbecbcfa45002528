// SPDX-License-Identifier: MPL-2.0

package install

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"coqc-cli/internal/config"
	"coqc-cli/internal/testutil"
	"coqc-cli/pkg/platform"
)

func binName(name string) string {
	if runtime.GOOS == platform.Windows {
		return name + ".exe"
	}
	return name
}

func TestDetectLayoutUsesConfigValues(t *testing.T) {
	cfg := &config.Config{
		Coqlib:   "/opt/coq/lib",
		Coqbin:   "/opt/coq/bin",
		FileUsed: "/home/u/.config/coqc/config.toml",
	}

	lay := DetectLayout(cfg)
	if lay.Coqlib != "/opt/coq/lib" {
		t.Errorf("Coqlib = %q, want %q", lay.Coqlib, "/opt/coq/lib")
	}
	if lay.Coqbin != "/opt/coq/bin" {
		t.Errorf("Coqbin = %q, want %q", lay.Coqbin, "/opt/coq/bin")
	}
	if lay.ConfigFile != cfg.FileUsed {
		t.Errorf("ConfigFile = %q, want %q", lay.ConfigFile, cfg.FileUsed)
	}
}

func TestDetectLayoutDefaultsFromExecutable(t *testing.T) {
	orig := executablePath
	executablePath = func() (string, error) {
		return filepath.Join("/usr/local/coq/bin", "coqc"), nil
	}
	defer func() { executablePath = orig }()

	lay := DetectLayout(nil)
	if lay.Coqbin != "/usr/local/coq/bin" {
		t.Errorf("Coqbin = %q, want executable directory", lay.Coqbin)
	}
	want := filepath.Clean("/usr/local/coq/lib/coq")
	if lay.Coqlib != want {
		t.Errorf("Coqlib = %q, want %q", lay.Coqlib, want)
	}
}

func TestToplevelPrefersNativeVariant(t *testing.T) {
	dir := t.TempDir()
	testutil.MustWriteFile(t, dir, binName("coqtop.opt"), "")
	testutil.MustWriteFile(t, dir, binName("coqtop"), "")

	got, err := Toplevel(nil, Layout{Coqbin: dir})
	if err != nil {
		t.Fatalf("Toplevel error = %v", err)
	}
	if want := filepath.Join(dir, binName("coqtop.opt")); got != want {
		t.Errorf("Toplevel = %q, want %q", got, want)
	}
}

func TestToplevelBytecodePreference(t *testing.T) {
	dir := t.TempDir()
	testutil.MustWriteFile(t, dir, binName("coqtop.byte"), "")
	testutil.MustWriteFile(t, dir, binName("coqtop.opt"), "")

	useByte := true
	got, err := Toplevel(&useByte, Layout{Coqbin: dir})
	if err != nil {
		t.Fatalf("Toplevel error = %v", err)
	}
	if want := filepath.Join(dir, binName("coqtop.byte")); got != want {
		t.Errorf("Toplevel = %q, want %q", got, want)
	}
}

func TestToplevelFallsBackToPlainName(t *testing.T) {
	dir := t.TempDir()
	testutil.MustWriteFile(t, dir, binName("coqtop"), "")

	got, err := Toplevel(nil, Layout{Coqbin: dir})
	if err != nil {
		t.Fatalf("Toplevel error = %v", err)
	}
	if want := filepath.Join(dir, binName("coqtop")); got != want {
		t.Errorf("Toplevel = %q, want %q", got, want)
	}
}

func TestToplevelNotFound(t *testing.T) {
	// Empty bin dir and an empty PATH leaves nothing to find.
	defer testutil.MustSetenv(t, "PATH", "")()

	_, err := Toplevel(nil, Layout{Coqbin: t.TempDir()})
	if err == nil {
		t.Fatal("Toplevel expected error, got nil")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist, got %v", err)
	}
}
