package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmgtools/sectkit/objfile"
	"github.com/dmgtools/sectkit/sect"
)

func writeObject(t *testing.T, name string, sections ...*sect.Section) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	b := objfile.NewBuilder()
	for _, s := range sections {
		b.Add(s)
	}
	if err := b.WriteFile(path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func silence(t *testing.T) {
	t.Helper()
	quiet = true
	t.Cleanup(func() { quiet = false })
}

func TestRunCheckPasses(t *testing.T) {
	silence(t)
	path := writeObject(t, "game.o",
		&sect.Section{Name: "header", Kind: sect.ROM0, Size: 0x150, Org: 0x0100, OrgFixed: true},
		&sect.Section{Name: "engine", Kind: sect.ROMX, Size: 0x2000},
	)

	if err := runCheck([]string{path}); err != nil {
		t.Fatalf("runCheck: %v", err)
	}
}

func TestRunCheckReportsViolations(t *testing.T) {
	silence(t)
	path := writeObject(t, "game.o",
		&sect.Section{Name: "huge", Kind: sect.OAM, Size: 0x200},
	)

	err := runCheck([]string{path})
	if err == nil {
		t.Fatal("expected a failed verdict")
	}
	if !strings.Contains(err.Error(), "placement validation failed") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunCheckDuplicateAcrossFiles(t *testing.T) {
	silence(t)
	a := writeObject(t, "a.o", &sect.Section{Name: "vars", Kind: sect.WRAM0, Size: 0x10})
	b := writeObject(t, "b.o", &sect.Section{Name: "vars", Kind: sect.HRAM, Size: 0x08})

	err := runCheck([]string{a, b})
	if err == nil {
		t.Fatal("expected duplicate name to fail the load")
	}
	if !strings.Contains(err.Error(), "already in use") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunCheckModeFlags(t *testing.T) {
	silence(t)
	path := writeObject(t, "game.o",
		&sect.Section{Name: "engine", Kind: sect.ROMX, Size: 0x100, Bank: 2, BankFixed: true},
	)

	// Bank 2 is fine normally but contradicts a 32 KiB ROM.
	if err := runCheck([]string{path}); err != nil {
		t.Fatalf("runCheck: %v", err)
	}

	checkTiny = true
	t.Cleanup(func() { checkTiny = false })
	if err := runCheck([]string{path}); err == nil {
		t.Fatal("expected --tiny to reject a pinned ROMX bank")
	}
}
