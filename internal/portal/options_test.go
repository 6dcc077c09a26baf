package portal

import (
	"testing"

	"github.com/godbus/dbus/v5"
)

func TestDecodeStringOptionNativeString(t *testing.T) {
	opts := map[string]dbus.Variant{"current_folder": dbus.MakeVariant("/home/user")}
	got, ok := decodeStringOption(opts, "current_folder")
	if !ok || got != "/home/user" {
		t.Errorf("got %q, %v", got, ok)
	}
}

func TestDecodeStringOptionNULTerminatedBytes(t *testing.T) {
	bs := append([]byte("/home/user"), 0)
	opts := map[string]dbus.Variant{"current_folder": dbus.MakeVariant(bs)}
	got, ok := decodeStringOption(opts, "current_folder")
	if !ok || got != "/home/user" {
		t.Errorf("got %q, %v", got, ok)
	}
}

func TestDecodeStringOptionEmptyIsAbsent(t *testing.T) {
	opts := map[string]dbus.Variant{"current_folder": dbus.MakeVariant("")}
	if _, ok := decodeStringOption(opts, "current_folder"); ok {
		t.Error("expected empty string to be treated as absent")
	}
}

func TestDecodeStringOptionMissingKey(t *testing.T) {
	if _, ok := decodeStringOption(map[string]dbus.Variant{}, "current_folder"); ok {
		t.Error("expected missing key to be absent")
	}
}

func TestDecodeBoolOption(t *testing.T) {
	opts := map[string]dbus.Variant{"multiple": dbus.MakeVariant(true)}
	if !decodeBoolOption(opts, "multiple") {
		t.Error("expected true")
	}
	if decodeBoolOption(opts, "directory") {
		t.Error("expected false for missing key")
	}
}
