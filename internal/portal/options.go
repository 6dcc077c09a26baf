package portal

import "github.com/godbus/dbus/v5"

// decodeStringOption extracts a string from a D-Bus a{sv} options map,
// handling the two shapes real portal clients send: a native string
// variant, or a NUL-terminated byte array (GVariant's "bytestring"
// convention for filesystem paths). Empty strings are treated as absent,
// since a present-but-empty value carries no information here.
func decodeStringOption(options map[string]dbus.Variant, key string) (string, bool) {
	v, ok := options[key]
	if !ok {
		return "", false
	}

	if s, ok := v.Value().(string); ok {
		if s == "" {
			return "", false
		}
		return s, true
	}

	if s, ok := decodeByteString(v.Value()); ok {
		if s == "" {
			return "", false
		}
		return s, true
	}

	return "", false
}

// decodeByteString handles the byte-array-with-NUL-terminator encoding:
// truncate at the first NUL and decode the remainder as UTF-8.
func decodeByteString(v any) (string, bool) {
	switch bs := v.(type) {
	case []byte:
		return string(truncateAtNUL(bs)), true
	case []int32:
		b := make([]byte, 0, len(bs))
		for _, n := range bs {
			if n == 0 {
				break
			}
			b = append(b, byte(n))
		}
		return string(b), true
	default:
		return "", false
	}
}

func truncateAtNUL(b []byte) []byte {
	for i, c := range b {
		if c == 0 {
			return b[:i]
		}
	}
	return b
}

// decodeBoolOption extracts a bool option, defaulting to false when the
// key is absent or not a bool.
func decodeBoolOption(options map[string]dbus.Variant, key string) bool {
	v, ok := options[key]
	if !ok {
		return false
	}
	b, _ := v.Value().(bool)
	return b
}
