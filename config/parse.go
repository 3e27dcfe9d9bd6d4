package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/vlctrack/vlctrack/key"
)

// millisecondKeys hold durations stored as whole milliseconds.
var millisecondKeys = []string{
	key.PlayerConnectTimeout,
	key.PlayerPromptTimeout,
	key.PlayerReadTimeout,
	key.TrackerInterval,
}

// Parse converts command line words into a value of the field's type.
// Millisecond fields also accept durations such as "1.5s".
func (f *Field) Parse(words []string) (any, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("no value given for %s", f.Key)
	}

	raw := strings.TrimSpace(words[0])

	switch f.Value.(type) {
	case string:
		return raw, nil
	case int:
		if lo.Contains(millisecondKeys, f.Key) {
			return parseMilliseconds(f.Key, raw)
		}

		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid integer value for %s: %s", f.Key, raw)
		}
		return n, nil
	case bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid boolean value for %s: %s", f.Key, raw)
		}
		return b, nil
	case []string:
		return words, nil
	default:
		return nil, fmt.Errorf("%s cannot be set from the command line", f.Key)
	}
}

func parseMilliseconds(k, raw string) (int, error) {
	if n, err := strconv.Atoi(raw); err == nil {
		if n <= 0 {
			return 0, fmt.Errorf("%s must be positive, got %d", k, n)
		}
		return n, nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %s", k, raw)
	}
	if d < time.Millisecond {
		return 0, fmt.Errorf("%s must be at least 1ms, got %s", k, d)
	}

	return int(d / time.Millisecond), nil
}
