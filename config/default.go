package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/vlctrack/vlctrack/color"
	"github.com/vlctrack/vlctrack/constant"
	"github.com/vlctrack/vlctrack/key"
	"github.com/vlctrack/vlctrack/style"
)

// Field is one registered configuration key.
type Field struct {
	Key         string
	Value       any
	Description string
	// Options restricts string values. Empty means any value.
	Options []string
}

// Pretty renders the field for "vlctrack config info".
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable bound to this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.App + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// Validate checks a value against the field's allowed options.
func (f *Field) Validate(value any) error {
	if len(f.Options) == 0 {
		return nil
	}

	s, ok := value.(string)
	if !ok || !lo.Contains(f.Options, s) {
		return fmt.Errorf("invalid value %v for %s, expected one of: %s", value, f.Key, strings.Join(f.Options, ", "))
	}

	return nil
}

// MarshalJSON includes the current value next to the default.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string   `json:"key"`
		Value       any      `json:"value"`
		Default     any      `json:"default"`
		Description string   `json:"description"`
		Type        string   `json:"type"`
		Options     []string `json:"options,omitempty"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
		Options:     f.Options,
	})
}

func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	default:
		return "unknown"
	}
}

// Default holds every configuration field by key.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	register := func(k string, v any, desc string, options ...string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc, Options: options}
		EnvExposed = append(EnvExposed, k)
	}

	register(key.PlayerHost, "localhost", "Host of the VLC telnet interface")
	register(key.PlayerPort, 4212, "Port of the VLC telnet interface")
	register(key.PlayerPassword, "", "Password of the VLC telnet interface.\nLeave empty to use the password stored with \"vlctrack auth set\"")
	register(key.PlayerProcess, "vlc", "Process name that must be running before connecting.\nMatched case-insensitively as a substring. Empty disables the check")
	register(key.PlayerConnectTimeout, 3000, "Connection timeout in milliseconds")
	register(key.PlayerPromptTimeout, 1000, "How long to wait for the password prompt, in milliseconds")
	register(key.PlayerReadTimeout, 2000, "How long to wait for a command reply, in milliseconds")
	register(key.PlayerOpenWith, "vlc", "Application used to open history entries.\nEmpty uses the system default handler")
	register(key.TrackerInterval, 2000, "Polling interval in milliseconds")
	register(key.TrackerUnavailableGrace, 1, "Consecutive unreachable polls that end a session.\n1 ends it on the first failure")
	register(key.RenameEnabled, true, "Rename files to carry their progress, e.g. \"[12-34] Show.mkv\"")
	register(key.HistoryBackend, "json", "History storage backend", "json", "sqlite")
	register(key.HistoryPath, "", "History file location.\nEmpty uses the default for the selected backend")
	register(key.APIListen, "", "Address for the HTTP API, e.g. \"127.0.0.1:8420\".\nEmpty disables it")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)", "plain", "emoji", "kaomoji", "squares", "nerd")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace", "panic", "fatal", "error", "warn", "info", "debug", "trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"cyan":     style.Fg(color.Cyan),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"join":     strings.Join,
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}{{ if .Options }}
{{ blue "Options:" }} {{ join .Options ", " }}{{ end }}`))
