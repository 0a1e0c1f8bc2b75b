// FILE: argconf/decode.go
package argconf

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Scan decodes the resolved values into the target struct pointer. Presence
// flags decode as booleans, single-value options as strings, repeatable
// options as string slices; absent options leave the target field untouched.
// Fields map to option names through the `opt` struct tag:
//
//	type ServerConfig struct {
//	    Listen  string        `opt:"listen"`
//	    Timeout time.Duration `opt:"timeout"`
//	    Debug   bool          `opt:"debug"`
//	}
//
// Decoding is weakly typed: numeric fields accept numeric strings, duration
// fields accept Go duration syntax, and slice fields accept a single
// comma-separated value.
func (r *Resolved) Scan(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("scan target must be a non-nil pointer, got %T", target)
	}

	data := make(map[string]any, len(r.desc.Options))
	for _, o := range r.desc.Options {
		v := r.values[o.Name]
		switch v.kind {
		case FlagSet:
			data[o.Name] = true
		case HasValues:
			if o.Repeatable {
				data[o.Name] = v.Strings()
			} else {
				data[o.Name] = v.values[len(v.values)-1]
			}
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "opt",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(data); err != nil {
		return fmt.Errorf("failed to decode resolved config: %w", err)
	}
	return nil
}
