// Struct tags understood by the property exporter.
//
//	type Player struct {
//	    Speed  float64 `export:"" hint:"range,0,500,1" doc:"Movement speed, in px/s"`
//	    Weapon onready.OnReady[*Weapon] `export:"weapon"`
//	    cache  map[string]int
//	}
package tags

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/pasqal-io/onready/assertions/initialized"
)

const (
	// Marks a field as exported to the engine, optionally renaming it.
	ExportKey = "export"
	// An editor hint: a hint kind followed by its comma-separated arguments.
	HintKey = "hint"
	// A free-form description, not split on commas.
	DocKey = "doc"
)

// A representation of the tags for a given field.
type Tags struct {
	tags    map[string][]string
	witness initialized.IsInitialized
}

func Empty() Tags {
	return Tags{
		tags:    make(map[string][]string),
		witness: initialized.Make(),
	}
}

// Parse the tag associated to a struct field, following the conventions
// of `reflect.StructTag`.
func Parse(tag reflect.StructTag) (Tags, error) {
	tags := make(map[string][]string)
	// Same scanner as reflect.StructTag.Lookup, but we need every key.
	for tag != "" {
		i := 0
		for i < len(tag) && tag[i] == ' ' {
			i++
		}
		tag = tag[i:]
		if tag == "" {
			break
		}

		// A space, a quote or a control character ends the key.
		i = 0
		for i < len(tag) && tag[i] > ' ' && tag[i] != ':' && tag[i] != '"' && tag[i] != 0x7f {
			i++
		}
		if i == 0 || i+1 >= len(tag) || tag[i] != ':' || tag[i+1] != '"' {
			// Give up on parsing.
			break
		}
		name := string(tag[:i])
		if name == "" {
			return Tags{}, errors.New("invalid tag with empty name")
		}
		if _, exists := tags[name]; exists {
			return Tags{}, fmt.Errorf("invalid tag, name %s should only be defined once", name)
		}

		tag = tag[i+1:]

		i = 1
		for i < len(tag) && tag[i] != '"' {
			if tag[i] == '\\' {
				i++
			}
			i++
		}
		if i >= len(tag) {
			break
		}
		qvalue := string(tag[:i+1])
		tag = tag[i+1:]

		list, err := strconv.Unquote(qvalue)
		if err != nil {
			return Tags{}, fmt.Errorf("ill-formed tag %s:\n\t * %w", name, err)
		}

		if name == DocKey {
			tags[name] = []string{list}
			continue
		}
		split := strings.Split(list, ",")
		trimmed := make([]string, 0, len(split))
		for _, s := range split {
			if t := strings.TrimSpace(s); t != "" {
				trimmed = append(trimmed, t)
			}
		}
		// Make sure that we always have at least an empty string.
		if len(trimmed) == 0 {
			trimmed = append(trimmed, "")
		}
		tags[name] = trimmed
	}
	return Tags{
		tags:    tags,
		witness: initialized.Make(),
	}, nil
}

// Return `true` if the field carries an `export` tag that does not opt out
// with `export:"-"`.
func (tags Tags) IsExported() bool {
	tags.witness.Assert("tags.Tags")
	result, ok := tags.tags[ExportKey]
	if !ok {
		return false
	}
	return len(result) == 0 || result[0] != "-"
}

// Return the name under which a field is exported.
//
// `export:""` keeps the Go field name, `export:"speed"` renames it.
func (tags Tags) ExportName(fieldName string) string {
	tags.witness.Assert("tags.Tags")
	result, ok := tags.tags[ExportKey]
	if !ok || len(result) == 0 || result[0] == "" {
		return fieldName
	}
	return result[0]
}

// Return the hint kind and its arguments, e.g. `hint:"range,0,100"` yields
// ("range", ["0", "100"]).
func (tags Tags) Hint() (kind string, args []string, ok bool) {
	tags.witness.Assert("tags.Tags")
	result, ok := tags.tags[HintKey]
	if !ok || len(result) == 0 || result[0] == "" {
		return "", nil, false
	}
	return result[0], result[1:], true
}

// Return the documentation attached to the field, if any.
func (tags Tags) Doc() string {
	tags.witness.Assert("tags.Tags")
	result, ok := tags.tags[DocKey]
	if !ok || len(result) == 0 {
		return ""
	}
	return result[0]
}

// Lookup a key.
func (tags Tags) Lookup(key string) ([]string, bool) {
	tags.witness.Assert("tags.Tags")
	result, ok := tags.tags[key]
	return result, ok
}
