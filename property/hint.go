package property

import (
	"fmt"
	"strconv"
	"strings"
)

// The kind of editor hint attached to a property.
type Hint int

const (
	HintNone Hint = iota
	HintRange
	HintEnum
	HintFlags
	HintFile
	HintDir
	HintMultilineText
	HintPlaceholderText
	HintResourceType
	HintColorNoAlpha
)

var hintNames = map[Hint]string{
	HintNone:            "none",
	HintRange:           "range",
	HintEnum:            "enum",
	HintFlags:           "flags",
	HintFile:            "file",
	HintDir:             "dir",
	HintMultilineText:   "multiline",
	HintPlaceholderText: "placeholder",
	HintResourceType:    "resource_type",
	HintColorNoAlpha:    "color_no_alpha",
}

func (h Hint) String() string {
	if name, ok := hintNames[h]; ok {
		return name
	}
	return fmt.Sprintf("Hint(%d)", int(h))
}

// A hint and its argument string, in the comma-separated format the engine
// expects, e.g. {HintRange, "0,100,1"}.
type HintInfo struct {
	Hint       Hint
	HintString string
}

func (info HintInfo) String() string {
	if info.HintString == "" {
		return info.Hint.String()
	}
	return info.Hint.String() + "(" + info.HintString + ")"
}

// Build a HintInfo from the contents of a `hint` tag.
//
// `kind` is one of the names returned by `Hint.String()`.
func ParseHint(kind string, args []string) (HintInfo, error) {
	var hint Hint
	found := false
	for h, name := range hintNames {
		if name == kind {
			hint = h
			found = true
			break
		}
	}
	if !found {
		return HintInfo{}, fmt.Errorf("unknown hint %q", kind)
	}

	switch hint {
	case HintRange:
		if len(args) < 2 || len(args) > 3 {
			return HintInfo{}, fmt.Errorf("hint range expects min,max[,step], got %d arguments", len(args))
		}
		for _, arg := range args {
			if _, err := strconv.ParseFloat(arg, 64); err != nil {
				return HintInfo{}, fmt.Errorf("hint range expects numbers:\n\t * %w", err)
			}
		}
	case HintEnum, HintFlags:
		if len(args) == 0 {
			return HintInfo{}, fmt.Errorf("hint %s expects at least one value", hint)
		}
	case HintPlaceholderText, HintResourceType:
		if len(args) != 1 {
			return HintInfo{}, fmt.Errorf("hint %s expects exactly one argument, got %d", hint, len(args))
		}
	case HintNone, HintDir, HintMultilineText, HintColorNoAlpha:
		if len(args) != 0 {
			return HintInfo{}, fmt.Errorf("hint %s does not take arguments", hint)
		}
	case HintFile:
		// Any number of filters.
	}
	return HintInfo{
		Hint:       hint,
		HintString: strings.Join(args, ","),
	}, nil
}
