package tags_test

import (
	"reflect"
	"testing"

	"github.com/pasqal-io/onready/assertions/testutils"
	"github.com/pasqal-io/onready/property/tags"
	"gotest.tools/v3/assert"
)

type RandomStruct struct {
	ABC       string  `first:"1,2,3" second:"" third:"abc" fourth:"1,     2,3" fifth:"    abc  " `
	Plain     int     `export:""`
	Renamed   int     `export:"renamed"`
	OptOut    int     `export:"-"`
	Untagged  int     `json:"untagged"`
	Repeat    string  `abc:"" abc:""` //lint:ignore SA5008 we're testing for this
	Described float64 `export:"speed" hint:"range, 0, 500, 1" doc:"Movement speed, in px/s"`
}

func parseField(t *testing.T, name string) tags.Tags {
	t.Helper()
	reflectT := reflect.TypeOf(RandomStruct{}) //nolint:exhaustruct
	reflectField, ok := reflectT.FieldByName(name)
	assert.Assert(t, ok, "missing field %s", name)
	parsed, err := tags.Parse(reflectField.Tag)
	assert.NilError(t, err)
	return parsed
}

func TestReadTags(t *testing.T) {
	parsed := parseField(t, "ABC")

	first, ok := parsed.Lookup("first")
	assert.Assert(t, ok, "Could not find key first")
	assert.DeepEqual(t, first, []string{"1", "2", "3"})

	second, ok := parsed.Lookup("second")
	assert.Assert(t, ok, "Could not find key second")
	assert.DeepEqual(t, second, []string{""})

	third, ok := parsed.Lookup("third")
	assert.Assert(t, ok, "Could not find key third")
	assert.DeepEqual(t, third, []string{"abc"})

	fourth, ok := parsed.Lookup("fourth")
	assert.Assert(t, ok, "Could not find key fourth")
	assert.DeepEqual(t, fourth, []string{"1", "2", "3"})

	fifth, ok := parsed.Lookup("fifth")
	assert.Assert(t, ok, "Could not find key fifth")
	assert.DeepEqual(t, fifth, []string{"abc"})

	_, ok = parsed.Lookup("absent")
	assert.Assert(t, !ok, "I should not have found a non-existent key")

	assert.Equal(t, parsed.IsExported(), false, "This field has no export tag")
}

func TestExportNames(t *testing.T) {
	plain := parseField(t, "Plain")
	assert.Equal(t, plain.IsExported(), true)
	assert.Equal(t, plain.ExportName("Plain"), "Plain", "An empty export tag keeps the field name")

	renamed := parseField(t, "Renamed")
	assert.Equal(t, renamed.IsExported(), true)
	assert.Equal(t, renamed.ExportName("Renamed"), "renamed")

	optOut := parseField(t, "OptOut")
	assert.Equal(t, optOut.IsExported(), false, "export:\"-\" opts out")

	untagged := parseField(t, "Untagged")
	assert.Equal(t, untagged.IsExported(), false)
}

func TestHintAndDoc(t *testing.T) {
	parsed := parseField(t, "Described")
	kind, args, ok := parsed.Hint()
	assert.Assert(t, ok)
	assert.Equal(t, kind, "range")
	assert.DeepEqual(t, args, []string{"0", "500", "1"})
	assert.Equal(t, parsed.Doc(), "Movement speed, in px/s", "Doc should have remained unsplit")

	_, _, ok = parseField(t, "Plain").Hint()
	assert.Assert(t, !ok)
}

// We should fail parsing if the same key appears more than once.
func TestRepeatFails(t *testing.T) {
	reflectT := reflect.TypeOf(RandomStruct{}) //nolint:exhaustruct
	reflectField, _ := reflectT.FieldByName("Repeat")
	_, err := tags.Parse(reflectField.Tag)
	assert.ErrorContains(t, err, "name abc should only be defined once")
}

func TestZeroTagsPanic(t *testing.T) {
	var zero tags.Tags
	testutils.AssertPanics(t, func() { zero.IsExported() }, "tags.Tags was not initialized", "A zero Tags must be rejected")
	testutils.AssertNoPanic(t, func() { tags.Empty().IsExported() }, "Empty() builds a usable Tags")
}
