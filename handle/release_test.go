//go:build release

package handle_test

import (
	"testing"

	"github.com/pasqal-io/onready/assertions/testutils"
	"github.com/pasqal-io/onready/handle"
)

func TestReinterpretIsNotChecked(t *testing.T) {
	table := handle.NewTable(nil)
	node := handle.New[Node](table, nil)

	wrong := handle.Reinterpret[Resource](node)
	testutils.AssertEqual(t, wrong.InstanceID(), node.InstanceID(), "Release builds trust the static class")
}
