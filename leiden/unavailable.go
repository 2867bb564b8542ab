//go:build noleiden

package leiden

import (
	"fmt"

	"github.com/clusty-go/clusty/heaptrix"
)

// Available reports whether the gonum-backed adapter was compiled in.
const Available = false

// Cluster always fails when built with -tags noleiden, mirroring the reference
// implementation's NO_LEIDEN branch that throws on construction and on every call.
func Cluster(src heaptrix.EdgeSource, objects []int, params Params, assignments []int) (int, error) {
	return 0, fmt.Errorf("leiden: algorithm not available")
}
