package reduce

import (
	"github.com/mluipersbeck/dapcstp/artic"
	"github.com/mluipersbeck/dapcstp/dinst"
)

// articulationPoints recomputes articulation-point data for inst, used
// between cascade rounds since node/arc removals invalidate prior results.
func articulationPoints(inst *dinst.Instance) (ap []bool, lastap []int) {
	return artic.Find(inst)
}
