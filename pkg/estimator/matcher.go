package estimator

import (
	"github.com/AanchalGupta13/Cost-Estimation/internal/models"
)

// BestMatch selects the smallest instance type in catalog that still
// satisfies the requirement's CPU and RAM floor. The running best is
// replaced whenever a qualifying candidate has strictly fewer vCPUs OR
// strictly less memory than the current best. The comparison is
// deliberately not lexicographic, so the result depends on catalog
// order; callers wanting reproducible output must pass a stably
// ordered catalog. ok is false when no type qualifies.
func BestMatch(req models.Requirement, catalog []models.InstanceType) (models.InstanceType, bool) {
	var best models.InstanceType
	found := false

	for _, it := range catalog {
		if it.VCPUs < req.CPU || it.MemoryGB < req.RAM {
			continue
		}
		if !found || it.VCPUs < best.VCPUs || it.MemoryGB < best.MemoryGB {
			best = it
			found = true
		}
	}

	return best, found
}
