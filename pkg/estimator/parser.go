package estimator

import (
	"regexp"
	"strconv"

	"github.com/AanchalGupta13/Cost-Estimation/internal/models"
)

// Inventory sheets write CPU as "<n> Cores" (case-sensitive) and RAM as "<n>GB".
var (
	cpuPattern = regexp.MustCompile(`(\d+)\s+Cores`)
	ramPattern = regexp.MustCompile(`(\d+)GB`)
)

// ParseRequirement normalizes the CPU and RAM fields of a raw inventory
// record. Records whose CPU or RAM text does not match the expected
// pattern are dropped (ok=false) rather than reported as errors.
func ParseRequirement(raw models.RawRequirement) (models.Requirement, bool) {
	cpuMatch := cpuPattern.FindStringSubmatch(raw.CPU)
	ramMatch := ramPattern.FindStringSubmatch(raw.RAM)

	if cpuMatch == nil || ramMatch == nil {
		return models.Requirement{}, false
	}

	// The submatches are all-digit by construction, so Atoi cannot fail.
	cpu, _ := strconv.Atoi(cpuMatch[1])
	ram, _ := strconv.Atoi(ramMatch[1])

	return models.Requirement{
		ServerName: raw.ServerName,
		IPAddress:  raw.IPAddress,
		CPU:        cpu,
		RAM:        ram,
		Storage:    raw.Storage,
		Database:   raw.Database,
	}, true
}
