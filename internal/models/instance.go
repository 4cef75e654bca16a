package models

// InstanceType represents an EC2 instance type with its compute capacity
type InstanceType struct {
	Name     string
	VCPUs    int
	MemoryGB int // whole gigabytes, truncated from MiB
}
