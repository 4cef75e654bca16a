package models

// RawRequirement is one row of the server inventory spreadsheet,
// all fields as they appear in the sheet.
type RawRequirement struct {
	ServerName string
	IPAddress  string
	CPU        string // e.g. "4 Cores"
	RAM        string // e.g. "16GB"
	Storage    string // e.g. "500GB SSD + 1TB HDD"
	Database   string // database kind, or "None"
}

// Requirement is a RawRequirement with CPU and RAM normalized to numbers.
type Requirement struct {
	ServerName string
	IPAddress  string
	CPU        int // cores
	RAM        int // gigabytes
	Storage    string
	Database   string
}
