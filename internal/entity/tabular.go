package entity

// One validated row of a tabular import. Name is the identity field;
// the Has* flags record which optional columns were present in the file,
// so reconciliation can overwrite only what the row actually carries.
type ImportRow struct {
	Line int // 1-based line in the source file, for error reporting

	Name string

	Email      string
	HasEmail   bool
	Phone      string
	HasPhone   bool
	Address    string
	HasAddress bool
	Date       string
	HasDate    bool
	Info       string
	HasInfo    bool
	Price      float64
	HasPrice   bool
}

// per-row failure kept alongside the rows that did parse
type RowError struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

type ImportSummary struct {
	Inserted  int        `json:"inserted"`
	Updated   int        `json:"updated"`
	Deleted   int        `json:"deleted"`
	RowErrors []RowError `json:"rowErrors,omitempty"`
}
