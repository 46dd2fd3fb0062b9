package dataset

// Header is the ordered list of column names of a dataset.
type Header []string

// Row is one record, position-aligned with its dataset's Header.
type Row []string

// Dataset is a fully materialized table: a header and its rows in source order.
type Dataset struct {
	// Name identifies where the dataset was loaded from (path, s3:// or db:// location).
	Name string `json:"name"`

	// Header holds the column names in source order.
	Header Header `json:"header"`

	// Rows holds the data records in source order.
	Rows []Row `json:"rows"`
}

// Positions maps every column name to its index in the header.
// With duplicate names the last position wins; schema validation rejects those anyway.
func (h Header) Positions() map[string]int {
	positions := make(map[string]int, len(h))
	for i, name := range h {
		positions[name] = i
	}
	return positions
}
