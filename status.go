package olamaps

// Status is the status field reported in service payloads.
type Status string

const (
	StatusOK          Status = "ok"
	StatusZeroResults Status = "zero_results"
	StatusBadRequest  Status = "bad_request"
)

//nolint:tagliatelle
type PlusCode struct {
	CompoundCode string `json:"compound_code"`
	GlobalCode   string `json:"global_code"`
}
