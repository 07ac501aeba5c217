package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the application's log output,
// making logs easier to parse, filter, and analyze.
const (
	FieldFile       = "file_path"
	FieldSource     = "source"
	FieldLine       = "line"
	FieldPattern    = "pattern"
	FieldAmount     = "amount"
	FieldDirection  = "direction"
	FieldCategory   = "category"
	FieldKeyword    = "keyword"
	FieldMerchant   = "merchant"
	FieldCount      = "count"
	FieldReason     = "reason"
	FieldError      = "error"
	FieldDelimiter  = "delimiter"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
)
