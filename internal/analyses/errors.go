package analyses

// ErrorCodeExtraction is returned when an accepted PDF yields no readable text.
const ErrorCodeExtraction = "extraction_failed"
