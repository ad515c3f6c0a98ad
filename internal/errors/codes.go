package errors

// Fallback codes for failures outside the Weblate exchange.
const (
	CodeSystemGeneric     = "SYS-000"
	CodeConfigGeneric     = "CFG-000"
	CodeValidationGeneric = "VAL-000"
)

// Codes raised while talking to Weblate.
const (
	CodeManifestRequest = "NET-101"
	CodeManifestStatus  = "NET-102"
	CodeManifestDecode  = "DEC-101"
	CodeDownloadRequest = "NET-201"
	CodeDownloadStatus  = "NET-202"
	CodeDownloadWrite   = "SYS-201"
)
